package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/unboundhq/research-board/internal/api"
	"github.com/unboundhq/research-board/internal/config"
	"github.com/unboundhq/research-board/internal/db"
	"github.com/unboundhq/research-board/internal/middleware"
	"github.com/unboundhq/research-board/internal/services"
)

func main() {
	cfg, err := config.Load(os.Getenv("BOARD_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	projectStart, err := cfg.ProjectStart()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	commit := os.Getenv("BOARD_COMMIT")
	buildTime := os.Getenv("BOARD_BUILD_TIME")

	sqldb, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open database %s: %v", cfg.Database.Path, err)
	}
	defer sqldb.Close()

	store := db.NewStore(sqldb)
	docs := db.NewDocStore(sqldb)
	tokenAuth := middleware.NewTokenAuth(cfg.Auth.JWTSecret)

	board := services.NewBoardService(store)
	research := services.NewResearchService(store)
	challenges := services.NewChallengeService(docs)
	auth := services.NewAuthService(store, tokenAuth.SignToken)

	mux := http.NewServeMux()
	api.NewRouter(board, research, challenges, auth, projectStart).Register(mux)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       "Research Board API",
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	handler := middleware.SecureHeaders(
		middleware.CORS(cfg.Server.CORSOrigin,
			middleware.NoStore(
				tokenAuth.WithAuth(mux))))

	log.Printf("research-board server listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
