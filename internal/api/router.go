package api

import (
	"net/http"
	"time"

	"github.com/unboundhq/research-board/internal/middleware"
	"github.com/unboundhq/research-board/internal/services"
)

// Router wires the HTTP surface to the services. The challenge editor and
// invitation routes require a bearer token; the board stays open.
type Router struct {
	board      *services.BoardService
	research   *services.ResearchService
	challenges *services.ChallengeService
	auth       *services.AuthService

	projectStart time.Time
	now          func() time.Time
}

func NewRouter(board *services.BoardService, research *services.ResearchService, challenges *services.ChallengeService, auth *services.AuthService, projectStart time.Time) *Router {
	return &Router{
		board:        board,
		research:     research,
		challenges:   challenges,
		auth:         auth,
		projectStart: projectStart,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	// Board
	mux.HandleFunc("GET /api/competitors", rt.handleListCompetitors)
	mux.HandleFunc("POST /api/competitors", rt.handleCreateCompetitor)
	mux.HandleFunc("DELETE /api/competitors/{id}", rt.handleDeleteCompetitor)
	mux.HandleFunc("GET /api/artists", rt.handleListArtists)
	mux.HandleFunc("POST /api/artists", rt.handleCreateArtist)
	mux.HandleFunc("DELETE /api/artists/{id}", rt.handleDeleteArtist)
	mux.HandleFunc("GET /api/experts", rt.handleListExperts)
	mux.HandleFunc("POST /api/experts", rt.handleCreateExpert)
	mux.HandleFunc("DELETE /api/experts/{id}", rt.handleDeleteExpert)

	// Research, tags, categories
	mux.HandleFunc("GET /api/research", rt.handleListResearch)
	mux.HandleFunc("POST /api/research", rt.handleCreateResearch)
	mux.HandleFunc("DELETE /api/research/{id}", rt.handleDeleteResearch)
	mux.HandleFunc("GET /api/tags", rt.handleListTags)
	mux.HandleFunc("POST /api/tags/resolve", rt.handleResolveTag)
	mux.HandleFunc("GET /api/categories", rt.handleListCategories)
	mux.HandleFunc("POST /api/categories", rt.handleCreateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", rt.handleDeleteCategory)

	// Timeline
	mux.HandleFunc("GET /api/timeline", rt.handleTimeline)

	// Auth
	mux.HandleFunc("POST /api/auth/register", rt.handleRegister)
	mux.HandleFunc("POST /api/auth/login", rt.handleLogin)
	mux.Handle("GET /api/invitations", middleware.RequireAuth(http.HandlerFunc(rt.handleListInvitations)))
	mux.Handle("POST /api/invitations", middleware.RequireAuth(http.HandlerFunc(rt.handleCreateInvitation)))

	// Challenge editor
	mux.HandleFunc("GET /api/challenges", rt.handleListChallenges)
	mux.HandleFunc("GET /api/challenges/{dayID}", rt.handleGetChallenge)
	mux.Handle("POST /api/challenges", middleware.RequireAuth(http.HandlerFunc(rt.handleCreateChallenge)))
	mux.Handle("PUT /api/challenges/{dayID}", middleware.RequireAuth(http.HandlerFunc(rt.handleSaveChallenge)))
	mux.HandleFunc("GET /api/course-content", rt.handleListCourseContent)
}
