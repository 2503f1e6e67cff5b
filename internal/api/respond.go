package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/unboundhq/research-board/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}

// writeError maps service error codes onto HTTP statuses. A partial write
// means the document landed but its projection did not; 502 tells the
// client the save must be retried rather than treated as a success.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if se, ok := services.AsServiceError(err); ok {
		switch se.Code {
		case services.ErrorInvalid:
			status = http.StatusBadRequest
		case services.ErrorUnauthorized:
			status = http.StatusUnauthorized
		case services.ErrorForbidden:
			status = http.StatusForbidden
		case services.ErrorNotFound:
			status = http.StatusNotFound
		case services.ErrorConflict:
			status = http.StatusConflict
		case services.ErrorPartialWrite:
			status = http.StatusBadGateway
		}
		writeJSON(w, status, map[string]any{"error": se.Message, "code": se.Code})
		return
	}
	log.Printf("api: %v", err)
	writeJSON(w, status, map[string]any{"error": "internal error"})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return services.NewInvalidError("invalid json: " + err.Error())
	}
	return nil
}
