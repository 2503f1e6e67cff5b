package api

import (
	"net/http"

	"github.com/unboundhq/research-board/internal/services"
)

// Mutations answer with the re-read collection so the client swaps its list
// wholesale instead of patching it.

func (rt *Router) handleListCompetitors(w http.ResponseWriter, r *http.Request) {
	items, err := rt.board.ListCompetitors(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (rt *Router) handleCreateCompetitor(w http.ResponseWriter, r *http.Request) {
	var in services.CompetitorInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	created, err := rt.board.CreateCompetitor(in)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := rt.board.ListCompetitors("")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"created": created, "items": items})
}

func (rt *Router) handleDeleteCompetitor(w http.ResponseWriter, r *http.Request) {
	if err := rt.board.DeleteCompetitor(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	items, err := rt.board.ListCompetitors("")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (rt *Router) handleListArtists(w http.ResponseWriter, r *http.Request) {
	items, err := rt.board.ListArtists()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (rt *Router) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var in services.ArtistInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	created, err := rt.board.CreateArtist(in)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := rt.board.ListArtists()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"created": created, "items": items})
}

func (rt *Router) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	if err := rt.board.DeleteArtist(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	items, err := rt.board.ListArtists()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (rt *Router) handleListExperts(w http.ResponseWriter, r *http.Request) {
	items, err := rt.board.ListExperts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (rt *Router) handleCreateExpert(w http.ResponseWriter, r *http.Request) {
	var in services.ExpertInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	created, err := rt.board.CreateExpert(in)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := rt.board.ListExperts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"created": created, "items": items})
}

func (rt *Router) handleDeleteExpert(w http.ResponseWriter, r *http.Request) {
	if err := rt.board.DeleteExpert(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	items, err := rt.board.ListExperts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
