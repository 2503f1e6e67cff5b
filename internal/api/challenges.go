package api

import (
	"net/http"

	"github.com/unboundhq/research-board/internal/services"
)

func (rt *Router) handleListChallenges(w http.ResponseWriter, r *http.Request) {
	entries, err := rt.challenges.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": entries})
}

func (rt *Router) handleGetChallenge(w http.ResponseWriter, r *http.Request) {
	ch, err := rt.challenges.Get(r.PathValue("dayID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

// POST /api/challenges seeds the next day with the standard card deck.
func (rt *Router) handleCreateChallenge(w http.ResponseWriter, r *http.Request) {
	dayID, ch, err := rt.challenges.CreateNew()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, services.ChallengeEntry{DayID: dayID, Challenge: ch})
}

// PUT /api/challenges/{dayID} replaces the full document, edits and all,
// the same way the editor's save button pushed its staged state.
func (rt *Router) handleSaveChallenge(w http.ResponseWriter, r *http.Request) {
	var ch services.Challenge
	if err := decodeJSON(r, &ch); err != nil {
		writeError(w, err)
		return
	}
	dayID := r.PathValue("dayID")
	if err := rt.challenges.Save(dayID, &ch); err != nil {
		writeError(w, err)
		return
	}
	saved, err := rt.challenges.Get(dayID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (rt *Router) handleListCourseContent(w http.ResponseWriter, r *http.Request) {
	items, err := rt.challenges.ListCourseContent()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
