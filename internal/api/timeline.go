package api

import (
	"net/http"

	"github.com/unboundhq/research-board/internal/services"
)

// GET /api/timeline recomputes the week markers on every call; caching
// would freeze "now".
func (rt *Router) handleTimeline(w http.ResponseWriter, r *http.Request) {
	now := rt.now()
	weeks := services.BuildTimeline(rt.projectStart, now)
	writeJSON(w, http.StatusOK, map[string]any{
		"start":       rt.projectStart,
		"now":         now,
		"total_weeks": len(weeks),
		"weeks":       weeks,
	})
}
