package api

import (
	"net/http"

	"github.com/unboundhq/research-board/internal/services"
)

func (rt *Router) handleListResearch(w http.ResponseWriter, r *http.Request) {
	items, err := rt.research.ListResearch()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (rt *Router) handleCreateResearch(w http.ResponseWriter, r *http.Request) {
	var in services.ResearchInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	created, err := rt.research.CreateResearch(in)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := rt.research.ListResearch()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"created": created, "items": items})
}

func (rt *Router) handleDeleteResearch(w http.ResponseWriter, r *http.Request) {
	if err := rt.research.DeleteResearch(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	items, err := rt.research.ListResearch()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (rt *Router) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := rt.research.ListTags()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": tags})
}

// POST /api/tags/resolve {"name": "pricing"} returns the matching tag,
// creating it on first use.
func (rt *Router) handleResolveTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tag, err := rt.research.ResolveOrCreateTag(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

func (rt *Router) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := rt.research.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": cats})
}

func (rt *Router) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var in services.CategoryInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	created, err := rt.research.CreateCategory(in)
	if err != nil {
		writeError(w, err)
		return
	}
	cats, err := rt.research.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"created": created, "items": cats})
}

func (rt *Router) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := rt.research.DeleteCategory(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	cats, err := rt.research.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": cats})
}
