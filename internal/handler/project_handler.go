package handler

import (
	"net/http"

	"github.com/phoneix12356/RenuHealthCare/internal/models"
	"github.com/phoneix12356/RenuHealthCare/internal/service"
)

type ProjectHandler struct {
	svc *service.ProjectService
}

func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

func (h *ProjectHandler) Add(w http.ResponseWriter, r *http.Request) {
	var project models.ProjectOverview
	if err := readJSON(r, &project); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.Add(r.Context(), &project)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Get looks a project up by its overview text, passed in the body to
// keep long overview strings out of the URL.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Overview string `json:"overview"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	project, err := h.svc.Get(r.Context(), req.Overview)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var project models.ProjectOverview
	if err := readJSON(r, &project); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.svc.Update(r.Context(), &project)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Overview string `json:"overview"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Delete(r.Context(), req.Overview); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
