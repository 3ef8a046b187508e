package handler

import (
	"net/http"

	"github.com/phoneix12356/RenuHealthCare/internal/models"
	"github.com/phoneix12356/RenuHealthCare/internal/service"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Add seeds weekly plans for one or more department tracks.
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	var tasks []models.Task
	if err := readJSON(r, &tasks); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.AddAll(r.Context(), tasks)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Tasks added successfully",
		"tasks":   created,
	})
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("mainTitle")
	if title == "" {
		writeError(w, http.StatusBadRequest, "mainTitle is required")
		return
	}
	task, err := h.svc.GetByTitle(r.Context(), title)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// GetWeek returns one week's plan for the caller's department.
func (h *TaskHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Department string `json:"department"`
		WeekNumber int    `json:"weekNumber"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Department == "" {
		writeError(w, http.StatusBadRequest, "department is required")
		return
	}
	plan, err := h.svc.GetWeek(r.Context(), req.Department, req.WeekNumber)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *TaskHandler) UpdateWeek(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MainTitle  string            `json:"mainTitle"`
		WeekNumber int               `json:"weekNumber"`
		Plan       models.WeeklyPlan `json:"plan"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MainTitle == "" {
		writeError(w, http.StatusBadRequest, "mainTitle is required")
		return
	}
	task, err := h.svc.UpdateWeek(r.Context(), req.MainTitle, req.WeekNumber, req.Plan)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Week updated successfully",
		"task":    task,
	})
}

func (h *TaskHandler) DeleteWeek(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MainTitle  string `json:"mainTitle"`
		WeekNumber int    `json:"weekNumber"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MainTitle == "" {
		writeError(w, http.StatusBadRequest, "mainTitle is required")
		return
	}
	if err := h.svc.DeleteWeek(r.Context(), req.MainTitle, req.WeekNumber); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Week deleted successfully"})
}
