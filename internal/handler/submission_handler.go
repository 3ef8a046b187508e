package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phoneix12356/RenuHealthCare/internal/auth"
	"github.com/phoneix12356/RenuHealthCare/internal/media"
	"github.com/phoneix12356/RenuHealthCare/internal/service"
)

// maxFormMemory bounds the multipart parse buffer; per-file size limits
// are enforced by the service.
const maxFormMemory = 16 << 20

type SubmissionHandler struct {
	svc   *service.SubmissionService
	users *service.AuthService
}

func NewSubmissionHandler(svc *service.SubmissionService, users *service.AuthService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, users: users}
}

// Create consolidates one week's files into the caller's submission
// record. Files arrive under the "images" and "pdf" multipart fields.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.users.User(r.Context(), claims.UserID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form data")
		return
	}
	week, err := strconv.Atoi(r.FormValue("weekNumber"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "weekNumber is required")
		return
	}

	files, err := collectFiles(r.MultipartForm)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	in := service.SubmitInput{
		UserID:       user.ID,
		Username:     user.Name,
		DepartmentID: user.DepartmentID,
		WeekNumber:   week,
		Links:        r.MultipartForm.Value["links"],
		Files:        files,
	}
	if notes := r.FormValue("notes"); notes != "" {
		in.Notes = []string{notes}
	}

	sub, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Submission uploaded successfully",
		"submission": sub,
	})
}

// collectFiles reads the "images" and "pdf" multipart fields in their
// request order.
func collectFiles(form *multipart.Form) ([]media.Descriptor, error) {
	var files []media.Descriptor
	for _, field := range []string{"images", "pdf"} {
		for _, fh := range form.File[field] {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			content, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, err
			}
			files = append(files, media.Descriptor{
				Content:   content,
				MediaType: fh.Header.Get("Content-Type"),
				FileName:  fh.Filename,
			})
		}
	}
	return files, nil
}

func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.users.User(r.Context(), claims.UserID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	sub, err := h.svc.GetByUser(r.Context(), user.ID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	if sub == nil {
		writeError(w, http.StatusNotFound, "Submission not found")
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *SubmissionHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	week, err := strconv.Atoi(chi.URLParam(r, "weekNumber"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week number")
		return
	}
	user, err := h.users.User(r.Context(), claims.UserID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	subs, err := h.svc.GetByWeek(r.Context(), user.ID, week)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
