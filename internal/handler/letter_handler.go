package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/phoneix12356/RenuHealthCare/internal/letter"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
	"github.com/phoneix12356/RenuHealthCare/internal/service"
)

type LetterHandler struct {
	svc *service.LetterService
}

func NewLetterHandler(svc *service.LetterService) *LetterHandler {
	return &LetterHandler{svc: svc}
}

type candidateRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	DepartmentName string `json:"departmentName"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Tenure         int    `json:"tenure"`
}

func (req candidateRequest) candidate() (letter.Candidate, error) {
	c := letter.Candidate{
		Name:           req.Name,
		Email:          req.Email,
		DepartmentName: req.DepartmentName,
		Tenure:         req.Tenure,
	}
	var err error
	if req.StartDate != "" {
		if c.StartDate, err = parseDate(req.StartDate); err != nil {
			return c, fmt.Errorf("invalid startDate: %w", err)
		}
	}
	if req.EndDate != "" {
		if c.EndDate, err = parseDate(req.EndDate); err != nil {
			return c, fmt.Errorf("invalid endDate: %w", err)
		}
	}
	return c, nil
}

// parseDate accepts both RFC 3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (h *LetterHandler) GenerateOfferLetter(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, h.svc.GenerateOfferLetter, "Offer letter generated successfully")
}

func (h *LetterHandler) GenerateCertificate(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, h.svc.GenerateCertificate, "Certificate generated successfully")
}

func (h *LetterHandler) generate(w http.ResponseWriter, r *http.Request,
	gen func(context.Context, letter.Candidate) (*models.Letter, error), message string) {
	var req candidateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := req.candidate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := gen(r.Context(), c)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": message,
		"name":    rec.Name,
		"email":   rec.Email,
	})
}

func (h *LetterHandler) DownloadOfferLetter(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, h.svc.DownloadOfferLetter)
}

func (h *LetterHandler) DownloadCertificate(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, h.svc.DownloadCertificate)
}

func (h *LetterHandler) download(w http.ResponseWriter, r *http.Request,
	fetch func(context.Context, string) (*service.LetterDownload, error)) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	dl, err := fetch(r.Context(), email)
	if err != nil {
		writeAppError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, dl.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(dl.Data)))
	w.Write(dl.Data)
}
