package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeAppError translates service-layer error kinds into HTTP statuses.
// Unclassified errors become 500s with a generic message so internals
// never leak to clients.
func writeAppError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch ae.Kind {
	case apperr.KindValidation, apperr.KindMissingField, apperr.KindInvalidContent:
		status = http.StatusBadRequest
	case apperr.KindUnauthorized:
		status = http.StatusUnauthorized
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict, apperr.KindDuplicateSubmission:
		status = http.StatusConflict
	case apperr.KindUpload:
		status = http.StatusBadGateway
	}

	if len(ae.Fields) > 0 {
		writeJSON(w, status, map[string]any{"error": ae.Message, "fields": ae.Fields})
		return
	}
	writeError(w, status, ae.Message)
}
