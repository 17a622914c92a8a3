package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/donalddop/proteinlab/pkg/model"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}

// writeDomainError maps a domain failure onto its HTTP status: a missing
// record is a 404, every validation failure a 400, anything else a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidFormat),
		errors.Is(err, model.ErrInvalidSequence),
		errors.Is(err, model.ErrInvalidPosition),
		errors.Is(err, model.ErrInvalidResidue):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
