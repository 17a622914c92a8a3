// Handler for miscellaneous endpoints such as health check

package handler

import (
	"net/http"
	"time"

	"github.com/donalddop/proteinlab/internal/config"
)

// WelcomeMessage greets clients on the API root.
const WelcomeMessage = "ProteinLab API - Ready to optimize proteins!"

func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": WelcomeMessage})
}

type HealthResponse struct {
	Health    string    `json:"health"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {

	response := HealthResponse{
		Health:    "ok",
		Version:   config.Version,
		Timestamp: time.Now(),
	}

	writeJSON(w, http.StatusOK, response)
}
