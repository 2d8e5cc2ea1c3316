package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jsoler/finplan-be/internal/auth"
	"github.com/jsoler/finplan-be/internal/services"
	"github.com/rs/zerolog/log"
)

// SettingsHandler handles the per-user locale/currency settings.
type SettingsHandler struct {
	service services.SettingsServiceProvider
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service services.SettingsServiceProvider) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Save replaces the user's settings row.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var payload services.SettingsInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.Upsert(userID, payload); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to save settings")
		errorJSON(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Settings saved successfully"})
}

// Get returns the stored settings, or the defaults if the user never saved
// any.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	settings, err := h.service.Get(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to retrieve settings")
		errorJSON(w, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	respondJSON(w, http.StatusOK, settings)
}
