package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jsoler/finplan-be/internal/auth"
	"github.com/jsoler/finplan-be/internal/services"
	"github.com/rs/zerolog/log"
)

// FinanceHandler handles budget snapshot submission and history.
type FinanceHandler struct {
	service services.FinanceServiceProvider
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(service services.FinanceServiceProvider) *FinanceHandler {
	return &FinanceHandler{service: service}
}

// Save handles the submission of a new budget snapshot.
func (h *FinanceHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var payload services.SnapshotInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.service.Append(userID, payload)
	if errors.Is(err, services.ErrMissingFields) {
		errorJSON(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to save financial data")
		errorJSON(w, http.StatusInternalServerError, "Failed to save financial data")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Financial data saved successfully"})
}

// History handles retrieval of every snapshot the user submitted, most
// recent first.
func (h *FinanceHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	history, err := h.service.History(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to retrieve financial history")
		errorJSON(w, http.StatusInternalServerError, "Failed to retrieve financial history")
		return
	}

	respondJSON(w, http.StatusOK, history)
}
