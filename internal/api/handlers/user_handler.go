package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jsoler/finplan-be/internal/auth"
	"github.com/jsoler/finplan-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles registration and login.
type UserHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenManager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// CredentialsPayload is the expected JSON body for register and login.
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new user registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.service.Register(payload.Username, payload.Password)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		errorJSON(w, http.StatusBadRequest, "Username and password are required")
		return
	case errors.Is(err, services.ErrDuplicateUsername):
		errorJSON(w, http.StatusBadRequest, "Username already exists")
		return
	case err != nil:
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		errorJSON(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// Login handles user authentication and token issuance.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(payload.Username, payload.Password)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		errorJSON(w, http.StatusBadRequest, "Username and password are required")
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	case err != nil:
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to look up user")
		errorJSON(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		errorJSON(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user_id": user.ID,
	})
}
