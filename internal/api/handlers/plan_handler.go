package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jsoler/finplan-be/internal/auth"
	"github.com/jsoler/finplan-be/internal/services"
	"github.com/rs/zerolog/log"
)

// PlanHandler handles savings plan generation.
type PlanHandler struct {
	service services.PlanServiceProvider
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(service services.PlanServiceProvider) *PlanHandler {
	return &PlanHandler{service: service}
}

// PlanPayload carries the budget figures a plan is generated from. Absent
// figures default to zero and an absent timeframe to six months; this
// endpoint does not touch the snapshot history.
type PlanPayload struct {
	Salary          float64 `json:"salary"`
	Rent            float64 `json:"rent"`
	Food            float64 `json:"food"`
	Utilities       float64 `json:"utilities"`
	Transportation  float64 `json:"transportation"`
	OtherExpenses   float64 `json:"other_expenses"`
	TargetAmount    float64 `json:"target_amount"`
	TimeframeMonths *int    `json:"timeframe_months"`
}

// Generate builds the prompt from the submitted budget and the user's stored
// settings, and relays it to the text-generation service.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "No data provided")
		return
	}

	// An absent or empty budget is rejected outright.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		errorJSON(w, http.StatusBadRequest, "No data provided")
		return
	}

	var payload PlanPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	timeframe := 6
	if payload.TimeframeMonths != nil {
		timeframe = *payload.TimeframeMonths
	}

	in := services.PlanInput{
		Salary:          payload.Salary,
		Rent:            payload.Rent,
		Food:            payload.Food,
		Utilities:       payload.Utilities,
		Transportation:  payload.Transportation,
		OtherExpenses:   payload.OtherExpenses,
		TargetAmount:    payload.TargetAmount,
		TimeframeMonths: timeframe,
	}

	plan, err := h.service.GeneratePlan(r.Context(), userID, in)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to generate savings plan")
		errorJSON(w, http.StatusInternalServerError, "Failed to generate savings plan")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"plan": plan})
}
