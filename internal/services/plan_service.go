package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsoler/finplan-be/internal/models"
)

// PlanInput is the budget a savings plan is generated from. Plan generation
// works off the figures in the request, not the persisted history.
type PlanInput struct {
	Salary          float64
	Rent            float64
	Food            float64
	Utilities       float64
	Transportation  float64
	OtherExpenses   float64
	TargetAmount    float64
	TimeframeMonths int
}

// TextGenerator turns a prompt into generated text. The production
// implementation lives in the ai package.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// PlanServiceProvider defines the interface for savings plan generation.
type PlanServiceProvider interface {
	GeneratePlan(ctx context.Context, userID string, in PlanInput) (string, error)
}

// PlanService composes the savings-plan prompt from a budget and the user's
// persisted settings, and relays it to the text-generation service.
type PlanService struct {
	settings  SettingsServiceProvider
	generator TextGenerator
}

// NewPlanService creates a new PlanService.
func NewPlanService(settings SettingsServiceProvider, generator TextGenerator) *PlanService {
	return &PlanService{settings: settings, generator: generator}
}

// GeneratePlan builds the prompt for the given budget and sends it upstream.
// Failures of the upstream call come back wrapped in ErrUpstream; nothing is
// persisted either way.
func (s *PlanService) GeneratePlan(ctx context.Context, userID string, in PlanInput) (string, error) {
	settings, err := s.settings.Get(userID)
	if err != nil {
		return "", err
	}

	plan, err := s.generator.Complete(ctx, BuildPrompt(in, settings))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return plan, nil
}

// BuildPrompt deterministically renders the savings-plan prompt. The wording
// is product content the frontend and plan quality depend on; change it with
// care.
func BuildPrompt(in PlanInput, settings models.UserSettings) string {
	cur := settings.Currency
	if cur == "" {
		cur = "USD"
	}
	location := locationString(settings)
	area := localArea(location)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Create a precise, actionable savings plan based on these financial details (Currency: %s):\n\n", cur))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDefault(location, "Not specified")))
	sb.WriteString(fmt.Sprintf("Monthly Income: %s%s\n", cur, amount(in.Salary)))
	sb.WriteString("Monthly Expenses:\n")
	sb.WriteString(fmt.Sprintf("- Rent: %s%s\n", cur, amount(in.Rent)))
	sb.WriteString(fmt.Sprintf("- Food: %s%s\n", cur, amount(in.Food)))
	sb.WriteString(fmt.Sprintf("- Utilities: %s%s\n", cur, amount(in.Utilities)))
	sb.WriteString(fmt.Sprintf("- Transportation: %s%s\n", cur, amount(in.Transportation)))
	sb.WriteString(fmt.Sprintf("- Other: %s%s\n", cur, amount(in.OtherExpenses)))
	sb.WriteString(fmt.Sprintf("Savings Goal: %s%s in %d months\n\n", cur, amount(in.TargetAmount), in.TimeframeMonths))

	sb.WriteString("Generate a practical plan with these components:\n\n")

	sb.WriteString("1. Current Financial Situation\n")
	sb.WriteString("- Available monthly savings: [calculated amount]\n")
	sb.WriteString("- Percentage of income going to expenses: [calculated percentage]\n")
	sb.WriteString(fmt.Sprintf("- Comparison to typical costs in %s\n\n", orDefault(area, "your area")))

	sb.WriteString("2. Monthly Savings Plan\n")
	sb.WriteString("- Required monthly savings: [calculated amount]\n")
	sb.WriteString("- Suggested percentage to save from income: [calculated percentage]\n")
	sb.WriteString("- Recommended allocation across expense categories\n\n")

	sb.WriteString(fmt.Sprintf("3. Expense Reduction Strategies for %s\n", orDefault(area, "your location")))
	sb.WriteString("- Housing: [1-2 specific suggestions based on location]\n")
	sb.WriteString("- Food: [local market or shopping tips]\n")
	sb.WriteString("- Transportation: [city-specific options]\n")
	sb.WriteString("- Utilities: [area-specific conservation programs]\n\n")

	sb.WriteString("4. Timeline\n")
	sb.WriteString("- Month-by-month savings targets\n")
	sb.WriteString("- Key milestones with dates\n")
	sb.WriteString(fmt.Sprintf("- Adjustments for seasonal expenses in %s\n\n", orDefault(area, "the area")))

	sb.WriteString("5. Practical Implementation\n")
	sb.WriteString("- Recommended local banks/credit unions\n")
	sb.WriteString(fmt.Sprintf("- Specific budgeting tools that work with %s\n", cur))
	sb.WriteString("- Local resources for financial counseling if available\n\n")

	sb.WriteString("Provide only the raw plan content without:\n")
	sb.WriteString("- Section headers or titles\n")
	sb.WriteString("- Emojis or decorative elements\n")
	sb.WriteString("- Generic financial advice\n\n")

	sb.WriteString("Focus exclusively on actionable steps tailored to:\n")
	sb.WriteString("- The specified income level\n")
	sb.WriteString(fmt.Sprintf("- The local economy of %s\n", orDefault(location, "the region")))
	sb.WriteString(fmt.Sprintf("- The requested %d month timeframe\n", in.TimeframeMonths))
	sb.WriteString("- Practical daily implementation\n")

	return sb.String()
}

// locationString derives the location line: city+country, city alone, country
// alone, or empty.
func locationString(settings models.UserSettings) string {
	city := strPtr(settings.City)
	country := strPtr(settings.Country)
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	default:
		return country
	}
}

// localArea is the part of the location before the first comma, used where
// the prompt refers to the user's immediate surroundings.
func localArea(location string) string {
	if location == "" {
		return ""
	}
	return strings.SplitN(location, ",", 2)[0]
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func strPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// amount prints a figure the way it was submitted: whole numbers without a
// decimal point, fractions with only the digits they need.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
