package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jsoler/finplan-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type stubGenerator struct {
	prompt string
	plan   string
	err    error
}

func (g *stubGenerator) Complete(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.plan, g.err
}

func samplePlanInput() PlanInput {
	return PlanInput{
		Salary:          3000,
		Rent:            1000,
		Food:            400,
		Utilities:       150,
		Transportation:  120,
		OtherExpenses:   200,
		TargetAmount:    5000,
		TimeframeMonths: 12,
	}
}

func TestBuildPromptWithFullLocation(t *testing.T) {
	settings := models.UserSettings{
		Currency: "EUR",
		City:     str("Lyon"),
		Country:  str("France"),
	}

	prompt := BuildPrompt(samplePlanInput(), settings)

	assert.Contains(t, prompt, "Location: Lyon, France")
	assert.Contains(t, prompt, "(Currency: EUR)")
	assert.Contains(t, prompt, "Monthly Income: EUR3000")
	assert.Contains(t, prompt, "- Rent: EUR1000")
	assert.Contains(t, prompt, "- Food: EUR400")
	assert.Contains(t, prompt, "- Utilities: EUR150")
	assert.Contains(t, prompt, "- Transportation: EUR120")
	assert.Contains(t, prompt, "- Other: EUR200")
	assert.Contains(t, prompt, "Savings Goal: EUR5000 in 12 months")

	// The "local area" fragment is the text before the first comma.
	assert.Contains(t, prompt, "Expense Reduction Strategies for Lyon")
	assert.Contains(t, prompt, "seasonal expenses in Lyon")
	assert.Contains(t, prompt, "The local economy of Lyon, France")
	assert.NotContains(t, prompt, "your area")
}

func TestBuildPromptLocationPrecedence(t *testing.T) {
	in := samplePlanInput()

	cityOnly := BuildPrompt(in, models.UserSettings{Currency: "USD", City: str("Lyon")})
	assert.Contains(t, cityOnly, "Location: Lyon\n")

	countryOnly := BuildPrompt(in, models.UserSettings{Currency: "USD", Country: str("France")})
	assert.Contains(t, countryOnly, "Location: France\n")
}

func TestBuildPromptWithoutLocation(t *testing.T) {
	prompt := BuildPrompt(samplePlanInput(), models.UserSettings{Currency: "USD"})

	assert.Contains(t, prompt, "Location: Not specified")
	assert.Contains(t, prompt, "typical costs in your area")
	assert.Contains(t, prompt, "Expense Reduction Strategies for your location")
	assert.Contains(t, prompt, "seasonal expenses in the area")
	assert.Contains(t, prompt, "The local economy of the region")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	settings := models.UserSettings{Currency: "EUR", City: str("Lyon")}
	first := BuildPrompt(samplePlanInput(), settings)
	second := BuildPrompt(samplePlanInput(), settings)
	assert.Equal(t, first, second)
}

func TestBuildPromptFractionalAmounts(t *testing.T) {
	in := samplePlanInput()
	in.Rent = 1050.5
	prompt := BuildPrompt(in, models.UserSettings{Currency: "USD"})
	assert.Contains(t, prompt, "- Rent: USD1050.5")
}

type PlanServiceTestSuite struct {
	ServiceTestSuite
	userID string
}

func (s *PlanServiceTestSuite) SetupTest() {
	s.ServiceTestSuite.SetupTest()
	s.userID = s.mustRegister("alice")
}

func (s *PlanServiceTestSuite) TestGeneratePlanUsesStoredSettings() {
	settingsSvc := NewSettingsService(s.db)
	_, err := settingsSvc.Upsert(s.userID, SettingsInput{Currency: str("EUR"), City: str("Lyon"), Country: str("France")})
	require.NoError(s.T(), err)

	gen := &stubGenerator{plan: "Set aside 250 per month."}
	svc := NewPlanService(settingsSvc, gen)

	plan, err := svc.GeneratePlan(context.Background(), s.userID, samplePlanInput())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Set aside 250 per month.", plan)
	assert.Contains(s.T(), gen.prompt, "Lyon, France")
	assert.Contains(s.T(), gen.prompt, "EUR")
}

func (s *PlanServiceTestSuite) TestGeneratePlanDefaultSettings() {
	gen := &stubGenerator{plan: "Plan text."}
	svc := NewPlanService(NewSettingsService(s.db), gen)

	_, err := svc.GeneratePlan(context.Background(), s.userID, samplePlanInput())
	require.NoError(s.T(), err)
	assert.True(s.T(), strings.Contains(gen.prompt, "Location: Not specified"))
}

func (s *PlanServiceTestSuite) TestGeneratePlanUpstreamFailure() {
	gen := &stubGenerator{err: errors.New("connection refused")}
	svc := NewPlanService(NewSettingsService(s.db), gen)

	_, err := svc.GeneratePlan(context.Background(), s.userID, samplePlanInput())
	assert.ErrorIs(s.T(), err, ErrUpstream)
	assert.Contains(s.T(), err.Error(), "connection refused")
}

func TestPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanServiceTestSuite))
}
