package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jsoler/finplan-be/internal/models"
)

// SnapshotInput is a submitted budget. Pointer fields distinguish an absent
// field from an explicit zero; all eight must be present for the snapshot to
// be accepted. No range validation is applied beyond that.
type SnapshotInput struct {
	Salary          *float64 `json:"salary"`
	Rent            *float64 `json:"rent"`
	Food            *float64 `json:"food"`
	Utilities       *float64 `json:"utilities"`
	Transportation  *float64 `json:"transportation"`
	OtherExpenses   *float64 `json:"other_expenses"`
	TargetAmount    *float64 `json:"target_amount"`
	TimeframeMonths *int     `json:"timeframe_months"`
}

func (in SnapshotInput) complete() bool {
	return in.Salary != nil && in.Rent != nil && in.Food != nil &&
		in.Utilities != nil && in.Transportation != nil && in.OtherExpenses != nil &&
		in.TargetAmount != nil && in.TimeframeMonths != nil
}

// FinanceServiceProvider defines the interface for budget snapshot services.
type FinanceServiceProvider interface {
	Append(userID string, in SnapshotInput) (models.FinancialSnapshot, error)
	History(userID string) ([]models.FinancialSnapshot, error)
}

// FinanceService keeps the append-only log of budget snapshots.
type FinanceService struct {
	db *sql.DB
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(db *sql.DB) *FinanceService {
	return &FinanceService{db: db}
}

// Append stores a new snapshot for the user. ErrMissingFields is returned,
// and nothing is written, unless every field of the input is present.
func (s *FinanceService) Append(userID string, in SnapshotInput) (models.FinancialSnapshot, error) {
	if !in.complete() {
		return models.FinancialSnapshot{}, ErrMissingFields
	}

	snap := models.FinancialSnapshot{
		ID:              uuid.New().String(),
		UserID:          userID,
		Salary:          *in.Salary,
		Rent:            *in.Rent,
		Food:            *in.Food,
		Utilities:       *in.Utilities,
		Transportation:  *in.Transportation,
		OtherExpenses:   *in.OtherExpenses,
		TargetAmount:    *in.TargetAmount,
		TimeframeMonths: *in.TimeframeMonths,
		CreatedAt:       time.Now().UTC(),
	}

	stmt, err := s.db.Prepare(`INSERT INTO financial_snapshots
		(id, user_id, salary, rent, food, utilities, transportation, other_expenses, target_amount, timeframe_months, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.FinancialSnapshot{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		snap.ID, snap.UserID, snap.Salary, snap.Rent, snap.Food, snap.Utilities,
		snap.Transportation, snap.OtherExpenses, snap.TargetAmount, snap.TimeframeMonths, snap.CreatedAt,
	)
	if err != nil {
		return models.FinancialSnapshot{}, err
	}
	return snap, nil
}

// History retrieves every snapshot for the user, most recent first. A user
// with no snapshots gets an empty list, not an error.
func (s *FinanceService) History(userID string) ([]models.FinancialSnapshot, error) {
	rows, err := s.db.Query(`SELECT id, user_id, salary, rent, food, utilities, transportation, other_expenses, target_amount, timeframe_months, created_at
		FROM financial_snapshots WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := []models.FinancialSnapshot{}
	for rows.Next() {
		var snap models.FinancialSnapshot
		if err := rows.Scan(&snap.ID, &snap.UserID, &snap.Salary, &snap.Rent, &snap.Food, &snap.Utilities,
			&snap.Transportation, &snap.OtherExpenses, &snap.TargetAmount, &snap.TimeframeMonths, &snap.CreatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}
