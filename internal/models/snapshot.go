package models

import "time"

// FinancialSnapshot is one immutable submitted budget record. Snapshots are
// never updated or deleted; history is the append-only sequence of them.
type FinancialSnapshot struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Salary          float64   `json:"salary"`
	Rent            float64   `json:"rent"`
	Food            float64   `json:"food"`
	Utilities       float64   `json:"utilities"`
	Transportation  float64   `json:"transportation"`
	OtherExpenses   float64   `json:"other_expenses"`
	TargetAmount    float64   `json:"target_amount"`
	TimeframeMonths int       `json:"timeframe_months"`
	CreatedAt       time.Time `json:"created_at"`
}
