package models

// UserSettings holds the locale preferences for a user. At most one row
// exists per user; saves replace the whole row.
type UserSettings struct {
	UserID   string  `json:"-"`
	Currency string  `json:"currency"`
	City     *string `json:"city"`
	Country  *string `json:"country"`
}

// DefaultSettings is what a user gets before saving anything.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{UserID: userID, Currency: "USD"}
}
