package services

import (
	"database/sql"
	"errors"

	"github.com/jsoler/finplan-be/internal/models"
)

// SettingsInput carries an incoming settings save. Absent currency falls back
// to USD; absent city/country are stored as NULL.
type SettingsInput struct {
	Currency *string `json:"currency"`
	City     *string `json:"city"`
	Country  *string `json:"country"`
}

// SettingsServiceProvider defines the interface for user settings services.
type SettingsServiceProvider interface {
	Upsert(userID string, in SettingsInput) (models.UserSettings, error)
	Get(userID string) (models.UserSettings, error)
}

// SettingsService keeps the single locale/currency row per user.
type SettingsService struct {
	db *sql.DB
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *sql.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Upsert replaces the user's settings row in full. Values missing from the
// input are not merged with the previous row; they reset to their defaults.
func (s *SettingsService) Upsert(userID string, in SettingsInput) (models.UserSettings, error) {
	settings := models.UserSettings{
		UserID:   userID,
		Currency: "USD",
		City:     in.City,
		Country:  in.Country,
	}
	if in.Currency != nil {
		settings.Currency = *in.Currency
	}

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO user_settings (user_id, currency, city, country) VALUES (?, ?, ?, ?)",
		settings.UserID, settings.Currency, settings.City, settings.Country,
	)
	if err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}

// Get retrieves the user's settings. A user who never saved any gets the
// default row back; that is not a not-found condition.
func (s *SettingsService) Get(userID string) (models.UserSettings, error) {
	settings := models.UserSettings{UserID: userID}
	row := s.db.QueryRow("SELECT currency, city, country FROM user_settings WHERE user_id = ?", userID)
	err := row.Scan(&settings.Currency, &settings.City, &settings.Country)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultSettings(userID), nil
		}
		return models.UserSettings{}, err
	}
	return settings, nil
}
