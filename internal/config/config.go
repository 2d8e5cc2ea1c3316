package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration. Values come from the
// environment; a local .env file is loaded at startup if present.
type Config struct {
	ServerPort   int    `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./finance.db"`
	JWTSecret    string `env:"JWT_SECRET,required,notEmpty"`
	CORSOrigin   string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`

	AI AIConfig `envPrefix:"AI_"`
}

// AIConfig configures the upstream text-generation service.
type AIConfig struct {
	APIKey  string        `env:"API_KEY"`
	APIURL  string        `env:"API_URL" envDefault:"https://api.together.xyz/v1/chat/completions"`
	Model   string        `env:"MODEL" envDefault:"meta-llama/Llama-3-70b-chat-hf"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
