package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries all process configuration.  Values come from the
// environment, with an optional .env file for local development.
type Config struct {
	Port          string `mapstructure:"PORT"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY"`
	ClassifyModel string `mapstructure:"OPENAI_MODEL_CLASSIFY"`
	TopK          int    `mapstructure:"TOP_K"`
}

// Load reads configuration from the environment.  DATABASE_URL is required;
// everything else has a default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("OPENAI_MODEL_CLASSIFY", "gpt-4o-mini")
	v.SetDefault("TOP_K", 3)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("OPENAI_MODEL_CLASSIFY")
	v.BindEnv("TOP_K")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}
