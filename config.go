package main

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	GinMode        string        `env:"GIN_MODE"`
	Env            string        `env:"ENV"`
	Timezone       string        `env:"WORDLE_TIMEZONE" envDefault:"America/New_York" validate:"required"`
	AnswersPath    string        `env:"WORDLE_ANSWERS" envDefault:"data/answers.json" validate:"required"`
	AllowedPath    string        `env:"WORDLE_ALLOWED" envDefault:"data/allowed_guesses.txt"`
	StoreBackend   string        `env:"WORDLE_STORE" envDefault:"file" validate:"oneof=file badger sqlite memory"`
	StatePath      string        `env:"WORDLE_STATE_PATH" envDefault:"data/sessions" validate:"required_unless=StoreBackend memory"`
	CookieMaxAge   time.Duration `env:"COOKIE_MAX_AGE" envDefault:"8760h" validate:"gt=0"`
	RateLimitRPS   int           `env:"RATE_LIMIT_RPS" envDefault:"5" validate:"gte=1"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"10" validate:"gte=1"`
}

var configValidate = validator.New()

// IsProduction reports whether the server runs in release mode.
func (c Config) IsProduction() bool {
	return c.GinMode == "release" || c.Env == "production"
}

// loadConfig loads .env when present and then parses the environment.
func loadConfig() (Config, error) {
	_ = godotenv.Load()
	return parseConfig(env.ToMap(os.Environ()))
}

// parseConfig builds a Config from the given variables.
func parseConfig(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := configValidate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
