package app

import (
	"errors"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // load .env before parsing

	"github.com/secureapp/secureapp/internal/auth"
	"github.com/secureapp/secureapp/internal/storage/postgres"
	"github.com/secureapp/secureapp/pkg/httpserver"
	"github.com/secureapp/secureapp/pkg/logger"
)

// ErrLoadConfig wraps environment parsing failures at startup.
var ErrLoadConfig = errors.New("app: failed to load configuration")

// Config aggregates all process-wide settings. Everything is loaded
// once at startup and never mutated afterwards.
type Config struct {
	HTTP httpserver.Config
	Log  logger.Config
	Auth auth.Config
	DB   postgres.Config
}

// LoadConfig parses the full configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrLoadConfig, err)
	}
	return cfg, nil
}
