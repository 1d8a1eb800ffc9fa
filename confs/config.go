package confs

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config carries every runtime setting the server needs. It is built once at
// startup and passed down; nothing reads the environment after this.
type Config struct {
	Port         string
	Env          string
	JWTSecret    string
	JWTExpiresIn time.Duration
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// LoadConfig loads environment variables from a .env file if present and
// builds the immutable Config.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("could not load .env")
		}
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("APP_ENV", "development"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: 24 * time.Hour,
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("JWT_EXPIRES_IN must be a duration like 24h or 30m")
		}
		cfg.JWTExpiresIn = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
