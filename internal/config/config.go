package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	API     APIConfig
	Session SessionConfig
	Order   OrderConfig
	Log     LogConfig
	FakeAPI FakeAPIConfig
}

// APIConfig apunta al backend REST. El origin siempre sale de acá, nunca de un literal.
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:3000"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"0s"` // 0 = sin timeout
}

type SessionConfig struct {
	// Vacío => sesión en memoria (se pierde al terminar el proceso).
	File string `env:"SESSION_FILE"`
}

type OrderConfig struct {
	PlacementDelay time.Duration `env:"ORDER_PLACEMENT_DELAY" envDefault:"2s"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	App    string `env:"APP_NAME" envDefault:"pet-adoption-portal"`
}

// FakeAPIConfig configura el backend en memoria de `portal fake-api`.
type FakeAPIConfig struct {
	Addr      string        `env:"FAKE_API_ADDR" envDefault:":3000"`
	JWTSecret string        `env:"FAKE_API_JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL  time.Duration `env:"FAKE_API_TOKEN_TTL" envDefault:"24h"`
	Seed      bool          `env:"FAKE_API_SEED" envDefault:"true"`
	RateLimit float64       `env:"FAKE_API_RATE_LIMIT" envDefault:"0"` // req/seg, 0 = sin límite
	Burst     int           `env:"FAKE_API_BURST" envDefault:"20"`
}

// Load lee .env (si existe) y luego las variables de entorno.
func Load() (*Config, error) {
	// .env es opcional; si no está seguimos con el entorno del proceso.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.API.Timeout < 0 {
		return nil, fmt.Errorf("parse config: API_TIMEOUT must not be negative")
	}
	if cfg.Order.PlacementDelay < 0 {
		return nil, fmt.Errorf("parse config: ORDER_PLACEMENT_DELAY must not be negative")
	}
	return cfg, nil
}
