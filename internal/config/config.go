package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL" env-default:"interviewdesk.db"`
	HTTPAddr    string `env:"HTTP_ADDR" env-default:":8080"`

	JWTSecret string        `env:"JWT_SECRET" env-required:"true"`
	JWTTTL    time.Duration `env:"JWT_TTL" env-default:"24h"`

	// RedisAddr is optional; without it slot claims rely on the database
	// conditional update alone.
	RedisAddr string `env:"REDIS_ADDR"`

	// SlotDurationMinutes is the default materialization slicing; 0 keeps
	// each availability window as a single slot.
	SlotDurationMinutes int `env:"SLOT_DURATION_MINUTES" env-default:"0"`

	NotifyWebhookURL string        `env:"NOTIFY_WEBHOOK_URL"`
	OutboxInterval   time.Duration `env:"OUTBOX_INTERVAL" env-default:"5s"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleTokenJSON    string `env:"GOOGLE_TOKEN_JSON"`
}

// MustLoad reads .env when present, then the environment. Missing required
// values are fatal: the service cannot run without them.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}
	return &cfg
}
