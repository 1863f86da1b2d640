package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	PGConn       string `envconfig:"PGCONN" required:"true"`
	ClientID     string `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret string `envconfig:"CLIENT_SECRET" required:"true"`
	// ADMINS is a comma-separated list of emails with full access.
	Admins     string `envconfig:"ADMINS" required:"true"`
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	// GEMINI_API_KEY is optional; without it group names use fallback labels.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	// AVATAR_FONT points at a .ttf file; empty renders tiles without text.
	AvatarFont string `envconfig:"AVATAR_FONT"`
}

func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
