package config

import (
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

const APIKeyEnv = "YOUTUBE_API_KEY"

func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// APIKey returns the YouTube Data API key, or "" when none is configured.
// A missing key is not fatal at startup; a fetch without one fails when
// the API call is made.
func APIKey() string {
	return os.Getenv(APIKeyEnv)
}
