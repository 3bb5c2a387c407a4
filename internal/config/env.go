package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	RedisAddr     string
	RedisPassword string

	JWTSecret string

	NominatimBaseURL string
	GeminiAPIKey     string
	GeminiBaseURL    string
}

// LoadEnv reads configuration from the environment with local-dev defaults.
// A .env file is honored when present so the binary runs without setup.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBDSN: getenv("DB_DSN",
			"root:@tcp(127.0.0.1:3306)/turisflow?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),

		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		NominatimBaseURL: getenv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiBaseURL:    getenv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
