package config

import (
	"context"
	"log"
	"os"
	"time"
)

// Config holds every externally configured value the server needs.
// Values come from the environment (a .env file is loaded in main's init).
type Config struct {
	Port            string
	DatabaseURL     string
	DatabaseName    string
	RedisURL        string
	SuperAdminEmail string

	// FirebaseServiceAccountKey is the raw service account JSON. When empty
	// the server falls back to the HS256 dev verifier signed with JWTSecret.
	FirebaseServiceAccountKey string
	JWTSecret                 string
}

func Load() Config {
	cfg := Config{
		Port:                      getEnv("PORT", "5000"),
		DatabaseURL:               getEnv("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName:              getEnv("DATABASE_NAME", "pet-club"),
		RedisURL:                  getEnv("REDIS_URL", "redis://localhost:6379"),
		SuperAdminEmail:           os.Getenv("SUPERADMIN_EMAIL"),
		FirebaseServiceAccountKey: os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY"),
		JWTSecret:                 os.Getenv("JWT_SECRET"),
	}

	if cfg.SuperAdminEmail == "" {
		log.Println("⚠️ SUPERADMIN_EMAIL not set, product writes and admin assignment will deny everyone")
	}

	return cfg
}

// WithTimeout returns a context with a 10s timeout for single store operations
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
