package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	Datastore     string // "sqlite" or "dynamodb"
	DBPath        string
	DynamoTable   string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	GelfAddr      string
	LogLevel      string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:      getEnv("FB_ADDR", ":8080"),
		Datastore:     getEnv("FB_DATASTORE", "sqlite"),
		DBPath:        getEnv("FB_DB_PATH", "./db/formbridge.db"),
		DynamoTable:   getEnv("FB_DYNAMO_TABLE", "formbridge_submissions"),
		JWTSecret:     getEnv("FB_JWT_SECRET", "formbridge-dev-secret-change-me"),
		AdminEmail:    getEnv("FB_ADMIN_EMAIL", "admin@formbridge.local"),
		AdminPassword: getEnv("FB_ADMIN_PASS", "admin123"),
		GelfAddr:      getEnv("FB_GELF_ADDR", ""),
		LogLevel:      getEnv("FB_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
