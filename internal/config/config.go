package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Addr         string
	DatabaseURL  string
	RedisURL     string
	LocalDBPath  string
	AllowOrigins []string
}

// Load reads .env (outside production) and the process environment.
// DATABASE_URL is the only hard requirement.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := Config{
		Addr:        getenv("ADDR", ":8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		LocalDBPath: getenv("LOCAL_DB_PATH", "bean-there-db.json"),
		AllowOrigins: strings.Split(
			getenv("ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173"),
			",",
		),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("❌ Missing env var: DATABASE_URL")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
