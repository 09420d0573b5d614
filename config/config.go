package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port      string
	DBPath    string
	GinMode   string
	JWTSecret []byte
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "restaurant_menu.db"),
		GinMode:   getEnv("GIN_MODE", ""),
		JWTSecret: []byte(getEnv("JWT_SECRET", "barrel_born_super_secret_2024")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
