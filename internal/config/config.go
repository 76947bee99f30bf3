package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret string
}

// Load reads configuration from the environment, with a best-effort .env
// load first so local development matches production.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getenv("PORT", "8080"),
		MongoURI:  getenv("MONGODB_URL", ""),
		MongoDB:   getenv("MONGO_DB", "chat_app"),
		JWTSecret: getenv("JWT_SECRET", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
