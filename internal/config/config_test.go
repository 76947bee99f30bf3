package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URL", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.MongoURI)
	assert.Equal(t, "chat_app", cfg.MongoDB)
	assert.Equal(t, "", cfg.JWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "chat_test")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "chat_test", cfg.MongoDB)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}
