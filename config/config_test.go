package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "userdb", cfg.MongoDatabase)
	assert.Equal(t, 5*time.Second, cfg.MongoConnectTimeout)
	assert.Equal(t, 8, cfg.BcryptCost)
	assert.Empty(t, cfg.CORSOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_DB", "shopdb")
	t.Setenv("BCRYPT_SALT_ROUNDS", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "shopdb", cfg.MongoDatabase)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("BCRYPT_SALT_ROUNDS", "not-a-number")
	cfg := Load()
	assert.Equal(t, 8, cfg.BcryptCost)
}
