package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("KV_DRIVER", "")
	t.Setenv("AI_TIMEOUT", "")
	t.Setenv("AI_MAX_OUTPUT_TOKENS", "")
	t.Setenv("CORS_ORIGINS", "")

	s := FromEnv()

	assert.Equal(t, "memory", s.KVDriver)
	assert.Equal(t, 30*time.Second, s.AITimeout)
	assert.Equal(t, int32(500), s.AIMaxOutputTokens)
	assert.InDelta(t, 0.7, s.AITemperature, 0.0001)
	assert.Equal(t, []string{"http://localhost:3000"}, s.CORSOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("KV_DRIVER", "redis")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("AI_MAX_OUTPUT_TOKENS", "not-a-number")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("APP_ENV", "production")

	s := FromEnv()

	assert.Equal(t, "redis", s.KVDriver)
	assert.Equal(t, 5*time.Second, s.AITimeout)
	assert.Equal(t, int32(500), s.AIMaxOutputTokens)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.CORSOrigins)
	assert.True(t, s.IsProduction())
}
