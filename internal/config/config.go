package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Settings struct {
	Env      string
	HTTPAddr string
	LogLevel string

	KVDriver    string // memory|postgres|sqlite|redis
	DatabaseDSN string
	RedisAddr   string
	RedisPrefix string
	CryptoKey   string

	GeminiAPIKey      string
	GeminiModel       string
	AITimeout         time.Duration
	AITemperature     float32
	AIMaxOutputTokens int32

	CORSOrigins []string
	Location    *time.Location
}

func FromEnv() Settings {
	return Settings{
		Env:      envOr("APP_ENV", "dev"),
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		LogLevel: envOr("LOG_LEVEL", "info"),

		KVDriver:    envOr("KV_DRIVER", "memory"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		RedisAddr:   envOr("REDIS_ADDR", "localhost:6379"),
		RedisPrefix: envOr("REDIS_PREFIX", "reading:"),
		CryptoKey:   os.Getenv("CRYPTO_KEY"),

		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		AITimeout:         envDuration("AI_TIMEOUT", 30*time.Second),
		AITemperature:     float32(envFloat("AI_TEMPERATURE", 0.7)),
		AIMaxOutputTokens: int32(envInt("AI_MAX_OUTPUT_TOKENS", 500)),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),
		Location:    envLocation("TIMEZONE"),
	}
}

func (s Settings) IsProduction() bool {
	switch strings.ToLower(s.Env) {
	case "prod", "production":
		return true
	}
	return false
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil {
		return def
	}
	return i
}

func envFloat(k string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(k)), 64)
	if err != nil {
		return def
	}
	return f
}

func envDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(k)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func envLocation(k string) *time.Location {
	name := strings.TrimSpace(os.Getenv(k))
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

func csvOr(k, def string) []string {
	parts := strings.Split(envOr(k, def), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
