package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	JWTSecret   string
	TokenTTLMin int
	CORSOrigins []string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	ttl, err := strconv.Atoi(get("TOKEN_TTL_MIN", "30"))
	if err != nil || ttl <= 0 {
		ttl = 30
	}
	var origins []string
	for _, o := range strings.Split(get("CORS_ORIGINS", "http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "Asia/Kolkata"),
		DBPath:      get("DB_PATH", "fms.db"),
		JWTSecret:   get("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLMin: ttl,
		CORSOrigins: origins,
	}
	log.Printf("[cfg] port=%s db=%s token_ttl=%dm cors=%v", cfg.Port, cfg.DBPath, cfg.TokenTTLMin, cfg.CORSOrigins)
	return cfg
}
