package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultTokenTTL = 7 * 24 * time.Hour

type Config struct {
	Addr      string
	MongoURI  string
	MongoDB   string
	CacheURL  string
	MQURL     string
	JWTSecret string
	TokenTTL  time.Duration
}

func LoadConfig() (*Config, error) {
	// a missing .env file is fine, deployments set real env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		Addr:      getEnv("ADDR", ":4000"),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   getEnv("MONGO_DB", "streamflix"),
		CacheURL:  os.Getenv("CACHE_URL"),
		MQURL:     os.Getenv("RABBIT_MQ_URL"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  defaultTokenTTL,
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, err
		}
		cfg.TokenTTL = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
