package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults are fine for local development; Load refuses to start a
// production process on the insecure ones.
const (
	DefaultJWTSecret      = "your-super-secret-jwt-key-change-in-production-12345"
	DefaultUserAPIBaseURL = "https://api-lyze.onrender.com/api"
)

type Config struct {
	Env             string
	Port            string
	JWTSecret       string
	UserAPIBaseURL  string
	TokenExpiryHrs  int
	BcryptCost      int
	StoreTimeoutSec int
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", DefaultJWTSecret),
		UserAPIBaseURL:  getEnv("USER_API_URL", DefaultUserAPIBaseURL),
		TokenExpiryHrs:  getEnvAsInt("TOKEN_EXPIRY_HOURS", 168),
		BcryptCost:      getEnvAsInt("BCRYPT_COST", 10),
		StoreTimeoutSec: getEnvAsInt("STORE_TIMEOUT_SECONDS", 10),
	}

	if cfg.Env == "production" {
		if cfg.JWTSecret == DefaultJWTSecret {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		if cfg.UserAPIBaseURL == DefaultUserAPIBaseURL {
			return nil, fmt.Errorf("USER_API_URL must be set in production")
		}
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}
