package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
	StoreBackendFixture  = "fixture"
)

type Config struct {
	App            AppConfig
	Server         ServerConfig
	Store          StoreConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	Recommendation RecommendationConfig
}

type AppConfig struct {
	Name        string `validate:"required"`
	Version     string
	Environment string `validate:"oneof=development staging production test"`
}

type ServerConfig struct {
	Port             string        `validate:"required,numeric"`
	RequestTimeout   time.Duration `validate:"gt=0"`
	CORSAllowOrigins []string      `validate:"min=1"`
}

type StoreConfig struct {
	Backend     string `validate:"oneof=postgres redis fixture"`
	FixturePath string `validate:"required_if=Backend fixture"`
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int `validate:"gte=0"`
	KeyPrefix     string
}

type RecommendationConfig struct {
	MinScore float64
	Limit    int `validate:"gt=0"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	minScore, err := strconv.ParseFloat(getEnv("RECO_MIN_SCORE", "0.1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RECO_MIN_SCORE: %w", err)
	}

	limit, err := strconv.Atoi(getEnv("RECO_LIMIT", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECO_LIMIT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "MyGreenReco"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:             getEnv("PORT", "5001"),
			RequestTimeout:   timeout,
			CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		},
		Store: StoreConfig{
			Backend:     getEnv("STORE_BACKEND", StoreBackendPostgres),
			FixturePath: getEnv("FIXTURE_PATH", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "my_green_market"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			KeyPrefix:     getEnv("REDIS_KEY_PREFIX", "reco"),
		},
		Recommendation: RecommendationConfig{
			MinScore: minScore,
			Limit:    limit,
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
