package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/effendiaiwebsite/housesinbc/pkg/auth"
	"github.com/effendiaiwebsite/housesinbc/pkg/kafka"
	"github.com/effendiaiwebsite/housesinbc/pkg/observability"
	"github.com/effendiaiwebsite/housesinbc/pkg/postgres"
)

// RedisConfig holds the rate-cache connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Config is the full runtime configuration of the journey service.
type Config struct {
	GRPCPort    int
	HTTPPort    int
	ServiceName string

	DB    postgres.Config
	Kafka kafka.Config
	Redis RedisConfig
	JWT   auth.JWTConfig
	Log   observability.LogConfig

	// RateRefreshSchedule is a cron expression for reloading lender rates
	// into the cache.
	RateRefreshSchedule string
	MigrationsPath      string
}

func (c Config) Validate() {
	if c.JWT.Secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort:    getEnvInt("GRPC_PORT", 9090),
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		ServiceName: "journey-service",
		DB: postgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "housesinbc"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "housesinbc_journey"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 2)),
		},
		Kafka: kafka.Config{
			Brokers:        []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			BatchTimeoutMs: getEnvInt("KAFKA_BATCH_TIMEOUT_MS", 100),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: auth.JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			Issuer: getEnv("JWT_ISSUER", "housesinbc"),
		},
		Log: observability.LogConfig{
			Service: "journey-service",
			Level:   getEnv("LOG_LEVEL", "info"),
			Format:  getEnv("LOG_FORMAT", "json"),
		},
		RateRefreshSchedule: getEnv("RATE_REFRESH_SCHEDULE", "0 */6 * * *"),
		MigrationsPath:      getEnv("MIGRATIONS_PATH", "migrations"),
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
