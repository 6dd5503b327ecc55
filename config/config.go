package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Observ   ObservabilityConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Driver      string
	URL         string
	AutoMigrate bool
}

// AdminConfig holds the shared secret guarding /api/admin. An empty APIKey
// rejects every admin request.
type AdminConfig struct {
	APIKey string
	Header string
}

type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	IdempotencyTTL time.Duration
}

// Enabled reports whether Redis backed inquiry deduplication is configured
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type KafkaConfig struct {
	Brokers       []string
	TopicCatalog  string
	ConsumerGroup string
}

// Enabled reports whether catalog events are published
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

type ObservabilityConfig struct {
	OTLPEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	idempotencyTTL, _ := strconv.Atoi(getEnv("INQUIRY_IDEMPOTENCY_TTL_SECONDS", "86400"))
	autoMigrate, _ := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "false"))

	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "8080"),
			Env:      getEnv("ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", ""),
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DATABASE_DRIVER", "postgres"),
			URL:         getEnv("DATABASE_URL", ""),
			AutoMigrate: autoMigrate,
		},
		Admin: AdminConfig{
			APIKey: getEnv("ADMIN_API_KEY", ""),
			Header: getEnv("ADMIN_API_HEADER", "X-API-Key"),
		},
		Redis: RedisConfig{
			Addr:           getEnv("REDIS_ADDR", ""),
			Password:       getEnv("REDIS_PASSWORD", ""),
			DB:             redisDB,
			IdempotencyTTL: time.Duration(idempotencyTTL) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:       splitList(getEnv("KAFKA_BROKERS", "")),
			TopicCatalog:  getEnv("KAFKA_TOPIC_CATALOG_EVENTS", "catalog-events"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "lead-notifier"),
		},
		Observ: ObservabilityConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s, database=%t, admin=%t",
		cfg.Server.Env, cfg.Server.Port, cfg.Database.URL != "", cfg.Admin.APIKey != "")
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
