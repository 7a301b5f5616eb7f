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
	Redis    RedisConfig
	Kafka    KafkaConfig
	Observ   ObservabilityConfig
	Business BusinessConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	SeedDemo bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Enabled  bool
}

type KafkaConfig struct {
	Brokers       []string
	TopicAlerts   string
	ConsumerGroup string
	Enabled       bool
}

type ObservabilityConfig struct {
	JaegerEndpoint string
	PrometheusPort string
}

type BusinessConfig struct {
	LowStockThreshold int
	OverdueAfter      time.Duration
	SessionTTL        time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	lowStock, _ := strconv.Atoi(getEnv("LOW_STOCK_THRESHOLD", "10"))
	overdueDays, _ := strconv.Atoi(getEnv("DEALER_OVERDUE_DAYS", "7"))
	sessionTTLMin, _ := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "60"))

	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "8080"),
			Env:      getEnv("ENV", "development"),
			SeedDemo: getEnv("SEED_DEMO_DATA", "true") == "true",
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			Enabled:  getEnv("REDIS_ENABLED", "false") == "true",
		},
		Kafka: KafkaConfig{
			Brokers:       strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			TopicAlerts:   getEnv("KAFKA_TOPIC_ALERT_EVENTS", "alert-events"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "vastratrota-notify-group"),
			Enabled:       getEnv("KAFKA_ENABLED", "false") == "true",
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
			PrometheusPort: getEnv("PROMETHEUS_PORT", "9090"),
		},
		Business: BusinessConfig{
			LowStockThreshold: lowStock,
			OverdueAfter:      time.Duration(overdueDays) * 24 * time.Hour,
			SessionTTL:        time.Duration(sessionTTLMin) * time.Minute,
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
