package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	Cache    CacheConfig
	Kafka    KafkaConfig
	Rabbit   RabbitConfig
	Tracing  TracingConfig
	Workers  WorkersConfig
	TierFile string
}

type ServerConfig struct {
	Port        string
	Environment string
	JWTSecret   string
	RedeemRate  float64 // запросов в минуту на пользователя
	RedeemBurst int
}

type MongoConfig struct {
	Addr     string
	Database string
}

type CacheConfig struct {
	Addr     string
	User     string
	Password string
}

type KafkaConfig struct {
	Addr  string
	Port  string
	Topic string
	Group string
}

type RabbitConfig struct {
	Addr     string
	Port     string
	User     string
	Password string
	VHost    string
}

type TracingConfig struct {
	Endpoint string
}

type WorkersConfig struct {
	Orders    int
	Reconcile int
}

// адрес без схемы дополняется mongodb://
func (m MongoConfig) URI() string {
	if strings.Contains(m.Addr, "://") {
		return m.Addr
	}
	return "mongodb://" + m.Addr
}

func (r RabbitConfig) URL() string {
	return "amqp://" + r.User + ":" + r.Password + "@" + r.Addr + ":" + r.Port + "/" + r.VHost
}

func (k KafkaConfig) Brokers() []string {
	return []string{k.Addr + ":" + k.Port}
}

func (c *Config) Production() bool {
	return c.Server.Environment == "production"
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("CLOUDZ_PORT", "8080"),
			Environment: getEnv("CLOUDZ_ENV", "development"),
			JWTSecret:   os.Getenv("CLOUDZ_JWT_SECRET"),
			RedeemRate:  getEnvFloat("CLOUDZ_REDEEM_RATE", 30),
			RedeemBurst: getEnvInt("CLOUDZ_REDEEM_BURST", 5),
		},
		Mongo: MongoConfig{
			Addr:     os.Getenv("CLOUDZ_MONGO"),
			Database: getEnv("CLOUDZ_MONGO_DB", "cloudz"),
		},
		Cache: CacheConfig{
			Addr:     os.Getenv("CLOUDZ_CACHE_URL"),
			User:     os.Getenv("CLOUDZ_CACHE_USER"),
			Password: os.Getenv("CLOUDZ_CACHE_PWD"),
		},
		Kafka: KafkaConfig{
			Addr:  os.Getenv("KAFKA_ORDER_URL"),
			Port:  getEnv("KAFKA_ORDER_PORT", "9092"),
			Topic: getEnv("KAFKA_ORDER_TOPIC", "orders_paid"),
			Group: getEnv("KAFKA_ORDER_GROUP", "orders_cloudz"),
		},
		Rabbit: RabbitConfig{
			Addr:     os.Getenv("RABBIT_URL"),
			Port:     getEnv("RABBIT_PORT", "5672"),
			User:     os.Getenv("RABBIT_USER"),
			Password: os.Getenv("RABBIT_PASSWORD"),
			VHost:    getEnv("RABBIT_VHOST", "cloudz"),
		},
		Tracing: TracingConfig{
			Endpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
		Workers: WorkersConfig{
			Orders:    getEnvInt("CLOUDZ_ORDERS_COUNT", 5),
			Reconcile: getEnvInt("CLOUDZ_RECONCILE_COUNT", 3),
		},
		TierFile: os.Getenv("CLOUDZ_TIERS_FILE"),
	}

	if cfg.Mongo.Addr == "" {
		return nil, fmt.Errorf("env CLOUDZ_MONGO is not set")
	}
	return cfg, nil
}

// RequireJWT - для HTTP сервера секрет обязателен
func (c *Config) RequireJWT() error {
	if c.Server.JWTSecret == "" {
		return fmt.Errorf("env CLOUDZ_JWT_SECRET is not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
