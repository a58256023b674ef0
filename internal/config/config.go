package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Kafka    Kafka
	Hub      Hub
	JWT      JWT
	Logger   Logger
	Metrics  Metrics
	Platform Platform
}

type Service struct {
	Name string `env:"CHAT_SERVICE_NAME" env-default:"exchange-chat-service"`
	Port string `env:"CHAT_SERVICE_PORT" env-default:"8080"`
}

type Postgres struct {
	User     string `env:"CHAT_SERVICE_POSTGRES_USER"`
	Password string `env:"CHAT_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"CHAT_SERVICE_POSTGRES_DB"`
	Host     string `env:"CHAT_SERVICE_POSTGRES_HOST"`
	Port     string `env:"CHAT_SERVICE_POSTGRES_PORT"`
}

type Kafka struct {
	Host                  string `env:"KAFKA_HOST"`
	Port                  string `env:"KAFKA_PORT"`
	ExchangeAcceptedTopic string `env:"EXCHANGE_ACCEPTED_TOPIC" env-default:"exchange_request_accepted"`
	MatchFoundTopic       string `env:"MATCH_FOUND_TOPIC" env-default:"match_found"`
}

// Hub limits mirror the websocket transport tuning of the legacy broker:
// inbound frame ceiling, outbound buffer depth, per-write deadline and the
// symmetric heartbeat interval.
type Hub struct {
	ReadLimit         int64         `env:"CHAT_SERVICE_HUB_READ_LIMIT" env-default:"262144"`
	SendBuffer        int           `env:"CHAT_SERVICE_HUB_SEND_BUFFER" env-default:"256"`
	WriteTimeout      time.Duration `env:"CHAT_SERVICE_HUB_WRITE_TIMEOUT" env-default:"15s"`
	HeartbeatInterval time.Duration `env:"CHAT_SERVICE_HUB_HEARTBEAT" env-default:"10s"`
}

type JWT struct {
	Secret string `env:"CHAT_SERVICE_JWT_SECRET"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST"`
	Port int    `env:"METRICS_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	return cfg
}
