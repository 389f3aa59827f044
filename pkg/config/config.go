package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	JWT              JWTConfig
	ImageHost        ImageHostConfig
	Kafka            KafkaConfig
	Bootstrap        BootstrapConfig
}

type JWTConfig struct {
	Secret            string        `env:"JWT_SECRET"`
	AccessTokenExpiry time.Duration `env:"JWT_ACCESS_TOKEN_EXPIRY" envDefault:"12h"`
}

type ImageHostConfig struct {
	BaseURL       string        `env:"IMAGE_HOST_URL"`
	APIKey        string        `env:"IMAGE_HOST_API_KEY"`
	Timeout       time.Duration `env:"IMAGE_HOST_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"IMAGE_HOST_RETRY_ATTEMPTS" envDefault:"3"`
	Mock          bool          `env:"MOCK_IMAGE_HOST" envDefault:"false"`
}

type KafkaConfig struct {
	Brokers           []string `env:"KAFKA_BROKERS" envSeparator:","`
	NotificationTopic string   `env:"KAFKA_NOTIFICATION_TOPIC" envDefault:"lostfound.notifications"`
}

// BootstrapConfig seeds the first admin account on an empty database.
type BootstrapConfig struct {
	AdminEmployeeNumber string `env:"BOOTSTRAP_ADMIN_EMPLOYEE_NUMBER"`
	AdminPassword       string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
