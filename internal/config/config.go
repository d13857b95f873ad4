package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type TimelockConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	TimelockDB   `yaml:"timelock_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Auth         `yaml:"auth"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type TimelockDB struct {
	Dsn            string `yaml:"dsn" env:"TIMELOCK_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type KafkaService struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic"`
	Enabled bool   `yaml:"enabled"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"TIMELOCK_JWT_SECRET"`
}

func MustLoad() *TimelockConfig {

	configPath := os.Getenv("TIMELOCK_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("TIMELOCK_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg TimelockConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
