package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeConsole = "console"
	ModeServer  = "server"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode      string    `yaml:"mode" env:"MODE" env-default:"console"`
	HTTPPort  string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis     Redis     `yaml:"redis" env-prefix:"REDIS_"`
	Telemetry Telemetry `yaml:"telemetry" env-prefix:"TELEMETRY_"`
}

type Redis struct {
	Enabled  bool          `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host     string        `yaml:"host" env:"HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"DB" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env:"TTL" env-default:"24h"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"ENDPOINT" env-default:"localhost:4317"`
	ServiceName string `yaml:"service-name" env:"SERVICE_NAME" env-default:"tictactoe-minimax"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load - reads path if it exists, otherwise environment variables and defaults only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
