package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

var ErrUnknownCacheBackend = errors.New("unknown cache backend")

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	Color    bool   `yaml:"color" env:"TICTACTOE_COLOR" env-default:"false"`
	Cache    Cache  `yaml:"cache"`
}

type Cache struct {
	Backend string `yaml:"backend" env:"TICTACTOE_CACHE_BACKEND" env-default:"memory"`
	Redis   Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db" env:"TICTACTOE_REDIS_DB" env-default:"0"`
}

// Load reads the config file at path, or only the environment when there is no such file.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Cache.Backend {
	case CacheMemory, CacheRedis, CacheNone:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCacheBackend, that.Cache.Backend)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
