package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	BadgerFilepath   string  `env:"BADGER_FILEPATH,required=true"`
	LogLevel         string  `env:"LOG_LEVEL,default=INFO"`
	SeedFile         *string `env:"SEED_FILE"`
	AccountCacheSize int     `env:"ACCOUNT_CACHE_SIZE,default=1024"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.AccountCacheSize <= 0 {
		return Config{}, fmt.Errorf("ACCOUNT_CACHE_SIZE must be positive, got %d", config.AccountCacheSize)
	}
	return config, nil
}
