// Package config собирает настройки сервиса из флагов и переменных окружения.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// DBTimeout ограничивает время одного запроса к базе данных.
const DBTimeout = 3 * time.Second

type ConfigType struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"`
	BaseDomain      string        `env:"BASE_DOMAIN"`
	FileStoragePath string        `env:"FILE_STORAGE_PATH"`
	DSN             string        `env:"DATABASE_DSN"`
	LogLevel        string        `env:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// NewConfig читает флаги командной строки, затем переменные окружения.
// Значения из окружения имеют приоритет.
func NewConfig() (*ConfigType, error) {
	return parse(os.Args[0], os.Args[1:])
}

func parse(name string, args []string) (*ConfigType, error) {
	config := ConfigType{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&config.ServerAddress, "a", "localhost:8080", "HTTP server address")
	fs.StringVar(&config.BaseDomain, "b", "shortmyurl.us.kg", "base domain of short links")
	fs.StringVar(&config.FileStoragePath, "f", "urls.json", "File storage path")
	fs.StringVar(&config.DSN, "d", "", "PostgreSQL DSN, file storage is used when empty")
	fs.StringVar(&config.LogLevel, "l", "info", "log level")
	fs.DurationVar(&config.ShutdownTimeout, "t", 10*time.Second, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &config, nil
}
