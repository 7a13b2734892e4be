package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultMaxGames = 1024

type Config struct {
	LogLevel       string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Host           string `yaml:"host" env:"TTT_HOST" env-default:"127.0.0.1"`
	HTTPPort       string `yaml:"http-port" env:"TTT_HTTP_PORT" env-default:"9090"`
	SocketPort     string `yaml:"socket-port" env:"TTT_SOCKET_PORT" env-default:"9091"`
	StartingPlayer string `yaml:"starting-player" env:"TTT_STARTING_PLAYER" env-default:"X"`
	MaxGames       int    `yaml:"max-games" env:"TTT_MAX_GAMES"`
	Color          bool   `yaml:"color" env:"TTT_COLOR"`
}

// MustLoad - load configuration from the yml file at path, or from the environment if the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	// zero is meaningful for these, so they cannot use env-default
	config := &Config{
		MaxGames: defaultMaxGames,
		Color:    true,
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat %s: %w", path, err)
	}

	return config, nil
}

func (that *Config) HTTPAddr() string {
	return that.Host + ":" + that.HTTPPort
}

func (that *Config) SocketAddr() string {
	return that.Host + ":" + that.SocketPort
}

// Level maps log-level to a slog level; unknown values fall back to info.
func (that *Config) Level() slog.Level {
	switch strings.ToLower(that.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
