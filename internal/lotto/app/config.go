package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	AddresDef      string = "localhost:8080"
	TicketPriceDef int64  = 1000
	MaxTicketsDef  int64  = 100
	LogLevelDef    string = "info"
)

// Config собирается из флагов, переменные окружения имеют приоритет.
type Config struct {
	Addr        string `env:"RUN_ADDRESS"`
	TicketPrice int64  `env:"TICKET_PRICE"`
	MaxTickets  int64  `env:"MAX_TICKETS"`
	LogLevel    string `env:"LOG_LEVEL"`
}

type FuncOpt func(*Config) error

func NewConfig(opts ...FuncOpt) (*Config, error) {
	cfg := &Config{
		Addr:        AddresDef,
		TicketPrice: TicketPriceDef,
		MaxTickets:  MaxTicketsDef,
		LogLevel:    LogLevelDef,
	}

	for i := range opts {
		if err := opts[i](cfg); err != nil {
			return nil, fmt.Errorf("newConfig: %w", err)
		}
	}

	return cfg, nil
}

func SetAddr(addr string) FuncOpt {
	return func(c *Config) error {
		c.Addr = addr
		return nil
	}
}

func SetTicketPrice(price int64) FuncOpt {
	return func(c *Config) error {
		if price <= 0 {
			return fmt.Errorf("ticket price [%d] must be positive", price)
		}
		c.TicketPrice = price
		return nil
	}
}

func SetMaxTickets(limit int64) FuncOpt {
	return func(c *Config) error {
		if limit <= 0 {
			return fmt.Errorf("max tickets [%d] must be positive", limit)
		}
		c.MaxTickets = limit
		return nil
	}
}

func SetLogLevel(level string) FuncOpt {
	return func(c *Config) error {
		if _, err := parseLevel(level); err != nil {
			return err
		}
		c.LogLevel = level
		return nil
	}
}

// SetEnv перезаписывает поля значениями из окружения,
// незаданные переменные не трогают уже выставленные значения.
func SetEnv() FuncOpt {
	return func(c *Config) error {
		envCfg := *c
		if err := env.Parse(&envCfg); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}

		opts := []FuncOpt{
			SetAddr(envCfg.Addr),
			SetTicketPrice(envCfg.TicketPrice),
			SetMaxTickets(envCfg.MaxTickets),
			SetLogLevel(envCfg.LogLevel),
		}

		for i := range opts {
			if err := opts[i](c); err != nil {
				return fmt.Errorf("env: %w", err)
			}
		}

		return nil
	}
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level [%s]", level)
	}
}
