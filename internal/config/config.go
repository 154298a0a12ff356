// Package config reads the client and backend settings from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// durationSeconds parses env as time.Duration: "10s", "5m" or bare number = seconds (e.g. "30" -> 30s).
type durationSeconds time.Duration

var _ cleanenv.Setter = (*durationSeconds)(nil)

func (d *durationSeconds) SetValue(data string) error {
	v, err := parseDuration(data)
	if err != nil {
		return err
	}
	*d = durationSeconds(v)
	return nil
}

func (d durationSeconds) Duration() time.Duration { return time.Duration(d) }

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	// Strip optional surrounding quotes: "10s" or '10s'
	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration must be like 10s, 5m or a number of seconds: %w", err)
	}
	return d, nil
}

type Config struct {
	Client ClientConfig
	Server ServerConfig
}

type ClientConfig struct {
	// Host stands in for the page host name the endpoints are derived from.
	Host string `env:"TASKS_HOST" env-default:"localhost"`
	// Origin is where relative (co-located) roots are resolved against.
	Origin string `env:"TASKS_ORIGIN" env-default:"http://localhost:5000"`

	HealthInterval durationSeconds `env:"TASKS_HEALTH_INTERVAL" env-default:"30s"`
	// 0 disables the timeout; a hung request then only stalls its own operation.
	RequestTimeout durationSeconds `env:"TASKS_REQUEST_TIMEOUT" env-default:"0"`

	LogFile string `env:"TASKS_LOG_FILE" env-default:""`
	Theme   string `env:"TASKS_THEME" env-default:"classic"`
}

type ServerConfig struct {
	Port string `env:"PORT" env-default:"5000"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.Client.HealthInterval.Duration() <= 0 {
		return Config{}, fmt.Errorf("TASKS_HEALTH_INTERVAL must be positive")
	}
	if cfg.Client.RequestTimeout.Duration() < 0 {
		return Config{}, fmt.Errorf("TASKS_REQUEST_TIMEOUT must not be negative")
	}
	cfg.Client.Origin = strings.TrimRight(strings.TrimSpace(cfg.Client.Origin), "/")
	return cfg, nil
}
