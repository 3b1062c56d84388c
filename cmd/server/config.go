package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

const (
	defaultAddr           = ":3000"
	defaultAllowedOrigins = "http://localhost:5173"
	defaultBufferSize     = 1024
)

// Config holds the server settings read from the environment.
type Config struct {
	Addr            string
	AllowedOrigins  []string
	ReadBufferSize  int
	WriteBufferSize int
}

// LoadConfig reads HEXCHESS_* variables through getenv, falling back to
// defaults for anything unset.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:            valueOr(getenv("HEXCHESS_ADDR"), defaultAddr),
		AllowedOrigins:  splitList(valueOr(getenv("HEXCHESS_ALLOWED_ORIGINS"), defaultAllowedOrigins)),
		ReadBufferSize:  defaultBufferSize,
		WriteBufferSize: defaultBufferSize,
	}

	var err error
	if cfg.ReadBufferSize, err = intOr(getenv("HEXCHESS_WS_READ_BUFFER"), defaultBufferSize); err != nil {
		return Config{}, fmt.Errorf("HEXCHESS_WS_READ_BUFFER: %w", err)
	}
	if cfg.WriteBufferSize, err = intOr(getenv("HEXCHESS_WS_WRITE_BUFFER"), defaultBufferSize); err != nil {
		return Config{}, fmt.Errorf("HEXCHESS_WS_WRITE_BUFFER: %w", err)
	}
	if len(cfg.AllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("HEXCHESS_ALLOWED_ORIGINS: no origins given")
	}
	// cors refuses credentials together with a wildcard origin.
	if slices.Contains(cfg.AllowedOrigins, "*") {
		return Config{}, fmt.Errorf("HEXCHESS_ALLOWED_ORIGINS: wildcard origin cannot be combined with credentials")
	}
	return cfg, nil
}

func loadConfigFromEnv() (Config, error) {
	return LoadConfig(os.Getenv)
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}

func intOr(v string, fallback int) (int, error) {
	if v = strings.TrimSpace(v); v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
