package main

import (
	"slices"
	"testing"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(envOf(nil))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Fatalf("expected :3000, got %q", cfg.Addr)
	}
	if !slices.Equal(cfg.AllowedOrigins, []string{"http://localhost:5173"}) {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.ReadBufferSize != 1024 || cfg.WriteBufferSize != 1024 {
		t.Fatalf("unexpected buffer sizes %d/%d", cfg.ReadBufferSize, cfg.WriteBufferSize)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(envOf(map[string]string{
		"HEXCHESS_ADDR":            ":8080",
		"HEXCHESS_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
		"HEXCHESS_WS_READ_BUFFER":  "2048",
		"HEXCHESS_WS_WRITE_BUFFER": "4096",
	}))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.ReadBufferSize != 2048 || cfg.WriteBufferSize != 4096 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !slices.Equal(cfg.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	tests := map[string]map[string]string{
		"non numeric buffer": {"HEXCHESS_WS_READ_BUFFER": "big"},
		"negative buffer":    {"HEXCHESS_WS_WRITE_BUFFER": "-1"},
		"only commas":        {"HEXCHESS_ALLOWED_ORIGINS": " , ,"},
		"wildcard origin":    {"HEXCHESS_ALLOWED_ORIGINS": "*"},
		"wildcard in list":   {"HEXCHESS_ALLOWED_ORIGINS": "https://a.example, *"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(envOf(vars)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
