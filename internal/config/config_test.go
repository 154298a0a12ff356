package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"TASKS_HOST", "TASKS_ORIGIN", "TASKS_HEALTH_INTERVAL", "TASKS_REQUEST_TIMEOUT", "TASKS_LOG_FILE", "TASKS_THEME", "PORT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Client.Host != "localhost" {
		t.Errorf("Host = %q, want localhost", cfg.Client.Host)
	}
	if cfg.Client.Origin != "http://localhost:5000" {
		t.Errorf("Origin = %q", cfg.Client.Origin)
	}
	if got := cfg.Client.HealthInterval.Duration(); got != 30*time.Second {
		t.Errorf("HealthInterval = %v, want 30s", got)
	}
	if got := cfg.Client.RequestTimeout.Duration(); got != 0 {
		t.Errorf("RequestTimeout = %v, want 0", got)
	}
	if cfg.Server.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Server.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TASKS_HOST", "tasks.example.com")
	t.Setenv("TASKS_ORIGIN", "https://tasks.example.com/")
	t.Setenv("TASKS_HEALTH_INTERVAL", "5")
	t.Setenv("TASKS_REQUEST_TIMEOUT", "2m")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Client.Host != "tasks.example.com" {
		t.Errorf("Host = %q", cfg.Client.Host)
	}
	if cfg.Client.Origin != "https://tasks.example.com" {
		t.Errorf("Origin = %q, want trailing slash trimmed", cfg.Client.Origin)
	}
	if got := cfg.Client.HealthInterval.Duration(); got != 5*time.Second {
		t.Errorf("HealthInterval = %v, want 5s", got)
	}
	if got := cfg.Client.RequestTimeout.Duration(); got != 2*time.Minute {
		t.Errorf("RequestTimeout = %v, want 2m", got)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
}

func TestLoadRejectsZeroInterval(t *testing.T) {
	t.Setenv("TASKS_HEALTH_INTERVAL", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero health interval")
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"10", 10 * time.Second, false},
		{"'10s'", 10 * time.Second, false},
		{`"1m"`, time.Minute, false},
		{"", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDuration(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDuration(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
