package config

import (
	"strings"
	"testing"
	"time"
)

func validServerConfig() ServerEnvironment {
	return ServerEnvironment{
		Environment:      "test",
		Port:             8080,
		ApplicationName:  "journeyApp",
		MaxRequestSize:   1024,
		RequestTimeout:   time.Minute,
		DBMaxConnections: 4,
		DBMinConnections: 0,
		DatabaseURL:      "postgres://localhost/journey",
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *ServerEnvironment)
		wantErr string
	}{
		{"valid", func(cfg *ServerEnvironment) {}, ""},
		{"port too low", func(cfg *ServerEnvironment) { cfg.Port = 0 }, "PORT"},
		{"port too high", func(cfg *ServerEnvironment) { cfg.Port = 70000 }, "PORT"},
		{"unknown environment", func(cfg *ServerEnvironment) { cfg.Environment = "qa" }, "ENVIRONMENT"},
		{"empty application name", func(cfg *ServerEnvironment) { cfg.ApplicationName = "" }, "APPLICATION_NAME"},
		{"zero request timeout", func(cfg *ServerEnvironment) { cfg.RequestTimeout = 0 }, "REQUEST_TIMEOUT"},
		{"zero request size", func(cfg *ServerEnvironment) { cfg.MaxRequestSize = 0 }, "MAX_REQUEST_SIZE"},
		{"no connections", func(cfg *ServerEnvironment) { cfg.DBMaxConnections = 0 }, "DB_MAX_CONNECTIONS"},
		{"negative min connections", func(cfg *ServerEnvironment) { cfg.DBMinConnections = -1 }, "DB_MIN_CONNECTIONS"},
		{"min above max", func(cfg *ServerEnvironment) { cfg.DBMinConnections = 5 }, "cannot be greater"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.modify(&cfg)

			err := validateConfig(&cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got error %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNewServerConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/journey")
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("NewServerConfig failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("got port %d, want 8080", cfg.Port)
	}
	if cfg.ApplicationName != "journeyApp" {
		t.Errorf("got application name %q, want journeyApp", cfg.ApplicationName)
	}
	if cfg.MaxRequestSize != 1048576 {
		t.Errorf("got max request size %d, want 1048576", cfg.MaxRequestSize)
	}
	if cfg.AutoMigrate {
		t.Error("expected AUTO_MIGRATE to default to false")
	}
}

func TestNewServerConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := NewServerConfig(); err == nil {
		t.Fatal("expected an error when DATABASE_URL is not set")
	}
}

func TestNewClientConfig(t *testing.T) {
	tests := []struct {
		name    string
		apiURL  string
		wantErr bool
	}{
		{"default style url", "http://localhost:8080", false},
		{"https url", "https://journey.example.com", false},
		{"relative url", "/api", true},
		{"not a url", "::", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", "dev")
			t.Setenv("JOURNEY_API_URL", tt.apiURL)

			cfg, err := NewClientConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.apiURL)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.APIURL != tt.apiURL {
				t.Errorf("got %q, want %q", cfg.APIURL, tt.apiURL)
			}
		})
	}
}
