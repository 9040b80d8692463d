package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"none", LevelNone},
		{LevelNone.String(), LevelNone},
		{"nonsense", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestContextRequestLoggerDefaultsToSlogDefault(t *testing.T) {
	if got := ContextRequestLogger(context.Background()); got != slog.Default() {
		t.Error("expected the default logger when the context has none")
	}

	// must not panic without a request log context
	ContextWithLogAttrs(context.Background(), slog.String("k", "v"))
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(RequestLogging(base))
	router.Get("/entries", func(w http.ResponseWriter, r *http.Request) {
		if ContextRequestLogger(r.Context()) == slog.Default() {
			t.Error("expected a request scoped logger in the context")
		}
		ContextWithLogAttrs(r.Context(), slog.String("component", "test"))
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}

	if line["msg"] != "request completed" {
		t.Errorf("got msg %v, want request completed", line["msg"])
	}
	if line["level"] != "WARN" {
		t.Errorf("got level %v, want WARN", line["level"])
	}
	if line["status"] != float64(http.StatusTeapot) {
		t.Errorf("got status %v, want %d", line["status"], http.StatusTeapot)
	}
	if line["component"] != "test" {
		t.Errorf("expected attribute added by the handler, got %v", line["component"])
	}
	if line["request_id"] == "" || line["request_id"] == nil {
		t.Error("expected request_id to be logged")
	}
}
