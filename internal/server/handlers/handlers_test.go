package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/information-sharing-networks/journey/internal/version"
)

type fakeDB struct {
	err error
}

func (f fakeDB) IsDatabaseRunning(ctx context.Context) (bool, error) {
	return f.err == nil, f.err
}

func TestHandleReadiness(t *testing.T) {
	tests := []struct {
		name     string
		db       fakeDB
		wantCode int
	}{
		{"database up", fakeDB{}, http.StatusOK},
		{"database down", fakeDB{err: errors.New("connection refused")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			HandleReadiness(tt.db)(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if rr.Code != tt.wantCode {
				t.Errorf("got status %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleHealth(rr, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rr.Code != http.StatusOK || rr.Body.String() != "OK" {
		t.Errorf("got %d %q, want 200 OK", rr.Code, rr.Body.String())
	}
}

func TestHandleVersion(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleVersion(version.Info{Version: "v1.2.3", BuildDate: "today", GitCommit: "abc"})(rr, httptest.NewRequest(http.MethodGet, "/version", nil))

	var resp VersionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Version != "v1.2.3" || resp.GitCommit != "abc" || resp.Service != "journey-server" {
		t.Errorf("unexpected version response %+v", resp)
	}
}
