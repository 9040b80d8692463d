//go:build integration

// functions that are useful in integration tests

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/information-sharing-networks/journey/internal/database"
	"github.com/information-sharing-networks/journey/internal/journal"
)

const (
	defaultTitle       = "AAAAAAAAAA"
	updatedTitle       = "BBBBBBBBBB"
	defaultDescription = "AAAAAAAAAA"
	updatedDescription = "BBBBBBBBBB"
)

func strPtr(s string) *string { return &s }

// doJSON sends body (if not nil) as JSON and returns the response status, headers and body.
func doJSON(t *testing.T, method, url string, body any) (int, http.Header, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	return resp.StatusCode, resp.Header, data
}

// createTestEntry inserts an entry directly into the database
func createTestEntry(t *testing.T, queries *database.Queries, title string, description *string) database.JournalEntry {
	t.Helper()

	entry, err := queries.CreateJournalEntry(context.Background(), database.CreateJournalEntryParams{
		Title:       title,
		Description: description,
	})
	if err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}

func countEntries(t *testing.T, queries *database.Queries) int64 {
	t.Helper()

	n, err := queries.CountJournalEntries(context.Background())
	if err != nil {
		t.Fatalf("failed to count entries: %v", err)
	}
	return n
}

func decodeErrorResponse(t *testing.T, body []byte) journal.ErrorResponse {
	t.Helper()

	var resp journal.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("failed to decode error response %q: %v", body, err)
	}
	return resp
}
