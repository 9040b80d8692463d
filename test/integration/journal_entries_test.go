//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"testing"

	"github.com/information-sharing-networks/journey/internal/journal"
)

func TestJournalEntries_Create(t *testing.T) {
	testEnv := startInProcessServer(t)
	defer testEnv.shutdown()

	entriesURL := testEnv.baseURL + "/api/journal-entries"
	before := countEntries(t, testEnv.queries)

	status, header, body := doJSON(t, http.MethodPost, entriesURL, journal.EntryDTO{
		Title:       strPtr(defaultTitle),
		Description: strPtr(defaultDescription),
	})
	if status != http.StatusCreated {
		t.Fatalf("expected status 201, got %d. Response: %s", status, body)
	}

	var created journal.EntryDTO
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == nil {
		t.Fatal("created entry has no id")
	}
	if got, want := header.Get("Location"), fmt.Sprintf("/api/journal-entries/%d", *created.ID); got != want {
		t.Errorf("Location = %q, want %q", got, want)
	}
	if got := header.Get("X-journeyApp-alert"); got != "journeyApp.journalEntry.created" {
		t.Errorf("X-journeyApp-alert = %q", got)
	}

	if after := countEntries(t, testEnv.queries); after != before+1 {
		t.Errorf("expected %d entries, got %d", before+1, after)
	}

	stored, err := testEnv.queries.GetJournalEntryByID(t.Context(), *created.ID)
	if err != nil {
		t.Fatalf("failed to read stored entry: %v", err)
	}
	if stored.Title != defaultTitle || stored.Description == nil || *stored.Description != defaultDescription {
		t.Errorf("stored entry %+v does not match the request", stored)
	}
}

func TestJournalEntries_CreateRejected(t *testing.T) {
	testEnv := startInProcessServer(t)
	defer testEnv.shutdown()

	entriesURL := testEnv.baseURL + "/api/journal-entries"
	existing := createTestEntry(t, testEnv.queries, defaultTitle, nil)

	tests := []struct {
		name    string
		body    journal.EntryDTO
		wantKey journal.ErrorCode
	}{
		{"with existing id", journal.EntryDTO{ID: &existing.ID, Title: strPtr(defaultTitle)}, journal.ErrCodeIDExists},
		{"title missing", journal.EntryDTO{Description: strPtr(defaultDescription)}, journal.ErrCodeValidation},
		{"NUL in title", journal.EntryDTO{Title: strPtr("\x00")}, journal.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := countEntries(t, testEnv.queries)

			status, header, body := doJSON(t, http.MethodPost, entriesURL, tt.body)
			if status != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d. Response: %s", status, body)
			}
			if resp := decodeErrorResponse(t, body); resp.ErrorKey != tt.wantKey {
				t.Errorf("errorKey = %q, want %q", resp.ErrorKey, tt.wantKey)
			}
			if got := header.Get("X-journeyApp-error"); got != "error."+string(tt.wantKey) {
				t.Errorf("X-journeyApp-error = %q", got)
			}
			if after := countEntries(t, testEnv.queries); after != before {
				t.Errorf("rejected request changed the entry count from %d to %d", before, after)
			}
		})
	}
}

func TestJournalEntries_GetAndList(t *testing.T) {
	testEnv := startInProcessServer(t)
	defer testEnv.shutdown()

	entriesURL := testEnv.baseURL + "/api/journal-entries"
	entry := createTestEntry(t, testEnv.queries, defaultTitle, strPtr(defaultDescription))

	status, _, body := doJSON(t, http.MethodGet, entriesURL+"?sort=id,desc", nil)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d. Response: %s", status, body)
	}
	var entries []journal.EntryDTO
	if err := json.Unmarshal(body, &entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(entries) != 1 || *entries[0].ID != entry.ID || *entries[0].Title != defaultTitle {
		t.Errorf("unexpected list %s", body)
	}

	status, _, body = doJSON(t, http.MethodGet, entriesURL+"/"+strconv.FormatInt(entry.ID, 10), nil)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d. Response: %s", status, body)
	}
	var got journal.EntryDTO
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if *got.ID != entry.ID || *got.Description != defaultDescription {
		t.Errorf("unexpected entry %s", body)
	}

	status, _, body = doJSON(t, http.MethodGet, fmt.Sprintf("%s/%d", entriesURL, int64(math.MaxInt64)), nil)
	if status != http.StatusNotFound {
		t.Errorf("expected status 404 for a missing entry, got %d. Response: %s", status, body)
	}
}

func TestJournalEntries_Update(t *testing.T) {
	testEnv := startInProcessServer(t)
	defer testEnv.shutdown()

	entriesURL := testEnv.baseURL + "/api/journal-entries"
	entry := createTestEntry(t, testEnv.queries, defaultTitle, strPtr(defaultDescription))
	before := countEntries(t, testEnv.queries)

	status, header, body := doJSON(t, http.MethodPut, entriesURL, journal.EntryDTO{
		ID:          &entry.ID,
		Title:       strPtr(updatedTitle),
		Description: strPtr(updatedDescription),
	})
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d. Response: %s", status, body)
	}
	if got := header.Get("X-journeyApp-params"); got != strconv.FormatInt(entry.ID, 10) {
		t.Errorf("X-journeyApp-params = %q", got)
	}

	stored, err := testEnv.queries.GetJournalEntryByID(t.Context(), entry.ID)
	if err != nil {
		t.Fatalf("failed to read stored entry: %v", err)
	}
	if stored.Title != updatedTitle || *stored.Description != updatedDescription {
		t.Errorf("stored entry %+v was not updated", stored)
	}

	missingID := int64(math.MaxInt64)
	tests := []struct {
		name       string
		body       journal.EntryDTO
		wantStatus int
		wantKey    journal.ErrorCode
	}{
		{"id missing", journal.EntryDTO{Title: strPtr(updatedTitle)}, http.StatusBadRequest, journal.ErrCodeIDNull},
		{"unknown id", journal.EntryDTO{ID: &missingID, Title: strPtr(updatedTitle)}, http.StatusNotFound, journal.ErrCodeNotFound},
		{"title missing", journal.EntryDTO{ID: &entry.ID}, http.StatusBadRequest, journal.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, body := doJSON(t, http.MethodPut, entriesURL, tt.body)
			if status != tt.wantStatus {
				t.Fatalf("expected status %d, got %d. Response: %s", tt.wantStatus, status, body)
			}
			if resp := decodeErrorResponse(t, body); resp.ErrorKey != tt.wantKey {
				t.Errorf("errorKey = %q, want %q", resp.ErrorKey, tt.wantKey)
			}
		})
	}

	if after := countEntries(t, testEnv.queries); after != before {
		t.Errorf("updates changed the entry count from %d to %d", before, after)
	}
}

func TestJournalEntries_Delete(t *testing.T) {
	testEnv := startInProcessServer(t)
	defer testEnv.shutdown()

	entry := createTestEntry(t, testEnv.queries, defaultTitle, nil)
	entryURL := fmt.Sprintf("%s/api/journal-entries/%d", testEnv.baseURL, entry.ID)
	before := countEntries(t, testEnv.queries)

	status, _, body := doJSON(t, http.MethodDelete, entryURL, nil)
	if status != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d. Response: %s", status, body)
	}
	if after := countEntries(t, testEnv.queries); after != before-1 {
		t.Errorf("expected %d entries, got %d", before-1, after)
	}

	if status, _, _ := doJSON(t, http.MethodGet, entryURL, nil); status != http.StatusNotFound {
		t.Errorf("expected status 404 after delete, got %d", status)
	}
	if status, _, _ := doJSON(t, http.MethodDelete, entryURL, nil); status != http.StatusNoContent {
		t.Errorf("expected status 204 when deleting again, got %d", status)
	}
}

func TestJournalEntries_Filters(t *testing.T) {
	testEnv := startInProcessServer(t)
	defer testEnv.shutdown()

	entriesURL := testEnv.baseURL + "/api/journal-entries"
	withDesc := createTestEntry(t, testEnv.queries, defaultTitle, strPtr(defaultDescription))
	withoutDesc := createTestEntry(t, testEnv.queries, updatedTitle, nil)

	tests := []struct {
		query string
		want  []int64
	}{
		{"title.equals=" + defaultTitle, []int64{withDesc.ID}},
		{"title.equals=" + "CCCCCCCCCC", []int64{}},
		{"title.in=" + defaultTitle + "," + updatedTitle, []int64{withDesc.ID, withoutDesc.ID}},
		{"title.in=" + "CCCCCCCCCC", []int64{}},
		{"title.specified=true", []int64{withDesc.ID, withoutDesc.ID}},
		{"title.specified=false", []int64{}},
		{"description.equals=" + defaultDescription, []int64{withDesc.ID}},
		{"description.notEquals=" + updatedDescription, []int64{withDesc.ID}},
		{"description.notIn=" + updatedDescription, []int64{withDesc.ID}},
		{"description.specified=true", []int64{withDesc.ID}},
		{"description.specified=false", []int64{withoutDesc.ID}},
		{fmt.Sprintf("id.greaterThan=%d", withDesc.ID), []int64{withoutDesc.ID}},
		{"sort=description,desc", []int64{withoutDesc.ID, withDesc.ID}},
		{"sort=description,asc", []int64{withDesc.ID, withoutDesc.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			status, _, body := doJSON(t, http.MethodGet, entriesURL+"?"+tt.query, nil)
			if status != http.StatusOK {
				t.Fatalf("expected status 200, got %d. Response: %s", status, body)
			}
			var entries []journal.EntryDTO
			if err := json.Unmarshal(body, &entries); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			got := make([]int64, 0, len(entries))
			for _, e := range entries {
				got = append(got, *e.ID)
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("got ids %v, want %v", got, tt.want)
			}

			status, _, body = doJSON(t, http.MethodGet, entriesURL+"/count?"+tt.query, nil)
			if status != http.StatusOK {
				t.Fatalf("count: expected status 200, got %d. Response: %s", status, body)
			}
			var count int64
			if err := json.Unmarshal(body, &count); err != nil {
				t.Fatalf("failed to decode count: %v", err)
			}
			if count != int64(len(tt.want)) {
				t.Errorf("count = %d, want %d", count, len(tt.want))
			}
		})
	}
}

func TestInfrastructureEndpoints(t *testing.T) {
	testEnv := startInProcessServer(t)
	defer testEnv.shutdown()

	for _, path := range []string{"/health/live", "/health/ready", "/version", "/swagger/doc.json"} {
		t.Run(path, func(t *testing.T) {
			status, _, body := doJSON(t, http.MethodGet, testEnv.baseURL+path, nil)
			if status != http.StatusOK {
				t.Errorf("expected status 200, got %d. Response: %s", status, body)
			}
		})
	}
}
