package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func int64Ptr(n int64) *int64 { return &n }
func strPtr(s string) *string { return &s }

func TestEntryEqual(t *testing.T) {
	e1 := Entry{ID: int64Ptr(1), Title: "a"}
	e2 := Entry{ID: int64Ptr(1), Title: "b"}
	require.True(t, e1.Equal(e2), "entries with the same id are equal")

	e2.ID = int64Ptr(2)
	require.False(t, e1.Equal(e2))

	e1.ID = nil
	require.False(t, e1.Equal(e2))
	require.False(t, e1.Equal(e1), "an entry without id is not equal to itself")
}

func TestEntryDTOEqual(t *testing.T) {
	d1 := EntryDTO{ID: int64Ptr(1)}
	d2 := EntryDTO{ID: int64Ptr(1), Title: strPtr("x")}
	require.True(t, d1.Equal(d2))

	d2.ID = int64Ptr(2)
	require.False(t, d1.Equal(d2))

	d1.ID = nil
	require.False(t, d1.Equal(d2))
	require.False(t, d1.Equal(EntryDTO{}))
}

func TestEntryDTOValidate(t *testing.T) {
	long := strings.Repeat("é", MaxFieldLength+1)
	maxLen := strings.Repeat("é", MaxFieldLength)

	tests := []struct {
		name       string
		dto        EntryDTO
		wantFields []FieldError
	}{
		{
			name: "valid",
			dto:  EntryDTO{Title: strPtr("t"), Description: strPtr("d")},
		},
		{
			name: "empty title is allowed",
			dto:  EntryDTO{Title: strPtr("")},
		},
		{
			name: "maximum length",
			dto:  EntryDTO{Title: &maxLen, Description: &maxLen},
		},
		{
			name:       "NUL in title",
			dto:        EntryDTO{Title: strPtr("a\x00b")},
			wantFields: []FieldError{{ObjectName: "journalEntryDTO", Field: "title", Message: "Pattern"}},
		},
		{
			name:       "invalid utf-8 in description",
			dto:        EntryDTO{Title: strPtr("t"), Description: strPtr("\xff")},
			wantFields: []FieldError{{ObjectName: "journalEntryDTO", Field: "description", Message: "Pattern"}},
		},
		{
			name:       "title missing",
			dto:        EntryDTO{Description: strPtr("d")},
			wantFields: []FieldError{{ObjectName: "journalEntryDTO", Field: "title", Message: "NotNull"}},
		},
		{
			name: "both too long",
			dto:  EntryDTO{Title: &long, Description: &long},
			wantFields: []FieldError{
				{ObjectName: "journalEntryDTO", Field: "title", Message: "Size"},
				{ObjectName: "journalEntryDTO", Field: "description", Message: "Size"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dto.Validate()
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, ErrCodeValidation, apiErr.Code())
			require.Equal(t, tt.wantFields, apiErr.FieldErrors())
		})
	}
}

func TestMapper(t *testing.T) {
	e := Entry{ID: int64Ptr(7), Title: "t", Description: strPtr("d")}

	dto := ToDTO(e)
	require.Equal(t, int64(7), *dto.ID)
	require.Equal(t, "t", *dto.Title)
	require.Equal(t, "d", *dto.Description)

	// the DTO does not share pointers with the entity
	*dto.Description = "changed"
	require.Equal(t, "d", *e.Description)

	back := ToEntity(ToDTO(e))
	require.Equal(t, e, back)

	require.Equal(t, Entry{}, ToEntity(EntryDTO{}))
	require.NotNil(t, ToDTOs(nil))
	require.Len(t, ToDTOs([]Entry{e, e}), 2)
}
