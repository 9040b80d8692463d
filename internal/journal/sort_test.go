package journal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    []SortOrder
		wantErr bool
	}{
		{name: "none", values: nil, want: nil},
		{name: "field only", values: []string{"title"}, want: []SortOrder{{FieldTitle, SortAsc}}},
		{name: "field and direction", values: []string{"id,desc"}, want: []SortOrder{{FieldID, SortDesc}}},
		{
			name:   "direction applies to all fields of the value",
			values: []string{"title,description,DESC", "id"},
			want: []SortOrder{
				{FieldTitle, SortDesc},
				{FieldDescription, SortDesc},
				{FieldID, SortAsc},
			},
		},
		{name: "unknown field", values: []string{"author,asc"}, wantErr: true},
		{name: "direction only", values: []string{"asc"}, wantErr: true},
		{name: "empty value", values: []string{""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.values)
			if tt.wantErr {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				require.Equal(t, ErrCodeBadCriteria, apiErr.Code())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSort(t *testing.T) {
	require.Equal(t, DefaultSort, NormalizeSort(nil))

	byID := []SortOrder{{FieldID, SortDesc}}
	require.Equal(t, byID, NormalizeSort(byID))

	byTitle := []SortOrder{{FieldTitle, SortAsc}}
	require.Equal(t, []SortOrder{{FieldTitle, SortAsc}, {FieldID, SortAsc}}, NormalizeSort(byTitle))
	require.Len(t, byTitle, 1, "the caller's slice is not modified")
}

func TestCompareEntriesNullOrdering(t *testing.T) {
	null := Entry{ID: int64Ptr(1), Title: "a"}
	set := Entry{ID: int64Ptr(2), Title: "a", Description: strPtr("z")}

	asc := []SortOrder{{FieldDescription, SortAsc}}
	desc := []SortOrder{{FieldDescription, SortDesc}}

	require.Positive(t, CompareEntries(null, set, asc), "nulls last ascending")
	require.Negative(t, CompareEntries(null, set, desc), "nulls first descending")
	require.Zero(t, CompareEntries(null, null, asc))

	// byte order: upper case sorts before lower case
	require.Negative(t, CompareEntries(Entry{Title: "Z"}, Entry{Title: "a"}, []SortOrder{{FieldTitle, SortAsc}}))
}
