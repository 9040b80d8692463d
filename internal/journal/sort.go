package journal

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortDirection is the ordering direction of a SortOrder.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOrder orders entries by one field.
type SortOrder struct {
	Field     Field
	Direction SortDirection
}

// DefaultSort is used when the request has no sort parameter.
var DefaultSort = []SortOrder{{Field: FieldID, Direction: SortAsc}}

var sortableFields = map[Field]bool{
	FieldID:          true,
	FieldTitle:       true,
	FieldDescription: true,
}

// ParseSort parses the values of the (repeatable) sort query parameter.
//
// Each value is a comma separated list of fields optionally followed by a direction that applies
// to all the fields in that value, e.g "title,description,desc". The direction defaults to asc.
func ParseSort(values []string) ([]SortOrder, error) {
	var orders []SortOrder

	for _, value := range values {
		parts := strings.Split(value, ",")

		direction := SortAsc
		last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
		if last == string(SortAsc) || last == string(SortDesc) {
			direction = SortDirection(last)
			parts = parts[:len(parts)-1]
		}

		if len(parts) == 0 {
			return nil, NewBadCriteriaError(fmt.Sprintf("invalid sort %q: no field given", value))
		}

		for _, part := range parts {
			field := Field(strings.TrimSpace(part))
			if !sortableFields[field] {
				return nil, NewBadCriteriaError(fmt.Sprintf("invalid sort %q: unknown field %q", value, field))
			}
			orders = append(orders, SortOrder{Field: field, Direction: direction})
		}
	}

	return orders, nil
}

// String renders the order in the format accepted by ParseSort.
func (o SortOrder) String() string {
	return string(o.Field) + "," + string(o.Direction)
}

// NormalizeSort returns DefaultSort when orders is empty and otherwise appends id,asc
// (unless id is already ordered) so that entries with equal sort keys have a stable order.
func NormalizeSort(orders []SortOrder) []SortOrder {
	if len(orders) == 0 {
		return DefaultSort
	}
	for _, o := range orders {
		if o.Field == FieldID {
			return orders
		}
	}
	return append(slices.Clip(orders), SortOrder{Field: FieldID, Direction: SortAsc})
}

// CompareEntries orders a and b by orders. Null values sort after non-null values in
// ascending order and before them in descending order; text compares byte-wise.
func CompareEntries(a, b Entry, orders []SortOrder) int {
	for _, o := range orders {
		var c int
		switch o.Field {
		case FieldID:
			c = compareNullable(a.ID, b.ID)
		case FieldTitle:
			c = strings.Compare(a.Title, b.Title)
		case FieldDescription:
			c = compareNullable(a.Description, b.Description)
		}
		if o.Direction == SortDesc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

// compareNullable treats nil as greater than any value.
func compareNullable[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp.Compare(*a, *b)
}
