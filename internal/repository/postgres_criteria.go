package repository

// postgres_criteria.go renders journal criteria and sort orders as SQL.
//
//	SELECT id, title, description FROM journal_entry
//	WHERE title = ANY($1) AND description IS NOT NULL
//	ORDER BY title COLLATE "C" DESC, id ASC

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/information-sharing-networks/journey/internal/journal"
)

const (
	selectEntries = `SELECT id, title, description FROM journal_entry`
	countEntries  = `SELECT count(*) FROM journal_entry`
)

type column struct {
	name string
	text bool
}

// columns is the only source of identifiers in the rendered SQL.
var columns = map[journal.Field]column{
	journal.FieldID:          {name: "id"},
	journal.FieldTitle:       {name: "title", text: true},
	journal.FieldDescription: {name: "description", text: true},
}

var comparisonOperators = map[journal.Operator]string{
	journal.OpEquals:             "=",
	journal.OpNotEquals:          "<>",
	journal.OpGreaterThan:        ">",
	journal.OpLessThan:           "<",
	journal.OpGreaterThanOrEqual: ">=",
	journal.OpLessThanOrEqual:    "<=",
}

// statement accumulates the positional arguments of a query.
type statement struct {
	args []any
}

func (s *statement) bind(v any) string {
	s.args = append(s.args, v)
	return "$" + strconv.Itoa(len(s.args))
}

func selectStatement(c journal.Criteria, orders []journal.SortOrder) (string, []any, error) {
	var s statement
	where, err := s.where(c)
	if err != nil {
		return "", nil, err
	}
	orderBy, err := orderByClause(journal.NormalizeSort(orders))
	if err != nil {
		return "", nil, err
	}
	return selectEntries + where + orderBy, s.args, nil
}

func countStatement(c journal.Criteria) (string, []any, error) {
	var s statement
	where, err := s.where(c)
	if err != nil {
		return "", nil, err
	}
	return countEntries + where, s.args, nil
}

// where renders the conjunction of the predicates of c, or "" when c is empty.
func (s *statement) where(c journal.Criteria) (string, error) {
	predicates := c.Predicates()
	if len(predicates) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(predicates))
	for _, p := range predicates {
		cond, err := s.condition(p)
		if err != nil {
			return "", err
		}
		conditions = append(conditions, cond)
	}
	return " WHERE " + strings.Join(conditions, " AND "), nil
}

// condition renders one predicate. NULL never satisfies notEquals or notIn: col <> $1 is
// unknown for NULL, and notIn checks IS NOT NULL explicitly because NULL = ANY('{}') is false.
func (s *statement) condition(p journal.Predicate) (string, error) {
	col, ok := columns[p.Field]
	if !ok {
		return "", fmt.Errorf("unknown field %q", p.Field)
	}

	switch p.Operator {
	case journal.OpSpecified:
		specified, ok := p.Value.(bool)
		if !ok {
			return "", fmt.Errorf("field %s: specified expects a bool, got %T", p.Field, p.Value)
		}
		if specified {
			return col.name + " IS NOT NULL", nil
		}
		return col.name + " IS NULL", nil

	case journal.OpIn:
		if err := checkListType(col, p); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = ANY(%s)", col.name, s.bind(p.Value)), nil

	case journal.OpNotIn:
		if err := checkListType(col, p); err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s IS NOT NULL AND NOT (%s = ANY(%s)))", col.name, col.name, s.bind(p.Value)), nil
	}

	op, ok := comparisonOperators[p.Operator]
	if !ok {
		return "", fmt.Errorf("field %s: unsupported operator %q", p.Field, p.Operator)
	}
	if col.text && op != "=" && op != "<>" {
		return "", fmt.Errorf("field %s: operator %q is not supported on text", p.Field, p.Operator)
	}
	if err := checkScalarType(col, p); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", col.name, op, s.bind(p.Value)), nil
}

func checkListType(col column, p journal.Predicate) error {
	var ok bool
	if col.text {
		_, ok = p.Value.([]string)
	} else {
		_, ok = p.Value.([]int64)
	}
	if !ok {
		return fmt.Errorf("field %s: %s got a value of type %T", p.Field, p.Operator, p.Value)
	}
	return nil
}

func checkScalarType(col column, p journal.Predicate) error {
	var ok bool
	if col.text {
		_, ok = p.Value.(string)
	} else {
		_, ok = p.Value.(int64)
	}
	if !ok {
		return fmt.Errorf("field %s: %s got a value of type %T", p.Field, p.Operator, p.Value)
	}
	return nil
}

// orderByClause renders the sort orders. Text columns use the "C" collation so the database
// and the in-memory repository agree on byte order; Postgres places NULLs last for ASC and
// first for DESC, which is the order journal.CompareEntries uses.
func orderByClause(orders []journal.SortOrder) (string, error) {
	terms := make([]string, 0, len(orders))
	for _, o := range orders {
		col, ok := columns[o.Field]
		if !ok {
			return "", fmt.Errorf("unknown sort field %q", o.Field)
		}

		term := col.name
		if col.text {
			term += ` COLLATE "C"`
		}
		switch o.Direction {
		case journal.SortAsc, "":
			term += " ASC"
		case journal.SortDesc:
			term += " DESC"
		default:
			return "", fmt.Errorf("unknown sort direction %q", o.Direction)
		}
		terms = append(terms, term)
	}
	return " ORDER BY " + strings.Join(terms, ", "), nil
}
