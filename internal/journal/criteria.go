package journal

// criteria.go defines the filters accepted by the list and count endpoints

import (
	"cmp"
	"slices"
)

// Field names a filterable (and sortable) entry attribute.
type Field string

const (
	FieldID          Field = "id"
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
)

// Operator is a filter operation on a field.
type Operator string

const (
	OpEquals             Operator = "equals"
	OpNotEquals          Operator = "notEquals"
	OpIn                 Operator = "in"
	OpNotIn              Operator = "notIn"
	OpSpecified          Operator = "specified"
	OpGreaterThan        Operator = "greaterThan"
	OpLessThan           Operator = "lessThan"
	OpGreaterThanOrEqual Operator = "greaterThanOrEqual"
	OpLessThanOrEqual    Operator = "lessThanOrEqual"
)

// StringFilter holds the optional predicates for a text field.
//
// A nil In/NotIn slice means the predicate is not set; an empty non-nil In matches nothing.
type StringFilter struct {
	Equals    *string
	NotEquals *string
	In        []string
	NotIn     []string
	Specified *bool
}

// LongFilter holds the optional predicates for an integer field. Unlike StringFilter it supports ranges.
type LongFilter struct {
	Equals             *int64
	NotEquals          *int64
	In                 []int64
	NotIn              []int64
	Specified          *bool
	GreaterThan        *int64
	LessThan           *int64
	GreaterThanOrEqual *int64
	LessThanOrEqual    *int64
}

// Criteria selects journal entries. A nil filter places no constraint on its field.
type Criteria struct {
	ID          *LongFilter
	Title       *StringFilter
	Description *StringFilter
}

// Predicate is a single field/operator check.
//
// Value holds a string or int64 for comparisons, a []string or []int64 for in/notIn and a bool for specified.
type Predicate struct {
	Field    Field
	Operator Operator
	Value    any
}

// IsEmpty reports whether c places no constraint on the entries.
func (c Criteria) IsEmpty() bool {
	return len(c.Predicates()) == 0
}

// Predicates expands the criteria into the list of predicates that an entry must all satisfy.
// The order is stable: fields in declaration order, operators in the order of the filter struct.
func (c Criteria) Predicates() []Predicate {
	var predicates []Predicate
	if c.ID != nil {
		predicates = append(predicates, c.ID.predicates(FieldID)...)
	}
	if c.Title != nil {
		predicates = append(predicates, c.Title.predicates(FieldTitle)...)
	}
	if c.Description != nil {
		predicates = append(predicates, c.Description.predicates(FieldDescription)...)
	}
	return predicates
}

// Matches reports whether e satisfies every predicate of c.
func (c Criteria) Matches(e Entry) bool {
	for _, p := range c.Predicates() {
		if !p.Match(e) {
			return false
		}
	}
	return true
}

func (f *StringFilter) predicates(field Field) []Predicate {
	var predicates []Predicate
	if f.Equals != nil {
		predicates = append(predicates, Predicate{field, OpEquals, *f.Equals})
	}
	if f.NotEquals != nil {
		predicates = append(predicates, Predicate{field, OpNotEquals, *f.NotEquals})
	}
	if f.In != nil {
		predicates = append(predicates, Predicate{field, OpIn, slices.Clone(f.In)})
	}
	if f.NotIn != nil {
		predicates = append(predicates, Predicate{field, OpNotIn, slices.Clone(f.NotIn)})
	}
	if f.Specified != nil {
		predicates = append(predicates, Predicate{field, OpSpecified, *f.Specified})
	}
	return predicates
}

func (f *LongFilter) predicates(field Field) []Predicate {
	var predicates []Predicate
	if f.Equals != nil {
		predicates = append(predicates, Predicate{field, OpEquals, *f.Equals})
	}
	if f.NotEquals != nil {
		predicates = append(predicates, Predicate{field, OpNotEquals, *f.NotEquals})
	}
	if f.In != nil {
		predicates = append(predicates, Predicate{field, OpIn, slices.Clone(f.In)})
	}
	if f.NotIn != nil {
		predicates = append(predicates, Predicate{field, OpNotIn, slices.Clone(f.NotIn)})
	}
	if f.Specified != nil {
		predicates = append(predicates, Predicate{field, OpSpecified, *f.Specified})
	}
	if f.GreaterThan != nil {
		predicates = append(predicates, Predicate{field, OpGreaterThan, *f.GreaterThan})
	}
	if f.LessThan != nil {
		predicates = append(predicates, Predicate{field, OpLessThan, *f.LessThan})
	}
	if f.GreaterThanOrEqual != nil {
		predicates = append(predicates, Predicate{field, OpGreaterThanOrEqual, *f.GreaterThanOrEqual})
	}
	if f.LessThanOrEqual != nil {
		predicates = append(predicates, Predicate{field, OpLessThanOrEqual, *f.LessThanOrEqual})
	}
	return predicates
}

// Match evaluates the predicate against e.
//
// A null value only satisfies specified=false; in particular it never satisfies
// notEquals or notIn, which is how SQL treats NULL.
func (p Predicate) Match(e Entry) bool {
	switch p.Field {
	case FieldID:
		if e.ID == nil {
			return matchValue[int64](p, 0, false)
		}
		return matchValue(p, *e.ID, true)
	case FieldTitle:
		return matchValue(p, e.Title, true)
	case FieldDescription:
		if e.Description == nil {
			return matchValue[string](p, "", false)
		}
		return matchValue(p, *e.Description, true)
	}
	return false
}

func matchValue[T cmp.Ordered](p Predicate, v T, present bool) bool {
	if p.Operator == OpSpecified {
		specified, _ := p.Value.(bool)
		return present == specified
	}
	if !present {
		return false
	}

	switch p.Operator {
	case OpIn, OpNotIn:
		values, ok := p.Value.([]T)
		if !ok {
			return false
		}
		if p.Operator == OpIn {
			return slices.Contains(values, v)
		}
		return !slices.Contains(values, v)
	}

	operand, ok := p.Value.(T)
	if !ok {
		return false
	}
	switch p.Operator {
	case OpEquals:
		return v == operand
	case OpNotEquals:
		return v != operand
	case OpGreaterThan:
		return v > operand
	case OpLessThan:
		return v < operand
	case OpGreaterThanOrEqual:
		return v >= operand
	case OpLessThanOrEqual:
		return v <= operand
	}
	return false
}
