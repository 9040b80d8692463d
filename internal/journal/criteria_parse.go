package journal

// criteria_parse.go binds list/count query parameters to Criteria
//
//	GET /api/journal-entries?title.equals=Retro&id.greaterThan=10&description.specified=false
//	GET /api/journal-entries?title.in=Retro,Planning&title.in=Demo

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseCriteria builds Criteria from query parameters of the form <field>.<operator>=<value>.
//
// Parameters that do not start with a filterable field name (sort, paging, cache busters) are ignored.
// A known field with an unknown operator or an unparsable value is a bad criteria error.
func ParseCriteria(query url.Values) (Criteria, error) {
	var c Criteria

	for key, values := range query {
		fieldName, opName, ok := strings.Cut(key, ".")
		if !ok {
			continue
		}

		var err error
		switch Field(fieldName) {
		case FieldID:
			if c.ID == nil {
				c.ID = &LongFilter{}
			}
			err = c.ID.set(Operator(opName), values)
		case FieldTitle:
			if c.Title == nil {
				c.Title = &StringFilter{}
			}
			err = c.Title.set(Operator(opName), values)
		case FieldDescription:
			if c.Description == nil {
				c.Description = &StringFilter{}
			}
			err = c.Description.set(Operator(opName), values)
		default:
			continue
		}
		if err != nil {
			return Criteria{}, NewBadCriteriaError(fmt.Sprintf("invalid filter %q: %v", key, err))
		}
	}

	return c, nil
}

// Query renders c as query parameters accepted by ParseCriteria.
//
// in and notIn lists are comma separated, so a list value that is empty or contains a comma
// does not read back unchanged. CheckQuery reports such values.
func (c Criteria) Query() url.Values {
	q := url.Values{}
	for _, p := range c.Predicates() {
		key := string(p.Field) + "." + string(p.Operator)
		switch v := p.Value.(type) {
		case string:
			q.Add(key, v)
		case int64:
			q.Add(key, strconv.FormatInt(v, 10))
		case bool:
			q.Add(key, strconv.FormatBool(v))
		case []string:
			q.Add(key, strings.Join(v, ","))
		case []int64:
			parts := make([]string, len(v))
			for i, n := range v {
				parts[i] = strconv.FormatInt(n, 10)
			}
			q.Add(key, strings.Join(parts, ","))
		}
	}
	return q
}

// CheckQuery returns a bad criteria error if Query would not render c faithfully.
func (c Criteria) CheckQuery() error {
	for _, p := range c.Predicates() {
		list, ok := p.Value.([]string)
		if !ok {
			continue
		}
		for _, v := range list {
			if v == "" || strings.Contains(v, ",") {
				return NewBadCriteriaError(fmt.Sprintf("invalid filter %s.%s: %q cannot be sent in a comma separated list", p.Field, p.Operator, v))
			}
		}
	}
	return nil
}

func (f *StringFilter) set(op Operator, values []string) error {
	switch op {
	case OpEquals:
		v := values[0]
		f.Equals = &v
	case OpNotEquals:
		v := values[0]
		f.NotEquals = &v
	case OpIn:
		f.In = splitList(values)
	case OpNotIn:
		f.NotIn = splitList(values)
	case OpSpecified:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", values[0])
		}
		f.Specified = &b
	default:
		return fmt.Errorf("unsupported operator %q for a text field", op)
	}
	return nil
}

func (f *LongFilter) set(op Operator, values []string) error {
	switch op {
	case OpSpecified:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", values[0])
		}
		f.Specified = &b
		return nil
	case OpIn, OpNotIn:
		list := splitList(values)
		ids := make([]int64, 0, len(list))
		for _, s := range list {
			n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return fmt.Errorf("expected an integer, got %q", s)
			}
			ids = append(ids, n)
		}
		if op == OpIn {
			f.In = ids
		} else {
			f.NotIn = ids
		}
		return nil
	}

	target := f.operand(op)
	if target == nil {
		return fmt.Errorf("unsupported operator %q for an integer field", op)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(values[0]), 10, 64)
	if err != nil {
		return fmt.Errorf("expected an integer, got %q", values[0])
	}
	*target = &n
	return nil
}

func (f *LongFilter) operand(op Operator) **int64 {
	switch op {
	case OpEquals:
		return &f.Equals
	case OpNotEquals:
		return &f.NotEquals
	case OpGreaterThan:
		return &f.GreaterThan
	case OpLessThan:
		return &f.LessThan
	case OpGreaterThanOrEqual:
		return &f.GreaterThanOrEqual
	case OpLessThanOrEqual:
		return &f.LessThanOrEqual
	}
	return nil
}

// splitList joins repeated parameters and splits comma separated values.
// An empty parameter (title.in=) produces an empty, non-nil list.
func splitList(values []string) []string {
	list := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		list = append(list, strings.Split(v, ",")...)
	}
	return list
}
