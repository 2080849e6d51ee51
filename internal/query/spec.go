package query

import (
	"errors"
	"fmt"
)

// Mode selects what a query returns.
type Mode int

const (
	// ModeRows returns every matching row.
	ModeRows Mode = iota
	// ModeCount returns only the exact number of matching rows.
	ModeCount
	// ModeSingle returns exactly one row; zero or several matches is a provider error.
	ModeSingle
)

func (m Mode) String() string {
	switch m {
	case ModeRows:
		return "rows"
	case ModeCount:
		return "count"
	case ModeSingle:
		return "single"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Filter is an equality filter on a named column.
type Filter struct {
	Column string
	Value  string
}

// Order sorts the result on one column.
type Order struct {
	Column     string
	Descending bool
}

// Range restricts the result to the zero-based rows From..To, both inclusive.
type Range struct {
	From int
	To   int
}

// Spec is a declarative query against one table. It is a plain value:
// build it, pass it to Client.Execute, and it can be inspected afterwards.
type Spec struct {
	Table   string
	Columns string // defaults to "*"
	Filters []Filter
	Order   *Order
	Range   *Range
	Mode    Mode
}

// Eq is shorthand for an equality filter.
func Eq(column, value string) Filter {
	return Filter{Column: column, Value: value}
}

// Validate rejects malformed queries before anything is sent.
func (s Spec) Validate() error {
	if s.Table == "" {
		return errors.New("query spec: table is required")
	}
	for i, f := range s.Filters {
		if f.Column == "" {
			return fmt.Errorf("query spec %s: filter %d has no column", s.Table, i)
		}
	}
	if s.Order != nil && s.Order.Column == "" {
		return fmt.Errorf("query spec %s: order has no column", s.Table)
	}
	if s.Range != nil {
		if s.Range.From < 0 {
			return fmt.Errorf("query spec %s: range start %d is negative", s.Table, s.Range.From)
		}
		if s.Range.To < s.Range.From {
			return fmt.Errorf("query spec %s: range end %d is before start %d", s.Table, s.Range.To, s.Range.From)
		}
	}
	switch s.Mode {
	case ModeRows, ModeCount, ModeSingle:
	default:
		return fmt.Errorf("query spec %s: unknown %s", s.Table, s.Mode)
	}
	return nil
}

func (s Spec) columns() string {
	if s.Columns == "" {
		return "*"
	}
	return s.Columns
}
