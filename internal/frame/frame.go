// Package frame implements the tabular data model: an ordered sequence of
// named, typed columns with explicit missing-value tracking. A column's
// effective class is fixed at construction and is the single authority that
// every diagnostic consults, so class-based filtering and class-dependent
// analysis always agree.
package frame

import (
	"fmt"
	"math"
	"sort"

	"github.com/garagon/yacare/internal/types"
)

// Column is one named, typed value sequence. Numeric and integer columns are
// backed by float64 storage; factor, ordered, and character columns by string
// storage. The NA mask is shared by all classes; for numeric columns a NaN
// value is also treated as missing.
type Column struct {
	name   string
	class  types.Class
	floats []float64
	strs   []string
	na     []bool
}

// Numeric creates a numeric column. NaN values are marked missing.
func Numeric(name string, vals ...float64) *Column {
	c := &Column{
		name:   name,
		class:  types.ClassNumeric,
		floats: append([]float64(nil), vals...),
		na:     make([]bool, len(vals)),
	}
	for i, v := range vals {
		if math.IsNaN(v) {
			c.na[i] = true
		}
	}
	return c
}

// Integer creates an integer column.
func Integer(name string, vals ...int64) *Column {
	c := &Column{
		name:   name,
		class:  types.ClassInteger,
		floats: make([]float64, len(vals)),
		na:     make([]bool, len(vals)),
	}
	for i, v := range vals {
		c.floats[i] = float64(v)
	}
	return c
}

// Character creates a character column.
func Character(name string, vals ...string) *Column {
	return stringColumn(name, types.ClassCharacter, vals)
}

// Factor creates an unordered categorical column.
func Factor(name string, vals ...string) *Column {
	return stringColumn(name, types.ClassFactor, vals)
}

// Ordered creates an ordered categorical column.
func Ordered(name string, vals ...string) *Column {
	return stringColumn(name, types.ClassOrdered, vals)
}

func stringColumn(name string, class types.Class, vals []string) *Column {
	return &Column{
		name:  name,
		class: class,
		strs:  append([]string(nil), vals...),
		na:    make([]bool, len(vals)),
	}
}

// WithNA marks the given 0-based positions as missing and returns the column
// for chaining during construction.
func (c *Column) WithNA(idx ...int) *Column {
	for _, i := range idx {
		if i >= 0 && i < len(c.na) {
			c.na[i] = true
		}
	}
	return c
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Class returns the effective class assigned at construction.
func (c *Column) Class() types.Class { return c.class }

// Len returns the number of entries, including missing ones.
func (c *Column) Len() int { return len(c.na) }

// IsNA reports whether the entry at 0-based position i is missing.
func (c *Column) IsNA(i int) bool { return c.na[i] }

// NACount returns the number of missing entries.
func (c *Column) NACount() int {
	n := 0
	for _, m := range c.na {
		if m {
			n++
		}
	}
	return n
}

// Float returns the entry at 0-based position i for numeric and integer
// columns. Missing entries and non-numeric columns yield NaN.
func (c *Column) Float(i int) float64 {
	if c.floats == nil || c.na[i] {
		return math.NaN()
	}
	return c.floats[i]
}

// Str returns the entry at 0-based position i for string-backed columns.
// Missing entries and numeric columns yield "".
func (c *Column) Str(i int) string {
	if c.strs == nil || c.na[i] {
		return ""
	}
	return c.strs[i]
}

// NonMissing returns the non-missing values of a numeric or integer column as
// a fresh slice. It returns nil for string-backed columns.
func (c *Column) NonMissing() []float64 {
	if c.floats == nil {
		return nil
	}
	out := make([]float64, 0, len(c.floats))
	for i, v := range c.floats {
		if !c.na[i] {
			out = append(out, v)
		}
	}
	return out
}

// Levels returns the sorted distinct non-missing values of a string-backed
// column. It returns nil for numeric columns.
func (c *Column) Levels() []string {
	if c.strs == nil {
		return nil
	}
	seen := make(map[string]bool)
	var levels []string
	for i, s := range c.strs {
		if c.na[i] || seen[s] {
			continue
		}
		seen[s] = true
		levels = append(levels, s)
	}
	sort.Strings(levels)
	return levels
}

// Distinct returns the number of distinct non-missing values.
func (c *Column) Distinct() int {
	if c.strs != nil {
		return len(c.Levels())
	}
	seen := make(map[float64]bool)
	for i, v := range c.floats {
		if !c.na[i] {
			seen[v] = true
		}
	}
	return len(seen)
}

// Descriptor returns the column's descriptor with the given 1-based position.
func (c *Column) Descriptor(pos int) types.ColumnDescriptor {
	return types.ColumnDescriptor{Name: c.name, Pos: pos, Class: c.class}
}

// Table is an ordered sequence of uniquely named columns. Column order is
// significant and stable. Diagnostics never mutate a table.
type Table struct {
	cols   []*Column
	byName map[string]int
}

// New creates a table from the given columns. Column names must be unique.
func New(cols ...*Column) (*Table, error) {
	t := &Table{
		cols:   cols,
		byName: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c == nil {
			return nil, fmt.Errorf("%w: nil column at position %d", types.ErrInvalidArgument, i+1)
		}
		if c.name == "" {
			return nil, fmt.Errorf("%w: empty column name at position %d", types.ErrInvalidArgument, i+1)
		}
		if _, dup := t.byName[c.name]; dup {
			return nil, fmt.Errorf("%w: duplicate column name %q", types.ErrInvalidArgument, c.name)
		}
		t.byName[c.name] = i
	}
	return t, nil
}

// MustNew is New for fixtures and tests; it panics on error.
func MustNew(cols ...*Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of columns.
func (t *Table) Len() int { return len(t.cols) }

// Column returns the column at 0-based position i.
func (t *Table) Column(i int) *Column { return t.cols[i] }

// Columns returns the columns in table order. The slice is shared; callers
// must not modify it.
func (t *Table) Columns() []*Column { return t.cols }

// ColumnByName returns the named column, or false if absent.
func (t *Table) ColumnByName(name string) (*Column, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}
