package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"

	"github.com/garagon/yacare/internal/types"
)

// DefaultNAStrings are the cell values treated as missing when reading
// delimited files.
var DefaultNAStrings = []string{"", "NA", "NaN", "null"}

// ReadOptions control delimited-file ingestion.
type ReadOptions struct {
	// Delimiter defaults to ',' ('\t' is picked for .tsv files by ReadFile).
	Delimiter rune
	// NAStrings override DefaultNAStrings when non-nil.
	NAStrings []string
	// Factors lists column names to ingest as factor instead of character.
	Factors []string
}

// ReadFile reads a delimited file into a table, inferring a delimiter from
// the file extension unless one is set explicitly.
func ReadFile(path string, opts ReadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if opts.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		opts.Delimiter = '\t'
	}
	t, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

// Read reads delimited data with a header row into a table. Each column's
// effective class is inferred from its cells: all-integer columns become
// integer, other all-number columns numeric, everything else character (or
// factor when listed in opts.Factors).
func Read(r io.Reader, opts ReadOptions) (*Table, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", types.ErrInvalidArgument)
	}

	header := records[0]
	rows := records[1:]

	naSet := make(map[string]bool)
	naStrings := opts.NAStrings
	if naStrings == nil {
		naStrings = DefaultNAStrings
	}
	for _, s := range naStrings {
		naSet[s] = true
	}
	factorSet := make(map[string]bool)
	for _, name := range opts.Factors {
		factorSet[name] = true
	}

	cols := make([]*Column, len(header))
	for j, name := range header {
		cells := make([]string, len(rows))
		na := make([]bool, len(rows))
		for i, row := range rows {
			if j >= len(row) {
				na[i] = true
				continue
			}
			cell := strings.TrimSpace(row[j])
			if naSet[cell] {
				na[i] = true
				continue
			}
			cells[i] = cell
		}
		cols[j] = inferColumn(name, cells, na, factorSet[name])
	}

	return New(cols...)
}

// inferColumn picks the narrowest class that holds every non-missing cell.
func inferColumn(name string, cells []string, na []bool, factor bool) *Column {
	allInt := true
	allFloat := true
	for i, cell := range cells {
		if na[i] {
			continue
		}
		if allInt {
			if _, err := cast.ToInt64E(cell); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := cast.ToFloat64E(cell); err != nil {
				allFloat = false
			}
		}
		if !allInt && !allFloat {
			break
		}
	}

	switch {
	case allInt:
		vals := make([]int64, len(cells))
		for i, cell := range cells {
			if !na[i] {
				vals[i] = cast.ToInt64(cell)
			}
		}
		c := Integer(name, vals...)
		copy(c.na, na)
		return c
	case allFloat:
		vals := make([]float64, len(cells))
		for i, cell := range cells {
			if !na[i] {
				vals[i] = cast.ToFloat64(cell)
			}
		}
		c := Numeric(name, vals...)
		for i, missing := range na {
			if missing {
				c.na[i] = true
			}
		}
		return c
	case factor:
		c := Factor(name, cells...)
		copy(c.na, na)
		return c
	default:
		c := Character(name, cells...)
		copy(c.na, na)
		return c
	}
}
