package inflation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table is a tabular file held in memory, with its column names and rows
// exactly as stored.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ReadTable reads a comma separated table whose first record is the header.
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrDataUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read csv header: %v", ErrDataUnavailable, err)
	}
	t := &Table{Columns: make([]string, len(header))}
	for i, h := range header {
		// Spreadsheet exports often start with a byte order mark.
		t.Columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read csv: %v", ErrDataUnavailable, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// LoadTable reads the table stored in the file at path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return t, nil
}

// Index returns the position of the column, or -1.
func (t *Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// require returns the positions of the columns, or an error listing all the
// missing ones.
func (t *Table) require(columns ...string) ([]int, error) {
	idx := make([]int, len(columns))
	var errs error
	for i, c := range columns {
		idx[i] = t.Index(c)
		if idx[i] < 0 {
			errs = errors.Join(errs, fmt.Errorf("missing column %q", c))
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w (found %s)", ErrDataUnavailable, errs, strings.Join(t.Columns, ", "))
	}
	return idx, nil
}

// Head returns a table with the first n rows.
func (t *Table) Head(n int) *Table {
	if t == nil {
		return nil
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }
