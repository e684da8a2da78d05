package inflation

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Columns of the inflation dataset.
const (
	ColumnCountry       = "Country"
	ColumnInflationRate = "Inflation Rate"
)

// LoadInflation loads the inflation dataset from the CSV file at path.
func LoadInflation(path string) ([]InflationRecord, *Table, error) {
	t, err := LoadTable(path)
	if err != nil {
		return nil, nil, err
	}
	records, err := InflationRecords(t)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return records, t, nil
}

// DecodeInflation reads the inflation dataset from r.
func DecodeInflation(r io.Reader) ([]InflationRecord, error) {
	t, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return InflationRecords(t)
}

// InflationRecords converts a table with the Country, Year and Inflation Rate
// columns into records, in file order.
//
// A row with an empty rate is an absent observation and is skipped.
func InflationRecords(t *Table) ([]InflationRecord, error) {
	idx, err := t.require(ColumnCountry, ColumnYear, ColumnInflationRate)
	if err != nil {
		return nil, err
	}
	records := make([]InflationRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		line := i + 2 // 1-based, after the header
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrDataUnavailable, line, len(row), len(t.Columns))
		}
		raw := strings.TrimSpace(row[idx[2]])
		if raw == "" {
			continue
		}
		year, err := parseYear(row[idx[1]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrDataUnavailable, line, err)
		}
		rate, err := parseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrDataUnavailable, line, err)
		}
		records = append(records, InflationRecord{
			Country: strings.TrimSpace(row[idx[0]]),
			Year:    year,
			Rate:    rate,
		})
	}
	return records, nil
}

// LoadExchangeRates loads the exchange rate dataset from the CSV file at path.
// See ExchangeRateRecords for the meaning of column.
func LoadExchangeRates(path, column string) ([]ExchangeRateRecord, *Table, error) {
	t, err := LoadTable(path)
	if err != nil {
		return nil, nil, err
	}
	records, err := ExchangeRateRecords(t, column)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return records, t, nil
}

// DecodeExchangeRates reads the exchange rate dataset from r.
func DecodeExchangeRates(r io.Reader, column string) ([]ExchangeRateRecord, error) {
	t, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return ExchangeRateRecords(t, column)
}

// ExchangeRateRecords converts a table with a Year column and a value column
// into records, in file order.
//
// column names the value column. When empty, the table must have exactly one
// column besides Year.
func ExchangeRateRecords(t *Table, column string) ([]ExchangeRateRecord, error) {
	if column == "" {
		var err error
		column, err = valueColumn(t)
		if err != nil {
			return nil, err
		}
	}
	idx, err := t.require(ColumnYear, column)
	if err != nil {
		return nil, err
	}
	records := make([]ExchangeRateRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		line := i + 2
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrDataUnavailable, line, len(row), len(t.Columns))
		}
		raw := strings.TrimSpace(row[idx[1]])
		if raw == "" {
			continue
		}
		year, err := parseYear(row[idx[0]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrDataUnavailable, line, err)
		}
		rate, err := parseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrDataUnavailable, line, err)
		}
		records = append(records, ExchangeRateRecord{Year: year, Rate: rate})
	}
	return records, nil
}

// valueColumn finds the only column that is not Year.
func valueColumn(t *Table) (string, error) {
	var found []string
	for _, c := range t.Columns {
		if c != ColumnYear {
			found = append(found, c)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: no exchange rate column besides %q", ErrDataUnavailable, ColumnYear)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: ambiguous exchange rate column, candidates are %s", ErrDataUnavailable, strings.Join(found, ", "))
	}
}

// parseYear accepts "2000" and the "2000.0" that spreadsheets produce.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return int(f), nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
