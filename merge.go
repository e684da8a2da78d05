package inflation

import (
	"errors"
	"fmt"
	"sort"
)

// Merge joins the inflation of both countries of the pair with the exchange
// rates, one row per year, sorted by year.
//
// Inflation records of other countries are ignored. Only the years where both
// countries and the exchange rate are known survive: missing years are
// dropped, never interpolated.
//
// A duplicated (country, year) or exchange rate year is an ErrDuplicateRecord,
// and an empty result is an ErrMergeEmpty.
func Merge(inflation []InflationRecord, rates []ExchangeRateRecord, pair Pair) ([]MergedRow, error) {
	if err := pair.Validate(); err != nil {
		return nil, err
	}

	// pivot: year -> country values
	type pivotRow struct {
		quote, base       float64
		hasQuote, hasBase bool
	}
	pivot := make(map[int]*pivotRow)
	var errs error
	for _, rec := range inflation {
		if rec.Country != pair.Quote && rec.Country != pair.Base {
			continue
		}
		p, ok := pivot[rec.Year]
		if !ok {
			p = new(pivotRow)
			pivot[rec.Year] = p
		}
		switch rec.Country {
		case pair.Quote:
			if p.hasQuote {
				errs = errors.Join(errs, fmt.Errorf("%w: inflation of %s in %d", ErrDuplicateRecord, rec.Country, rec.Year))
			}
			p.quote, p.hasQuote = rec.Rate, true
		case pair.Base:
			if p.hasBase {
				errs = errors.Join(errs, fmt.Errorf("%w: inflation of %s in %d", ErrDuplicateRecord, rec.Country, rec.Year))
			}
			p.base, p.hasBase = rec.Rate, true
		}
	}

	seen := make(map[int]bool, len(rates))
	var rows []MergedRow
	for _, rate := range rates {
		if seen[rate.Year] {
			errs = errors.Join(errs, fmt.Errorf("%w: exchange rate in %d", ErrDuplicateRecord, rate.Year))
			continue
		}
		seen[rate.Year] = true

		p, ok := pivot[rate.Year]
		if !ok || !p.hasQuote || !p.hasBase {
			continue
		}
		rows = append(rows, MergedRow{
			Year:           rate.Year,
			ExchangeRate:   rate.Rate,
			InflationQuote: p.quote,
			InflationBase:  p.base,
		})
	}
	if errs != nil {
		return nil, errs
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w between the exchange rates and the inflation of %s and %s", ErrMergeEmpty, pair.Quote, pair.Base)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows, nil
}

// Years returns the years of the rows, in order.
func Years(rows []MergedRow) []int {
	years := make([]int, len(rows))
	for i, r := range rows {
		years[i] = r.Year
	}
	return years
}

// checkAscending verifies that years are strictly increasing.
func checkAscending(rows []MergedRow) error {
	for i := 1; i < len(rows); i++ {
		if rows[i].Year <= rows[i-1].Year {
			return fmt.Errorf("%w: %d after %d", ErrUnordered, rows[i].Year, rows[i-1].Year)
		}
	}
	return nil
}
