package inflation

import (
	"fmt"
)

// ProjectedRow is a merged row with its Purchasing Power Parity projection.
type ProjectedRow struct {
	MergedRow
	Ratio        float64 // (1 + quote inflation) / (1 + base inflation)
	ExpectedRate float64 // exchange rate expected by PPP
}

// Projection is the PPP projection of the exchange rate over the merged rows.
type Projection struct {
	InitialRate float64
	Rows        []ProjectedRow
	Latest      ProjectedRow
	// Deviation of the latest actual rate from the expected one, relative to
	// the actual rate: positive when the actual rate is above the expectation.
	Deviation Percent
}

// Project computes the exchange rate expected by Purchasing Power Parity.
//
// Starting from the first actual rate, each year multiplies the expectation by
// the inflation ratio of that year, including the first one:
//
//	expected[i] = rows[0].ExchangeRate × ratio[0] × … × ratio[i]
//
// rows must be sorted by strictly ascending year, as Merge returns them.
func Project(rows []MergedRow) (*Projection, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: nothing to project", ErrMergeEmpty)
	}
	if err := checkAscending(rows); err != nil {
		return nil, err
	}

	p := &Projection{
		InitialRate: rows[0].ExchangeRate,
		Rows:        make([]ProjectedRow, len(rows)),
	}
	expected := p.InitialRate
	for i, r := range rows {
		ratio, err := Ratio(r.InflationQuote, r.InflationBase)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", r.Year, err)
		}
		expected *= ratio
		p.Rows[i] = ProjectedRow{MergedRow: r, Ratio: ratio, ExpectedRate: expected}
	}

	p.Latest = p.Rows[len(p.Rows)-1]
	dev, err := Deviation(p.Latest.ExchangeRate, p.Latest.ExpectedRate)
	if err != nil {
		return nil, fmt.Errorf("year %d: %w", p.Latest.Year, err)
	}
	p.Deviation = dev
	return p, nil
}

// Ratio returns the PPP growth factor of one year given both inflation rates
// in percent.
func Ratio(quote, base float64) (float64, error) {
	den := Percent(base).Factor()
	if den == 0 {
		return 0, fmt.Errorf("%w: base inflation of %v%%", ErrDivisionByZero, base)
	}
	return Percent(quote).Factor() / den, nil
}

// Deviation returns (actual - expected) / actual in percent.
func Deviation(actual, expected float64) (Percent, error) {
	if actual == 0 {
		return 0, fmt.Errorf("%w: actual exchange rate is 0", ErrDivisionByZero)
	}
	return Percent((actual - expected) / actual * 100), nil
}

// ExpectedRates returns the expected rate of each row, in order.
func (p *Projection) ExpectedRates() []float64 {
	rates := make([]float64, len(p.Rows))
	for i, r := range p.Rows {
		rates[i] = r.ExpectedRate
	}
	return rates
}
