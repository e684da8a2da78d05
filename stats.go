package inflation

import (
	"fmt"
	"math"
)

// CorrelationMatrix holds the Pearson correlation coefficients between the
// exchange rate and both inflation series.
type CorrelationMatrix struct {
	Series [3]string
	Values [3][3]float64
}

// At returns the coefficient between series i and j.
func (m *CorrelationMatrix) At(i, j int) float64 { return m.Values[i][j] }

// Get returns the coefficient between two series by name.
func (m *CorrelationMatrix) Get(a, b string) (float64, bool) {
	i, j := m.index(a), m.index(b)
	if i < 0 || j < 0 {
		return math.NaN(), false
	}
	return m.Values[i][j], true
}

func (m *CorrelationMatrix) index(name string) int {
	for i, s := range m.Series {
		if s == name {
			return i
		}
	}
	return -1
}

// Correlate computes the correlation matrix of the merged rows.
//
// It needs at least two rows (ErrInsufficientData) and no constant series
// (ErrZeroVariance).
func Correlate(rows []MergedRow, pair Pair) (*CorrelationMatrix, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: correlation needs at least 2 rows, got %d", ErrInsufficientData, len(rows))
	}
	names := seriesNames(pair)
	series := columns(rows)

	var means, norms [3]float64
	for k := range series {
		if constant(series[k]) {
			return nil, fmt.Errorf("%w: %q is constant", ErrZeroVariance, names[k])
		}
		// r is scale invariant, and unit scale keeps the sums finite.
		series[k] = scaled(series[k])
		means[k] = mean(series[k])
		for _, x := range series[k] {
			d := x - means[k]
			norms[k] += d * d
		}
		if norms[k] == 0 {
			return nil, fmt.Errorf("%w: %q is constant", ErrZeroVariance, names[k])
		}
	}

	m := &CorrelationMatrix{Series: names}
	for i := 0; i < 3; i++ {
		m.Values[i][i] = 1
		for j := i + 1; j < 3; j++ {
			var cov float64
			for n := range rows {
				cov += (series[i][n] - means[i]) * (series[j][n] - means[j])
			}
			r := cov / math.Sqrt(norms[i]*norms[j])
			// rounding can push |r| slightly above 1
			r = math.Max(-1, math.Min(1, r))
			m.Values[i][j], m.Values[j][i] = r, r
		}
	}
	return m, nil
}

// Statistics describes one series.
type Statistics struct {
	Series string
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation, 0 when Count < 2
	Min    float64
	Max    float64
}

// Describe computes descriptive statistics for each series of the rows.
func Describe(rows []MergedRow, pair Pair) []Statistics {
	names := seriesNames(pair)
	series := columns(rows)
	stats := make([]Statistics, 3)
	for k := range series {
		s := Statistics{Series: names[k], Count: len(series[k])}
		if s.Count > 0 {
			s.Mean = mean(series[k])
			s.Min, s.Max = series[k][0], series[k][0]
			var ss float64
			for _, x := range series[k] {
				s.Min = math.Min(s.Min, x)
				s.Max = math.Max(s.Max, x)
				ss += (x - s.Mean) * (x - s.Mean)
			}
			if s.Count > 1 {
				s.StdDev = math.Sqrt(ss / float64(s.Count-1))
			}
		}
		stats[k] = s
	}
	return stats
}

// Strength qualifies a correlation coefficient, e.g. "weak negative".
func Strength(r float64) string {
	a := math.Abs(r)
	var s string
	switch {
	case a < 0.1:
		return "negligible"
	case a < 0.4:
		s = "weak"
	case a < 0.7:
		s = "moderate"
	default:
		s = "strong"
	}
	if r < 0 {
		return s + " negative"
	}
	return s + " positive"
}

func seriesNames(pair Pair) [3]string {
	return [3]string{pair.ExchangeRateColumn(), pair.QuoteInflationColumn(), pair.BaseInflationColumn()}
}

// columns transposes rows into the three numeric series.
func columns(rows []MergedRow) [3][]float64 {
	var cols [3][]float64
	for k := range cols {
		cols[k] = make([]float64, len(rows))
	}
	for n, r := range rows {
		for k, v := range r.Values() {
			cols[k][n] = v
		}
	}
	return cols
}

func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

// scaled divides xs by its largest magnitude.
func scaled(xs []float64) []float64 {
	var m float64
	for _, x := range xs {
		m = math.Max(m, math.Abs(x))
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x / m
	}
	return out
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
