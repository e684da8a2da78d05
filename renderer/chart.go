package renderer

import (
	"github.com/etnz/inflation"
)

// Colors of the series, in the order of the merged columns.
const (
	colorRate  = "#1f77b4"
	colorQuote = "#ff7f0e"
	colorBase  = "#2ca02c"
)

// ChartConfig describes a chart independently of the library drawing it.
type ChartConfig struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	XAxis  string        `json:"xAxis"`
	Height int           `json:"height"`
	Panels []ChartPanel  `json:"panels"`
	Series []ChartSeries `json:"series"`
}

// ChartPanel is one vertically stacked plot area of a chart.
type ChartPanel struct {
	Title string `json:"title"`
	YAxis string `json:"yAxis"`
}

// ChartSeries is a line of a chart.
type ChartSeries struct {
	Name   string    `json:"name"`
	Panel  int       `json:"panel"` // index in Panels
	Color  string    `json:"color"`
	Dashed bool      `json:"dashed,omitempty"`
	Marker string    `json:"marker,omitempty"`
	X      []int     `json:"x"`
	Y      []float64 `json:"y"`
}

// TrendsChart stacks the exchange rate and both inflation rates in three
// panels sharing the year axis.
func TrendsChart(rows []inflation.MergedRow, pair inflation.Pair) *ChartConfig {
	years := inflation.Years(rows)
	rate, quote, base := split(rows)
	return &ChartConfig{
		ID:     "trends",
		Title:  "Trends of Exchange Rate and Inflation Rates",
		XAxis:  "Year",
		Height: 800,
		Panels: []ChartPanel{
			{Title: "Trend of " + pair.ExchangeRateColumn() + " (" + pair.RateLabel() + ")", YAxis: pair.RateLabel()},
			{Title: "Trend of " + pair.QuoteInflationColumn(), YAxis: "Inflation Rate (%)"},
			{Title: "Trend of " + pair.BaseInflationColumn(), YAxis: "Inflation Rate (%)"},
		},
		Series: []ChartSeries{
			{Name: pair.ExchangeRateColumn(), Panel: 0, Color: colorRate, X: years, Y: rate},
			{Name: pair.QuoteInflationColumn(), Panel: 1, Color: colorQuote, X: years, Y: quote},
			{Name: pair.BaseInflationColumn(), Panel: 2, Color: colorBase, X: years, Y: base},
		},
	}
}

// ComparisonChart draws the three series on a single panel.
func ComparisonChart(rows []inflation.MergedRow, pair inflation.Pair) *ChartConfig {
	years := inflation.Years(rows)
	rate, quote, base := split(rows)
	return &ChartConfig{
		ID:     "comparison",
		Title:  "Comparative Analysis: Exchange Rate vs Inflation Rates",
		XAxis:  "Year",
		Height: 600,
		Panels: []ChartPanel{{YAxis: "Value"}},
		Series: []ChartSeries{
			{Name: pair.ExchangeRateColumn(), Color: colorRate, X: years, Y: rate},
			{Name: pair.QuoteInflationColumn(), Color: colorQuote, X: years, Y: quote},
			{Name: pair.BaseInflationColumn(), Color: colorBase, X: years, Y: base},
		},
	}
}

// PPPChart compares the actual exchange rate with the PPP expectation.
func PPPChart(p *inflation.Projection, pair inflation.Pair) *ChartConfig {
	years := make([]int, len(p.Rows))
	actual := make([]float64, len(p.Rows))
	for i, r := range p.Rows {
		years[i] = r.Year
		actual[i] = r.ExchangeRate
	}
	return &ChartConfig{
		ID:     "ppp",
		Title:  "Actual vs. PPP Expected Exchange Rate (" + pair.RateLabel() + ")",
		XAxis:  "Year",
		Height: 600,
		Panels: []ChartPanel{{YAxis: pair.ExchangeRateColumn() + " (" + pair.RateLabel() + ")"}},
		Series: []ChartSeries{
			{Name: "Actual Exchange Rate", Color: colorRate, X: years, Y: actual},
			{Name: "PPP Expected Rate", Color: colorQuote, Dashed: true, Marker: "diamond", X: years, Y: p.ExpectedRates()},
		},
	}
}

func split(rows []inflation.MergedRow) (rate, quote, base []float64) {
	rate = make([]float64, len(rows))
	quote = make([]float64, len(rows))
	base = make([]float64, len(rows))
	for i, r := range rows {
		rate[i], quote[i], base[i] = r.ExchangeRate, r.InflationQuote, r.InflationBase
	}
	return
}
