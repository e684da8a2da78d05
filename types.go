package inflation

import "fmt"

// InflationRecord is one row of the inflation dataset.
type InflationRecord struct {
	Country string
	Year    int
	Rate    float64 // in percent
}

// ExchangeRateRecord is one row of the exchange rate dataset.
type ExchangeRateRecord struct {
	Year int
	Rate float64 // quote currency per unit of base currency
}

// Pair describes the two countries compared by the analysis.
//
// The exchange rate is expressed as Currency (the Quote country's currency)
// per unit of the Base country's currency.
type Pair struct {
	Base     string
	Quote    string
	Currency string
}

// DefaultPair compares India with the United States, with rates in INR per USD.
var DefaultPair = Pair{Base: "United States", Quote: "India", Currency: "INR"}

// Validate checks that the pair names two distinct countries.
func (p Pair) Validate() error {
	if p.Base == "" || p.Quote == "" {
		return fmt.Errorf("both countries must be set, got base=%q quote=%q", p.Base, p.Quote)
	}
	if p.Base == p.Quote {
		return fmt.Errorf("base and quote countries must differ, got %q twice", p.Base)
	}
	return nil
}

// shortNames are the abbreviations used in column names.
var shortNames = map[string]string{
	"United States":  "US",
	"United Kingdom": "UK",
}

func short(country string) string {
	if s, ok := shortNames[country]; ok {
		return s
	}
	return country
}

// Canonical column names of the merged dataset.
const ColumnYear = "Year"

// ExchangeRateColumn returns the column name of the exchange rate.
func (p Pair) ExchangeRateColumn() string { return "Exchange Rate" }

// QuoteInflationColumn returns the column name of the Quote country inflation.
func (p Pair) QuoteInflationColumn() string { return "Inflation Rate " + short(p.Quote) }

// BaseInflationColumn returns the column name of the Base country inflation.
func (p Pair) BaseInflationColumn() string { return "Inflation Rate " + short(p.Base) }

// Columns returns the canonical column names of the merged dataset, in order.
func (p Pair) Columns() []string {
	return []string{ColumnYear, p.ExchangeRateColumn(), p.QuoteInflationColumn(), p.BaseInflationColumn()}
}

// RateLabel returns a human label for the exchange rate, e.g. "INR/USD".
func (p Pair) RateLabel() string {
	base := currencyOf[p.Base]
	if base == "" {
		base = short(p.Base)
	}
	return p.Currency + "/" + base
}

var currencyOf = map[string]string{
	"United States":  "USD",
	"India":          "INR",
	"United Kingdom": "GBP",
	"Japan":          "JPY",
	"China":          "CNY",
}

// MergedRow is one year of the merged dataset.
type MergedRow struct {
	Year           int
	ExchangeRate   float64
	InflationQuote float64 // percent, the Quote country (India by default)
	InflationBase  float64 // percent, the Base country (United States by default)
}

// Values returns the numeric series of the row in canonical column order.
func (r MergedRow) Values() [3]float64 {
	return [3]float64{r.ExchangeRate, r.InflationQuote, r.InflationBase}
}
