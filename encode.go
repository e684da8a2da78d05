package inflation

// JSON encoding of the analysis, with a stable field order.

func (r MergedRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", r.Year)
	w.Append("exchangeRate", r.ExchangeRate)
	w.Append("inflationQuote", r.InflationQuote)
	w.Append("inflationBase", r.InflationBase)
	return w.MarshalJSON()
}

func (r ProjectedRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.MergedRow)
	w.Append("ratio", r.Ratio)
	w.Append("expectedRate", r.ExpectedRate)
	return w.MarshalJSON()
}

func (p *Projection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("initialRate", p.InitialRate)
	w.Append("rows", p.Rows)
	w.Append("latest", p.Latest)
	w.Append("deviation", float64(p.Deviation))
	return w.MarshalJSON()
}

func (m *CorrelationMatrix) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("series", m.Series)
	w.Append("values", m.Values)
	return w.MarshalJSON()
}

func (s Statistics) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("series", s.Series)
	w.Append("count", s.Count)
	w.Append("mean", s.Mean)
	w.Append("stdDev", s.StdDev)
	w.Append("min", s.Min)
	w.Append("max", s.Max)
	return w.MarshalJSON()
}

func (t *Table) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("columns", t.Columns)
	rows := t.Rows
	if rows == nil {
		rows = [][]string{}
	}
	w.Append("rows", rows)
	return w.MarshalJSON()
}

func (p Pair) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("base", p.Base)
	w.Append("quote", p.Quote)
	w.Optional("currency", p.Currency)
	w.Append("columns", p.Columns())
	return w.MarshalJSON()
}

// MarshalJSON encodes the whole analysis. The "summary" object holds the
// three headline metrics of the report.
func (a *Analysis) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("pair", a.Pair)
	w.Optional("inflationPreview", a.InflationPreview)
	w.Optional("exchangeRatesPreview", a.ExchangeRatesPreview)
	w.Append("rows", a.Rows)
	w.Append("statistics", a.Statistics)
	w.Append("correlation", a.Correlation)
	w.Append("projection", a.Projection)

	var summary jsonObjectWriter
	summary.Append("year", a.Projection.Latest.Year)
	summary.Append("actualRate", R(a.Projection.Latest.ExchangeRate, a.Pair.Currency))
	summary.Append("expectedRate", R(a.Projection.Latest.ExpectedRate, a.Pair.Currency))
	summary.Append("deviation", float64(a.Projection.Deviation))
	w.Append("summary", &summary)
	return w.MarshalJSON()
}
