package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/inflation"
	md "github.com/nao1215/markdown"
)

// TableMarkdown renders a raw dataset table.
func TableMarkdown(t *inflation.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Header: t.Columns,
		Rows:   [][]string{},
	}
	for _, row := range t.Rows {
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}

// MergedMarkdown renders the merged dataset.
func MergedMarkdown(rows []inflation.MergedRow, pair inflation.Pair) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    pair.Columns(),
		Rows:      [][]string{},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(r.Year),
			inflation.R(r.ExchangeRate, "").Fixed(),
			inflation.Percent(r.InflationQuote).String(),
			inflation.Percent(r.InflationBase).String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// StatisticsMarkdown renders the descriptive statistics of each series.
func StatisticsMarkdown(stats []inflation.Statistics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Series", "Count", "Mean", "Std Dev", "Min", "Max"},
		Rows:      [][]string{},
	}
	for _, s := range stats {
		table.Rows = append(table.Rows, []string{
			s.Series,
			strconv.Itoa(s.Count),
			round2(s.Mean),
			round2(s.StdDev),
			round2(s.Min),
			round2(s.Max),
		})
	}
	doc.Table(table)
	return doc.String()
}

// CorrelationMarkdown renders the correlation matrix followed by the findings.
func CorrelationMarkdown(m *inflation.CorrelationMatrix) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	header := append([]string{""}, m.Series[:]...)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    header,
		Rows:      [][]string{},
	}
	for i, name := range m.Series {
		row := []string{name}
		for j := range m.Series {
			row = append(row, fmt.Sprintf("%.2f", m.At(i, j)))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	doc.PlainText(md.Bold("Findings from the correlation analysis:"))
	doc.BulletList(Findings(m)...)
	return doc.String()
}

// Findings describes each pair of series of the correlation matrix.
func Findings(m *inflation.CorrelationMatrix) []string {
	var findings []string
	for i := 0; i < len(m.Series); i++ {
		for j := i + 1; j < len(m.Series); j++ {
			r := m.At(i, j)
			findings = append(findings, fmt.Sprintf("%s vs. %s: the coefficient is %.2f, a %s relationship.",
				m.Series[i], m.Series[j], r, inflation.Strength(r)))
		}
	}
	return findings
}

// ProjectionMarkdown renders the PPP calculation details.
func ProjectionMarkdown(p *inflation.Projection, pair inflation.Pair) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    append(pair.Columns(), "Expected Exchange Rate (PPP)"),
		Rows:      [][]string{},
	}
	for _, r := range p.Rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(r.Year),
			inflation.R(r.ExchangeRate, "").Fixed(),
			inflation.Percent(r.InflationQuote).String(),
			inflation.Percent(r.InflationBase).String(),
			inflation.R(r.ExpectedRate, "").Fixed(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Metric is a headline figure of the report.
type Metric struct {
	Label string
	Value string
}

// Metrics returns the three headline figures of the PPP analysis.
func Metrics(p *inflation.Projection, pair inflation.Pair) []Metric {
	return []Metric{
		{Label: "Latest Actual Rate", Value: inflation.R(p.Latest.ExchangeRate, pair.Currency).String()},
		{Label: "Latest PPP Expected", Value: inflation.R(p.Latest.ExpectedRate, pair.Currency).String()},
		{Label: "Deviation", Value: p.Deviation.Short()},
	}
}

// MetricsMarkdown renders the headline figures as a table.
func MetricsMarkdown(p *inflation.Projection, pair inflation.Pair) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{fmt.Sprintf("PPP in %d", p.Latest.Year), pair.RateLabel()},
		Rows:      [][]string{},
	}
	for _, m := range Metrics(p, pair) {
		table.Rows = append(table.Rows, []string{m.Label, m.Value})
	}
	doc.Table(table)
	return doc.String()
}

// ReportMarkdown renders the complete analysis, narrative included. Charts
// only exist in the HTML report.
func ReportMarkdown(a *inflation.Analysis) (string, error) {
	secs, err := sections(a)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Inflation Impact Analysis: %s and %s\n\n", a.Pair.Quote, a.Pair.Base)
	for _, s := range secs {
		b.WriteString(s.Narrative)
		for _, p := range s.Parts {
			if p.Markdown == "" {
				continue
			}
			if p.Title != "" {
				fmt.Fprintf(&b, "\n### %s\n\n", p.Title)
			}
			b.WriteString(p.Markdown)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func round2(v float64) string { return inflation.R(v, "").Fixed() }
