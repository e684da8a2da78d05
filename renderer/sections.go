package renderer

import (
	"github.com/etnz/inflation"
	"github.com/etnz/inflation/docs"
)

// section is a narrative topic followed by the figures that illustrate it.
type section struct {
	Topic     string
	Narrative string // markdown
	Parts     []part
}

// part is a titled table, chart or set of metrics. Metrics, when set, are
// shown as cards in HTML in place of their Markdown table.
type part struct {
	Title    string
	Markdown string
	Chart    *ChartConfig
	Metrics  []Metric
}

// sections lays out the report in reading order.
func sections(a *inflation.Analysis) ([]section, error) {
	layout := []section{
		{Topic: "overview"},
		{Topic: "datasets", Parts: []part{
			{Title: "Inflation Rates Dataset", Markdown: TableMarkdown(a.InflationPreview)},
			{Title: a.Pair.RateLabel() + " Exchange Rates Dataset", Markdown: TableMarkdown(a.ExchangeRatesPreview)},
			{Title: "Merged Dataset", Markdown: MergedMarkdown(a.Rows, a.Pair)},
			{Title: "Descriptive Statistics", Markdown: StatisticsMarkdown(a.Statistics)},
		}},
		{Topic: "trends", Parts: []part{
			{Chart: TrendsChart(a.Rows, a.Pair)},
		}},
		{Topic: "correlation", Parts: []part{
			{Title: "Correlation Matrix", Markdown: CorrelationMarkdown(a.Correlation)},
		}},
		{Topic: "comparison", Parts: []part{
			{Chart: ComparisonChart(a.Rows, a.Pair)},
		}},
		{Topic: "ppp", Parts: []part{
			{Chart: PPPChart(a.Projection, a.Pair)},
			{Title: "Calculation Details", Markdown: ProjectionMarkdown(a.Projection, a.Pair)},
			{Title: "Latest Year", Markdown: MetricsMarkdown(a.Projection, a.Pair), Metrics: Metrics(a.Projection, a.Pair)},
		}},
		{Topic: "conclusion"},
	}
	for i := range layout {
		narrative, err := docs.GetTopic(layout[i].Topic)
		if err != nil {
			return nil, err
		}
		layout[i].Narrative = narrative
	}
	return layout, nil
}
