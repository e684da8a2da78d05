package renderer

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/etnz/inflation"
	"github.com/etnz/inflation/docs"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/*.html"))

// gfm converts markdown to HTML, with tables. Raw HTML in the source is
// escaped, not rendered.
var gfm = goldmark.New(goldmark.WithExtensions(extension.GFM))

// PlotlyURL is the plotly.js bundle loaded by the HTML report.
var PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

type htmlPage struct {
	Title     string
	PlotlyURL string
	Sections  []htmlSection
	Error     *htmlError
}

type htmlSection struct {
	ID        string
	Title     string
	Narrative template.HTML
	Parts     []htmlPart
}

type htmlPart struct {
	Title   string
	Table   template.HTML
	ChartID string
	Figure  template.JS
	Height  int
	Metrics []Metric
}

type htmlError struct {
	Stage  string
	Detail string
}

// HTML writes the analysis as a self-contained HTML page with interactive
// charts.
func HTML(w io.Writer, a *inflation.Analysis) error {
	secs, err := sections(a)
	if err != nil {
		return err
	}
	p := htmlPage{
		Title:     fmt.Sprintf("Inflation Impact Analysis: %s and %s", a.Pair.Quote, a.Pair.Base),
		PlotlyURL: PlotlyURL,
	}
	for _, s := range secs {
		hs := htmlSection{ID: s.Topic}
		if hs.Title, err = docs.Title(s.Topic); err != nil {
			return err
		}
		if hs.Narrative, err = toHTML(s.Narrative); err != nil {
			return err
		}
		for _, pt := range s.Parts {
			hp := htmlPart{Title: pt.Title, Metrics: pt.Metrics}
			switch {
			case pt.Chart != nil:
				fig, err := plotlyFigure(pt.Chart)
				if err != nil {
					return err
				}
				hp.ChartID, hp.Figure, hp.Height = pt.Chart.ID, fig, pt.Chart.Height
			case pt.Metrics == nil:
				if hp.Table, err = toHTML(pt.Markdown); err != nil {
					return err
				}
			}
			hs.Parts = append(hs.Parts, hp)
		}
		p.Sections = append(p.Sections, hs)
	}
	return page.ExecuteTemplate(w, "report.html", p)
}

// ErrorHTML writes a page reporting that the data could not be loaded.
func ErrorHTML(w io.Writer, err error) error {
	p := htmlPage{
		Title: "Inflation Impact Analysis",
		Error: &htmlError{Detail: err.Error()},
	}
	if stage, ok := inflation.FailedStage(err); ok {
		p.Error.Stage = string(stage)
	}
	return page.ExecuteTemplate(w, "report.html", p)
}

func toHTML(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := gfm.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// plotlyFigure converts a chart into a plotly.js figure: one trace per series,
// one y axis per panel, all panels sharing the x axis.
func plotlyFigure(c *ChartConfig) (template.JS, error) {
	n := len(c.Panels)
	var traces []map[string]any
	for _, s := range c.Series {
		line := map[string]any{"color": s.Color, "width": 2}
		if s.Dashed {
			line["dash"] = "dash"
		}
		marker := map[string]any{"size": 8, "color": s.Color}
		if s.Marker != "" {
			marker["symbol"] = s.Marker
		}
		traces = append(traces, map[string]any{
			"type":   "scatter",
			"mode":   "lines+markers",
			"name":   s.Name,
			"x":      s.X,
			"y":      s.Y,
			"xaxis":  "x",
			"yaxis":  axisRef("y", s.Panel),
			"line":   line,
			"marker": marker,
		})
	}

	layout := map[string]any{
		"title":      map[string]any{"text": c.Title},
		"template":   "plotly_white",
		"height":     c.Height,
		"hovermode":  "x unified",
		"showlegend": n == 1,
		"xaxis":      map[string]any{"title": map[string]any{"text": c.XAxis}},
	}
	if n > 1 {
		layout["grid"] = map[string]any{"rows": n, "columns": 1, "pattern": "coupled", "ygap": 0.25}
	}
	var annotations []map[string]any
	for i, p := range c.Panels {
		layout[axisKey(i)] = map[string]any{"title": map[string]any{"text": p.YAxis}}
		if p.Title != "" {
			annotations = append(annotations, map[string]any{
				"text":      p.Title,
				"showarrow": false,
				"xref":      "paper",
				"yref":      axisRef("y", i) + " domain",
				"x":         0.5,
				"y":         1.15,
				"xanchor":   "center",
			})
		}
	}
	if annotations != nil {
		layout["annotations"] = annotations
	}

	data, err := json.Marshal(map[string]any{"data": traces, "layout": layout})
	if err != nil {
		return "", fmt.Errorf("encoding chart %q: %w", c.ID, err)
	}
	return template.JS(data), nil
}

// axisRef returns the plotly reference of the i-th axis: "y", "y2", "y3"...
func axisRef(prefix string, i int) string {
	if i == 0 {
		return prefix
	}
	return prefix + strconv.Itoa(i+1)
}

// axisKey returns the layout key of the i-th y axis: "yaxis", "yaxis2"...
func axisKey(i int) string {
	if i == 0 {
		return "yaxis"
	}
	return "yaxis" + strconv.Itoa(i+1)
}
