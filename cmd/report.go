package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/inflation"
	"github.com/etnz/inflation/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Report formats.
const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

type reportCmd struct {
	format string
	output string
	query  string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate the complete inflation impact report" }
func (*reportCmd) Usage() string {
	return `iia report [-format md|html|json] [-o <file>] [-q <jsonpath>]

  Runs the whole analysis and generates the report: narrative, datasets,
  descriptive statistics, correlation, purchasing power parity and charts
  (html only).

  With -format json, -q selects part of the analysis with a JSONPath
  expression, e.g. '$.summary.deviation' or '$.rows[-1:].exchangeRate'.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", FormatMarkdown, "report format: md, html or json")
	f.StringVar(&c.output, "o", "", "write the report to this file instead of stdout")
	f.StringVar(&c.query, "q", "", "JSONPath query applied to the json report")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := newLogger(zapcore.WarnLevel)
	defer log.Sync()

	switch c.format {
	case FormatMarkdown, FormatHTML, FormatJSON:
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q, want md, html or json\n", c.format)
		return subcommands.ExitUsageError
	}
	if c.query != "" && c.format != FormatJSON {
		fmt.Fprintln(stderr, "Error: -q requires -format json")
		return subcommands.ExitUsageError
	}

	cfg, err := settings()
	if err != nil {
		return invalidConfig(err)
	}
	a, err := inflation.Analyze(cfg.Sources(), cfg.Pair())
	if err != nil {
		return notLoaded(log, err)
	}
	log.Debug("analysed", zap.Int("rows", len(a.Rows)), zap.String("format", c.format))

	var out bytes.Buffer
	switch c.format {
	case FormatMarkdown:
		md, err := renderer.ReportMarkdown(a)
		if err != nil {
			fmt.Fprintf(stderr, "Error rendering report: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.output == "" {
			printMarkdown(md)
			return subcommands.ExitSuccess
		}
		out.WriteString(md)
	case FormatHTML:
		if err := renderer.HTML(&out, a); err != nil {
			fmt.Fprintf(stderr, "Error rendering report: %v\n", err)
			return subcommands.ExitFailure
		}
	case FormatJSON:
		if err := encodeJSON(&out, a, c.query); err != nil {
			fmt.Fprintf(stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if c.output == "" {
		stdout.Write(out.Bytes())
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, out.Bytes(), 0644); err != nil {
		fmt.Fprintf(stderr, "Error writing report %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	log.Info("report written", zap.String("file", c.output))
	return subcommands.ExitSuccess
}

// encodeJSON writes the analysis, or the part of it selected by query, as
// indented JSON.
func encodeJSON(buf *bytes.Buffer, a *inflation.Analysis, query string) error {
	var v any = a
	if query != "" {
		data, err := json.Marshal(a)
		if err != nil {
			return err
		}
		var jobj any
		if err := json.Unmarshal(data, &jobj); err != nil {
			return err
		}
		if v, err = jsonpath.Get(query, jobj); err != nil {
			return fmt.Errorf("evaluating %q: %w", query, err)
		}
	}
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
