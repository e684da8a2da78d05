package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/inflation"
	"github.com/etnz/inflation/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type pppCmd struct{}

func (*pppCmd) Name() string     { return "ppp" }
func (*pppCmd) Synopsis() string { return "display the purchasing power parity projection" }
func (*pppCmd) Usage() string {
	return `iia ppp

  Projects the exchange rate expected by purchasing power parity from the
  first actual rate and the inflation rates of both countries, and compares
  it with the actual rate of the latest year.
`
}

func (c *pppCmd) SetFlags(f *flag.FlagSet) {}

func (c *pppCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := newLogger(zapcore.WarnLevel)
	defer log.Sync()

	cfg, err := settings()
	if err != nil {
		return invalidConfig(err)
	}
	rows, p, err := inflation.ProjectSources(cfg.Sources(), cfg.Pair())
	if err != nil {
		return notLoaded(log, err)
	}
	log.Debug("projected", zap.Int("rows", len(rows)), zap.Float64("initial_rate", p.InitialRate))

	var b strings.Builder
	b.WriteString("## Calculation Details\n\n")
	b.WriteString(renderer.ProjectionMarkdown(p, cfg.Pair()))
	b.WriteString("\n## Latest Year\n\n")
	b.WriteString(renderer.MetricsMarkdown(p, cfg.Pair()))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
