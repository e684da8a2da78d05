package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/inflation"
	"github.com/etnz/inflation/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap/zapcore"
)

type corrCmd struct{}

func (*corrCmd) Name() string     { return "corr" }
func (*corrCmd) Synopsis() string { return "display the correlation matrix" }
func (*corrCmd) Usage() string {
	return `iia corr

  Displays the descriptive statistics of the merged series and their Pearson
  correlation matrix, with a description of each relationship.
`
}

func (c *corrCmd) SetFlags(f *flag.FlagSet) {}

func (c *corrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := newLogger(zapcore.WarnLevel)
	defer log.Sync()

	cfg, err := settings()
	if err != nil {
		return invalidConfig(err)
	}
	ds, err := inflation.Load(cfg.Sources())
	if err != nil {
		return notLoaded(log, err)
	}
	rows, err := ds.Merge(cfg.Pair())
	if err != nil {
		return notLoaded(log, err)
	}
	m, err := inflation.Correlate(rows, cfg.Pair())
	if err != nil {
		return notLoaded(log, &inflation.StageError{Stage: inflation.StageStatistics, Err: err})
	}

	var b strings.Builder
	b.WriteString("## Descriptive Statistics\n\n")
	b.WriteString(renderer.StatisticsMarkdown(inflation.Describe(rows, cfg.Pair())))
	b.WriteString("\n## Correlation Matrix\n\n")
	b.WriteString(renderer.CorrelationMarkdown(m))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
