package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/inflation"
	"github.com/etnz/inflation/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap/zapcore"
)

type mergeCmd struct {
	json bool
}

func (*mergeCmd) Name() string     { return "merge" }
func (*mergeCmd) Synopsis() string { return "display the merged dataset" }
func (*mergeCmd) Usage() string {
	return `iia merge [-json]

  Joins the inflation rates of both countries with the exchange rates, on the
  years known in both files, and displays one row per year.
`
}

func (c *mergeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the rows as JSON")
}

func (c *mergeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			fmt.Fprintf(stderr, "Error encoding rows: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.MergedMarkdown(rows, cfg.Pair()))
	return subcommands.ExitSuccess
}
