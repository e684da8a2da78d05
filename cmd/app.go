// Package cmd implements the iia CLI: it analyses the impact of inflation on
// an exchange rate and reports it in the terminal, in files or over HTTP.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/inflation"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Commands lists the subcommands, in the order of the help message.
var Commands = []subcommands.Command{
	&mergeCmd{},
	&corrCmd{},
	&pppCmd{},
	&reportCmd{},
	&serveCmd{},
	&topicCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "analysis")
	}
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile    = flag.String("config", "", "Path to a configuration file (yaml, toml or json)")
	inflationFile = flag.String("inflation-file", DefaultInflationFile, "Path to the inflation rates CSV file (Country, Year, Inflation Rate)")
	ratesFile     = flag.String("rates-file", DefaultRatesFile, "Path to the exchange rates CSV file (Year and one rate column)")
	rateColumn    = flag.String("rate-column", "", "Name of the exchange rate column, inferred when empty")
	baseCountry   = flag.String("base", inflation.DefaultPair.Base, "Country of the base currency")
	quoteCountry  = flag.String("quote", inflation.DefaultPair.Quote, "Country of the quote currency")
	currency      = flag.String("currency", inflation.DefaultPair.Currency, "ISO code of the quote currency")
	Verbose       = flag.Bool("v", false, "Verbose logging")
)

// stdout and stderr are the outputs of the commands.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// settings returns the validated configuration of the run.
func settings() (*Config, error) {
	cfg, err := loadConfig(flag.CommandLine)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// notLoaded reports a pipeline failure.
func notLoaded(log *zap.Logger, err error) subcommands.ExitStatus {
	stage, _ := inflation.FailedStage(err)
	log.Debug("pipeline failed", zap.String("stage", string(stage)), zap.Error(err))
	fmt.Fprintf(stderr, "Error: data not loaded: %v\n", err)
	return subcommands.ExitFailure
}

// invalidConfig reports a configuration error.
func invalidConfig(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: invalid configuration: %v\n", err)
	return subcommands.ExitUsageError
}
