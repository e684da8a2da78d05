package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions. They are also read as
// configuration, so an extension built on this package inherits the run's
// settings.
const (
	EnvInflationFile = EnvPrefix + "_INFLATION_FILE"
	EnvRatesFile     = EnvPrefix + "_RATES_FILE"
	EnvRateColumn    = EnvPrefix + "_RATE_COLUMN"
	EnvBase          = EnvPrefix + "_BASE"
	EnvQuote         = EnvPrefix + "_QUOTE"
	EnvCurrency      = EnvPrefix + "_CURRENCY"
	EnvVerbose       = EnvPrefix + "_VERBOSE"
)

// RunExtension attempts to find and execute an external iia-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	lp, err := exec.LookPath("iia-" + subcommand)
	if err != nil {
		return false, 0
	}

	cfg, err := loadConfig(flag.CommandLine)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid configuration: %v\n", err)
		return true, 2
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), extensionEnv(cfg)...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", lp, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the resolved configuration as environment variables.
func extensionEnv(cfg *Config) []string {
	return []string{
		EnvInflationFile + "=" + cfg.InflationFile,
		EnvRatesFile + "=" + cfg.RatesFile,
		EnvRateColumn + "=" + cfg.RateColumn,
		EnvBase + "=" + cfg.Base,
		EnvQuote + "=" + cfg.Quote,
		EnvCurrency + "=" + cfg.Currency,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
