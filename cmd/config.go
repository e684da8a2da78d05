package cmd

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/inflation"
	"github.com/spf13/viper"
)

const (
	DefaultInflationFile = "Inflation_Rates_Transformed.csv"
	DefaultRatesFile     = "USD_INR_Exchange_Rates_1980_2024.csv"
	DefaultAddr          = ":8080"

	// EnvPrefix prefixes the environment variables read as configuration,
	// e.g. IIA_RATES_FILE.
	EnvPrefix = "IIA"
)

// Config is the resolved configuration of a run.
//
// Each value comes from, by decreasing priority: an explicit command line
// flag, an IIA_* environment variable, the configuration file, the default.
type Config struct {
	InflationFile string `mapstructure:"inflation_file"`
	RatesFile     string `mapstructure:"rates_file"`
	RateColumn    string `mapstructure:"rate_column"`
	Base          string `mapstructure:"base"`
	Quote         string `mapstructure:"quote"`
	Currency      string `mapstructure:"currency"`
	Addr          string `mapstructure:"addr"`
}

// flagKeys maps global flags to their configuration key.
var flagKeys = map[string]string{
	"inflation-file": "inflation_file",
	"rates-file":     "rates_file",
	"rate-column":    "rate_column",
	"base":           "base",
	"quote":          "quote",
	"currency":       "currency",
}

func defaults() map[string]any {
	return map[string]any{
		"inflation_file": DefaultInflationFile,
		"rates_file":     DefaultRatesFile,
		"rate_column":    "",
		"base":           inflation.DefaultPair.Base,
		"quote":          inflation.DefaultPair.Quote,
		"currency":       inflation.DefaultPair.Currency,
		"addr":           DefaultAddr,
	}
}

// loadConfig resolves the configuration from the flags set in fs, the
// environment and the file named by the "config" flag, if any.
func loadConfig(fs *flag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading configuration file %q: %w", f.Value.String(), err)
		}
	}

	// Only flags set on the command line override the other sources.
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration describes a runnable analysis.
func (c *Config) Validate() error {
	var errs []error
	if c.InflationFile == "" {
		errs = append(errs, errors.New("missing inflation file"))
	}
	if c.RatesFile == "" {
		errs = append(errs, errors.New("missing exchange rates file"))
	}
	if c.Currency == "" {
		errs = append(errs, errors.New("missing currency"))
	} else if money.GetCurrency(strings.ToUpper(c.Currency)) == nil {
		errs = append(errs, fmt.Errorf("unknown currency %q", c.Currency))
	}
	if err := c.Pair().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Sources returns the input files of the analysis.
func (c *Config) Sources() inflation.Sources {
	return inflation.Sources{
		InflationFile: c.InflationFile,
		RatesFile:     c.RatesFile,
		RateColumn:    c.RateColumn,
	}
}

// Pair returns the compared countries.
func (c *Config) Pair() inflation.Pair {
	return inflation.Pair{Base: c.Base, Quote: c.Quote, Currency: strings.ToUpper(c.Currency)}
}
