package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTestData points the global flags to the test datasets.
func useTestData(t *testing.T) {
	t.Helper()
	require.NoError(t, flag.CommandLine.Set("inflation-file", "../testdata/inflation.csv"))
	require.NoError(t, flag.CommandLine.Set("rates-file", "../testdata/rates.csv"))
}

// run executes cmd with args and returns its exit status and outputs.
func run(t *testing.T, cmd subcommands.Command, args ...string) (subcommands.ExitStatus, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	stdout, stderr = &out, &errOut
	t.Cleanup(func() { stdout, stderr = os.Stdout, os.Stderr })

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	status := cmd.Execute(context.Background(), fs)
	return status, out.String(), errOut.String()
}

func TestMergeCmd(t *testing.T) {
	useTestData(t)

	status, out, _ := run(t, &mergeCmd{})
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Inflation Rate India")
	assert.Contains(t, out, "44.94")
	assert.Contains(t, out, "4.01%")

	status, out, _ = run(t, &mergeCmd{}, "-json")
	require.Equal(t, subcommands.ExitSuccess, status)
	var rows []map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, 2004.0, rows[4]["year"])
}

func TestCorrCmd(t *testing.T) {
	useTestData(t)

	status, out, _ := run(t, &corrCmd{})
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "## Descriptive Statistics")
	assert.Contains(t, out, "## Correlation Matrix")
	assert.Contains(t, out, "Findings from the correlation analysis")
}

func TestPPPCmd(t *testing.T) {
	useTestData(t)

	status, out, _ := run(t, &pppCmd{})
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Expected Exchange Rate (PPP)")
	assert.Contains(t, out, "PPP in 2004")
	assert.Contains(t, out, "Deviation")
}

func TestReportCmd(t *testing.T) {
	useTestData(t)

	t.Run("markdown", func(t *testing.T) {
		status, out, _ := run(t, &reportCmd{})
		require.Equal(t, subcommands.ExitSuccess, status)
		assert.Contains(t, out, "# Inflation Impact Analysis: India and United States")
		assert.Contains(t, out, "## Conclusion")
	})

	t.Run("html file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.html")
		status, out, _ := run(t, &reportCmd{}, "-format", "html", "-o", path)
		require.Equal(t, subcommands.ExitSuccess, status)
		assert.Empty(t, out)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "<!DOCTYPE html>"))
		assert.Contains(t, string(content), `id="chart-trends"`)
	})

	t.Run("json", func(t *testing.T) {
		status, out, _ := run(t, &reportCmd{}, "-format", "json")
		require.Equal(t, subcommands.ExitSuccess, status)
		var a map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &a))
		for _, key := range []string{"pair", "rows", "statistics", "correlation", "projection", "summary"} {
			assert.Contains(t, a, key)
		}
	})

	t.Run("json query", func(t *testing.T) {
		status, out, _ := run(t, &reportCmd{}, "-format", "json", "-q", "$.summary.year")
		require.Equal(t, subcommands.ExitSuccess, status)
		assert.Equal(t, "2004\n", out)
	})

	t.Run("unknown format", func(t *testing.T) {
		status, _, errOut := run(t, &reportCmd{}, "-format", "pdf")
		assert.Equal(t, subcommands.ExitUsageError, status)
		assert.Contains(t, errOut, "unknown format")
	})

	t.Run("query without json", func(t *testing.T) {
		status, _, _ := run(t, &reportCmd{}, "-q", "$.rows")
		assert.Equal(t, subcommands.ExitUsageError, status)
	})
}

func TestDataNotLoaded(t *testing.T) {
	useTestData(t)
	require.NoError(t, flag.CommandLine.Set("inflation-file", "../testdata/missing.csv"))
	t.Cleanup(func() { useTestData(t) })

	for _, cmd := range []subcommands.Command{&mergeCmd{}, &corrCmd{}, &pppCmd{}, &reportCmd{}} {
		t.Run(cmd.Name(), func(t *testing.T) {
			status, out, errOut := run(t, cmd)
			assert.Equal(t, subcommands.ExitFailure, status)
			assert.Empty(t, out)
			assert.True(t, strings.HasPrefix(errOut, "Error: data not loaded: "), "stderr = %q", errOut)
			assert.Contains(t, errOut, "missing.csv")
		})
	}
}

func TestTopicCmd(t *testing.T) {
	status, out, _ := run(t, &topicCmd{}, "ppp")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "## Purchasing Power Parity")

	status, out, _ = run(t, &topicCmd{})
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "correlation")

	status, _, errOut := run(t, &topicCmd{}, "unknown")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "unknown")
}

func TestRegister(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("iia", flag.ContinueOnError), "iia")
	Register(c)

	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		names = append(names, cmd.Name())
	})
	for _, want := range []string{"merge", "corr", "ppp", "report", "serve", "topic", "help"} {
		assert.Contains(t, names, want)
	}
}
