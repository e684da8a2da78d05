package cmd

import (
	"github.com/etnz/inflation/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers a shell completion request for the command name and
// exits, or returns when the process is not a completion request.
//
// Install it with COMP_INSTALL=1 iia.
func Complete(name string) {
	csv := predict.Files("*.csv")

	command := &complete.Command{
		Sub: map[string]*complete.Command{
			"merge": {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"corr":  {},
			"ppp":   {},
			"report": {Flags: map[string]complete.Predictor{
				"format": predict.Set{FormatMarkdown, FormatHTML, FormatJSON},
				"o":      predict.Files("*"),
				"q":      predict.Set{"$.summary", "$.summary.deviation", "$.correlation.values", "$.projection.latest", "$.rows"},
			}},
			"serve": {Flags: map[string]complete.Predictor{"addr": predict.Set{DefaultAddr, "localhost:8080"}}},
			"topic": {Args: predict.Set(topicNames())},
			"help":  {Args: predict.Set{"merge", "corr", "ppp", "report", "serve", "topic"}},
		},
		Flags: map[string]complete.Predictor{
			"config":         predict.Files("*"),
			"inflation-file": csv,
			"rates-file":     csv,
			"rate-column":    predict.Set{"Exchange Rate"},
			"base":           predict.Set{"United States", "India", "United Kingdom", "China"},
			"quote":          predict.Set{"India", "United States", "United Kingdom", "China"},
			"currency":       predict.Set{"INR", "USD", "GBP", "CNY", "EUR"},
			"v":              predict.Nothing,
		},
	}
	command.Complete(name)
}

// topicNames lists the arguments accepted by the topic command. The fixed
// names are still offered when the embedded topics cannot be listed.
func topicNames() []string {
	names := []string{"readme", "*"}
	topics, err := docs.GetAllTopics()
	if err != nil {
		return names
	}
	return append(names, topics...)
}
