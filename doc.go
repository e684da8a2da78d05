// Package inflation analyses how relative inflation between two countries
// relates to the exchange rate of their currencies.
//
// The analysis is a short batch pipeline, recomputed from scratch on every run:
//   - Dataset Loading: reading the inflation rates by country and the yearly
//     exchange rates from CSV files, keeping columns and rows as stored.
//   - Merging: keeping the two countries of a Pair, pivoting them into one
//     row per year, and joining them with the exchange rates on the year.
//   - Statistics: descriptive statistics and the Pearson correlation matrix of
//     the exchange rate and both inflation series.
//   - Purchasing Power Parity: projecting the expected exchange rate as the
//     cumulative product of the inflation differentials, and measuring how far
//     the latest actual rate deviates from it.
//
// Every stage fails fast with a typed error (see ErrDataUnavailable and
// StageError) so that a caller can report "data not loaded" without ever
// rendering partial results.
//
// This package is the foundational logic for the `iia` command-line tool and
// its browser report.
package inflation
