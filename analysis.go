package inflation

import "fmt"

// PreviewRows is the number of raw rows kept to preview each dataset.
const PreviewRows = 10

// Sources locates the input datasets.
type Sources struct {
	InflationFile string
	RatesFile     string
	RateColumn    string // exchange rate column, empty to infer it
}

// Dataset is the raw content of both input files.
type Dataset struct {
	Inflation          []InflationRecord
	ExchangeRates      []ExchangeRateRecord
	InflationTable     *Table
	ExchangeRatesTable *Table
}

// Load reads both datasets.
func Load(src Sources) (*Dataset, error) {
	if src.InflationFile == "" || src.RatesFile == "" {
		return nil, &StageError{Stage: StageLoad, Err: fmt.Errorf("%w: both the inflation and the exchange rate files are required", ErrDataUnavailable)}
	}
	var (
		ds  Dataset
		err error
	)
	ds.Inflation, ds.InflationTable, err = LoadInflation(src.InflationFile)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Err: err}
	}
	ds.ExchangeRates, ds.ExchangeRatesTable, err = LoadExchangeRates(src.RatesFile, src.RateColumn)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Err: err}
	}
	return &ds, nil
}

// Merge joins the dataset for the pair, see Merge.
func (ds *Dataset) Merge(pair Pair) ([]MergedRow, error) {
	rows, err := Merge(ds.Inflation, ds.ExchangeRates, pair)
	if err != nil {
		return nil, &StageError{Stage: StageMerge, Err: err}
	}
	return rows, nil
}

// Analysis is the outcome of a complete pipeline run.
type Analysis struct {
	Pair                 Pair
	InflationPreview     *Table
	ExchangeRatesPreview *Table
	Rows                 []MergedRow
	Statistics           []Statistics
	Correlation          *CorrelationMatrix
	Projection           *Projection
}

// Analyze runs the whole pipeline on the sources: load, merge, statistics and
// PPP projection. It stops at the first failing stage and returns a
// *StageError; no partial analysis is ever returned.
func Analyze(src Sources, pair Pair) (*Analysis, error) {
	ds, err := Load(src)
	if err != nil {
		return nil, err
	}
	return ds.Analyze(pair)
}

// Analyze runs the pipeline stages that follow loading.
func (ds *Dataset) Analyze(pair Pair) (*Analysis, error) {
	rows, err := ds.Merge(pair)
	if err != nil {
		return nil, err
	}
	corr, err := Correlate(rows, pair)
	if err != nil {
		return nil, &StageError{Stage: StageStatistics, Err: err}
	}
	proj, err := Project(rows)
	if err != nil {
		return nil, &StageError{Stage: StagePPP, Err: err}
	}
	return &Analysis{
		Pair:                 pair,
		InflationPreview:     ds.InflationTable.Head(PreviewRows),
		ExchangeRatesPreview: ds.ExchangeRatesTable.Head(PreviewRows),
		Rows:                 rows,
		Statistics:           Describe(rows, pair),
		Correlation:          corr,
		Projection:           proj,
	}, nil
}

// ProjectSources loads and merges the sources, then projects them, skipping
// the statistics stage. Unlike Analyze, it accepts a single overlapping year.
func ProjectSources(src Sources, pair Pair) ([]MergedRow, *Projection, error) {
	ds, err := Load(src)
	if err != nil {
		return nil, nil, err
	}
	rows, err := ds.Merge(pair)
	if err != nil {
		return nil, nil, err
	}
	proj, err := Project(rows)
	if err != nil {
		return nil, nil, &StageError{Stage: StagePPP, Err: err}
	}
	return rows, proj, nil
}
