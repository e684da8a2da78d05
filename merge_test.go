package inflation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	inflation := []InflationRecord{
		{"India", 2001, 3.8},
		{"United States", 2001, 2.8},
		{"China", 2000, 0.4},
		{"India", 2000, 4.0},
		{"United States", 2000, 3.4},
		{"India", 2002, 4.3}, // no US value
		{"United States", 2003, 2.3},
		{"India", 2003, 3.8},
	}
	rates := []ExchangeRateRecord{
		{2003, 46.58},
		{1999, 43.06}, // no inflation
		{2000, 44.94},
		{2001, 47.19},
		{2002, 48.61},
	}

	got, err := Merge(inflation, rates, DefaultPair)
	if err != nil {
		t.Fatalf("Merge() failed: %v", err)
	}
	want := []MergedRow{
		{Year: 2000, ExchangeRate: 44.94, InflationQuote: 4.0, InflationBase: 3.4},
		{Year: 2001, ExchangeRate: 47.19, InflationQuote: 3.8, InflationBase: 2.8},
		{Year: 2003, ExchangeRate: 46.58, InflationQuote: 3.8, InflationBase: 2.3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_YearsInBothSources(t *testing.T) {
	inflation, _, err := LoadInflation("testdata/inflation.csv")
	if err != nil {
		t.Fatal(err)
	}
	rates, _, err := LoadExchangeRates("testdata/rates.csv", "")
	if err != nil {
		t.Fatal(err)
	}
	rows, err := Merge(inflation, rates, DefaultPair)
	if err != nil {
		t.Fatalf("Merge() failed: %v", err)
	}

	inflationYears := make(map[int]bool)
	for _, r := range inflation {
		inflationYears[r.Year] = true
	}
	rateYears := make(map[int]bool)
	for _, r := range rates {
		rateYears[r.Year] = true
	}
	for i, row := range rows {
		if !inflationYears[row.Year] || !rateYears[row.Year] {
			t.Errorf("year %d is not present in both sources", row.Year)
		}
		if i > 0 && row.Year <= rows[i-1].Year {
			t.Errorf("year %d follows %d, want strictly ascending", row.Year, rows[i-1].Year)
		}
	}
	if diff := cmp.Diff([]int{2000, 2001, 2002, 2003, 2004}, Years(rows)); diff != "" {
		t.Errorf("years mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_OnlyOneCountryInSomeYears(t *testing.T) {
	// exchange rates cover 1999 and 2000, inflation covers 2000 for both
	// countries and 2001 for one: only 2000 survives the pivot and the join.
	inflation := []InflationRecord{
		{"India", 2000, 4.0},
		{"United States", 2000, 2.0},
		{"India", 2001, 3.8},
	}
	rates := []ExchangeRateRecord{{1999, 43.06}, {2000, 44.5}}

	got, err := Merge(inflation, rates, DefaultPair)
	if err != nil {
		t.Fatalf("Merge() failed: %v", err)
	}
	want := []MergedRow{{Year: 2000, ExchangeRate: 44.5, InflationQuote: 4.0, InflationBase: 2.0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		inflation []InflationRecord
		rates     []ExchangeRateRecord
		pair      Pair
		want      error
	}{
		{
			name:      "no overlapping years",
			inflation: []InflationRecord{{"India", 2000, 4}, {"United States", 2000, 2}},
			rates:     []ExchangeRateRecord{{2010, 45}},
			pair:      DefaultPair,
			want:      ErrMergeEmpty,
		},
		{
			name:  "no inflation at all",
			rates: []ExchangeRateRecord{{2010, 45}},
			pair:  DefaultPair,
			want:  ErrMergeEmpty,
		},
		{
			name:      "duplicate country year",
			inflation: []InflationRecord{{"India", 2000, 4}, {"India", 2000, 5}, {"United States", 2000, 2}},
			rates:     []ExchangeRateRecord{{2000, 45}},
			pair:      DefaultPair,
			want:      ErrDuplicateRecord,
		},
		{
			name:      "duplicate exchange rate year",
			inflation: []InflationRecord{{"India", 2000, 4}, {"United States", 2000, 2}},
			rates:     []ExchangeRateRecord{{2000, 45}, {2000, 46}},
			pair:      DefaultPair,
			want:      ErrDuplicateRecord,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Merge(tc.inflation, tc.rates, tc.pair)
			if !errors.Is(err, tc.want) {
				t.Errorf("Merge() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestMerge_InvalidPair(t *testing.T) {
	_, err := Merge(nil, nil, Pair{Base: "India", Quote: "India"})
	if err == nil {
		t.Fatal("expected an error for a pair with twice the same country")
	}
}

func TestMerge_DuplicatesOfOtherCountriesAreIgnored(t *testing.T) {
	inflation := []InflationRecord{
		{"China", 2000, 0.3}, {"China", 2000, 0.4},
		{"India", 2000, 4}, {"United States", 2000, 2},
	}
	if _, err := Merge(inflation, []ExchangeRateRecord{{2000, 45}}, DefaultPair); err != nil {
		t.Errorf("Merge() failed: %v", err)
	}
}
