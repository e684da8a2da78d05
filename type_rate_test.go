package inflation

import (
	"strings"
	"testing"
)

func TestRate_String(t *testing.T) {
	testCases := []struct {
		rate Rate
		want string
	}{
		{R(45.372549, "INR"), "45.37"},
		{R(83.1, "INR"), "83.10"},
		{R(0.9249, "USD"), "0.92"},
	}
	for _, tc := range testCases {
		got := tc.rate.String()
		if !strings.Contains(got, tc.want) {
			t.Errorf("%v.String() = %q, want it to contain %q", tc.rate.Fixed(), got, tc.want)
		}
	}
}

func TestRate_Fixed(t *testing.T) {
	if got := R(45.372549, "INR").Fixed(); got != "45.37" {
		t.Errorf("Fixed() = %q, want 45.37", got)
	}
	if got := R(44.5, "").String(); got != "44.50" {
		t.Errorf("String() without currency = %q, want 44.50", got)
	}
}

func TestPercent(t *testing.T) {
	p := Percent(-12.345)
	if got := p.String(); got != "-12.35%" && got != "-12.34%" {
		t.Errorf("String() = %q", got)
	}
	if got := p.Short(); got != "-12.3%" {
		t.Errorf("Short() = %q, want -12.3%%", got)
	}
	if got := Percent(4).Factor(); got != 1.04 {
		t.Errorf("Factor() of 4%% = %v, want 1.04", got)
	}
	if !Percent(3.86).Equal(Percent(3.86004)) || Percent(3.86).Equal(Percent(3.87)) {
		t.Errorf("Equal() does not compare with 0.0001 precision")
	}
}
