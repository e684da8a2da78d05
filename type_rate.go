package inflation

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Rate is an exchange rate, expressed in its quote currency.
//
// Computations run on float64; Rate only exists to round and display values.
type Rate struct {
	value decimal.Decimal
	cur   string
}

// R returns the rate v in the currency cur.
func R(v float64, cur string) Rate {
	return Rate{value: decimal.NewFromFloat(v), cur: cur}
}

// currency returns the rate's currency
func (r Rate) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, r.cur).Currency()
}

// String returns the rate formatted in its currency, e.g. "₹45.37".
func (r Rate) String() string {
	if r.cur == "" {
		return r.Fixed()
	}
	cur := r.currency()
	dec := r.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Fixed returns the rate with two decimals and no currency sign.
func (r Rate) Fixed() string { return r.value.StringFixed(2) }

// MarshalJSON encodes the rate rounded to its currency fraction.
func (r Rate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", r.cur)
	places := int32(2)
	if r.cur != "" {
		places = int32(r.currency().Fraction)
	}
	w.Append("amount", r.value.Round(places))
	return w.MarshalJSON()
}
