package inflation

import (
	"fmt"
	"math"
)

// Percent is a rate expressed in percent: 4.0 is 4%.
type Percent float64

// percentPrecision is the tolerance of Equal.
const percentPrecision = 0.0001

// Equal reports whether p and q are within 0.0001 points of each other.
func (p Percent) Equal(q Percent) bool {
	return math.Abs(float64(p-q)) < percentPrecision
}

// Factor returns the growth factor of the rate: 1.04 for 4%.
func (p Percent) Factor() float64 { return 1 + float64(p)/100 }

// String returns the percent with two decimals, e.g. "4.01%".
func (p Percent) String() string { return fmt.Sprintf("%.2f%%", float64(p)) }

// Short returns the percent with a single decimal, as used in headline metrics.
func (p Percent) Short() string { return fmt.Sprintf("%.1f%%", float64(p)) }
