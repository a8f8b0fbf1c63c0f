package analysis

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// ErrInvalidPercentile is returned for an empty percentile list or a
// percentile outside [0, 100].
var ErrInvalidPercentile = errors.New("invalid percentile")

// DefaultPercentiles are reported when the caller does not choose any.
var DefaultPercentiles = []float64{50, 90, 95, 99, 100}

// Percentile returns the p-th percentile of an ascending series using
// linear interpolation between the two closest ranks.
//
// An empty series yields 0. This is a reporting convention, not a
// statistical value; callers that must tell "no samples" apart from real
// zeros should check the series length.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	switch n {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	rank := p / 100 * float64(n-1)
	lower := math.Floor(rank)
	upper := math.Ceil(rank)

	lo := sorted[int(lower)]
	hi := sorted[int(upper)]
	return lo + (hi-lo)*(rank-lower)
}

// Percentiles sorts a copy of values and returns one rounded result per
// entry of ps, in the same order.
func Percentiles(values []float64, ps []float64) []float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = Round6(Percentile(sorted, p))
	}
	return out
}

// Round6 rounds to 6 decimal digits, halves away from zero.
// Values of magnitude 2^52 and above are already whole and come back as is.
func Round6(v float64) float64 {
	if math.Abs(v) >= 1<<52 {
		return v
	}
	return math.Round(v*1e6) / 1e6
}

// Label returns the report label for a percentile: P50, P99, P99.9.
func Label(p float64) string {
	return "P" + strconv.FormatFloat(p, 'f', -1, 64)
}

// ValidatePercentiles checks that ps is non-empty and every entry lies in [0, 100].
func ValidatePercentiles(ps []float64) error {
	if len(ps) == 0 {
		return fmt.Errorf("%w: at least one percentile is required", ErrInvalidPercentile)
	}
	for _, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 100 {
			return fmt.Errorf("%w: %v is outside [0, 100]", ErrInvalidPercentile, p)
		}
	}
	return nil
}
