package noise

import "math"

// Range tracks the running minimum and maximum of sampled values so callers
// can normalize output across many samples.
type Range struct {
	Min float64
	Max float64
}

// NewRange returns an empty range that any observed value will widen.
func NewRange() Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Observe widens the range to include v.
func (r *Range) Observe(v float64) {
	r.Min = math.Min(r.Min, v)
	r.Max = math.Max(r.Max, v)
}

// Empty reports whether nothing has been observed.
func (r Range) Empty() bool {
	return r.Min > r.Max
}

// Normalize maps v into [0,1] relative to the observed range.
// A degenerate or empty range maps everything to 0.
func (r Range) Normalize(v float64) float64 {
	span := r.Max - r.Min
	if r.Empty() || span == 0 {
		return 0
	}
	return (v - r.Min) / span
}
