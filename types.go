package gridscroll

import "math"

// Range is a half-open interval [Start, End) of item indices.
type Range struct {
	Start int // First materialized index (inclusive)
	End   int // One past the last materialized index (exclusive)
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains returns true if idx falls inside the range.
func (r Range) Contains(idx int) bool {
	return idx >= r.Start && idx < r.End
}

// Empty returns true if the range holds no indices.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// ScrollBehavior selects how a requested scroll is animated by the viewport.
type ScrollBehavior int

const (
	ScrollInstant ScrollBehavior = iota // Jump straight to the target offset
	ScrollSmooth                        // Ease toward the target offset
)

// String returns the behavior name as used in config files and logs.
func (b ScrollBehavior) String() string {
	switch b {
	case ScrollSmooth:
		return "smooth"
	default:
		return "instant"
	}
}

// ParseScrollBehavior maps "instant" / "smooth" to a ScrollBehavior.
// Unknown names fall back to ScrollInstant.
func ParseScrollBehavior(name string) ScrollBehavior {
	if name == "smooth" {
		return ScrollSmooth
	}
	return ScrollInstant
}

// clampf clamps a float64 value to a range.
func clampf(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// alignDown floors v to the nearest multiple of cols.
func alignDown(v float64, cols int) float64 {
	c := float64(cols)
	return c * math.Floor(v/c)
}

// alignUp ceils v to the nearest multiple of cols.
func alignUp(v float64, cols int) float64 {
	c := float64(cols)
	return c * math.Ceil(v/c)
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
