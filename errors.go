package gridscroll

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBuffer is returned when MaxBufferPx is smaller than MinBufferPx.
	ErrInvalidBuffer = errors.New("maxBufferPx must be greater than or equal to minBufferPx")

	// ErrNegativeLayout is returned when a size, offset or column count is negative.
	ErrNegativeLayout = errors.New("layout values must not be negative")
)

// ConfigurationError reports a rejected layout update.
// The layout that was active before the update stays in effect.
type ConfigurationError struct {
	Field  string  // Offending Layout field
	Value  float64 // Offending value
	Reason error   // ErrInvalidBuffer or ErrNegativeLayout
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("gridscroll: invalid %s=%g: %v", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match the sentinel reason.
func (e *ConfigurationError) Unwrap() error {
	return e.Reason
}
