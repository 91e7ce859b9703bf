// Package errs collects the error taxonomy shared by the tracer and
// posterizer façades.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel kinds callers can match with errors.Is.
var (
	ErrNotLoaded  = errors.New("svgtrace: no image loaded")
	ErrSuperseded = errors.New("svgtrace: load superseded by a later loadImage call")
)

// InvalidParameter reports a setParameters validation failure.
func InvalidParameter(field, reason string) error {
	return fmt.Errorf("svgtrace: invalid parameter %q: %s", field, reason)
}

// InvalidRange reports a histogram query with min > max.
func InvalidRange(min, max int) error {
	return fmt.Errorf("svgtrace: invalid range [%d, %d]: min must not exceed max", min, max)
}

// DecodeFailed wraps a decode error from an external image decoder,
// forwarded verbatim per the error surface in the spec.
func DecodeFailed(reason error) error {
	return fmt.Errorf("svgtrace: image decode failed: %w", reason)
}
