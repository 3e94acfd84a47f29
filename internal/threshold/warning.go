package threshold

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCanvas is reported when PixelsScaledToCanvas is configured
	// but no usable canvas was resolved.
	ErrMissingCanvas = errors.New("units set to PIXELS_SCALED_TO_CANVAS but no canvas set or found")

	// ErrUnknownUnit is reported for unit values this build does not know.
	ErrUnknownUnit = errors.New("unknown units value")
)

// Warning is a non-fatal outcome of Compute. The consumer keeps its previous
// threshold when one is returned.
type Warning struct {
	Units Units
	Err   error
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%v: %s", w.Err, w.Units)
}

func (w *Warning) Unwrap() error {
	return w.Err
}
