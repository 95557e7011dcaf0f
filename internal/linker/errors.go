package linker

import "errors"

// Sentinel error kinds for resolution and pairing failures. Phase errors
// wrap these with the offending block/port names; callers match with
// errors.Is.
var (
	// ErrPathNotFound means a path spec resolved against no candidate root.
	ErrPathNotFound = errors.New("path not found in hierarchy")

	// ErrModeNotFound means a named mode is absent on the resolved block.
	ErrModeNotFound = errors.New("mode not found on block")

	// ErrPortNotFound means the expected physical port is absent on the
	// physical block.
	ErrPortNotFound = errors.New("port not found on physical block")

	// ErrPortRangeNotContained means the expected physical port range does
	// not fit inside the actual physical port's width.
	ErrPortRangeNotContained = errors.New("port range not contained in physical port")
)
