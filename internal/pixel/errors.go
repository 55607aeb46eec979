package pixel

import "errors"

// Sentinel errors returned by this package. All failures wrap one of
// these, so callers can classify them with errors.Is.
var (
	// ErrShape indicates that a buffer's data length is inconsistent with
	// its width and height.
	ErrShape = errors.New("buffer shape inconsistent with data length")

	// ErrDepth indicates a channel depth outside the set accepted by the
	// requested operation.
	ErrDepth = errors.New("unsupported channel depth")

	// ErrOption indicates a missing or invalid option value.
	ErrOption = errors.New("missing or invalid option")

	// ErrUnknownFilter indicates a filter name with no registered kernel.
	ErrUnknownFilter = errors.New("unknown filter")
)
