package niceplots

import (
	"errors"
)

var (
	// ErrInvalidConfiguration is returned when a caller supplies an
	// unrecognized enum value (legend position, chart type, logo flag).
	ErrInvalidConfiguration = errors.New(`invalid configuration`)

	// ErrUnknownColourName is returned when a palette lookup misses.
	ErrUnknownColourName = errors.New(`unknown colour name`)

	// ErrIndexOutOfRange is returned when a primary palette index falls
	// outside the palette.
	ErrIndexOutOfRange = errors.New(`index out of range`)
)
