package tracker

import "errors"

var (
	ErrUnknownDay      = errors.New("unknown workout day")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidWeek     = errors.New("invalid week")
	ErrInvalidDelta    = errors.New("invalid weight delta")

	// ErrVersionConflict is returned by a gateway when the stored preferences
	// moved past the version the write was based on.
	ErrVersionConflict = errors.New("preferences version conflict")
)
