package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidPosition   = errors.New("invalid position")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrUnplaced          = errors.New("bike is unplaced")
)

// BoardError is returned when a board cannot be constructed.
type BoardError struct {
	Kind   error
	Detail string
}

func (e *BoardError) Error() string { return e.Detail }

func (e *BoardError) Unwrap() error { return e.Kind }

// BikeError is a recoverable failure of a bike operation. Its message is
// the detail text shown to the user; Kind is one of the bike sentinels.
type BikeError struct {
	Kind   error
	Detail string
}

func (e *BikeError) Error() string { return e.Detail }

func (e *BikeError) Unwrap() error { return e.Kind }

func bikeErrorf(kind error, format string, args ...any) *BikeError {
	return &BikeError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// IsBikeError reports whether err is (or wraps) a *BikeError.
func IsBikeError(err error) bool {
	var be *BikeError
	return errors.As(err, &be)
}
