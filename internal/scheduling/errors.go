package scheduling

import (
	"errors"
	"fmt"
)

// ErrOutOfWindow is returned when a requested date lies outside the rolling booking window
var ErrOutOfWindow = errors.New("date is outside the booking window")

// WindowError carries the display message of a booking-window rejection.
// It unwraps to ErrOutOfWindow.
type WindowError struct {
	WindowDays int
	Message    string
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOutOfWindow.Error(), e.Message)
}

func (e *WindowError) Unwrap() error {
	return ErrOutOfWindow
}

// WindowMessage extracts the display message from an out-of-window error.
func WindowMessage(err error) (string, bool) {
	var werr *WindowError
	if errors.As(err, &werr) {
		return werr.Message, true
	}
	return "", false
}
