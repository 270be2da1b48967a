package presence

import "errors"

// Presence domain errors
var (
	// Door-access errors
	ErrAlreadyExited = errors.New("attendance for today is already closed")

	// Manual recorder errors
	ErrNoOpenRecord = errors.New("no open attendance record for this day")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
