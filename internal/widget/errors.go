package widget

import "errors"

// Sentinel validation errors. Callers can errors.Is against these instead of
// matching message text.
var (
	ErrFileTooLarge   = errors.New("file too large")
	ErrTypeNotAllowed = errors.New("file type not allowed")
)
