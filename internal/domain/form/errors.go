package form

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidField  = errors.New("invalid form field")
	ErrUnknownChoice = errors.New("unknown choice")
)
