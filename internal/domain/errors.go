package domain

import "errors"

var (
	ErrBreakOutOfRange = errors.New("break duration out of range")
	ErrFocusOutOfRange = errors.New("focus duration out of range")
)
