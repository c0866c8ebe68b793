package fsmjournal

import "errors"

var (
	// ErrRecorderClosed is returned when recording after Close.
	ErrRecorderClosed = errors.New("journal recorder is closed")
)
