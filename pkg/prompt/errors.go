package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrInputExhausted signals that standard input reached end-of-file while
	// a prompt was still waiting for a line.
	ErrInputExhausted = errors.New("prompt: input exhausted")
)
