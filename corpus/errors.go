package corpus

import "errors"

var (
	// ErrInputNotFound indicates the corpus file is missing or unreadable.
	ErrInputNotFound = errors.New("corpus: input file not found")
)
