package typespec

import "errors"

// Sentinel errors for loading specifications.
var (
	// ErrUnknownFormat indicates a specification file with an unsupported extension.
	ErrUnknownFormat = errors.New("typespec: unknown specification format")

	// ErrNoSpecFiles indicates no specification file matched the given patterns.
	ErrNoSpecFiles = errors.New("typespec: no specification files")
)
