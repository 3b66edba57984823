package usecase

import crerr "github.com/cockroachdb/errors"

// Callers map these to exit codes and messages; wrap with %w to keep them matchable.
var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("no stored results")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)
