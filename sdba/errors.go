package sdba

import "errors"

// Sentinel errors, wrapped at call sites with fmt.Errorf("...: %w", err) so
// callers can errors.Is/errors.As against these.
var (
	// ErrMalformedConfiguration is reported when a nondeterministic-part
	// state name contains a token that is neither a decimal integer nor the
	// literal "{}". The offending configuration is skipped; construction
	// continues.
	ErrMalformedConfiguration = errors.New("sdba: malformed configuration name")

	// ErrInvariantViolation marks a fatal, unrecoverable internal
	// inconsistency (e.g. a state index outside the reserved propositional
	// variable range). Construction aborts when this occurs.
	ErrInvariantViolation = errors.New("sdba: internal invariant violation")
)
