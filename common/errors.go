package common

// Error messages thrown by the contracts of the suite. Every guard panics
// with one of these values (possibly with details appended after ": "), so
// callers and tests can match failures by prefix.
const (
	// ErrAccessDenied appears when the method requires a role or an
	// evaluator credential the caller does not hold.
	ErrAccessDenied = "access denied"
	// ErrValidationFailed appears when an argument is malformed or out of
	// the configured bounds.
	ErrValidationFailed = "validation failed"
	// ErrNotFound appears when the referenced entity is not stored.
	ErrNotFound = "not found"
	// ErrAlreadyExists appears when the entity being created is already
	// stored.
	ErrAlreadyExists = "already exists"
	// ErrInvalidState appears when the entity exists but its state forbids
	// the operation, e.g. voting outside the proposal window.
	ErrInvalidState = "invalid state"
	// ErrInsufficientCollateral appears when the caller cannot cover the
	// configured collateral requirement.
	ErrInsufficientCollateral = "insufficient collateral"
)
