package normalize

import "errors"

// ErrPreconditionViolation is returned when the input breaks an assumption the
// deduplicator relies on, such as two records sharing a surrogate id.
var ErrPreconditionViolation = errors.New("precondition violation")
