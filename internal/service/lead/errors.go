package lead

import "errors"

// ErrInternal is returned for any failure that is not the client's
// fault. The handler maps it to an opaque 500; detail stays in the logs.
var ErrInternal = errors.New("internal error")

// ValidationError is a deterministic, client-correctable rejection. The
// Message is surfaced verbatim to the caller; Field identifies the rule
// that failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
