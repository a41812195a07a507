package domain

// ErrorKind is the closed set of failure categories surfaced to callers.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindAuth       ErrorKind = "auth"
	KindTransport  ErrorKind = "transport"
	KindUnhandled  ErrorKind = "unhandled"
)

// Error is a user-facing failure. Fields holds per-field messages for
// validation errors and is nil for every other kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// NewAuthError wraps an authentication failure message.
func NewAuthError(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// NewTransportError wraps an inventory service failure message.
func NewTransportError(message string) *Error {
	return &Error{Kind: KindTransport, Message: message}
}

// NewValidationError reports per-field input problems.
func NewValidationError(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "invalid input", Fields: fields}
}
