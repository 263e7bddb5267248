package autherrors

import "errors"

// Code identifies a failure category of the authentication bridge.
// Codes describe what went wrong in flow terms, independent of the
// provider SDK or the web runtime that produced the underlying error.
type Code string

const (
	// CodeConfiguration marks programmer errors: missing URLs, missing
	// client settings. Never retried.
	CodeConfiguration Code = "configuration_error"
	// CodeInvisibleTabCreation marks a failure to create a hidden tab
	// for session propagation. Triggers compensating cleanup.
	CodeInvisibleTabCreation Code = "invisible_tab_creation_failed"
	CodeNetwork              Code = "network_error"
	// CodeUserCancelled is a normal, non-alarming outcome of the
	// interactive auth prompt being dismissed.
	CodeUserCancelled Code = "user_cancelled"

	// Provider-boundary codes.
	CodeAuthenticationFailed Code = "authentication_failed"
	CodeCredentialsStorage   Code = "credentials_storage_failed"
	CodeCredentialsClearing  Code = "credentials_clearing_failed"
	CodeCredentialsRenewal   Code = "credentials_renewal_failed"
	CodeSessionClearing      Code = "session_clearing_failed"

	CodeUnknown Code = "unknown"
)

// Error wraps flow or provider failures with a stable code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new bridge error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new bridge error wrapping an existing error.
// If the wrapped error is already a bridge error, its code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a bridge error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the bridge code of err, or CodeUnknown when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
