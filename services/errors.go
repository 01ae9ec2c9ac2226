package services

import "errors"

// Error codes surfaced to the transport layer
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
)

// Error is a validation or lookup failure. Any other error returned by a
// service is a persistence failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func invalidArgument(message string) error {
	return &Error{Code: CodeInvalidArgument, Message: message}
}

func notFound(message string) error {
	return &Error{Code: CodeNotFound, Message: message}
}

// IsNotFound reports whether err is a NotFound service error
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsInvalidArgument reports whether err is an InvalidArgument service error
func IsInvalidArgument(err error) bool {
	return hasCode(err, CodeInvalidArgument)
}

func hasCode(err error, code string) bool {
	var svcErr *Error
	return errors.As(err, &svcErr) && svcErr.Code == code
}
