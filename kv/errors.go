package kv

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies failures of a put so that callers can distinguish
// fatal outcomes (bad config, bad metadata, local filesystem, transport)
// from remote API rejections, which carry a formatted report.
type ErrorKind string

const (
	ErrKindValidation      ErrorKind = "validation"
	ErrKindMetadataHint    ErrorKind = "metadata_hint"
	ErrKindMetadataParse   ErrorKind = "metadata_parse"
	ErrKindFilesystem      ErrorKind = "filesystem"
	ErrKindTransport       ErrorKind = "transport"
	ErrKindRemoteRejection ErrorKind = "remote_rejection"
)

// Error is the error type returned by this package. Message is user-facing;
// Cause, when set, is the underlying error. For ErrKindRemoteRejection the
// Status and Errors fields carry the parsed API response and Message is the
// formatted report.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error

	Status int
	Errors []APIError
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind of err if it is (or wraps) an *Error, otherwise "".
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func wrapError(kind ErrorKind, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: cause.Error(),
		Cause:   cause,
	}
}
