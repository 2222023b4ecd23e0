package student

import "errors"

// ErrStudentNotFound is returned by the repository when a lookup or a
// write matched zero rows.
var ErrStudentNotFound = errors.New("student not found")

// Kind classifies a service failure so callers can branch without
// parsing messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindDuplicate
	KindNotFound
	KindStorage
)

// Error is the failure value returned by the service layer. Message is
// meant to be shown to the user as-is; Err carries the underlying
// storage error, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or KindUnknown when err is
// not a service error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

func validationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func duplicateError(msg string) *Error {
	return &Error{Kind: KindDuplicate, Message: msg}
}

func notFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func storageError(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}
