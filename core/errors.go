package core

import "github.com/pkg/errors"

// ErrStorageUnavailable is reported whenever a backing store cannot be read or written.
var ErrStorageUnavailable = errors.New("storage unavailable")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// StorageError wraps an I/O failure of a store.
type StorageError struct {
	Op  string
	Err error
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func (err StorageError) Error() string {
	if err.Err == nil {
		return err.Op + ": " + ErrStorageUnavailable.Error()
	}
	return err.Op + ": " + ErrStorageUnavailable.Error() + ": " + err.Err.Error()
}

func (err StorageError) Unwrap() error { return err.Err }

func (err StorageError) Is(target error) bool { return target == ErrStorageUnavailable }

// IsStorageUnavailable reports whether err was caused by a store failure.
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
