// Package validation holds the error taxonomy shared by the domain packages.
package validation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidField  = errors.New("invalid field")
	ErrInvalidObject = errors.New("invalid object")
)

// InvalidFieldError reports a primitive value that breaks a type or range constraint.
// Code is the machine-readable message code surfaced to API callers.
type InvalidFieldError struct {
	Field  string
	Code   string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *InvalidFieldError) Unwrap() error { return ErrInvalidField }

// InvalidObjectError reports a composed value that does not have the expected shape.
type InvalidObjectError struct {
	Object string
	Code   string
	Reason string
}

func (e *InvalidObjectError) Error() string {
	return fmt.Sprintf("%s: %s", e.Object, e.Reason)
}

func (e *InvalidObjectError) Unwrap() error { return ErrInvalidObject }

// Field builds an InvalidFieldError.
func Field(field, code, reason string) error {
	return &InvalidFieldError{Field: field, Code: code, Reason: reason}
}

// Object builds an InvalidObjectError.
func Object(object, code, reason string) error {
	return &InvalidObjectError{Object: object, Code: code, Reason: reason}
}

// CodeOf returns the message code carried by a validation error, or "" for any other error.
func CodeOf(err error) string {
	var fe *InvalidFieldError
	if errors.As(err, &fe) {
		return fe.Code
	}
	var oe *InvalidObjectError
	if errors.As(err, &oe) {
		return oe.Code
	}
	return ""
}
