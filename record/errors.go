package record

import (
	"errors"
	"strings"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

// Error kinds.
const (
	// KindType means the supplied value had the wrong type for the field.
	KindType ErrorKind = "type"
	// KindValue means the value had the right type but violated a constraint.
	KindValue ErrorKind = "value"
)

// FieldError describes a single violated rule on a single field.
type FieldError struct {
	Field   string
	Kind    ErrorKind
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError aggregates every constraint violated during a
// construction or assignment. Constructors validate all fields before
// returning, so a caller sees the full list at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		msgs[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether the error contains a failure for the given field.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// AsValidationError extracts a *ValidationError from err, if present.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func typeErr(field, msg string) FieldError {
	return FieldError{Field: field, Kind: KindType, Message: msg}
}

func valueErr(field, msg string) FieldError {
	return FieldError{Field: field, Kind: KindValue, Message: msg}
}

func singleErr(fe FieldError) error {
	return &ValidationError{Fields: []FieldError{fe}}
}

// fieldErrors collects failures across fields during staged construction.
type fieldErrors []FieldError

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe}
}
