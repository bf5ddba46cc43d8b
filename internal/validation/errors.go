package validation

import (
	"fmt"
	"strings"
)

// MissingFieldError reports a required field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// TypeMismatchError reports a field whose JSON type does not match the
// contract.
type TypeMismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// InvalidEnumError reports a value outside a closed enum domain.
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("field %q: %q is not one of [%s]", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// RangeError reports a numeric or length value outside its permitted bound.
type RangeError struct {
	Field string
	Value any
	Bound string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("field %q: value %v out of range (%s)", e.Field, e.Value, e.Bound)
}

// UnknownFieldError reports a field a closed schema does not declare.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// InvalidValueError reports a constraint violation the other error kinds do
// not cover, such as cross-field invariants.
type InvalidValueError struct {
	Field   string
	Message string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// Errors aggregates every field failure found in one validation pass, so
// callers get complete feedback instead of the first violation only.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e Errors) Unwrap() []error { return e }

// FieldErrorBody is the wire shape of a single field failure.
type FieldErrorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ErrorResponse is the JSON body the API layer sends for a failed
// validation.
type ErrorResponse struct {
	Error  string           `json:"error"`
	Fields []FieldErrorBody `json:"fields,omitempty"`
}

// Response maps an aggregate into the API error body.
func (e Errors) Response() ErrorResponse {
	resp := ErrorResponse{Error: "validation failed"}
	for _, err := range e {
		resp.Fields = append(resp.Fields, fieldErrorBody(err))
	}
	return resp
}

func fieldErrorBody(err error) FieldErrorBody {
	switch fe := err.(type) {
	case *MissingFieldError:
		return FieldErrorBody{Field: fe.Field, Message: fe.Error(), Code: "MISSING_FIELD"}
	case *TypeMismatchError:
		return FieldErrorBody{Field: fe.Field, Message: fe.Error(), Code: "TYPE_MISMATCH"}
	case *InvalidEnumError:
		return FieldErrorBody{Field: fe.Field, Message: fe.Error(), Code: "INVALID_ENUM"}
	case *RangeError:
		return FieldErrorBody{Field: fe.Field, Message: fe.Error(), Code: "OUT_OF_RANGE"}
	case *UnknownFieldError:
		return FieldErrorBody{Field: fe.Field, Message: fe.Error(), Code: "UNKNOWN_FIELD"}
	case *InvalidValueError:
		return FieldErrorBody{Field: fe.Field, Message: fe.Error(), Code: "INVALID_VALUE"}
	default:
		return FieldErrorBody{Message: err.Error(), Code: "VALIDATION_ERROR"}
	}
}
