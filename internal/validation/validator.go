// Package validation is the contract registry of the recipe platform: one
// validating parse operation per payload schema, returning either the typed
// record or the full set of field failures. Everything here is pure; no I/O
// happens during validation.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeStrict decodes a closed schema: unknown fields are rejected.
func decodeStrict(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return translateDecodeError(err)
	}
	return nil
}

// decodeOpen decodes an open-extension schema: unknown fields pass through
// to the destination's own preservation logic.
func decodeOpen(data []byte, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return translateDecodeError(err)
	}
	return nil
}

func translateDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		// The decoder's field path includes embedded struct names; only
		// the JSON-named segments belong in the reported field.
		field := dropGoSegments(typeErr.Field)
		if field == "" {
			field = typeErr.Field
		}
		return Errors{&TypeMismatchError{
			Field:    field,
			Expected: jsonTypeName(typeErr.Type),
			Actual:   typeErr.Value,
		}}
	}
	if field, ok := unknownFieldName(err); ok {
		return Errors{&UnknownFieldError{Field: field}}
	}
	return fmt.Errorf("invalid JSON payload: %w", err)
}

// unknownFieldName picks the field name out of the json package's
// `json: unknown field "x"` error, which has no dedicated type.
func unknownFieldName(err error) (string, bool) {
	const prefix = `json: unknown field `
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// checkStruct runs the registered struct rules and translates every failure
// into the contract error taxonomy. A nil return means the value passed.
func checkStruct(v any) Errors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{err}
	}
	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, translateFieldError(fe))
	}
	return out
}

func translateFieldError(fe validator.FieldError) error {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return &MissingFieldError{Field: field}
	case "oneof":
		return &InvalidEnumError{
			Field:   field,
			Value:   fmt.Sprintf("%v", fe.Value()),
			Allowed: strings.Fields(fe.Param()),
		}
	case "gt":
		return &RangeError{Field: field, Value: fe.Value(), Bound: "> " + fe.Param()}
	case "gte":
		return &RangeError{Field: field, Value: fe.Value(), Bound: ">= " + fe.Param()}
	case "lt":
		return &RangeError{Field: field, Value: fe.Value(), Bound: "< " + fe.Param()}
	case "lte":
		return &RangeError{Field: field, Value: fe.Value(), Bound: "<= " + fe.Param()}
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return &RangeError{Field: field, Value: fe.Value(), Bound: "length >= " + fe.Param()}
		}
		return &RangeError{Field: field, Value: fe.Value(), Bound: ">= " + fe.Param()}
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return &RangeError{Field: field, Value: fe.Value(), Bound: "length <= " + fe.Param()}
		}
		return &RangeError{Field: field, Value: fe.Value(), Bound: "<= " + fe.Param()}
	default:
		return &InvalidValueError{Field: field, Message: "failed constraint " + fe.Tag()}
	}
}

// fieldPath rebuilds the JSON path of a failed field from the validator
// namespace, dropping the root type and embedded struct segments, which keep
// their Go names.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if p := dropGoSegments(ns); p != "" {
		return p
	}
	return fe.Field()
}

// dropGoSegments removes the capitalized (Go-named) segments of a dotted
// field path, keeping the JSON-named ones.
func dropGoSegments(path string) string {
	segments := strings.Split(path, ".")
	kept := segments[:0]
	for _, s := range segments {
		if s == "" {
			continue
		}
		if r := rune(s[0]); unicode.IsUpper(r) {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, ".")
}
