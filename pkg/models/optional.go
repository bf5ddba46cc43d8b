package models

import "encoding/json"

// Optional is a three-state field wrapper for partial-update payloads.
// A field can be absent (leave unchanged), explicitly null (clear), or set to
// a value. Plain pointers conflate the first two states, so update DTOs use
// Optional instead.
type Optional[T any] struct {
	present bool
	null    bool
	value   T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: v}
}

// Null returns an Optional representing an explicit clear.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// Present reports whether the field appeared in the payload at all.
func (o Optional[T]) Present() bool { return o.present }

// IsZero reports whether the field is absent, so the omitzero tag option
// drops absent fields when marshaling instead of emitting a false null.
func (o Optional[T]) IsZero() bool { return !o.present }

// IsNull reports whether the field was an explicit JSON null.
func (o Optional[T]) IsNull() bool { return o.present && o.null }

// Get returns the value and whether a non-null value is set.
func (o Optional[T]) Get() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// MustGet returns the value, or the zero value when unset. Intended for use
// after Get has confirmed presence.
func (o Optional[T]) MustGet() T { return o.value }

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if string(data) == "null" {
		o.null = true
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
