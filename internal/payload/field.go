// Package payload defines the raw gateway payload shapes and the optional
// field wrapper that makes partial updates presence-aware: a key absent from
// a payload means "unchanged", while a key present with any value, including
// null, means "overwrite".
package payload

import "encoding/json"

// Field wraps one payload attribute and records whether the key was present
// at all, and whether it carried an explicit null.
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// Some builds a present, non-null field. Used by tests and producers.
func Some[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// Null builds a present field carrying an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Present reports whether the key appeared in the payload.
func (f Field[T]) Present() bool {
	return f.present
}

// IsNull reports whether the key carried an explicit null.
func (f Field[T]) IsNull() bool {
	return f.null
}

// Value returns the decoded value. For an absent or null field it returns the
// zero value of T.
func (f Field[T]) Value() T {
	return f.value
}

// Apply overwrites *dst with the field's value when the key was present,
// and leaves *dst untouched otherwise. A null overwrites with the zero value.
func (f Field[T]) Apply(dst *T) {
	if !f.present {
		return
	}
	if f.null {
		var zero T
		*dst = zero
		return
	}
	*dst = f.value
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// which is exactly the presence signal Field records.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if string(data) == "null" {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON renders the value, or null for an explicit null. Absent fields
// still render as the zero value; producers that need true key omission
// should build payloads by hand.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
