package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrNullValue = errors.New("value must not be null")

// Optional is a field of a partial update that is either absent or carries a value.
// A JSON null is rejected: use Nullable for columns that can be cleared.
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return ErrNullValue
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Set = true
	o.Value = v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ValidationValue exposes the value to the request validator: nil when absent.
func (o Optional[T]) ValidationValue() any {
	if !o.Set {
		return (*T)(nil)
	}
	v := o.Value
	return &v
}

// Nullable is a field of a partial update over a nullable column.
// It has three states: absent (Set false), null (Set true, Value nil) and a value.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if isNull(data) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// ValidationValue is nil when the field is absent or null, so only real values are checked.
func (n Nullable[T]) ValidationValue() any {
	return n.Value
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
