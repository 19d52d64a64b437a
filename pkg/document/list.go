// Package document holds column types for lists embedded in a parent row.
package document

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// List is an ordered list stored as a single JSON column.
type List[T any] []T

// Value implements driver.Valuer
func (l List[T]) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]T(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *List[T]) Scan(value interface{}) error {
	if value == nil {
		*l = List[T]{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("document.List: unsupported scan type %T", value)
	}
	if len(bytes) == 0 {
		*l = List[T]{}
		return nil
	}
	return json.Unmarshal(bytes, (*[]T)(l))
}

// MarshalJSON renders a nil list as [] rather than null.
func (l List[T]) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]T(l))
}

// Clone returns a shallow copy that does not share the backing array.
func (l List[T]) Clone() List[T] {
	out := make(List[T], len(l))
	copy(out, l)
	return out
}

// Prepend returns a new list with item first.
func (l List[T]) Prepend(item T) List[T] {
	out := make(List[T], 0, len(l)+1)
	out = append(out, item)
	return append(out, l...)
}
