package date

import (
	"encoding/json"
	"errors"
)

// Fallible holds either a validated value or the reason it is missing.
// The zero Fallible carries neither; callers normalize it with OrElse.
type Fallible[T any] struct {
	value T
	ok    bool
	err   *Error
}

// Ok wraps a valid value.
func Ok[T any](v T) Fallible[T] {
	return Fallible[T]{value: v, ok: true}
}

// Fail wraps a validation error.
func Fail[T any](err *Error) Fallible[T] {
	return Fallible[T]{err: err}
}

// From builds a Fallible from a constructor result.
func From[T any](v T, err error) Fallible[T] {
	if err == nil {
		return Ok(v)
	}
	var de *Error
	if errors.As(err, &de) {
		return Fail[T](de)
	}
	return Fail[T](&Error{Kind: Kind(err.Error())})
}

// ParseDue parses s with Parse and keeps the outcome either way.
func ParseDue(s string) Fallible[Date] {
	d, err := Parse(s)
	return From(d, err)
}

// ParseDueTime parses s with ParseTime and keeps the outcome either way.
func ParseDueTime(s string) Fallible[Time] {
	t, err := ParseTime(s)
	return From(t, err)
}

// NoDate is the due date of a task that was given none.
func NoDate() Fallible[Date] {
	return Fail[Date](&Error{Kind: KindUnspecifiedDate})
}

// NoTime is the due time of a task that was given none.
func NoTime() Fallible[Time] {
	return Fail[Time](&Error{Kind: KindUnspecifiedTime})
}

// Get returns the value, or the error describing why there is none.
func (f Fallible[T]) Get() (T, *Error) {
	return f.value, f.err
}

// Value returns the value and whether it is valid.
func (f Fallible[T]) Value() (T, bool) {
	return f.value, f.ok
}

// Err returns the validation error, or nil when the value is valid.
func (f Fallible[T]) Err() *Error {
	return f.err
}

// OK reports whether a valid value is held.
func (f Fallible[T]) OK() bool {
	return f.ok
}

// Unspecified reports whether the value was never supplied.
func (f Fallible[T]) Unspecified() bool {
	return f.err != nil && f.err.Unspecified()
}

// IsZero reports whether f holds neither a value nor an error.
func (f Fallible[T]) IsZero() bool {
	return !f.ok && f.err == nil
}

// OrElse returns f, or fallback when f is the zero Fallible.
func (f Fallible[T]) OrElse(fallback Fallible[T]) Fallible[T] {
	if f.IsZero() {
		return fallback
	}
	return f
}

type fallibleJSON[T any] struct {
	Value *T     `json:"value,omitempty"`
	Error Kind   `json:"error,omitempty"`
	Input string `json:"input,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (f Fallible[T]) MarshalJSON() ([]byte, error) {
	var w fallibleJSON[T]
	switch {
	case f.ok:
		v := f.value
		w.Value = &v
	case f.err != nil:
		w.Error = f.err.Kind
		w.Input = f.err.Input
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Fallible[T]) UnmarshalJSON(data []byte) error {
	var w fallibleJSON[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Value != nil:
		*f = Ok(*w.Value)
	case w.Error != "":
		*f = Fail[T](&Error{Kind: w.Error, Input: w.Input})
	default:
		*f = Fallible[T]{}
	}
	return nil
}
