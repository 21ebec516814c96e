package date

import "errors"

// Kind identifies why a date or time could not be constructed.
type Kind string

// Error kinds. The string values are stable; they are written to the task file.
const (
	KindInvalidYear     Kind = "invalid_year"
	KindInvalidMonth    Kind = "invalid_month"
	KindInvalidDay      Kind = "invalid_day"
	KindInvalidHour     Kind = "invalid_hour"
	KindInvalidMinute   Kind = "invalid_minute"
	KindUnspecifiedDate Kind = "unspecified_date"
	KindUnspecifiedTime Kind = "unspecified_time"
)

var kindMessages = map[Kind]string{
	KindInvalidYear:     "Invalid year.",
	KindInvalidMonth:    "Invalid month.",
	KindInvalidDay:      "Invalid day.",
	KindInvalidHour:     "Invalid hour.",
	KindInvalidMinute:   "Invalid minute.",
	KindUnspecifiedDate: "Date not specified.",
	KindUnspecifiedTime: "Time not specified.",
}

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidYear     = &Error{Kind: KindInvalidYear}
	ErrInvalidMonth    = &Error{Kind: KindInvalidMonth}
	ErrInvalidDay      = &Error{Kind: KindInvalidDay}
	ErrInvalidHour     = &Error{Kind: KindInvalidHour}
	ErrInvalidMinute   = &Error{Kind: KindInvalidMinute}
	ErrUnspecifiedDate = &Error{Kind: KindUnspecifiedDate}
	ErrUnspecifiedTime = &Error{Kind: KindUnspecifiedTime}
)

// Error is a date or time validation failure.
type Error struct {
	Kind  Kind
	Input string
}

func newError(kind Kind, input string) *Error {
	return &Error{Kind: kind, Input: input}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg, ok := kindMessages[e.Kind]
	if !ok {
		msg = string(e.Kind)
	}
	if e.Input == "" {
		return msg
	}
	return msg + " (" + e.Input + ")"
}

// Is reports whether target is a date error of the same kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// Unspecified reports whether the error means no value was supplied.
func (e *Error) Unspecified() bool {
	return e.Kind == KindUnspecifiedDate || e.Kind == KindUnspecifiedTime
}

// KindOf returns the Kind of err, or "" if err is not a date error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
