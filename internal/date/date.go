// Package date provides the calendar Date and Time-of-day values used for
// task due dates, along with their validation error kinds.
package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthAliases maps every accepted lowercase month token to its canonical name.
var monthAliases = map[string]string{
	"january": "January", "february": "February", "march": "March",
	"april": "April", "may": "May", "june": "June",
	"july": "July", "august": "August", "september": "September",
	"october": "October", "november": "November", "december": "December",

	"jan": "January", "feb": "February", "mar": "March", "apr": "April",
	"jun": "June", "jul": "July", "aug": "August", "sep": "September",
	"oct": "October", "nov": "November", "dec": "December",

	"1": "January", "2": "February", "3": "March", "4": "April",
	"5": "May", "6": "June", "7": "July", "8": "August",
	"9": "September", "10": "October", "11": "November", "12": "December",
}

// monthNumbers maps a canonical month name to its 1-based number.
var monthNumbers = map[string]int{
	"January": 1, "February": 2, "March": 3, "April": 4,
	"May": 5, "June": 6, "July": 7, "August": 8,
	"September": 9, "October": 10, "November": 11, "December": 12,
}

// monthDays maps a canonical month name to its day limit.
// February is always 28; leap years are not considered.
var monthDays = map[string]int{
	"January": 31, "February": 28, "March": 31, "April": 30,
	"May": 31, "June": 30, "July": 31, "August": 31,
	"September": 30, "October": 31, "November": 30, "December": 31,
}

// Date represents a calendar date without time or timezone.
type Date struct {
	year  int
	month string
	day   int
}

// New validates year, month token and day and returns the Date.
// The month token may be a full name, a three-letter abbreviation or a
// one- or two-digit numeral, in any case.
func New(year int, month string, day int) (Date, error) {
	input := fmt.Sprintf("%d-%s-%d", year, month, day)
	if year < 0 {
		return Date{}, newError(KindInvalidYear, input)
	}
	name, ok := lookupMonth(month)
	if !ok {
		return Date{}, newError(KindInvalidMonth, input)
	}
	if day < 1 || day > monthDays[name] {
		return Date{}, newError(KindInvalidDay, input)
	}
	return Date{year: year, month: name, day: day}, nil
}

// Today returns the current local calendar date.
func Today() Date {
	now := time.Now()
	return Date{year: now.Year(), month: now.Month().String(), day: now.Day()}
}

// Parse parses a YEAR-MONTH-DAY string into a Date.
func Parse(s string) (Date, error) {
	fields := strings.Split(s, "-")
	if len(fields) != 3 { //nolint:mnd // year, month, day
		return Date{}, newError(KindUnspecifiedDate, s)
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || year < 0 {
		return Date{}, newError(KindInvalidYear, s)
	}
	name, ok := lookupMonth(fields[1])
	if !ok {
		return Date{}, newError(KindInvalidMonth, s)
	}
	day, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil || day < 1 || day > monthDays[name] {
		return Date{}, newError(KindInvalidDay, s)
	}

	return Date{year: year, month: name, day: day}, nil
}

func lookupMonth(token string) (string, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	// Numerals have one or two digits; longer tokens must be names.
	if n, err := strconv.Atoi(token); err == nil && len(token) <= 2 && isDigits(token) {
		token = strconv.Itoa(n)
	}
	name, ok := monthAliases[token]
	return name, ok
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the canonical month name.
func (d Date) Month() string { return d.month }

// MonthNumber returns the month as 1-12.
func (d Date) MonthNumber() int { return monthNumbers[d.month] }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Calendar returns the date as "Month Day, Year".
func (d Date) Calendar() string {
	return fmt.Sprintf("%s %d, %d", d.month, d.day, d.year)
}

// Numeric returns the date as "MonthNum Day, Year".
func (d Date) Numeric() string {
	return fmt.Sprintf("%d %d, %d", d.MonthNumber(), d.day, d.year)
}

// String returns the date as YYYY-MM-DD, which Parse accepts.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.MonthNumber(), d.day)
}

// IsToday reports whether the date is the current local calendar date.
func (d Date) IsToday() bool {
	return d.IsOn(time.Now())
}

// IsOn reports whether the date falls on the local calendar day of t.
func (d Date) IsOn(t time.Time) bool {
	return d.day == t.Day() && d.MonthNumber() == int(t.Month()) && d.year == t.Year()
}

// Time converts the date to midnight in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.year, time.Month(d.MonthNumber()), d.day, 0, 0, 0, 0, loc)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
