// Package date provides the month-and-year type used to timestamp ledger
// records, and a chronological history keyed by it.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MonthFormat is the format used to represent months as strings (ISO-8601 year-month).
const MonthFormat = "2006-01"

const readMonthFormat = "2006-1" // Permissive read format (allows single-digit month).

// Month represents a specific calendar month within a specific year.
//
// Its zero value is not a valid month, use New.
type Month struct {
	y int
	m time.Month
}

// New returns a normalized Month for the given year and month.
// Out of range months are carried over the year, like time.Date does.
func New(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// FirstMonthOf returns January of the given year.
func FirstMonthOf(year int) Month { return New(year, time.January) }

// ThisYear returns the current calendar year.
func ThisYear() int { return time.Now().Year() }

// Year returns the year of m.
func (m Month) Year() int { return m.y }

// Month returns the calendar month of m.
func (m Month) Month() time.Month { return m.m }

// IsZero returns true if m is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// Add returns the month n months after m (before if n is negative).
func (m Month) Add(n int) Month { return New(m.y, m.m+time.Month(n)) }

// Next returns the month immediately following m.
func (m Month) Next() Month { return m.Add(1) }

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or after x.
func (m Month) Compare(x Month) int {
	switch {
	case m.y < x.y:
		return -1
	case m.y > x.y:
		return 1
	case m.m < x.m:
		return -1
	case m.m > x.m:
		return 1
	default:
		return 0
	}
}

// String formats the month in its standard format.
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// Parse parses a Month from a string. It is lenient and accepts "2025-1".
func Parse(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return New(on.Year(), on.Month()), nil
}

// ParseCalendarMonth parses an English month name ("MARCH", "march", "March")
// into a time.Month.
func ParseCalendarMonth(name string) (time.Month, error) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid month name %q", name)
}

// UnmarshalJSON implements the json specific way to unmarshall a month from a json string.
func (m *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := Parse(str)
	if err != nil {
		return err
	}
	*m = on
	return nil
}

func (m Month) MarshalJSON() ([]byte, error) {
	str := m.String()
	return json.Marshal(&str)
}

// check that a Month pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
