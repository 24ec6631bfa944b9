// Package date implements a calendar day with no time component, written and
// read in the DD.MM.YYYY format used by the ledger file.
package date

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// DateFormat is the format used to represent dates as strings.
const DateFormat = "02.01.2006"

// time.Parse accepts a signed year, the layout is enforced beforehand.
var layout = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from a DD.MM.YYYY string.
//
// Unlike the permissive parsing of most date inputs, day and month must have
// two digits, the year four, and the day must exist in that month: 30.02.2024
// is rejected.
func Parse(str string) (Date, error) {
	if !layout.MatchString(str) {
		return Date{}, fmt.Errorf("invalid date %q want format DD.MM.YYYY", str)
	}
	on, err := time.Parse(DateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format DD.MM.YYYY: %w", str, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
