package model

import (
	"errors"
	"fmt"
	"time"
)

// Date is a calendar date stored as an 8-digit DDMMYYYY decimal integer,
// e.g. 25102025 for 25 Oct 2025.
type Date int32

const dateLayout = "02012006"

var ErrBadDate = errors.New("model: bad date")

// ParseDate validates s as an 8-digit DDMMYYYY string naming a real
// calendar date.
func ParseDate(s string) (Date, error) {
	if len(s) != 8 {
		return 0, fmt.Errorf("%w: %q is not 8 digits", ErrBadDate, s)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return Date(t.Day()*1000000 + int(t.Month())*10000 + t.Year()), nil
}

// Time converts d to midnight UTC of the date it encodes.
func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, fmt.Sprintf("%08d", int32(d)))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %d", ErrBadDate, int32(d))
	}
	return t, nil
}

func (d Date) Validate() error {
	_, err := d.Time()
	return err
}

// String renders DD-MM-YYYY, or the raw digits when d is malformed.
func (d Date) String() string {
	t, err := d.Time()
	if err != nil {
		return fmt.Sprintf("%08d", int32(d))
	}
	return t.Format("02-01-2006")
}

// DaysBetween returns the day span from start to end inclusive of both
// endpoints, so a rental from a date to the same date lasts one day.
func DaysBetween(start, end Date) (int, error) {
	st, err := start.Time()
	if err != nil {
		return 0, err
	}
	et, err := end.Time()
	if err != nil {
		return 0, err
	}
	return int(et.Sub(st).Hours()/24) + 1, nil
}
