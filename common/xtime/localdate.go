package xtime

import (
	"cmp"
	"fmt"
	"time"
)

var ldZero LocalDate

type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewLocalDate(t time.Time) LocalDate {
	year, month, day := t.Date()
	return LocalDate{year, month, day}
}

// Date builds a LocalDate from its parts. Unlike time.Date it does not
// normalize out of range values: 2025-04-31 is an error, not 2025-05-01.
func Date(year int, month time.Month, day int) (LocalDate, error) {
	if month < time.January || month > time.December {
		return ldZero, fmt.Errorf("invalid month %d", month)
	}

	if day < 1 || day > DaysIn(year, month) {
		return ldZero, fmt.Errorf("invalid date %04d-%02d-%02d: day out of range", year, month, day)
	}

	return LocalDate{year, month, day}, nil
}

// DaysIn returns the number of days of the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func ParseLocalDate(v string) (LocalDate, error) {
	t, err := time.Parse(time.DateOnly, v)
	return NewLocalDate(t), err
}

func MustParseLocalDate(v string) LocalDate {
	ld, err := ParseLocalDate(v)
	if err != nil {
		panic(err)
	}

	return ld
}

func (ld LocalDate) String() string {
	return ld.Time(nil).Format(time.DateOnly)
}

func (ld LocalDate) Time(loc *time.Location) time.Time {
	return time.Date(ld.Year, ld.Month, ld.Day, 0, 0, 0, 0, cmp.Or(loc, time.UTC))
}
