package xtime

import (
	"cmp"
	"fmt"
	"time"
)

const localTimeFormat = "15:04"

// LocalTime is a wall clock time of day with minute resolution.
type LocalTime time.Duration

func NewLocalTime(t time.Time) LocalTime {
	hour, minute, _ := t.Clock()

	d := time.Duration(0)
	d += time.Duration(hour) * time.Hour
	d += time.Duration(minute) * time.Minute

	return LocalTime(d)
}

func ParseLocalTime(v string) (LocalTime, error) {
	t, err := time.Parse(localTimeFormat, v)
	if err != nil {
		return LocalTime(0), err
	}

	return NewLocalTime(t), nil
}

func MustParseLocalTime(v string) LocalTime {
	t, err := ParseLocalTime(v)
	if err != nil {
		panic(err)
	}

	return t
}

func (lt LocalTime) Clock() (int, int) {
	d := time.Duration(lt).Truncate(time.Minute)
	hour := d / time.Hour
	d %= time.Hour

	minute := d / time.Minute

	return int(hour), int(minute)
}

func (lt LocalTime) Time(d LocalDate, loc *time.Location) time.Time {
	hour, minute := lt.Clock()
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, cmp.Or(loc, time.UTC))
}

func (lt LocalTime) Before(other LocalTime) bool {
	return lt < other
}

func (lt LocalTime) String() string {
	hour, minute := lt.Clock()
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
