package xtime

import (
	"errors"
	"time"
)

const (
	localDateTimeFormat         = "2006-01-02T15:04"
	localDateTimeSecondsFormat  = "2006-01-02T15:04:05"
	localDateTimeFractionFormat = "2006-01-02T15:04:05.999999999"
)

var ErrInvalidLocalDateTime = errors.New("invalid local date-time, expected yyyy-MM-ddTHH:mm[:ss[.SSS]]")

// LocalDateTime is a timestamp without zone information. All values are
// kept in UTC internally so that == and Compare work on the wall clock.
type LocalDateTime struct {
	t time.Time
}

func NewLocalDateTime(d LocalDate, lt LocalTime) LocalDateTime {
	return LocalDateTime{lt.Time(d, time.UTC)}
}

func ParseLocalDateTime(v string) (LocalDateTime, error) {
	for _, layout := range [...]string{localDateTimeFormat, localDateTimeSecondsFormat, localDateTimeFractionFormat} {
		if t, err := time.Parse(layout, v); err == nil {
			return LocalDateTime{t}, nil
		}
	}

	return LocalDateTime{}, ErrInvalidLocalDateTime
}

func MustParseLocalDateTime(v string) LocalDateTime {
	ldt, err := ParseLocalDateTime(v)
	if err != nil {
		panic(err)
	}

	return ldt
}

func (ldt LocalDateTime) Year() int {
	return ldt.t.Year()
}

func (ldt LocalDateTime) Month() time.Month {
	return ldt.t.Month()
}

func (ldt LocalDateTime) Add(d time.Duration) LocalDateTime {
	return LocalDateTime{ldt.t.Add(d)}
}

func (ldt LocalDateTime) Compare(other LocalDateTime) int {
	return ldt.t.Compare(other.t)
}

func (ldt LocalDateTime) Before(other LocalDateTime) bool {
	return ldt.t.Before(other.t)
}

func (ldt LocalDateTime) After(other LocalDateTime) bool {
	return ldt.t.After(other.t)
}

func (ldt LocalDateTime) IsZero() bool {
	return ldt.t.IsZero()
}

func (ldt LocalDateTime) String() string {
	switch {
	case ldt.t.Nanosecond() != 0:
		return ldt.t.Format(localDateTimeFractionFormat)
	case ldt.t.Second() != 0:
		return ldt.t.Format(localDateTimeSecondsFormat)
	}

	return ldt.t.Format(localDateTimeFormat)
}

func (ldt *LocalDateTime) UnmarshalText(text []byte) error {
	var err error
	*ldt, err = ParseLocalDateTime(string(text))

	return err
}

func (ldt LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(ldt.String()), nil
}

// UnmarshalParam lets echo bind query parameters into a LocalDateTime.
func (ldt *LocalDateTime) UnmarshalParam(param string) error {
	return ldt.UnmarshalText([]byte(param))
}
