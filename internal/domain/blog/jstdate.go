package blog

import (
	"fmt"
	"time"
)

// JST is UTC+09:00 with no daylight saving.
var jstLocation = time.FixedZone("JST", 9*60*60)

// JstDate is a calendar date always interpreted in JST. It carries no
// time-of-day component; ordering and equality are by ordinal date.
type JstDate struct {
	year  int
	month time.Month
	day   int
}

// NewJstDate builds a JstDate and rejects impossible calendar values
// such as Feb 30 or Feb 29 on non-leap years.
func NewJstDate(year int, month time.Month, day int) (JstDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return JstDate{}, &InvalidDateError{
			Detail: fmt.Sprintf("%04d-%02d-%02d is not a valid calendar date", year, int(month), day),
		}
	}
	return JstDate{year: year, month: month, day: day}, nil
}

// JstDateFromTime treats t's calendar fields as an already-JST date.
// The location and time-of-day of t are ignored.
func JstDateFromTime(t time.Time) JstDate {
	return JstDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

// JstDateFromUTC shifts a UTC instant into JST and keeps the date only.
func JstDateFromUTC(t time.Time) JstDate {
	return JstDateFromTime(t.In(jstLocation))
}

// TodayJST returns the current calendar date in JST.
func TodayJST() JstDate {
	return JstDateFromUTC(time.Now().UTC())
}

func (d JstDate) Year() int         { return d.year }
func (d JstDate) Month() time.Month { return d.month }
func (d JstDate) Day() int          { return d.day }

// NaiveTime is the date at midnight UTC, for callers that only need the
// calendar fields back.
func (d JstDate) NaiveTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// UTCTime is the instant 00:00 JST on this date expressed in UTC, which
// lands on 15:00 of the previous day.
func (d JstDate) UTCTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, jstLocation).UTC()
}

func (d JstDate) Equal(other JstDate) bool {
	return d == other
}

func (d JstDate) Before(other JstDate) bool {
	return d.Compare(other) < 0
}

func (d JstDate) After(other JstDate) bool {
	return d.Compare(other) > 0
}

func (d JstDate) Compare(other JstDate) int {
	if d.year != other.year {
		if d.year < other.year {
			return -1
		}
		return 1
	}
	if d.month != other.month {
		if d.month < other.month {
			return -1
		}
		return 1
	}
	if d.day != other.day {
		if d.day < other.day {
			return -1
		}
		return 1
	}
	return 0
}

func (d JstDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// ParseJstDate parses a YYYY-MM-DD string as a JST calendar date.
func ParseJstDate(s string) (JstDate, error) {
	t, err := time.ParseInLocation("2006-01-02", s, jstLocation)
	if err != nil {
		return JstDate{}, &InvalidDateError{Detail: fmt.Sprintf("cannot parse %q as a date: %v", s, err)}
	}
	return JstDateFromTime(t), nil
}

func (d JstDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *JstDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return &InvalidDateError{Detail: fmt.Sprintf("date must be a %q string, got %s", "YYYY-MM-DD", s)}
	}
	parsed, err := ParseJstDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
