package flatfile

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Canonical text layouts for typed column values.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	digitsRgx = regexp.MustCompile(`^\d+$`)
	dateRgx   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRgx  = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Date is a calendar date with no time-of-day component.
type Date struct {
	time.Time
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Clock is a wall-clock time of day with no calendar component.
type Clock struct {
	time.Time
}

func (c Clock) String() string {
	return c.Format(ClockLayout)
}

// ParseDate parses a value in the canonical date layout.
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// ParseClock parses a value in the canonical clock layout.
func ParseClock(raw string) (Clock, error) {
	t, err := time.Parse(ClockLayout, raw)
	if err != nil {
		return Clock{}, err
	}
	return Clock{t}, nil
}

// ParseValue converts raw column text into a typed value: digit-only strings
// become ints, canonical dates become Dates, canonical clock values become
// Clocks. Anything else, including near misses like "2024-13-45", comes back
// unchanged as a string. This conversion never fails; a value that cannot be
// typed stays text and is caught later by type validation.
func ParseValue(raw string) any {
	switch {
	case digitsRgx.MatchString(raw):
		n, err := strconv.Atoi(raw)
		if err != nil {
			return raw
		}
		return n
	case dateRgx.MatchString(raw):
		d, err := ParseDate(raw)
		if err != nil {
			return raw
		}
		return d
	case clockRgx.MatchString(raw):
		c, err := ParseClock(raw)
		if err != nil {
			return raw
		}
		return c
	default:
		return raw
	}
}

// RenderValue converts a typed value back to its column text. It is the
// inverse of ParseValue for every value ParseValue can produce.
func RenderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case Date:
		return v.String()
	case Clock:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
