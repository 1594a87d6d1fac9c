package model

import (
	"regexp"

	"github.com/moviebook/movie-booking-system/internal/flatfile"
)

var digitsRgx = regexp.MustCompile(`^\d+$`)

// Coerce converts value to the declared field type on a best-effort basis.
// A value that already has the target type comes back unchanged; so does any
// value that cannot be converted. Integers convert only from all-digit
// strings; partial numbers like "12a" pass through untouched. Dates and
// clock values convert from their canonical text layouts. Coercion never
// fails: a value left untyped here surfaces later as a type validation
// error, so callers must not assume the result is typed.
func Coerce(value any, t FieldType) any {
	if value == nil {
		return nil
	}

	switch t {
	case FieldInteger:
		if _, ok := value.(int); ok {
			return value
		}
		if s, ok := value.(string); ok && digitsRgx.MatchString(s) {
			return flatfile.ParseValue(s)
		}
	case FieldDate:
		if _, ok := value.(flatfile.Date); ok {
			return value
		}
		if s, ok := value.(string); ok {
			if d, err := flatfile.ParseDate(s); err == nil {
				return d
			}
		}
	case FieldTime:
		if _, ok := value.(flatfile.Clock); ok {
			return value
		}
		if s, ok := value.(string); ok {
			if c, err := flatfile.ParseClock(s); err == nil {
				return c
			}
		}
	}

	return value
}
