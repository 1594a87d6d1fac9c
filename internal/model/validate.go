package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/moviebook/movie-booking-system/internal/flatfile"
	appvalidator "github.com/moviebook/movie-booking-system/internal/validator"
)

// validate applies the rules in fixed order: presence, then uniqueness, then
// type. All rules run even after earlier failures, so one call yields the
// full error list. The id field is store-assigned and exempt from every
// rule. Uniqueness scans the entire live table on each call, so the cost of
// a save is linear in the table size.
func (m *Mapper) validate(r *Record) ([]string, error) {
	errs := m.validatePresence(r, nil)

	errs, err := m.validateUniqueness(r, errs)
	if err != nil {
		return nil, err
	}

	return m.validateType(r, errs), nil
}

func (m *Mapper) validatePresence(r *Record, errs []string) []string {
	for _, f := range m.schema.fields {
		if f.Name == "id" || !f.Required {
			continue
		}

		value := strings.TrimSpace(flatfile.RenderValue(r.attrs[f.Name]))
		if err := m.checker.Var(value, "required"); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				errs = append(errs, appvalidator.FieldMessage(f.Name, verrs[0]))
			}
		}
	}

	return errs
}

func (m *Mapper) validateUniqueness(r *Record, errs []string) ([]string, error) {
	var live []*Record

	for _, f := range m.schema.fields {
		if !f.Unique {
			continue
		}

		if live == nil {
			all, err := m.All()
			if err != nil {
				return nil, err
			}
			live = all
		}

		for _, other := range live {
			if r.Persisted() && other.ID() == r.ID() {
				continue
			}
			if other.attrs[f.Name] == r.attrs[f.Name] {
				errs = append(errs, fmt.Sprintf("%s must be unique", f.Name))
				break
			}
		}
	}

	return errs, nil
}

func (m *Mapper) validateType(r *Record, errs []string) []string {
	for _, f := range m.schema.fields {
		if f.Name == "id" {
			continue
		}

		value := r.attrs[f.Name]

		switch f.Type {
		case FieldInteger:
			if _, ok := value.(int); !ok {
				errs = append(errs, fmt.Sprintf("%s must be an integer", f.Name))
			}
		case FieldDate:
			if _, ok := value.(flatfile.Date); !ok {
				errs = append(errs, fmt.Sprintf("%s must be a date", f.Name))
			}
		case FieldTime:
			if _, ok := value.(flatfile.Clock); !ok {
				errs = append(errs, fmt.Sprintf("%s must be a time", f.Name))
			}
		}
	}

	return errs
}
