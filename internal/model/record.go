package model

import (
	"fmt"
	"maps"

	"github.com/moviebook/movie-booking-system/internal/flatfile"
)

// Record is one instance of a record type: a mapping from field name to
// typed value. A record is owned by the caller holding it; mutating it has
// no effect until Save. A destroyed record is stale and must not be saved
// again.
type Record struct {
	mapper *Mapper
	attrs  Attrs
	errs   []string
}

// ID returns the store-assigned id, or 0 for an unsaved record.
func (r *Record) ID() int {
	id, _ := r.attrs["id"].(int)
	return id
}

// Persisted reports whether the record has been assigned an id.
func (r *Record) Persisted() bool {
	_, ok := r.attrs["id"].(int)
	return ok
}

func (r *Record) Get(name string) any {
	return r.attrs[name]
}

// Set coerces value to the field's declared type and stores it. Names
// outside the schema are ignored.
func (r *Record) Set(name string, value any) {
	f, ok := r.mapper.schema.Field(name)
	if !ok {
		return
	}
	r.attrs[name] = Coerce(value, f.Type)
}

// Attrs returns a copy of the record's attributes.
func (r *Record) Attrs() Attrs {
	return maps.Clone(r.attrs)
}

// Errors returns the messages produced by the most recent validation.
func (r *Record) Errors() []string {
	return r.errs
}

// Valid recomputes the error list. The error covers store I/O only (the
// uniqueness rule scans the live table).
func (r *Record) Valid() (bool, error) {
	errs, err := r.mapper.validate(r)
	if err != nil {
		return false, err
	}
	r.errs = errs
	return len(errs) == 0, nil
}

// Save validates and persists the record: false without touching the store
// when invalid, otherwise an append for a new record or a merge-and-rewrite
// for an existing one. After the write the attributes are reloaded from the
// store, so the record reflects exactly what is durably stored, including
// storage-level coercion.
func (r *Record) Save() (bool, error) {
	ok, err := r.Valid()
	if err != nil || !ok {
		return false, err
	}

	if r.Persisted() {
		if err := r.mapper.store.UpdateRow(r.ID(), flatfile.Row(r.Attrs())); err != nil {
			return false, err
		}
	} else {
		id, err := r.mapper.store.WriteRow(flatfile.Row(r.Attrs()))
		if err != nil {
			return false, err
		}
		r.attrs["id"] = id
	}

	if err := r.reload(); err != nil {
		return false, err
	}

	return true, nil
}

// Update merges attrs into the record and saves.
func (r *Record) Update(attrs Attrs) (bool, error) {
	r.assign(attrs)
	return r.Save()
}

// Destroy removes the underlying row. The in-memory record becomes stale.
func (r *Record) Destroy() error {
	return r.mapper.store.DeleteRow(r.ID())
}

// Related resolves a declared belongs-to relationship by finding the record
// the foreign key points at. Nil when the foreign key is unset or dangling.
func (r *Record) Related(name string) (*Record, error) {
	rel, ok := r.mapper.belongsTo[name]
	if !ok {
		return nil, fmt.Errorf("%s: no belongs-to relation %q", r.mapper.schema.Name(), name)
	}

	id, ok := r.attrs[rel.foreignKey].(int)
	if !ok {
		return nil, nil
	}

	return rel.target.Find(id)
}

// Collection resolves a declared has-many relationship by scanning the
// target type for rows whose foreign key equals this record's id.
func (r *Record) Collection(name string) ([]*Record, error) {
	rel, ok := r.mapper.hasMany[name]
	if !ok {
		return nil, fmt.Errorf("%s: no has-many relation %q", r.mapper.schema.Name(), name)
	}

	return rel.target.Where(Attrs{rel.foreignKey: r.ID()})
}

// Equal reports whether both records are of the same type and hold equal
// attributes.
func (r *Record) Equal(other *Record) bool {
	if other == nil || r.mapper.schema != other.mapper.schema {
		return false
	}
	return maps.Equal(r.attrs, other.attrs)
}

func (r *Record) assign(attrs Attrs) {
	for name, value := range attrs {
		r.Set(name, value)
	}
}

func (r *Record) matches(conditions Attrs) bool {
	for name, value := range conditions {
		if r.attrs[name] != value {
			return false
		}
	}
	return true
}

func (r *Record) reload() error {
	row, err := r.mapper.store.FindByID(r.ID())
	if err != nil {
		return err
	}
	if row == nil {
		return nil
	}
	r.attrs = r.mapper.fromRow(row).attrs
	return nil
}
