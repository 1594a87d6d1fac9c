package model

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/moviebook/movie-booking-system/internal/flatfile"
)

// Attrs maps field names to values.
type Attrs map[string]any

type relation struct {
	foreignKey string
	target     *Mapper
}

// Mapper exposes the persistence operations of one record type. It holds no
// record state itself; all reads go back to the store.
type Mapper struct {
	schema    *Schema
	store     *flatfile.Store
	checker   *validator.Validate
	logger    *slog.Logger
	belongsTo map[string]relation
	hasMany   map[string]relation
}

func NewMapper(schema *Schema, store *flatfile.Store, checker *validator.Validate, logger *slog.Logger) *Mapper {
	return &Mapper{
		schema:    schema,
		store:     store,
		checker:   checker,
		logger:    logger,
		belongsTo: make(map[string]relation),
		hasMany:   make(map[string]relation),
	}
}

func (m *Mapper) Schema() *Schema {
	return m.schema
}

// BelongsTo declares that records of this type reference one record of the
// target type through foreignKey. The lookup is resolved fresh on every
// Record.Related call.
func (m *Mapper) BelongsTo(name, foreignKey string, target *Mapper) {
	m.belongsTo[name] = relation{foreignKey: foreignKey, target: target}
}

// HasMany declares that records of the target type reference records of this
// type through foreignKey on the target. Resolved fresh on every
// Record.Collection call, so records created after the owner was loaded are
// still visible.
func (m *Mapper) HasMany(name, foreignKey string, target *Mapper) {
	m.hasMany[name] = relation{foreignKey: foreignKey, target: target}
}

// New builds an unsaved record, coercing each supplied attribute to its
// declared type. Attributes outside the schema are dropped.
func (m *Mapper) New(attrs Attrs) *Record {
	r := &Record{
		mapper: m,
		attrs:  make(Attrs, len(m.schema.fields)),
	}
	r.assign(attrs)
	return r
}

// Create builds a record from attrs and attempts to save it. The record is
// returned even when validation rejected the save; callers check Persisted
// and Errors. The error covers store I/O only.
func (m *Mapper) Create(attrs Attrs) (*Record, error) {
	r := m.New(attrs)
	if _, err := r.Save(); err != nil {
		return nil, err
	}
	return r, nil
}

// Find returns the record with the given id, or nil if there is none.
func (m *Mapper) Find(id int) (*Record, error) {
	row, err := m.store.FindByID(id)
	if err != nil || row == nil {
		return nil, err
	}
	return m.fromRow(row), nil
}

// All returns every record in file order.
func (m *Mapper) All() ([]*Record, error) {
	rows, err := m.store.LoadAll()
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, m.fromRow(row))
	}

	return records, nil
}

// Where returns the records whose attributes equal every given condition.
// Condition values are coerced to the declared field types first, so
// Where(Attrs{"movie_id": "3"}) matches a stored integer 3.
func (m *Mapper) Where(conditions Attrs) ([]*Record, error) {
	coerced := make(Attrs, len(conditions))
	for name, value := range conditions {
		if f, ok := m.schema.Field(name); ok {
			value = Coerce(value, f.Type)
		}
		coerced[name] = value
	}

	all, err := m.All()
	if err != nil {
		return nil, err
	}

	matched := make([]*Record, 0, len(all))
	for _, r := range all {
		if r.matches(coerced) {
			matched = append(matched, r)
		}
	}

	return matched, nil
}

// fromRow builds a record from a stored row, re-coercing each declared field.
// Store-level parsing is schema-independent, so this pass settles any value
// the store left as text.
func (m *Mapper) fromRow(row flatfile.Row) *Record {
	r := &Record{
		mapper: m,
		attrs:  make(Attrs, len(m.schema.fields)),
	}
	for _, f := range m.schema.fields {
		r.attrs[f.Name] = Coerce(row[f.Name], f.Type)
	}
	return r
}
