// Package model implements a small record mapper over flat-file stores:
// schema declaration, lenient value coercion, validation, CRUD, and explicit
// relationship lookups. Records are plain attribute maps; every query
// re-reads the backing file, so two records loaded for the same id are
// independent copies until one is saved.
package model

// FieldType names the declared type of a field. Fields declared without a
// type behave as text and are never type-checked.
type FieldType string

const (
	FieldText    FieldType = "text"
	FieldInteger FieldType = "integer"
	FieldDate    FieldType = "date"
	FieldTime    FieldType = "time"
)

// Field declares one column of a record type.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Unique   bool
}

// Schema is the ordered field list of one record type, fixed at construction.
// Field order defines the on-disk column order. Every schema gets an implicit
// leading integer id field, assigned by the store and exempt from validation.
type Schema struct {
	name   string
	fields []Field
}

func NewSchema(name string, fields ...Field) *Schema {
	all := make([]Field, 0, len(fields)+1)
	all = append(all, Field{Name: "id", Type: FieldInteger})
	all = append(all, fields...)

	return &Schema{
		name:   name,
		fields: all,
	}
}

func (s *Schema) Name() string {
	return s.name
}

func (s *Schema) Fields() []Field {
	return s.fields
}

// Field returns the declaration for name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s *Schema) Has(name string) bool {
	_, ok := s.Field(name)
	return ok
}

// Headers returns the field names in declaration order, id first.
func (s *Schema) Headers() []string {
	headers := make([]string, len(s.fields))
	for i, f := range s.fields {
		headers[i] = f.Name
	}
	return headers
}
