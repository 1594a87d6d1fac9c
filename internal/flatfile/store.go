// Package flatfile persists rows of a single record type in a delimited text
// file with a header line. It assumes a single process and a single writer:
// there is no locking and no partial-write recovery, so a crash in the middle
// of a rewrite can leave the file truncated.
package flatfile

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Row is one persisted record, keyed by column name. Values carry the types
// produced by ParseValue.
type Row map[string]any

// Store reads and writes the rows of one record type. Every query re-reads
// the backing file, so the file itself is the only shared state.
type Store struct {
	path    string
	headers []string
	logger  *slog.Logger
}

// NewStore opens the store at path, creating the file with its header line
// (and any missing parent directories) if it does not exist yet. The header
// order is the on-disk column order.
func NewStore(path string, headers []string, logger *slog.Logger) (*Store, error) {
	s := &Store{
		path:    path,
		headers: headers,
		logger:  logger,
	}

	if err := s.ensureFile(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// LoadAll returns every row in file order. A missing file reads as empty.
func (s *Store) LoadAll() ([]Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)

	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			row[name] = ParseValue(record[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// FindByID returns the first row with the given id, or nil if there is none.
func (s *Store) FindByID(id int) (Row, error) {
	rows, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row["id"] == id {
			return row, nil
		}
	}

	return nil, nil
}

// WriteRow appends row to the file, assigning the next free id (max existing
// id plus one, starting at 1) when the row has none. It returns the id the
// row was stored under.
func (s *Store) WriteRow(row Row) (int, error) {
	if err := s.ensureFile(); err != nil {
		return 0, err
	}

	id, ok := row["id"].(int)
	if !ok {
		rows, err := s.LoadAll()
		if err != nil {
			return 0, err
		}
		id = s.nextID(rows)
		row["id"] = id
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(s.render(row)); err != nil {
		f.Close()
		return 0, err
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return 0, err
	}

	if err := f.Close(); err != nil {
		return 0, err
	}

	s.logger.Debug("appended row", "path", s.path, "id", id)

	return id, nil
}

// UpdateRow merges fields into the row with the given id and rewrites the
// whole file. A missing id is a silent no-op.
func (s *Store) UpdateRow(id int, fields Row) error {
	rows, err := s.LoadAll()
	if err != nil {
		return err
	}

	index := -1
	for i, row := range rows {
		if row["id"] == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}

	for name, value := range fields {
		rows[index][name] = value
	}

	return s.rewrite(rows)
}

// DeleteRow removes the row with the given id and rewrites the whole file.
// A missing id is a no-op, but the file is still rewritten.
func (s *Store) DeleteRow(id int) error {
	rows, err := s.LoadAll()
	if err != nil {
		return err
	}

	kept := rows[:0]
	for _, row := range rows {
		if row["id"] != id {
			kept = append(kept, row)
		}
	}

	return s.rewrite(kept)
}

func (s *Store) nextID(rows []Row) int {
	max := 0
	for _, row := range rows {
		if id, ok := row["id"].(int); ok && id > max {
			max = id
		}
	}
	return max + 1
}

func (s *Store) render(row Row) []string {
	record := make([]string, len(s.headers))
	for i, name := range s.headers {
		record[i] = RenderValue(row[name])
	}
	return record
}

func (s *Store) rewrite(rows []Row) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(s.headers); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(s.render(row)); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	s.logger.Debug("rewrote store", "path", s.path, "rows", len(rows))

	return nil
}

func (s *Store) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return s.rewrite(nil)
}
