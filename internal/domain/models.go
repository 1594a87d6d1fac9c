// Package domain declares the booking entities (movies, shows, users,
// bookings) over the record mapper: their schemas, file bindings,
// relationships, and the seat inventory kept on a show.
package domain

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/moviebook/movie-booking-system/internal/flatfile"
	"github.com/moviebook/movie-booking-system/internal/model"
	appvalidator "github.com/moviebook/movie-booking-system/internal/validator"
)

// Default file names per record type, under Options.DataDir.
const (
	MoviesFile   = "movies.csv"
	ShowsFile    = "shows.csv"
	UsersFile    = "users.csv"
	BookingsFile = "bookings.csv"
)

// Options configures a Models registry.
type Options struct {
	// DataDir is the directory holding the data files. Defaults to "data".
	DataDir string

	// Paths overrides the file path per record type name ("movie", "show",
	// "user", "booking"), bypassing DataDir for that type.
	Paths map[string]string

	// Rand is the source for seat selection draws. Non-cryptographic; pass
	// a seeded source for deterministic tests. Defaults to a randomly
	// seeded PCG.
	Rand *rand.Rand

	// Logger defaults to a text handler on stdout.
	Logger *slog.Logger
}

// Models is the registry of the four record types. Schemas and relationships
// are declared once here, at construction, and shared by reference; there is
// no global mutable state.
type Models struct {
	Movies   *model.Mapper
	Shows    *model.Mapper
	Users    *model.Mapper
	Bookings *model.Mapper

	rng    *rand.Rand
	logger *slog.Logger
}

func NewModels(opts Options) (*Models, error) {
	if opts.DataDir == "" {
		opts.DataDir = "data"
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	checker := appvalidator.New()

	movieSchema := model.NewSchema("movie",
		model.Field{Name: "title", Required: true, Unique: true},
		model.Field{Name: "genre"},
		model.Field{Name: "duration", Type: model.FieldInteger},
	)
	showSchema := model.NewSchema("show",
		model.Field{Name: "movie_id", Type: model.FieldInteger, Required: true},
		model.Field{Name: "show_time", Type: model.FieldTime, Required: true},
		model.Field{Name: "total_capacity", Type: model.FieldInteger, Required: true},
		model.Field{Name: "available_seats"},
	)
	userSchema := model.NewSchema("user",
		model.Field{Name: "name", Required: true},
	)
	bookingSchema := model.NewSchema("booking",
		model.Field{Name: "user_id", Type: model.FieldInteger, Required: true},
		model.Field{Name: "show_id", Type: model.FieldInteger, Required: true},
		model.Field{Name: "seats", Type: model.FieldInteger, Required: true},
		model.Field{Name: "booked_seats", Required: true},
	)

	m := &Models{
		rng:    opts.Rand,
		logger: opts.Logger,
	}

	for _, b := range []struct {
		schema *model.Schema
		file   string
		mapper **model.Mapper
	}{
		{movieSchema, MoviesFile, &m.Movies},
		{showSchema, ShowsFile, &m.Shows},
		{userSchema, UsersFile, &m.Users},
		{bookingSchema, BookingsFile, &m.Bookings},
	} {
		path, ok := opts.Paths[b.schema.Name()]
		if !ok {
			path = filepath.Join(opts.DataDir, b.file)
		}

		store, err := flatfile.NewStore(path, b.schema.Headers(), opts.Logger)
		if err != nil {
			return nil, err
		}

		*b.mapper = model.NewMapper(b.schema, store, checker, opts.Logger)
	}

	m.Movies.HasMany("shows", "movie_id", m.Shows)
	m.Shows.BelongsTo("movie", "movie_id", m.Movies)
	m.Shows.HasMany("bookings", "show_id", m.Bookings)
	m.Users.HasMany("bookings", "user_id", m.Bookings)
	m.Bookings.BelongsTo("user", "user_id", m.Users)
	m.Bookings.BelongsTo("show", "show_id", m.Shows)

	return m, nil
}
