package domain

import "github.com/moviebook/movie-booking-system/internal/model"

// Movie is a film that shows can be scheduled for.
type Movie struct {
	rec    *model.Record
	models *Models
}

// CreateMovie creates a movie. The returned movie may be unpersisted when
// validation rejected it; check Record().Errors().
func (m *Models) CreateMovie(attrs model.Attrs) (*Movie, error) {
	rec, err := m.Movies.Create(attrs)
	if err != nil {
		return nil, err
	}
	return &Movie{rec: rec, models: m}, nil
}

// FindMovie returns the movie with the given id, or nil if there is none.
func (m *Models) FindMovie(id int) (*Movie, error) {
	rec, err := m.Movies.Find(id)
	if err != nil || rec == nil {
		return nil, err
	}
	return &Movie{rec: rec, models: m}, nil
}

// AllMovies returns every movie in file order.
func (m *Models) AllMovies() ([]*Movie, error) {
	recs, err := m.Movies.All()
	if err != nil {
		return nil, err
	}

	movies := make([]*Movie, len(recs))
	for i, rec := range recs {
		movies[i] = &Movie{rec: rec, models: m}
	}

	return movies, nil
}

func (mv *Movie) Record() *model.Record {
	return mv.rec
}

func (mv *Movie) ID() int {
	return mv.rec.ID()
}

func (mv *Movie) Title() string {
	return attrString(mv.rec, "title")
}

func (mv *Movie) Genre() string {
	return attrString(mv.rec, "genre")
}

func (mv *Movie) Duration() int {
	return attrInt(mv.rec, "duration")
}

// Shows returns the shows scheduled for this movie, resolved fresh on every
// call.
func (mv *Movie) Shows() ([]*Show, error) {
	recs, err := mv.rec.Collection("shows")
	if err != nil {
		return nil, err
	}

	shows := make([]*Show, len(recs))
	for i, rec := range recs {
		shows[i] = &Show{rec: rec, models: mv.models}
	}

	return shows, nil
}
