package service

import (
	"log/slog"

	"github.com/moviebook/movie-booking-system/internal/domain"
	"github.com/moviebook/movie-booking-system/internal/model"
)

// AdminService manages the movie, show, and user catalog.
type AdminService struct {
	models *domain.Models
	logger *slog.Logger
}

func NewAdminService(models *domain.Models, logger *slog.Logger) *AdminService {
	return &AdminService{
		models: models,
		logger: logger,
	}
}

// AddMovie creates a movie. The result may be unpersisted when validation
// rejected it; check Record().Errors().
func (s *AdminService) AddMovie(attrs model.Attrs) (*domain.Movie, error) {
	movie, err := s.models.CreateMovie(attrs)
	if err != nil {
		return nil, err
	}

	if movie.Record().Persisted() {
		s.logger.Info("added movie", "movie_id", movie.ID(), "title", movie.Title())
	}

	return movie, nil
}

// UpdateMovie merges attrs into the movie and saves. Nil when the movie does
// not exist; an unpersisted change is reported through Record().Errors().
func (s *AdminService) UpdateMovie(id int, attrs model.Attrs) (*domain.Movie, error) {
	movie, err := s.models.FindMovie(id)
	if err != nil || movie == nil {
		return nil, err
	}

	if _, err := movie.Record().Update(attrs); err != nil {
		return nil, err
	}

	return movie, nil
}

// DeleteMovie removes the movie. False when it does not exist.
func (s *AdminService) DeleteMovie(id int) (bool, error) {
	movie, err := s.models.FindMovie(id)
	if err != nil || movie == nil {
		return false, err
	}

	if err := movie.Record().Destroy(); err != nil {
		return false, err
	}

	s.logger.Info("deleted movie", "movie_id", id)

	return true, nil
}

// ListMovies returns every movie in file order.
func (s *AdminService) ListMovies() ([]*domain.Movie, error) {
	return s.models.AllMovies()
}

// CreateUser creates a user. The result may be unpersisted when validation
// rejected it; check Record().Errors().
func (s *AdminService) CreateUser(attrs model.Attrs) (*domain.User, error) {
	return s.models.CreateUser(attrs)
}

// ListUsers returns every user in file order.
func (s *AdminService) ListUsers() ([]*domain.User, error) {
	return s.models.AllUsers()
}

// AddShow schedules a show for the movie, overriding any movie_id in attrs.
// The free-seat set is generated from total_capacity unless supplied.
func (s *AdminService) AddShow(movieID int, attrs model.Attrs) (*domain.Show, error) {
	withMovie := make(model.Attrs, len(attrs)+1)
	for name, value := range attrs {
		withMovie[name] = value
	}
	withMovie["movie_id"] = movieID

	return s.models.CreateShow(withMovie)
}

// ListShowsByMovie returns the movie's shows in file order.
func (s *AdminService) ListShowsByMovie(movieID int) ([]*domain.Show, error) {
	return s.models.ShowsByMovie(movieID)
}

// ShowBookingsByMovie returns the movie's bookings grouped by show id.
func (s *AdminService) ShowBookingsByMovie(movieID int) (map[int][]*domain.Booking, error) {
	shows, err := s.models.ShowsByMovie(movieID)
	if err != nil {
		return nil, err
	}

	bookings := make(map[int][]*domain.Booking, len(shows))
	for _, show := range shows {
		list, err := show.Bookings()
		if err != nil {
			return nil, err
		}
		bookings[show.ID()] = list
	}

	return bookings, nil
}
