package domain

import (
	"maps"
	"slices"
	"strings"

	"github.com/moviebook/movie-booking-system/internal/flatfile"
	"github.com/moviebook/movie-booking-system/internal/model"
)

// Show is one screening of a movie. Its free-seat set lives in the
// available_seats attribute as an ordered, comma-joined seat-code list; the
// codes there are disjoint from the codes held by the show's live bookings,
// and together they cover the full set generated at creation.
type Show struct {
	rec    *model.Record
	models *Models
}

// CreateShow creates a show, generating the full free-seat set from
// total_capacity when available_seats is not supplied.
func (m *Models) CreateShow(attrs model.Attrs) (*Show, error) {
	if _, ok := attrs["available_seats"]; !ok {
		if capacity, ok := model.Coerce(attrs["total_capacity"], model.FieldInteger).(int); ok {
			attrs = maps.Clone(attrs)
			attrs["available_seats"] = strings.Join(SeatCodes(capacity), ",")
		}
	}

	rec, err := m.Shows.Create(attrs)
	if err != nil {
		return nil, err
	}

	return &Show{rec: rec, models: m}, nil
}

// FindShow returns the show with the given id, or nil if there is none.
func (m *Models) FindShow(id int) (*Show, error) {
	rec, err := m.Shows.Find(id)
	if err != nil || rec == nil {
		return nil, err
	}
	return &Show{rec: rec, models: m}, nil
}

// ShowsByMovie returns the shows of one movie in file order.
func (m *Models) ShowsByMovie(movieID int) ([]*Show, error) {
	recs, err := m.Shows.Where(model.Attrs{"movie_id": movieID})
	if err != nil {
		return nil, err
	}

	shows := make([]*Show, len(recs))
	for i, rec := range recs {
		shows[i] = &Show{rec: rec, models: m}
	}

	return shows, nil
}

func (s *Show) Record() *model.Record {
	return s.rec
}

func (s *Show) ID() int {
	return s.rec.ID()
}

func (s *Show) MovieID() int {
	return attrInt(s.rec, "movie_id")
}

func (s *Show) ShowTime() flatfile.Clock {
	c, _ := s.rec.Get("show_time").(flatfile.Clock)
	return c
}

func (s *Show) TotalCapacity() int {
	return attrInt(s.rec, "total_capacity")
}

// AvailableSeats returns the free-seat codes in their stored order.
func (s *Show) AvailableSeats() []string {
	return splitSeats(attrString(s.rec, "available_seats"))
}

// Movie resolves the owning movie, nil when the reference dangles.
func (s *Show) Movie() (*Movie, error) {
	rec, err := s.rec.Related("movie")
	if err != nil || rec == nil {
		return nil, err
	}
	return &Movie{rec: rec, models: s.models}, nil
}

// Bookings returns the live bookings referencing this show, resolved fresh
// on every call.
func (s *Show) Bookings() ([]*Booking, error) {
	recs, err := s.rec.Collection("bookings")
	if err != nil {
		return nil, err
	}

	bookings := make([]*Booking, len(recs))
	for i, rec := range recs {
		bookings[i] = &Booking{rec: rec, models: s.models}
	}

	return bookings, nil
}

// BookSeats takes count consecutive seats out of the free set and persists
// the shrunken set, returning the taken codes. The block starts at a
// uniformly random position among those where a full-length block fits in
// the current free ordering, which keeps a party in adjacent seats. Nil with
// no mutation when fewer than count seats are free.
func (s *Show) BookSeats(count int) ([]string, error) {
	free := s.AvailableSeats()
	if count < 1 || len(free) < count {
		return nil, nil
	}

	start := s.models.rng.IntN(len(free) - count + 1)
	booked := slices.Clone(free[start : start+count])
	remaining := append(slices.Clone(free[:start]), free[start+count:]...)

	ok, err := s.rec.Update(model.Attrs{"available_seats": strings.Join(remaining, ",")})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return booked, nil
}

// CancelSeats unions codes back into the free set, deduplicated, and
// persists. It does not check that the codes were previously taken from this
// show; the booking service upholds that boundary.
func (s *Show) CancelSeats(codes []string) error {
	free := s.AvailableSeats()

	seen := make(map[string]bool, len(free)+len(codes))
	for _, code := range free {
		seen[code] = true
	}
	for _, code := range codes {
		if !seen[code] {
			seen[code] = true
			free = append(free, code)
		}
	}

	_, err := s.rec.Update(model.Attrs{"available_seats": strings.Join(free, ",")})
	return err
}

func splitSeats(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
