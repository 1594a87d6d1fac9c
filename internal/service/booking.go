// Package service is the boundary the core exposes to the presentation
// layer: booking and administration operations returning records or nil
// sentinels. Only store I/O faults come back as errors; "not found",
// "invalid", and "not enough seats" are all nil or false results.
package service

import (
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/moviebook/movie-booking-system/internal/domain"
	"github.com/moviebook/movie-booking-system/internal/model"
)

// BookingService books and cancels seats on shows.
type BookingService struct {
	models  *domain.Models
	checker *validator.Validate
	logger  *slog.Logger
}

func NewBookingService(models *domain.Models, checker *validator.Validate, logger *slog.Logger) *BookingService {
	return &BookingService{
		models:  models,
		checker: checker,
		logger:  logger,
	}
}

type createBookingInput struct {
	UserID    int `validate:"required,gt=0"`
	ShowID    int `validate:"required,gt=0"`
	SeatCount int `validate:"required,gt=0"`
}

// CreateBooking takes seatCount seats on the show and records a booking
// holding them. Nil on any failure: unknown show, not enough free seats, or
// invalid input. No partial booking is ever left behind; if the booking row
// itself cannot be saved, the taken seats are released again.
func (s *BookingService) CreateBooking(userID, showID, seatCount int) (*domain.Booking, error) {
	in := createBookingInput{UserID: userID, ShowID: showID, SeatCount: seatCount}
	if err := s.checker.Struct(in); err != nil {
		s.logger.Debug("rejected booking input", "user_id", userID, "show_id", showID, "seats", seatCount)
		return nil, nil
	}

	show, err := s.models.FindShow(showID)
	if err != nil || show == nil {
		return nil, err
	}

	seats, err := show.BookSeats(seatCount)
	if err != nil || seats == nil {
		return nil, err
	}

	booking, err := s.models.CreateBooking(model.Attrs{
		"user_id":      userID,
		"show_id":      showID,
		"seats":        seatCount,
		"booked_seats": strings.Join(seats, ","),
	})
	if err != nil {
		return nil, err
	}

	if !booking.Record().Persisted() {
		if err := show.CancelSeats(seats); err != nil {
			return nil, err
		}
		return nil, nil
	}

	s.logger.Info("created booking", "booking_id", booking.ID(), "show_id", showID, "seats", seats)

	return booking, nil
}

// CancelBooking releases the booking's seats back to its show and destroys
// the booking. False when the booking or its show no longer exists. The
// release and the destroy are two separate writes; a crash between them
// leaves the seats released with the booking still on file.
func (s *BookingService) CancelBooking(bookingID int) (bool, error) {
	booking, err := s.models.FindBooking(bookingID)
	if err != nil || booking == nil {
		return false, err
	}

	show, err := booking.Show()
	if err != nil || show == nil {
		return false, err
	}

	if err := show.CancelSeats(booking.BookedSeats()); err != nil {
		return false, err
	}

	if err := booking.Destroy(); err != nil {
		return false, err
	}

	s.logger.Info("cancelled booking", "booking_id", bookingID, "show_id", show.ID())

	return true, nil
}

// ListBookings returns every booking in file order.
func (s *BookingService) ListBookings() ([]*domain.Booking, error) {
	return s.models.AllBookings()
}
