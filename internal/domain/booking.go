package domain

import "github.com/moviebook/movie-booking-system/internal/model"

// Booking records the seats one user holds on one show. The codes in
// booked_seats were removed from the show's free set when the booking was
// made and go back on cancellation.
type Booking struct {
	rec    *model.Record
	models *Models
}

// CreateBooking creates a booking record. The returned booking may be
// unpersisted when validation rejected it; check Record().Errors().
func (m *Models) CreateBooking(attrs model.Attrs) (*Booking, error) {
	rec, err := m.Bookings.Create(attrs)
	if err != nil {
		return nil, err
	}
	return &Booking{rec: rec, models: m}, nil
}

// FindBooking returns the booking with the given id, or nil if there is
// none.
func (m *Models) FindBooking(id int) (*Booking, error) {
	rec, err := m.Bookings.Find(id)
	if err != nil || rec == nil {
		return nil, err
	}
	return &Booking{rec: rec, models: m}, nil
}

// AllBookings returns every booking in file order.
func (m *Models) AllBookings() ([]*Booking, error) {
	recs, err := m.Bookings.All()
	if err != nil {
		return nil, err
	}

	bookings := make([]*Booking, len(recs))
	for i, rec := range recs {
		bookings[i] = &Booking{rec: rec, models: m}
	}

	return bookings, nil
}

func (b *Booking) Record() *model.Record {
	return b.rec
}

func (b *Booking) ID() int {
	return b.rec.ID()
}

func (b *Booking) UserID() int {
	return attrInt(b.rec, "user_id")
}

func (b *Booking) ShowID() int {
	return attrInt(b.rec, "show_id")
}

// Seats is the number of seats the booking holds.
func (b *Booking) Seats() int {
	return attrInt(b.rec, "seats")
}

// BookedSeats returns the booking's seat codes in their stored order.
func (b *Booking) BookedSeats() []string {
	return splitSeats(attrString(b.rec, "booked_seats"))
}

// User resolves the owning user, nil when the reference dangles.
func (b *Booking) User() (*User, error) {
	rec, err := b.rec.Related("user")
	if err != nil || rec == nil {
		return nil, err
	}
	return &User{rec: rec, models: b.models}, nil
}

// Show resolves the booked show, nil when the reference dangles.
func (b *Booking) Show() (*Show, error) {
	rec, err := b.rec.Related("show")
	if err != nil || rec == nil {
		return nil, err
	}
	return &Show{rec: rec, models: b.models}, nil
}

// Destroy removes the booking row. The in-memory booking becomes stale.
func (b *Booking) Destroy() error {
	return b.rec.Destroy()
}

func attrInt(r *model.Record, name string) int {
	v, _ := r.Get(name).(int)
	return v
}

func attrString(r *model.Record, name string) string {
	v, _ := r.Get(name).(string)
	return v
}
