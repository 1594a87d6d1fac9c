package domain

import "github.com/moviebook/movie-booking-system/internal/model"

// User is someone who can hold bookings.
type User struct {
	rec    *model.Record
	models *Models
}

// CreateUser creates a user. The returned user may be unpersisted when
// validation rejected it; check Record().Errors().
func (m *Models) CreateUser(attrs model.Attrs) (*User, error) {
	rec, err := m.Users.Create(attrs)
	if err != nil {
		return nil, err
	}
	return &User{rec: rec, models: m}, nil
}

// FindUser returns the user with the given id, or nil if there is none.
func (m *Models) FindUser(id int) (*User, error) {
	rec, err := m.Users.Find(id)
	if err != nil || rec == nil {
		return nil, err
	}
	return &User{rec: rec, models: m}, nil
}

// AllUsers returns every user in file order.
func (m *Models) AllUsers() ([]*User, error) {
	recs, err := m.Users.All()
	if err != nil {
		return nil, err
	}

	users := make([]*User, len(recs))
	for i, rec := range recs {
		users[i] = &User{rec: rec, models: m}
	}

	return users, nil
}

func (u *User) Record() *model.Record {
	return u.rec
}

func (u *User) ID() int {
	return u.rec.ID()
}

func (u *User) Name() string {
	return attrString(u.rec, "name")
}

// Bookings returns the user's live bookings, resolved fresh on every call.
func (u *User) Bookings() ([]*Booking, error) {
	recs, err := u.rec.Collection("bookings")
	if err != nil {
		return nil, err
	}

	bookings := make([]*Booking, len(recs))
	for i, rec := range recs {
		bookings[i] = &Booking{rec: rec, models: u.models}
	}

	return bookings, nil
}
