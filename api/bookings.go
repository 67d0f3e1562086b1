package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	RoomID   int64  `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests,omitempty"`
}

// Validate will run validation rules
func (b BookingInput) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.RoomID, validation.Required, validation.Min(int64(1))),
		validation.Field(&b.CheckIn, validation.Required, validation.Date(DateLayout)),
		validation.Field(&b.CheckOut, validation.Required, validation.Date(DateLayout)),
	)
}

// Nights returns the stay length in nights, or an error when the dates
// do not parse or check-out is not after check-in.
func (b BookingInput) Nights() (int, error) {
	in, err := time.Parse(DateLayout, b.CheckIn)
	if err != nil {
		return 0, err
	}
	out, err := time.Parse(DateLayout, b.CheckOut)
	if err != nil {
		return 0, err
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 0, fmt.Errorf("check-out %s must be after check-in %s", b.CheckOut, b.CheckIn)
	}
	return nights, nil
}

// CreateBooking books a room for the authenticated user.
func (c *Client) CreateBooking(ctx context.Context, input BookingInput) (*Booking, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	out := &Booking{}
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyBookings returns the authenticated user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var out []Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/my", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllBookings returns every booking in the system (admin only).
func (c *Client) AllBookings(ctx context.Context) ([]Booking, error) {
	var out []Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBooking returns a single booking by id.
func (c *Client) GetBooking(ctx context.Context, id int64) (*Booking, error) {
	out := &Booking{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", id), nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelBooking cancels a booking.
func (c *Client) CancelBooking(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil, nil)
}
