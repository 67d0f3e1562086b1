package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// RoomInput is the create/update payload for a room (admin only).
type RoomInput struct {
	HotelID     int64   `json:"hotelId"`
	RoomType    string  `json:"roomType"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Validate will run validation rules
func (r RoomInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.HotelID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.RoomType, validation.Required),
		validation.Field(&r.Price, validation.Required, validation.Min(0.0)),
	)
}

// RoomsByHotel returns every room in a hotel.
func (c *Client) RoomsByHotel(ctx context.Context, hotelID int64) ([]Room, error) {
	var out []Room
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rooms/hotel/%d", hotelID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AvailableRoomsByHotel returns the rooms in a hotel that are currently
// marked available.
func (c *Client) AvailableRoomsByHotel(ctx context.Context, hotelID int64) ([]Room, error) {
	var out []Room
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rooms/hotel/%d/available", hotelID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckAvailability reports whether a room is free for the given stay.
func (c *Client) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	query := url.Values{}
	query.Set("checkIn", checkIn.Format(DateLayout))
	query.Set("checkOut", checkOut.Format(DateLayout))

	var available bool
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rooms/%d/availability", roomID), query, nil, &available); err != nil {
		return false, err
	}
	return available, nil
}

// CreateRoom adds a room to a hotel.
func (c *Client) CreateRoom(ctx context.Context, input RoomInput) (*Room, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	out := &Room{}
	if err := c.do(ctx, http.MethodPost, "/rooms", nil, input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateRoom replaces a room's details.
func (c *Client) UpdateRoom(ctx context.Context, id int64, input RoomInput) (*Room, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	out := &Room{}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/rooms/%d", id), nil, input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteRoom removes a room.
func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/rooms/%d", id), nil, nil, nil)
}
