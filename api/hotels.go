package api

import (
	"context"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

// HotelInput is the create/update payload for a hotel (admin only).
type HotelInput struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Validate will run validation rules
func (h HotelInput) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&h.Location, validation.Required, validation.Length(1, 200)),
	)
}

// ListHotels returns every listed hotel.
func (c *Client) ListHotels(ctx context.Context) ([]Hotel, error) {
	var out []Hotel
	if err := c.do(ctx, http.MethodGet, "/hotels", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHotel returns a single hotel by id.
func (c *Client) GetHotel(ctx context.Context, id int64) (*Hotel, error) {
	out := &Hotel{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/hotels/%d", id), nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateHotel lists a new hotel.
func (c *Client) CreateHotel(ctx context.Context, input HotelInput) (*Hotel, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	out := &Hotel{}
	if err := c.do(ctx, http.MethodPost, "/hotels", nil, input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateHotel replaces a hotel's listing details.
func (c *Client) UpdateHotel(ctx context.Context, id int64, input HotelInput) (*Hotel, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	out := &Hotel{}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/hotels/%d", id), nil, input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteHotel removes a hotel listing.
func (c *Client) DeleteHotel(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/hotels/%d", id), nil, nil, nil)
}
