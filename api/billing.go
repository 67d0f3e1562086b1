package api

import (
	"context"
	"fmt"
	"net/http"
)

// BillByBooking returns the bill generated for a booking.
func (c *Client) BillByBooking(ctx context.Context, bookingID int64) (*Bill, error) {
	out := &Bill{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/billing/booking/%d", bookingID), nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
