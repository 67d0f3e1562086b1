package api

import (
	"context"
	"net/http"
)

// Dashboard returns the admin dashboard counters.
func (c *Client) Dashboard(ctx context.Context) (*DashboardStats, error) {
	out := &DashboardStats{}
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard/stats", nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
