package api

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// LoginRequest is the credential request for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// LoginResponse carries the issued credential. The role is informational;
// authorization derives from the credential's claims, not this field.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RegisterRequest is the payload for POST /auth/register. Self-service
// signup always registers customers; admin accounts are provisioned
// server-side.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate will run validation rules
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
		validation.Field(&r.Role, validation.Required, validation.In("CUSTOMER")),
	)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	payload := LoginRequest{Email: email, Password: password}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	out := &LoginResponse{}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Register creates a customer account.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	payload := RegisterRequest{Name: name, Email: email, Password: password, Role: "CUSTOMER"}
	if err := payload.Validate(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/auth/register", nil, payload, nil)
}
