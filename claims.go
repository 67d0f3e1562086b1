package bagabo

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set the booking service encodes into a credential.
// The email travels in the registered `sub` claim; `id`, `name`, and
// `role` are private claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	UserRole string `json:"role,omitempty"`
}

// Email returns the subject claim, which carries the account email
func (c *Claims) Email() string {
	return c.RegisteredClaims.Subject
}

// Role returns the role claim
func (c *Claims) Role() string {
	return c.UserRole
}

// Expires returns the expiration time, zero when the claim is absent
func (c *Claims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time, zero when the claim is absent
func (c *Claims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// Identity projects the claims into an Identity. Claim shape is validated
// explicitly: the service never issues credentials without these fields,
// so anything missing means the string is not one of our credentials.
func (c *Claims) Identity() (Identity, error) {
	if c.UserID <= 0 {
		return Identity{}, invalidClaim("id")
	}
	if c.Name == "" {
		return Identity{}, invalidClaim("name")
	}
	if c.Email() == "" {
		return Identity{}, invalidClaim("sub")
	}

	role, ok := ParseRole(c.UserRole)
	if !ok {
		return Identity{}, invalidClaim("role")
	}

	return Identity{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email(),
		Role:  role,
	}, nil
}

func invalidClaim(field string) error {
	clone := ErrInvalidClaims.Clone()
	if clone == nil {
		return ErrInvalidClaims
	}
	clone.Message = fmt.Sprintf("credential claim missing or invalid: %s", field)
	clone.Source = ErrInvalidClaims
	return clone.WithMetadata(map[string]any{"claim": field})
}
