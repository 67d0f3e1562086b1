package bagabo_test

import (
	"testing"
	"time"

	bagabo "github.com/bagabo/client-go"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signToken builds a credential the way the booking service does: email in
// sub, id/name/role as private claims. The signing key is irrelevant to the
// client codec, which never verifies signatures.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return raw
}

func janeClaims(now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":   7,
		"name": "Jane Doe",
		"sub":  "jane@x.com",
		"role": "ADMIN",
		"exp":  now.Add(2 * time.Hour).Unix(),
	}
}

func TestDecode(t *testing.T) {
	now := time.Now()
	codec := bagabo.NewTokenCodec(nil)

	t.Run("valid admin credential", func(t *testing.T) {
		identity, err := codec.Decode(signToken(t, janeClaims(now)))
		require.NoError(t, err)
		assert.Equal(t, int64(7), identity.ID)
		assert.Equal(t, "Jane Doe", identity.Name)
		assert.Equal(t, "jane@x.com", identity.Email)
		assert.Equal(t, bagabo.RoleAdmin, identity.Role)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("valid customer credential", func(t *testing.T) {
		claims := janeClaims(now)
		claims["role"] = "CUSTOMER"
		identity, err := codec.Decode(signToken(t, claims))
		require.NoError(t, err)
		assert.Equal(t, bagabo.RoleCustomer, identity.Role)
		assert.False(t, identity.IsAdmin())
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"not-a-token",
			"a.b",
			"!!!.###.$$$",
			"eyJhbGciOiJIUzI1NiJ9.bm90LWpzb24.sig",
		} {
			_, err := codec.Decode(raw)
			assert.Error(t, err, "raw=%q", raw)
			assert.True(t, bagabo.IsMalformedError(err), "raw=%q", raw)
		}
	})

	t.Run("rejects missing required claims", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(jwt.MapClaims)
		}{
			{"missing id", func(c jwt.MapClaims) { delete(c, "id") }},
			{"zero id", func(c jwt.MapClaims) { c["id"] = 0 }},
			{"missing name", func(c jwt.MapClaims) { delete(c, "name") }},
			{"missing email", func(c jwt.MapClaims) { delete(c, "sub") }},
			{"missing role", func(c jwt.MapClaims) { delete(c, "role") }},
			{"unknown role", func(c jwt.MapClaims) { c["role"] = "SUPERUSER" }},
			{"lowercase role", func(c jwt.MapClaims) { c["role"] = "admin" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				claims := janeClaims(now)
				tt.mutate(claims)
				_, err := codec.Decode(signToken(t, claims))
				assert.Error(t, err)
				assert.True(t, bagabo.IsMalformedError(err))
			})
		}
	})

	t.Run("decode ignores expiry", func(t *testing.T) {
		claims := janeClaims(now)
		claims["exp"] = now.Add(-time.Hour).Unix()
		_, err := codec.Decode(signToken(t, claims))
		assert.NoError(t, err, "expiry is IsExpired's job, not Decode's")
	})
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	codec := bagabo.NewTokenCodec(nil)

	tests := []struct {
		name    string
		raw     string
		expired bool
	}{
		{
			name:    "future expiry",
			raw:     signToken(t, janeClaims(now)),
			expired: false,
		},
		{
			name: "past expiry",
			raw: signToken(t, jwt.MapClaims{
				"id": 7, "name": "Jane Doe", "sub": "jane@x.com", "role": "ADMIN",
				"exp": now.Add(-time.Minute).Unix(),
			}),
			expired: true,
		},
		{
			name: "no expiry claim fails closed",
			raw: signToken(t, jwt.MapClaims{
				"id": 7, "name": "Jane Doe", "sub": "jane@x.com", "role": "ADMIN",
			}),
			expired: true,
		},
		{
			name:    "unreadable credential fails closed",
			raw:     "garbage",
			expired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, codec.IsExpired(tt.raw, now))
		})
	}
}

func TestExpiresIn(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	codec := bagabo.NewTokenCodec(nil)

	t.Run("reports remaining lifetime", func(t *testing.T) {
		raw := signToken(t, janeClaims(now))
		remaining, ok := codec.ExpiresIn(raw, now)
		require.True(t, ok)
		assert.InDelta(t, (2 * time.Hour).Seconds(), remaining.Seconds(), 1.0)
	})

	t.Run("false without readable expiry", func(t *testing.T) {
		raw := signToken(t, jwt.MapClaims{
			"id": 7, "name": "Jane Doe", "sub": "jane@x.com", "role": "ADMIN",
		})
		_, ok := codec.ExpiresIn(raw, now)
		assert.False(t, ok)

		_, ok = codec.ExpiresIn("garbage", now)
		assert.False(t, ok)
	})
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		role  bagabo.Role
		valid bool
	}{
		{"ADMIN", bagabo.RoleAdmin, true},
		{"CUSTOMER", bagabo.RoleCustomer, true},
		{"admin", bagabo.Role("admin"), false},
		{"", bagabo.Role(""), false},
		{"GUEST", bagabo.Role("GUEST"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, valid := bagabo.ParseRole(tt.input)
			assert.Equal(t, tt.role, role)
			assert.Equal(t, tt.valid, valid)
		})
	}

	assert.Equal(t, []bagabo.Role{bagabo.RoleAdmin, bagabo.RoleCustomer}, bagabo.GetAllRoles())
}
