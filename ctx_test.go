package bagabo_test

import (
	"context"
	"testing"
	"time"

	bagabo "github.com/bagabo/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		identity := bagabo.Identity{ID: 7, Name: "Jane Doe", Email: "jane@x.com", Role: bagabo.RoleAdmin}
		ctx := bagabo.WithIdentity(context.Background(), identity)

		got, ok := bagabo.IdentityFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, identity, got)
	})

	t.Run("absent identity", func(t *testing.T) {
		_, ok := bagabo.IdentityFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("admin check", func(t *testing.T) {
		admin := bagabo.WithIdentity(context.Background(), bagabo.Identity{ID: 1, Role: bagabo.RoleAdmin})
		customer := bagabo.WithIdentity(context.Background(), bagabo.Identity{ID: 2, Role: bagabo.RoleCustomer})

		assert.True(t, bagabo.IsAdminContext(admin))
		assert.False(t, bagabo.IsAdminContext(customer))
		assert.False(t, bagabo.IsAdminContext(context.Background()))
	})
}

func TestActivitySinkReceivesIdentityContext(t *testing.T) {
	var sawIdentity bool
	sink := bagabo.ActivitySinkFunc(func(ctx context.Context, event bagabo.ActivityEvent) error {
		if event.EventType == bagabo.ActivityEventLoginSuccess {
			_, sawIdentity = bagabo.IdentityFromContext(ctx)
		}
		return nil
	})

	store := bagabo.New(bagabo.NewMemoryCredentialStore(), bagabo.WithActivitySink(sink))
	raw := signToken(t, janeClaims(time.Now()))

	require.NoError(t, store.Login(context.Background(), raw))
	assert.True(t, sawIdentity, "login event should carry the signed-in identity in context")
}
