package bagabo_test

import (
	"context"
	"testing"
	"time"

	bagabo "github.com/bagabo/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []bagabo.ActivityEvent
}

func (r *recordingSink) Record(_ context.Context, event bagabo.ActivityEvent) error {
	r.events = append(r.events, event)
	return nil
}

func (r *recordingSink) types() []bagabo.ActivityEventType {
	out := make([]bagabo.ActivityEventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.EventType)
	}
	return out
}

func TestHydrate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("empty storage leaves session empty", func(t *testing.T) {
		store := bagabo.New(bagabo.NewMemoryCredentialStore())
		require.NoError(t, store.Hydrate(ctx))
		assert.False(t, store.IsAuthenticated())
		assert.False(t, store.IsAdmin())
	})

	t.Run("valid credential restores session", func(t *testing.T) {
		creds := bagabo.NewMemoryCredentialStore()
		require.NoError(t, creds.Save(signToken(t, janeClaims(now))))

		sink := &recordingSink{}
		store := bagabo.New(creds, bagabo.WithActivitySink(sink))
		require.NoError(t, store.Hydrate(ctx))

		assert.True(t, store.IsAuthenticated())
		assert.True(t, store.IsAdmin())

		identity, ok := store.Identity()
		require.True(t, ok)
		assert.Equal(t, int64(7), identity.ID)
		assert.Equal(t, "jane@x.com", identity.Email)
		assert.Contains(t, sink.types(), bagabo.ActivityEventSessionHydrated)
	})

	t.Run("expired credential is discarded", func(t *testing.T) {
		creds := bagabo.NewMemoryCredentialStore()
		claims := janeClaims(now)
		claims["exp"] = now.Add(-time.Minute).Unix()
		require.NoError(t, creds.Save(signToken(t, claims)))

		sink := &recordingSink{}
		store := bagabo.New(creds, bagabo.WithActivitySink(sink))
		require.NoError(t, store.Hydrate(ctx))

		assert.False(t, store.IsAuthenticated())
		_, err := creds.Load()
		assert.ErrorIs(t, err, bagabo.ErrCredentialNotFound, "stored credential must be removed")
		assert.Contains(t, sink.types(), bagabo.ActivityEventSessionExpired)
	})

	t.Run("undecodable credential is discarded without error", func(t *testing.T) {
		creds := bagabo.NewMemoryCredentialStore()
		require.NoError(t, creds.Save("not-a-credential"))

		store := bagabo.New(creds)
		require.NoError(t, store.Hydrate(ctx))

		assert.False(t, store.IsAuthenticated())
		_, err := creds.Load()
		assert.ErrorIs(t, err, bagabo.ErrCredentialNotFound)
	})

	t.Run("near expiry fires refresh signal", func(t *testing.T) {
		creds := bagabo.NewMemoryCredentialStore()
		claims := janeClaims(now)
		claims["exp"] = now.Add(30 * time.Minute).Unix()
		require.NoError(t, creds.Save(signToken(t, claims)))

		var signalled time.Duration
		sink := &recordingSink{}
		store := bagabo.New(creds,
			bagabo.WithActivitySink(sink),
			bagabo.WithClock(func() time.Time { return now }),
			bagabo.WithRefreshSignal(func(expiresIn time.Duration) { signalled = expiresIn }),
		)
		require.NoError(t, store.Hydrate(ctx))

		assert.True(t, store.IsAuthenticated(), "near-expiry session is still valid")
		assert.InDelta(t, (30 * time.Minute).Seconds(), signalled.Seconds(), 1.0)
		assert.Contains(t, sink.types(), bagabo.ActivityEventRefreshNeeded)
	})

	t.Run("comfortable expiry does not signal", func(t *testing.T) {
		creds := bagabo.NewMemoryCredentialStore()
		require.NoError(t, creds.Save(signToken(t, janeClaims(now))))

		fired := false
		store := bagabo.New(creds,
			bagabo.WithClock(func() time.Time { return now }),
			bagabo.WithRefreshSignal(func(time.Duration) { fired = true }),
		)
		require.NoError(t, store.Hydrate(ctx))
		assert.False(t, fired)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("round-trips the encoded claims", func(t *testing.T) {
		creds := bagabo.NewMemoryCredentialStore()
		store := bagabo.New(creds)
		raw := signToken(t, janeClaims(now))

		require.NoError(t, store.Login(ctx, raw))

		assert.True(t, store.IsAuthenticated())
		assert.True(t, store.IsAdmin())

		identity, ok := store.Identity()
		require.True(t, ok)
		assert.Equal(t, bagabo.Identity{
			ID:    7,
			Name:  "Jane Doe",
			Email: "jane@x.com",
			Role:  bagabo.RoleAdmin,
		}, identity)

		stored, err := creds.Load()
		require.NoError(t, err)
		assert.Equal(t, raw, stored)

		credential, ok := store.Credential()
		require.True(t, ok)
		assert.Equal(t, raw, credential)
	})

	t.Run("undecodable credential is not persisted", func(t *testing.T) {
		creds := bagabo.NewMemoryCredentialStore()
		sink := &recordingSink{}
		store := bagabo.New(creds, bagabo.WithActivitySink(sink))

		err := store.Login(ctx, "garbage")
		require.Error(t, err)
		assert.True(t, bagabo.IsMalformedError(err))
		assert.False(t, bagabo.IsTokenExpiredError(err),
			"an unreadable credential is malformed, not expired")
		assert.False(t, store.IsAuthenticated())

		_, loadErr := creds.Load()
		assert.ErrorIs(t, loadErr, bagabo.ErrCredentialNotFound,
			"a credential that does not decode must never reach storage")
		assert.Contains(t, sink.types(), bagabo.ActivityEventLoginFailure)
	})

	t.Run("expired credential is rejected", func(t *testing.T) {
		creds := bagabo.NewMemoryCredentialStore()
		store := bagabo.New(creds)

		claims := janeClaims(now)
		claims["exp"] = now.Add(-time.Hour).Unix()

		err := store.Login(ctx, signToken(t, claims))
		require.Error(t, err)
		assert.True(t, bagabo.IsTokenExpiredError(err))
		assert.False(t, store.IsAuthenticated())
	})

	t.Run("invalid role leaves session unauthenticated", func(t *testing.T) {
		store := bagabo.New(bagabo.NewMemoryCredentialStore())
		claims := janeClaims(now)
		claims["role"] = "MANAGER"

		err := store.Login(ctx, signToken(t, claims))
		require.Error(t, err)
		assert.False(t, store.IsAuthenticated())
		assert.False(t, store.IsAdmin())
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("clears state and storage", func(t *testing.T) {
		creds := bagabo.NewMemoryCredentialStore()
		sink := &recordingSink{}
		store := bagabo.New(creds, bagabo.WithActivitySink(sink))

		require.NoError(t, store.Login(ctx, signToken(t, janeClaims(now))))
		require.True(t, store.IsAuthenticated())

		store.Logout(ctx)

		assert.False(t, store.IsAuthenticated())
		assert.False(t, store.IsAdmin())
		_, ok := store.Identity()
		assert.False(t, ok)
		_, err := creds.Load()
		assert.ErrorIs(t, err, bagabo.ErrCredentialNotFound)
		assert.Contains(t, sink.types(), bagabo.ActivityEventLogout)
	})

	t.Run("is safe on an empty session", func(t *testing.T) {
		store := bagabo.New(bagabo.NewMemoryCredentialStore())
		store.Logout(ctx)
		assert.False(t, store.IsAuthenticated())
	})
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	store := bagabo.New(bagabo.NewMemoryCredentialStore())

	var snaps []bagabo.Snapshot
	cancel := store.Subscribe(func(s bagabo.Snapshot) {
		snaps = append(snaps, s)
	})

	require.NoError(t, store.Login(ctx, signToken(t, janeClaims(now))))
	require.Len(t, snaps, 1)
	assert.True(t, snaps[0].Authenticated)
	assert.Equal(t, int64(7), snaps[0].Identity.ID)

	store.Logout(ctx)
	require.Len(t, snaps, 2)
	assert.False(t, snaps[1].Authenticated)
	assert.Empty(t, snaps[1].Credential)

	cancel()
	require.NoError(t, store.Login(ctx, signToken(t, janeClaims(now))))
	assert.Len(t, snaps, 2, "cancelled subscriber must not fire")
}

func TestSnapshotConsistency(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	store := bagabo.New(bagabo.NewMemoryCredentialStore())

	empty := store.Snapshot()
	assert.False(t, empty.Authenticated)
	assert.Zero(t, empty.Identity)
	assert.Empty(t, empty.Credential)

	raw := signToken(t, janeClaims(now))
	require.NoError(t, store.Login(ctx, raw))

	snap := store.Snapshot()
	assert.True(t, snap.Authenticated)
	assert.Equal(t, raw, snap.Credential)
	assert.Equal(t, "Jane Doe", snap.Identity.Name)
}

func TestGuardOnUnauthenticatedSession(t *testing.T) {
	store := bagabo.New(bagabo.NewMemoryCredentialStore())

	// Must not panic, must not claim privileges.
	assert.False(t, store.IsAuthenticated())
	assert.False(t, store.IsAdmin())
	_, ok := store.Identity()
	assert.False(t, ok)
	_, ok = store.Credential()
	assert.False(t, ok)
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	creds := bagabo.NewMemoryCredentialStore()
	store := bagabo.New(creds)
	raw := signToken(t, janeClaims(now))
	require.NoError(t, store.Login(ctx, raw))

	store.Close()

	assert.False(t, store.IsAuthenticated())

	// The persisted credential survives Close so the next process can hydrate.
	stored, err := creds.Load()
	require.NoError(t, err)
	assert.Equal(t, raw, stored)
}
