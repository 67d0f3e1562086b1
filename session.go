package bagabo

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-errors"
)

// DefaultRefreshWindow is how close to expiry a hydrated credential can be
// before the store raises the refresh-needed signal.
const DefaultRefreshWindow = time.Hour

// Snapshot is an atomic view of the session. Authenticated is true iff an
// identity and a credential are both present and the credential was not
// expired at the last check.
type Snapshot struct {
	Authenticated bool
	Identity      Identity
	Credential    string
}

// Store owns the client's authentication state. It is an explicit service
// object with a defined lifecycle — construct, Hydrate once at startup,
// then Login/Logout in response to user actions, Close on shutdown. All
// reads observe a consistent snapshot; the only writers are the three
// mutation entry points.
type Store struct {
	codec           *TokenCodec
	creds           CredentialStore
	logger          Logger
	sink            ActivitySink
	now             func() time.Time
	refreshWindow   time.Duration
	onRefreshNeeded func(expiresIn time.Duration)

	mu            sync.RWMutex
	authenticated bool
	identity      Identity
	credential    string
	subscribers   map[int]func(Snapshot)
	nextSubID     int
}

// StoreOption customizes Store construction.
type StoreOption func(*Store)

// WithLogger overrides the default logger.
func WithLogger(logger Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock injects a custom clock (useful for tests).
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithActivitySink sets the ActivitySink used to publish session events.
func WithActivitySink(sink ActivitySink) StoreOption {
	return func(s *Store) {
		s.sink = normalizeActivitySink(sink)
	}
}

// WithTokenCodec overrides the codec used to decode credentials.
func WithTokenCodec(codec *TokenCodec) StoreOption {
	return func(s *Store) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// WithRefreshWindow overrides how close to expiry a hydrated credential
// triggers the refresh-needed signal.
func WithRefreshWindow(window time.Duration) StoreOption {
	return func(s *Store) {
		if window > 0 {
			s.refreshWindow = window
		}
	}
}

// WithRefreshSignal registers the low-priority callback fired when a
// hydrated credential is close to expiry. No refresh protocol exists yet;
// owners typically log or prompt for re-login.
func WithRefreshSignal(fn func(expiresIn time.Duration)) StoreOption {
	return func(s *Store) {
		s.onRefreshNeeded = fn
	}
}

// New creates a session store backed by the given credential store. The
// session starts empty; call Hydrate before trusting any guard decisions.
func New(creds CredentialStore, opts ...StoreOption) *Store {
	s := &Store{
		creds:         creds,
		logger:        defLogger{},
		sink:          noopActivitySink{},
		now:           time.Now,
		refreshWindow: DefaultRefreshWindow,
		subscribers:   map[int]func(Snapshot){},
	}
	s.codec = NewTokenCodec(s.logger)

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Hydrate restores the session from the persisted credential. Invoked once
// at startup, before the first protected navigation. Expired or
// undecodable credentials are discarded and the session stays empty —
// hydration never fails the caller over a bad credential; only unexpected
// storage faults surface as errors.
func (s *Store) Hydrate(ctx context.Context) error {
	raw, err := s.creds.Load()
	if err != nil {
		if errors.Is(err, ErrCredentialNotFound) {
			return nil
		}
		s.logger.Warn("hydrate: credential load failed: %v", err)
		return err
	}

	now := s.now()
	if s.codec.IsExpired(raw, now) {
		s.logger.Info("hydrate: stored credential expired, discarding")
		s.discardStored()
		s.record(ctx, ActivityEvent{EventType: ActivityEventSessionExpired})
		return nil
	}

	identity, err := s.codec.Decode(raw)
	if err != nil {
		s.logger.Warn("hydrate: stored credential undecodable, discarding: %v", err)
		s.discardStored()
		s.record(ctx, ActivityEvent{EventType: ActivityEventSessionExpired, Metadata: map[string]any{
			"reason": "decode_failed",
		}})
		return nil
	}

	snap := s.setAuthenticated(identity, raw)
	s.record(ctx, ActivityEvent{EventType: ActivityEventSessionHydrated, UserID: identity.ID})

	if expiresIn, ok := s.codec.ExpiresIn(raw, now); ok && expiresIn < s.refreshWindow {
		s.logger.Info("hydrate: credential expires in %s, refresh needed", expiresIn)
		s.record(ctx, ActivityEvent{EventType: ActivityEventRefreshNeeded, UserID: identity.ID, Metadata: map[string]any{
			"expires_in": expiresIn.String(),
		}})
		if s.onRefreshNeeded != nil {
			s.onRefreshNeeded(expiresIn)
		}
	}

	s.notify(snap)
	return nil
}

// Login decodes the credential and, on success, persists it and marks the
// session authenticated. Decode and persist form one atomic step: an
// undecodable or expired credential is never written to storage, and a
// storage failure leaves the session unauthenticated.
func (s *Store) Login(ctx context.Context, raw string) error {
	identity, err := s.codec.Decode(raw)
	if err != nil {
		s.logger.Error("login: credential decode failed: %v", err)
		s.record(ctx, ActivityEvent{EventType: ActivityEventLoginFailure, Metadata: map[string]any{
			"reason": "decode_failed",
		}})
		return err
	}

	if s.codec.IsExpired(raw, s.now()) {
		s.record(ctx, ActivityEvent{EventType: ActivityEventLoginFailure, UserID: identity.ID, Metadata: map[string]any{
			"reason": "expired",
		}})
		return ErrTokenExpired
	}

	if err := s.creds.Save(raw); err != nil {
		s.logger.Error("login: credential persist failed: %v", err)
		s.record(ctx, ActivityEvent{EventType: ActivityEventLoginFailure, UserID: identity.ID, Metadata: map[string]any{
			"reason": "persist_failed",
		}})
		return err
	}

	snap := s.setAuthenticated(identity, raw)
	s.record(ctx, ActivityEvent{EventType: ActivityEventLoginSuccess, UserID: identity.ID})
	s.notify(snap)
	return nil
}

// Logout clears the persisted credential and resets the session,
// unconditionally and synchronously. Storage faults are logged, never
// propagated — logout cannot fail.
func (s *Store) Logout(ctx context.Context) {
	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("logout: credential clear failed: %v", err)
	}

	s.mu.Lock()
	userID := s.identity.ID
	s.authenticated = false
	s.identity = Identity{}
	s.credential = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.record(ctx, ActivityEvent{EventType: ActivityEventLogout, UserID: userID})
	s.notify(snap)
}

// IsAuthenticated reports whether the session holds a live credential.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// IsAdmin reports whether the authenticated user carries the admin role.
// Always false — never a panic — when the session is unauthenticated.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated && s.identity.IsAdmin()
}

// Identity returns the authenticated identity, if any.
func (s *Store) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.authenticated
}

// Credential returns the raw credential, if any. The API client uses this
// to decorate outbound requests.
func (s *Store) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, s.authenticated
}

// Snapshot returns an atomic view of the session.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to run after every session mutation, the client
// equivalent of a dependent view re-render. The returned cancel removes
// the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Close disposes the store: subscriptions are dropped and the in-memory
// session is cleared. The persisted credential is left untouched so the
// next process can hydrate from it.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = map[int]func(Snapshot){}
	s.authenticated = false
	s.identity = Identity{}
	s.credential = ""
}

func (s *Store) setAuthenticated(identity Identity, raw string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.identity = identity
	s.credential = raw
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Authenticated: s.authenticated,
		Identity:      s.identity,
		Credential:    s.credential,
	}
}

func (s *Store) discardStored() {
	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("discard stored credential: %v", err)
	}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.RLock()
	fns := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Store) record(ctx context.Context, event ActivityEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}
	if identity, ok := s.Identity(); ok {
		ctx = WithIdentity(ctx, identity)
	}
	if err := s.sink.Record(ctx, event); err != nil {
		s.logger.Warn("activity sink record error: %v", err)
	}
}
