package bagabo

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// TokenCodec decodes credentials issued by the booking service into
// identities. The credential is opaque to the client: we read its claims
// but never hold the signing secret, so no signature verification happens
// here — the service re-validates the credential on every request.
type TokenCodec struct {
	parser *jwt.Parser
	logger Logger
}

// NewTokenCodec creates a codec. A nil logger falls back to the default.
func NewTokenCodec(logger Logger) *TokenCodec {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenCodec{
		parser: jwt.NewParser(jwt.WithoutClaimsValidation()),
		logger: logger,
	}
}

// Claims parses the raw credential into its claim set without validating
// expiry. Structural failures map to ErrTokenMalformed.
func (tc *TokenCodec) Claims(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := tc.parser.ParseUnverified(raw, claims); err != nil {
		tc.logger.Debug("credential parse failed: %v", err)
		return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode).
			WithCode(ErrTokenMalformed.Code)
	}
	return claims, nil
}

// Decode parses and shape-validates a raw credential, returning the
// Identity its claims describe. Pure; no side effects.
func (tc *TokenCodec) Decode(raw string) (Identity, error) {
	claims, err := tc.Claims(raw)
	if err != nil {
		return Identity{}, err
	}

	identity, err := claims.Identity()
	if err != nil {
		tc.logger.Debug("credential claims rejected: %v", err)
		return Identity{}, err
	}

	return identity, nil
}

// IsExpired compares the embedded expiry claim to now. A credential whose
// expiry cannot be read is treated as expired.
func (tc *TokenCodec) IsExpired(raw string, now time.Time) bool {
	claims, err := tc.Claims(raw)
	if err != nil {
		return true
	}

	exp := claims.Expires()
	if exp.IsZero() {
		return true
	}

	return exp.Before(now)
}

// ExpiresIn reports how long until the credential expires. The second
// return is false when the credential or its expiry claim is unreadable.
func (tc *TokenCodec) ExpiresIn(raw string, now time.Time) (time.Duration, bool) {
	claims, err := tc.Claims(raw)
	if err != nil {
		return 0, false
	}

	exp := claims.Expires()
	if exp.IsZero() {
		return 0, false
	}

	return exp.Sub(now), true
}
