package bagabo

import (
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeTokenMalformed     = "token_malformed"
	TextCodeTokenExpired       = "token_expired"
	TextCodeCredentialNotFound = "credential_not_found"
	TextCodeCredentialStore    = "credential_store_error"
	TextCodeInvalidClaims      = "invalid_claims"
)

// ErrTokenMalformed is returned when a credential cannot be decoded or its
// claims fail shape validation.
var ErrTokenMalformed = errors.New("credential is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when a credential's expiry claim is in the past.
var ErrTokenExpired = errors.New("credential is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrCredentialNotFound is returned by credential stores when no credential
// has been persisted.
var ErrCredentialNotFound = errors.New("no stored credential", errors.CategoryNotFound).
	WithTextCode(TextCodeCredentialNotFound).
	WithCode(errors.CodeNotFound)

// ErrCredentialStore wraps storage I/O failures.
var ErrCredentialStore = errors.New("credential store failure", errors.CategoryInternal).
	WithTextCode(TextCodeCredentialStore).
	WithCode(errors.CodeInternal)

// ErrInvalidClaims is returned when decoded claims are structurally valid
// JSON but fail the required-field or role checks.
var ErrInvalidClaims = errors.New("credential claims failed validation", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidClaims).
	WithCode(errors.CodeUnauthorized)

// IsTokenExpiredError will check for expired credentials, including errors
// surfaced by the underlying JWT library.
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for malformed-credential errors
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenMalformed) || errors.Is(err, ErrInvalidClaims) {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}
