package api

import "github.com/goliatone/go-errors"

const (
	TextCodeUnauthorized  = "api_unauthorized"
	TextCodeForbidden     = "api_forbidden"
	TextCodeBadRequest    = "api_bad_request"
	TextCodeRequestFailed = "api_request_failed"
	TextCodeNetwork       = "api_network_error"
)

// ErrUnauthorized is returned on a 401: the service no longer accepts the
// credential. The client's auth-failure handler has already run by the
// time callers see this.
var ErrUnauthorized = errors.New("authentication required", errors.CategoryAuth).
	WithTextCode(TextCodeUnauthorized).
	WithCode(errors.CodeUnauthorized)

// ErrForbidden is returned on a 403: the credential is valid but lacks the
// role the endpoint requires.
var ErrForbidden = errors.New("access denied", errors.CategoryAuthz).
	WithTextCode(TextCodeForbidden).
	WithCode(errors.CodeForbidden)

// ErrBadRequest is returned on a 400 and carries the service's message.
var ErrBadRequest = errors.New("bad request", errors.CategoryBadInput).
	WithTextCode(TextCodeBadRequest).
	WithCode(errors.CodeBadRequest)

// ErrRequestFailed covers other non-2xx responses.
var ErrRequestFailed = errors.New("request failed", errors.CategoryExternal).
	WithTextCode(TextCodeRequestFailed)

// ErrNetwork is returned when the request never produced a response.
var ErrNetwork = errors.New("network error, check your connection", errors.CategoryExternal).
	WithTextCode(TextCodeNetwork)

// IsAuthError reports whether err is one of the transport-level auth
// failures that force an implicit logout.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}
