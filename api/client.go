// Package api is the REST client for the Bagabo booking service. It owns
// the credential-bearing transport: every request gets the Authorization
// header when a session is live, and a 401/403 response triggers the
// configured auth-failure handler — the transport-level twin of the route
// protector's login redirect.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/google/uuid"

	bagabo "github.com/bagabo/client-go"
)

// DefaultTimeout bounds every request unless the caller supplies a client.
const DefaultTimeout = 15 * time.Second

// CredentialSource supplies the raw credential for outbound requests.
// *bagabo.Store satisfies it.
type CredentialSource interface {
	Credential() (string, bool)
}

// Client talks to the booking service.
type Client struct {
	baseURL       *url.URL
	http          *http.Client
	creds         CredentialSource
	onAuthFailure func()
	logger        bagabo.Logger
}

// Option customizes Client construction.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithCredentialSource attaches the session the client decorates requests
// from.
func WithCredentialSource(creds CredentialSource) Option {
	return func(c *Client) {
		c.creds = creds
	}
}

// WithAuthFailureHandler registers the hook fired on a 401/403 response.
// Wire it to the session's Logout plus a login redirect so transport-level
// enforcement stays consistent with the route protector.
func WithAuthFailureHandler(fn func()) Option {
	return func(c *Client) {
		c.onAuthFailure = fn
	}
}

// WithClientLogger overrides the default logger.
func WithClientLogger(logger bagabo.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New(fmt.Sprintf("invalid base URL: %q", baseURL), errors.CategoryBadInput)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  nil,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.logger == nil {
		c.logger = noopLogger{}
	}

	return c, nil
}

// apiError is the error envelope the service returns.
type apiError struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "encode request body")
		}
		c.logger.Debug("api %s %s payload %s", method, path, print.MaybePrettyJSON(body))
		reqBody = bytes.NewReader(b)
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "build request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.creds != nil {
		if credential, ok := c.creds.Credential(); ok {
			req.Header.Set("Authorization", "Bearer "+credential)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api %s %s transport error: %v", method, path, err)
		clone := ErrNetwork.Clone()
		if clone == nil {
			return ErrNetwork
		}
		clone.Source = ErrNetwork
		return clone.WithMetadata(map[string]any{"cause": err.Error()})
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, errors.CategoryExternal, "decode response body")
		}
		return nil
	}

	return c.statusError(resp, method, path)
}

func (c *Client) statusError(resp *http.Response, method, path string) error {
	message := serverMessage(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		c.logger.Info("api %s %s unauthorized, forcing logout", method, path)
		c.authFailure()
		return ErrUnauthorized
	case http.StatusForbidden:
		c.logger.Info("api %s %s forbidden, forcing logout", method, path)
		c.authFailure()
		return ErrForbidden
	case http.StatusBadRequest:
		return withServerMessage(ErrBadRequest, message)
	default:
		err := withServerMessage(ErrRequestFailed, message).
			WithMetadata(map[string]any{"status": resp.StatusCode})
		c.logger.Warn("api %s %s failed: %s", method, path, err.Error())
		return err
	}
}

func (c *Client) authFailure() {
	if c.onAuthFailure != nil {
		c.onAuthFailure()
	}
}

func serverMessage(body io.Reader) string {
	var envelope apiError
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}
	return envelope.Message
}

func withServerMessage(base *errors.Error, message string) *errors.Error {
	clone := base.Clone()
	if clone == nil {
		return base
	}
	if message != "" {
		clone.Message = message
	}
	clone.Source = base
	return clone
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
