package bagabo

import "fmt"

// Logger is the minimal logging surface the session layer needs. The CLI
// adapts slog onto it; the default writes to stdout.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Identity holds the attributes of the authenticated user, derived from
// credential claims. It is a read-only projection; never constructed from
// anything but a decoded credential.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether this identity carries the admin role
func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}

func (i Identity) String() string {
	return fmt.Sprintf("user=%d name=%q email=%s role=%s", i.ID, i.Name, i.Email, i.Role)
}

// Guard exposes the authorization questions the route protector asks.
// *Store satisfies it; tests substitute fakes.
type Guard interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] SESSION "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] SESSION "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] SESSION "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] SESSION "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
