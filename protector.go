package bagabo

// Decision is the outcome of evaluating a single protected navigation.
type Decision string

const (
	// DecisionUnchecked is the zero value before any evaluation ran.
	DecisionUnchecked Decision = "unchecked"
	// DecisionAllowed renders the target content.
	DecisionAllowed Decision = "allowed"
	// DecisionRedirectLogin denies and sends the visitor to the login page.
	DecisionRedirectLogin Decision = "redirect_login"
	// DecisionRedirectHome denies and sends the visitor to the home page.
	DecisionRedirectHome Decision = "redirect_home"
)

// Allowed reports whether the navigation may proceed.
func (d Decision) Allowed() bool {
	return d == DecisionAllowed
}

// Route describes a protected navigation target.
type Route struct {
	Path      string
	AdminOnly bool
}

// Navigator is the navigation layer the protector redirects through. The
// CLI implements it with printed guidance; a web front end would push a
// history entry.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function into a Navigator.
type NavigatorFunc func(path string)

// Navigate satisfies the Navigator interface.
func (f NavigatorFunc) Navigate(path string) {
	if f != nil {
		f(path)
	}
}

// RouteProtector gates page access on the current session. Decisions are
// terminal per request and re-evaluated fresh on every navigation — the
// session may have changed since the last one, so nothing is cached.
type RouteProtector struct {
	guard     Guard
	loginPath string
	homePath  string
	logger    Logger
}

// ProtectorOption customizes RouteProtector construction.
type ProtectorOption func(*RouteProtector)

// WithLoginPath overrides the login redirect target.
func WithLoginPath(path string) ProtectorOption {
	return func(p *RouteProtector) {
		if path != "" {
			p.loginPath = path
		}
	}
}

// WithHomePath overrides the home redirect target.
func WithHomePath(path string) ProtectorOption {
	return func(p *RouteProtector) {
		if path != "" {
			p.homePath = path
		}
	}
}

// WithProtectorLogger overrides the default logger.
func WithProtectorLogger(logger Logger) ProtectorOption {
	return func(p *RouteProtector) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewRouteProtector creates a protector consulting the given guard.
func NewRouteProtector(guard Guard, opts ...ProtectorOption) *RouteProtector {
	p := &RouteProtector{
		guard:     guard,
		loginPath: "/login",
		homePath:  "/",
		logger:    defLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p
}

// Evaluate decides a single navigation request. The login check runs
// before the role check, so an unauthenticated visitor is sent to login
// even when the target is admin-only.
func (p *RouteProtector) Evaluate(route Route) Decision {
	if !p.guard.IsAuthenticated() {
		p.logger.Debug("route %s denied: unauthenticated", route.Path)
		return DecisionRedirectLogin
	}

	if route.AdminOnly && !p.guard.IsAdmin() {
		p.logger.Debug("route %s denied: admin only", route.Path)
		return DecisionRedirectHome
	}

	return DecisionAllowed
}

// RedirectTarget maps a denial to its redirect path. The second return is
// false for decisions that do not redirect.
func (p *RouteProtector) RedirectTarget(d Decision) (string, bool) {
	switch d {
	case DecisionRedirectLogin:
		return p.loginPath, true
	case DecisionRedirectHome:
		return p.homePath, true
	default:
		return "", false
	}
}

// Authorize evaluates the route and performs the redirect through nav on
// denial. Denial is final and immediate; no error is surfaced beyond the
// redirect itself.
func (p *RouteProtector) Authorize(nav Navigator, route Route) bool {
	decision := p.Evaluate(route)
	if decision.Allowed() {
		return true
	}

	if target, ok := p.RedirectTarget(decision); ok && nav != nil {
		nav.Navigate(target)
	}
	return false
}
