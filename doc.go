// Package bagabo implements the client-side session model of the Bagabo
// hotel booking application: credential decoding, session state, and
// role-gated navigation.
//
// Session lifecycle:
//   - Store is an explicit service object — construct with New, call
//     Hydrate once at startup so a returning user's persisted credential is
//     restored before any guard decision is trusted, then Login and Logout
//     mutate the session. Expired or undecodable credentials degrade to an
//     empty session rather than surfacing errors.
//   - CredentialStore abstracts where the single raw credential lives;
//     FileCredentialStore is the process-restart-surviving default.
//
// Route protection:
//   - RouteProtector evaluates each navigation fresh against the current
//     session: unauthenticated visitors are redirected to login,
//     authenticated non-admins are bounced home from admin-only routes.
//
// Activity sinks:
//   - ActivitySink is a light-weight audit emitter describing login,
//     logout, hydration, and near-expiry events. Sinks run best-effort so
//     forwarding to a log or queue never blocks authentication.
//
// The api subpackage holds the REST client for the booking service and
// keeps its 401/403 handling consistent with the route protector policy.
package bagabo
