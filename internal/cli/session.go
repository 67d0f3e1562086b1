package cli

import (
	"context"
	"fmt"
	"time"

	bagabo "github.com/bagabo/client-go"
	"github.com/bagabo/client-go/activitymap"
	"github.com/bagabo/client-go/api"
	"github.com/bagabo/client-go/internal/output"
)

// openSession restores the persisted session, if any. An expired or
// unreadable stored credential is discarded and the session comes back
// signed out rather than failing the command.
func openSession(ctx context.Context, printer *output.Printer) (*bagabo.Store, error) {
	creds, err := bagabo.NewFileCredentialStore(cfg.Credentials.File)
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}

	session := bagabo.New(creds,
		bagabo.WithLogger(newSlogAdapter(logger)),
		bagabo.WithActivitySink(activityLogger()),
		bagabo.WithRefreshSignal(func(expiresIn time.Duration) {
			printer.Warning("session expires in %s, sign in again soon", expiresIn.Round(time.Minute))
		}),
	)

	if err := session.Hydrate(ctx); err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	return session, nil
}

// newAPIClient builds a booking service client bound to the session. A
// 401 or 403 from the service invalidates the local session the same way
// an explicit sign-out would.
func newAPIClient(session *bagabo.Store) (*api.Client, error) {
	return api.New(cfg.Server.BaseURL,
		api.WithCredentialSource(session),
		api.WithClientLogger(newSlogAdapter(logger)),
		api.WithAuthFailureHandler(func() {
			session.Logout(context.Background())
		}),
	)
}

// activityLogger records session transitions to the debug log in the
// normalized actor/verb shape.
func activityLogger() bagabo.ActivitySink {
	return bagabo.ActivitySinkFunc(func(ctx context.Context, event bagabo.ActivityEvent) error {
		record := activitymap.Normalize(event, activitymap.WithDefaultChannel("cli"))
		logger.Debug("session activity",
			"actor", record.ActorID,
			"verb", record.Verb,
			"channel", record.Channel,
			"occurred_at", record.OccurredAt,
		)
		return nil
	})
}

// guardRoute evaluates a protected navigation against the session and
// prints redirect guidance on denial.
func guardRoute(session *bagabo.Store, printer *output.Printer, route bagabo.Route) error {
	protector := bagabo.NewRouteProtector(session,
		bagabo.WithProtectorLogger(newSlogAdapter(logger)),
	)

	nav := bagabo.NavigatorFunc(func(path string) {
		switch path {
		case "/login":
			printer.Error("You are not signed in. Run `bagabo login` first.")
		default:
			printer.Error("This command needs an administrator account.")
		}
	})

	if !protector.Authorize(nav, route) {
		return fmt.Errorf("access denied: %s", route.Path)
	}
	return nil
}
