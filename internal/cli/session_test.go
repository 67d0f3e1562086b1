package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	bagabo "github.com/bagabo/client-go"
	"github.com/bagabo/client-go/internal/output"
	"github.com/golang-jwt/jwt/v5"
)

func setupGuardTest(t *testing.T) (*bytes.Buffer, *output.Printer) {
	t.Helper()
	logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	stderr := new(bytes.Buffer)
	printer := output.NewPrinterWithWriters(&bytes.Buffer{}, stderr, false)
	return stderr, printer
}

func customerToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   int64(3),
		"name": "Sam Guest",
		"sub":  "sam@example.com",
		"role": "CUSTOMER",
		"exp":  time.Now().Add(2 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestActivityLoggerEmitsNormalizedRecords(t *testing.T) {
	buf := new(bytes.Buffer)
	logger = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sink := activityLogger()
	err := sink.Record(context.Background(), bagabo.ActivityEvent{
		EventType: bagabo.ActivityEventLoginSuccess,
		UserID:    3,
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"actor=3", "verb=auth.login.success", "channel=cli"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in activity log, got: %q", want, got)
		}
	}
}

func TestGuardRoute_SignedOut(t *testing.T) {
	stderr, printer := setupGuardTest(t)
	session := bagabo.New(bagabo.NewMemoryCredentialStore())

	err := guardRoute(session, printer, bagabo.Route{Path: "/bookings"})
	if err == nil {
		t.Fatal("expected denial for signed-out session")
	}
	if !strings.Contains(stderr.String(), "bagabo login") {
		t.Errorf("expected login guidance, got: %q", stderr.String())
	}
}

func TestGuardRoute_CustomerOnAdminRoute(t *testing.T) {
	stderr, printer := setupGuardTest(t)
	session := bagabo.New(bagabo.NewMemoryCredentialStore())
	if err := session.Login(context.Background(), customerToken(t)); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	err := guardRoute(session, printer, bagabo.Route{Path: "/admin", AdminOnly: true})
	if err == nil {
		t.Fatal("expected denial for customer on admin route")
	}
	if !strings.Contains(stderr.String(), "administrator") {
		t.Errorf("expected admin guidance, got: %q", stderr.String())
	}
}

func TestGuardRoute_CustomerOnCustomerRoute(t *testing.T) {
	_, printer := setupGuardTest(t)
	session := bagabo.New(bagabo.NewMemoryCredentialStore())
	if err := session.Login(context.Background(), customerToken(t)); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := guardRoute(session, printer, bagabo.Route{Path: "/bookings"}); err != nil {
		t.Fatalf("expected access, got: %v", err)
	}
}
