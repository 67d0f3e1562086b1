package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand_ServerFlagOverridesConfig(t *testing.T) {
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"version", "--short", "--server", "http://booking.test:9999/api"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected configuration to be loaded")
	}
	if cfg.Server.BaseURL != "http://booking.test:9999/api" {
		t.Errorf("expected --server to override base URL, got %q", cfg.Server.BaseURL)
	}
	if !strings.Contains(out.String(), version) {
		t.Errorf("expected version output, got: %q", out.String())
	}
}
