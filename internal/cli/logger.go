package cli

import (
	"fmt"
	"log/slog"

	bagabo "github.com/bagabo/client-go"
)

// slogAdapter bridges the library's Logger interface onto slog.
type slogAdapter struct {
	logger *slog.Logger
}

func newSlogAdapter(logger *slog.Logger) bagabo.Logger {
	return slogAdapter{logger: logger}
}

func (a slogAdapter) Debug(msg string, args ...any) {
	a.logger.Debug(fmt.Sprintf(msg, args...))
}

func (a slogAdapter) Info(msg string, args ...any) {
	a.logger.Info(fmt.Sprintf(msg, args...))
}

func (a slogAdapter) Warn(msg string, args ...any) {
	a.logger.Warn(fmt.Sprintf(msg, args...))
}

func (a slogAdapter) Error(msg string, args ...any) {
	a.logger.Error(fmt.Sprintf(msg, args...))
}
