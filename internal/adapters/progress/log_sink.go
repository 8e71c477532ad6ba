package progress

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/treb-genesis/internal/usecase"
)

// LogSink reports progress through the logger, for non-interactive runs
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a new logging progress sink
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("component", "Progress")}
}

// OnProgress logs stage changes and patch steps
func (s *LogSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	attrs := []any{"stage", event.Stage}
	if event.Total > 0 {
		attrs = append(attrs, "step", event.Current, "of", event.Total)
	}
	if event.Message != "" {
		attrs = append(attrs, "detail", event.Message)
	}
	s.log.InfoContext(ctx, "progress", attrs...)
}

// Info logs an info message
func (s *LogSink) Info(message string) {
	s.log.Info(message)
}

// Error logs an error message
func (s *LogSink) Error(message string) {
	s.log.Error(message)
}

// Ensure LogSink implements ProgressSink
var _ usecase.ProgressSink = (*LogSink)(nil)
