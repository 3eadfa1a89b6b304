package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see trace events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
// Failed URL parses are logged at Warn level.
func (a *SlogAdapter) Log(event Event) {
	level := slog.LevelDebug
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("kind", event.Kind.String()),
	}

	switch {
	case event.Endpoint != nil:
		attrs = append(attrs,
			slog.String("url", event.Endpoint.URL),
			slog.String("status", event.Endpoint.Status.String()),
		)
		if event.Endpoint.Hostname != "" {
			attrs = append(attrs, slog.String("hostname", event.Endpoint.Hostname))
		}
		if event.Endpoint.Port != 0 {
			attrs = append(attrs, slog.Uint64("port", uint64(event.Endpoint.Port)))
		}
		if event.Endpoint.Path != "" {
			attrs = append(attrs, slog.String("path", event.Endpoint.Path))
		}
		if event.Endpoint.Error != "" {
			attrs = append(attrs, slog.String("error", event.Endpoint.Error))
			level = slog.LevelWarn
		}
	case event.NodeID != nil:
		attrs = append(attrs,
			slog.Uint64("ns", uint64(event.NodeID.Namespace)),
			slog.String("id_type", event.NodeID.IdentifierType.String()),
			slog.String("text", event.NodeID.Text),
		)
	case event.Status != nil:
		attrs = append(attrs,
			slog.Uint64("code", uint64(event.Status.Code)),
			slog.String("name", event.Status.Name),
			slog.Bool("found", event.Status.Found),
		)
		if event.Status.Unavailable {
			attrs = append(attrs, slog.Bool("unavailable", true))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "trace", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
