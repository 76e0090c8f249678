package ggchart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports every level disabled, so the
// Debug calls in Compute never build their attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes ggchart's log output to l. Nil restores the default,
// which writes nothing. It may be called while charts are being computed.
//
// Compute writes at two levels:
//
//   - [slog.LevelDebug]: one record per pass with its sizes, namely series
//     split ("specs", "series", "xValues"), domains merged ("xType",
//     "xCategories", "yGroups") and geometries built (counts per kind and
//     "indexed").
//
//   - [slog.LevelWarn]: recoverable input problems such as unparsable
//     colors, non-numeric y values or an ignored custom x domain. These go
//     through a diag.LogSink unless [WithDiagnostics] supplies another
//     sink, in which case nothing is logged for them.
//
// To see both:
//
//	ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return current.Load() }
