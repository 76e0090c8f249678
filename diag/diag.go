// Package diag carries non-fatal diagnostics out of the chart pipeline.
//
// Invalid custom domains, non-numeric values and similar recoverable input
// problems are reported as [Warning] values through a [Sink] and the pipeline
// continues with a fallback. Callers choose where warnings go: a structured
// logger ([NewLogSink]), an in-memory [Collector], or nowhere ([Nop]).
package diag

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Warning is a single recoverable diagnostic.
type Warning struct {
	// Source names the pipeline stage that raised the warning
	// ("domain", "series", ...).
	Source string

	// Message is a human readable description.
	Message string
}

// Sink receives warnings. Implementations must be safe for concurrent use.
type Sink interface {
	Warn(w Warning)
}

type nopSink struct{}

func (nopSink) Warn(Warning) {}

// Nop is a Sink that discards every warning.
var Nop Sink = nopSink{}

// Or returns s, or Nop when s is nil.
func Or(s Sink) Sink {
	if s == nil {
		return Nop
	}
	return s
}

// Warnf formats a message and reports it to s. A nil sink drops it.
func Warnf(s Sink, source, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	Or(s).Warn(Warning{Source: source, Message: msg})
}

// LogSink forwards warnings to a slog.Logger at warn level.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink writing to l. A nil logger falls back to
// slog.Default.
func NewLogSink(l *slog.Logger) *LogSink {
	if l == nil {
		l = slog.Default()
	}
	return &LogSink{logger: l}
}

// Warn implements Sink.
func (s *LogSink) Warn(w Warning) {
	s.logger.LogAttrs(context.Background(), slog.LevelWarn, w.Message,
		slog.String("source", w.Source))
}

// Collector accumulates warnings in memory.
type Collector struct {
	mu       sync.Mutex
	warnings []Warning
}

// Warn implements Sink.
func (c *Collector) Warn(w Warning) {
	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()
}

// Warnings returns a copy of the collected warnings in arrival order.
func (c *Collector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Messages returns the collected messages in arrival order.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.warnings))
	for i, w := range c.warnings {
		out[i] = w.Message
	}
	return out
}

// Len returns the number of collected warnings.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warnings)
}

// Reset drops all collected warnings.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.warnings = nil
	c.mu.Unlock()
}
