package ggchart

import "github.com/gogpu/ggchart/diag"

// Option configures a Compute call.
//
// Example:
//
//	// Collect warnings instead of logging them
//	var warnings diag.Collector
//	res, err := ggchart.Compute(chart, area, ggchart.WithDiagnostics(&warnings))
type Option func(*options)

// options holds optional configuration for Compute.
type options struct {
	sink       diag.Sink
	deselected []string
	theme      *Theme
	workers    int
}

func defaultOptions() options {
	return options{workers: 1}
}

// WithDiagnostics sets the sink receiving input warnings.
// By default warnings are written to Logger at warn level.
func WithDiagnostics(s diag.Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithDeselected hides the series with the given keys. Hidden series keep
// their place in the color palette but draw nothing and do not contribute
// to y domains.
func WithDeselected(keys ...string) Option {
	return func(o *options) {
		o.deselected = append(o.deselected, keys...)
	}
}

// WithTheme overrides the theme of the chart document.
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = &t
	}
}

// WithWorkers builds the geometries of up to n series concurrently.
// Results do not depend on n. If n is 0 or negative, GOMAXPROCS is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
