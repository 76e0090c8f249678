// Package ggchart computes the geometry of XY charts.
//
// # Overview
//
// ggchart turns declarative series specs and raw data rows into pixel
// shapes a renderer can draw and an interaction layer can hit-test. It
// draws nothing itself: the shapes are [gg.Path] values and plain
// rectangles and points that any gg context can paint.
//
// # Quick Start
//
//	import "github.com/gogpu/ggchart"
//
//	chart, err := ggchart.LoadChart("sales.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Compute geometries for an 800x600 chart area
//	res, err := ggchart.Compute(chart, gg.NewRect(gg.Pt(0, 0), gg.Pt(800, 600)))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Look up what sits under x = 3
//	hits := res.Index.Find(scale.Number(3), nil)
//
// # Pipeline
//
// A single call to [Compute] runs, in order:
//   - series: split specs into data series, then stack or fit them
//   - domain: merge x values into one x domain and y extents per group
//   - scale: build the x scale and one y scale per group
//   - geometry: build bars, lines, areas, points and bubbles
//   - index: collect every geometry for pointer lookups
//
// The crosshair package maps pointer positions onto the computed x scale.
//
// # Diagnostics
//
// Recoverable problems in the input, such as a custom x domain that does
// not fit the data, are reported through a [diag.Sink] and the computed
// value is used instead. Problems that leave no sensible fallback, such as
// an invalid custom y domain, are returned as errors.
//
// # Logging
//
// ggchart is silent by default. Call [SetLogger] to receive debug records
// for every pass.
package ggchart
