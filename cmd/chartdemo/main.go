// Command chartdemo computes the geometries of a chart document and draws
// them with the gg 2D graphics library.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/crosshair"
	"github.com/gogpu/ggchart/geometry"
	"github.com/gogpu/ggchart/spec"
)

func main() {
	var (
		chartPath = flag.String("chart", "chart.yaml", "chart document (.yaml or .json)")
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		margin    = flag.Float64("margin", 40, "space around the chart area")
		output    = flag.String("output", "chart.png", "output file")
		pointer   = flag.String("pointer", "", "draw the crosshair at x,y")
		workers   = flag.Int("workers", 0, "series built concurrently (0 = GOMAXPROCS)")
		verbose   = flag.Bool("v", false, "log pipeline details")
	)
	flag.Parse()

	if *verbose {
		ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}

	chart, err := ggchart.LoadChart(*chartPath)
	if err != nil {
		log.Fatalf("Failed to load chart: %v", err)
	}
	area := gg.Rect{
		Min: gg.Pt(*margin, *margin),
		Max: gg.Pt(float64(*width)-*margin, float64(*height)-*margin),
	}
	res, err := ggchart.Compute(chart, area, ggchart.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("Failed to compute chart: %v", err)
	}

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	dc.Push()
	dc.Transform(res.Transform)
	drawPanels(dc, res.Panels)
	drawAreas(dc, res.Geometries.Areas, res.Panels)
	drawBars(dc, res.Geometries.Bars)
	drawLines(dc, res.Geometries.Lines, res.Panels)
	drawPoints(dc, res.Geometries.Points)
	for _, b := range res.Geometries.Bubbles {
		drawPoints(dc, b.Points)
	}
	dc.Pop()

	if *pointer != "" {
		var p gg.Point
		if _, err := fmt.Sscanf(*pointer, "%g,%g", &p.X, &p.Y); err != nil {
			log.Fatalf("Invalid pointer %q: %v", *pointer, err)
		}
		drawCrosshair(dc, res, chart.Settings.Rotation, area, p)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Chart saved to %s (%dx%d, %d bars, %d lines, %d areas, %d bubbles)\n",
		*output, *width, *height, res.Counts.Bars, res.Counts.Lines, res.Counts.Areas, res.Counts.Bubbles)
}

func setColor(dc *gg.Context, c gg.RGBA, alpha float64) {
	dc.SetRGBA(c.R, c.G, c.B, c.A*alpha)
}

func drawPanels(dc *gg.Context, panels []geometry.Panel) {
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	for _, p := range panels {
		b := p.Bounds
		dc.DrawRectangle(b.Min.X, b.Min.Y, b.Width(), b.Height())
		_ = dc.Stroke()
	}
}

func drawBars(dc *gg.Context, bars []geometry.Bar) {
	for _, b := range bars {
		o := b.Panel.Bounds.Min
		setColor(dc, b.Color, 1)
		dc.DrawRectangle(o.X+b.X, o.Y+b.Y, b.Width, b.Height)
		_ = dc.Fill()
	}
}

// panelOrigin returns the top-left corner of the panel holding the first
// point, or the chart origin.
func panelOrigin(points []geometry.Point, panels []geometry.Panel) gg.Point {
	if len(points) > 0 {
		return points[0].Panel.Bounds.Min
	}
	if len(panels) > 0 {
		return panels[0].Bounds.Min
	}
	return gg.Point{}
}

func drawAreas(dc *gg.Context, areas []*geometry.Area, panels []geometry.Panel) {
	for _, a := range areas {
		o := panelOrigin(a.Points, panels)
		dc.Push()
		dc.Translate(o.X+a.Transform.X, o.Y+a.Transform.Y)
		setColor(dc, a.Color, 0.4)
		appendPath(dc, a.Area)
		_ = dc.Fill()
		setColor(dc, a.Color, 1)
		dc.SetLineWidth(1)
		for _, l := range a.Lines {
			appendPath(dc, l)
			_ = dc.Stroke()
		}
		dc.Pop()
	}
}

func drawLines(dc *gg.Context, lines []*geometry.Line, panels []geometry.Panel) {
	for _, l := range lines {
		o := panelOrigin(l.Points, panels)
		dc.Push()
		dc.Translate(o.X+l.Transform.X, o.Y+l.Transform.Y)
		setColor(dc, l.Color, 1)
		dc.SetLineWidth(2)
		appendPath(dc, l.Path)
		_ = dc.Stroke()
		dc.Pop()
	}
}

func drawPoints(dc *gg.Context, points []geometry.Point) {
	for _, p := range points {
		o := p.Panel.Bounds.Min
		c := p.Center()
		dc.SetRGB(1, 1, 1)
		dc.DrawCircle(o.X+c.X, o.Y+c.Y, p.Radius)
		_ = dc.Fill()
		setColor(dc, p.Color, 1)
		dc.SetLineWidth(1)
		dc.DrawCircle(o.X+c.X, o.Y+c.Y, p.Radius)
		_ = dc.Stroke()
	}
}

func appendPath(dc *gg.Context, p *gg.Path) {
	if p == nil {
		return
	}
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}

func drawCrosshair(dc *gg.Context, res *ggchart.Result, r spec.Rotation, area gg.Rect, pointer gg.Point) {
	pos, ok := crosshair.Locate(pointer, area, r, res.Scales.X, res.XValues, crosshair.BandOptions{
		Snap:      true,
		TotalBars: res.TotalBars,
	})
	if !ok {
		log.Printf("Pointer %v is outside the chart", pointer)
		return
	}
	dc.SetRGBA(0.5, 0.5, 0.5, 0.2)
	dc.DrawRectangle(pos.Band.Min.X, pos.Band.Min.Y, pos.Band.Width(), pos.Band.Height())
	_ = dc.Fill()
	dc.SetRGBA(0.3, 0.3, 0.3, 0.8)
	dc.SetLineWidth(1)
	dc.DrawLine(pos.Line.Min.X, pos.Line.Min.Y, pos.Line.Max.X, pos.Line.Max.Y)
	_ = dc.Stroke()
	log.Printf("Crosshair at x=%v", pos.Value)
}
