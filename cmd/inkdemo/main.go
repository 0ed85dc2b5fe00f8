// Command inkdemo demonstrates the ink brush engine by painting a few
// scripted strokes and saving the result as a PNG.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"

	"github.com/inklab/ink"
)

func main() {
	var (
		width  = flag.Int("width", 800, "canvas width")
		height = flag.Int("height", 600, "canvas height")
		output = flag.String("output", "demo.png", "output file")
		seed   = flag.Int64("seed", 1, "jitter random seed")
	)
	flag.Parse()

	src := ink.NewPixmap(*width, *height)
	src.Fill(ink.White)

	eng := ink.NewEngine(src, ink.WithRandSource(rand.NewSource(*seed)))

	drawWavyStroke(eng, *width, *height)
	drawRadialFlower(eng, *width, *height)
	drawJitterSpray(eng, *width, *height)

	if err := eng.Committed().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawWavyStroke paints a pressure-ramped sine wave across the canvas.
func drawWavyStroke(eng *ink.Engine, w, h int) {
	eng.Patch(func(s *ink.BrushSettings) {
		s.Size = 36
		s.Color = ink.RGB(30, 60, 160)
		s.Density = 8
		s.SizePressure = ink.PressureMap{Offset: -24, Policy: ink.PressureAdd}
	})

	steps := 60
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pos := ink.Pt(
			40+t*float64(w-80),
			float64(h)/2+60*math.Sin(t*4*math.Pi),
		)
		ev := ink.PointerEvent{Pos: pos, Pressure: t, Kind: ink.PointerMove}
		if i == 0 {
			ev.Kind = ink.PointerDown
		}
		if i == steps {
			ev.Kind = ink.PointerUp
		}
		eng.Pointer(ev)
	}
}

// drawRadialFlower paints one arc under 6-point radial symmetry with a
// multiply blend, so the petals darken where they overlap the wave.
func drawRadialFlower(eng *ink.Engine, w, h int) {
	eng.Patch(func(s *ink.BrushSettings) {
		s.Size = 22
		s.Color = ink.RGB(180, 40, 90)
		s.Blend = ink.BlendMultiply
		s.Opacity = 200
		s.SizePressure = ink.PressureMap{}
	})
	sym := eng.Symmetry()
	sym.Mode = ink.SymmetryRadial
	sym.Order = 6
	sym.SetOrigin(ink.Pt(float64(w)/2, float64(h)/2))

	steps := 40
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		a := t * math.Pi / 3
		r := 60 + 120*t
		pos := ink.Pt(float64(w)/2+r*math.Cos(a), float64(h)/2+r*math.Sin(a))
		ev := ink.PointerEvent{Pos: pos, Pressure: 1, Kind: ink.PointerMove}
		if i == 0 {
			ev.Kind = ink.PointerDown
		}
		if i == steps {
			ev.Kind = ink.PointerUp
		}
		eng.Pointer(ev)
	}
	sym.Mode = ink.SymmetryNone
}

// drawJitterSpray paints a short stroke with heavy size, position, and
// hue jitter - a confetti spray.
func drawJitterSpray(eng *ink.Engine, w, h int) {
	eng.Patch(func(s *ink.BrushSettings) {
		s.Size = 14
		s.Color = ink.RGB(240, 170, 30)
		s.Blend = ink.BlendNormal
		s.Opacity = ink.MaxChannel
		s.Density = 2
		s.SizeJitter = ink.JitterRange{Down: 8, Up: 8}
		s.HorizontalJitter = ink.BoundJitter{Bound: 10}
		s.VerticalJitter = ink.BoundJitter{Bound: 10}
		s.ColorJitter.H = ink.JitterRange{Down: 40, Up: 40}
	})

	steps := 30
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pos := ink.Pt(80+t*float64(w-160), float64(h)-120)
		ev := ink.PointerEvent{Pos: pos, Pressure: 0.8, Kind: ink.PointerMove}
		if i == 0 {
			ev.Kind = ink.PointerDown
		}
		if i == steps {
			ev.Kind = ink.PointerUp
		}
		eng.Pointer(ev)
	}
}
