// Package ink is an interactive raster-painting engine. Given a stream
// of pointer samples it synthesizes brush dabs (stamped, transformed
// copies of a tip image) and composites them onto a layered in-memory
// canvas, producing digital brush strokes with pressure response,
// randomized jitter, symmetry, and blend-mode-aware mixing.
//
// # Quick Start
//
//	import "github.com/inklab/ink"
//
//	src := ink.NewPixmap(512, 512)
//	eng := ink.NewEngine(src)
//	eng.Pointer(ink.PointerEvent{Kind: ink.PointerDown, Pos: ink.Pt(10, 10), Pressure: 1})
//	eng.Pointer(ink.PointerEvent{Kind: ink.PointerMove, Pos: ink.Pt(60, 40), Pressure: 1})
//	eng.Pointer(ink.PointerEvent{Kind: ink.PointerUp, Pos: ink.Pt(60, 40), Pressure: 1})
//	_ = eng.Committed().SavePNG("stroke.png")
//
// # Architecture
//
// The engine owns three equal-size pixel buffers: committed (the
// authoritative image), staged (accumulates the in-progress stroke when
// layer semantics are required), and merged (a lazily rebuilt preview of
// staged flattened over committed). Display code reads Merged and calls
// RefreshMerged to re-flatten only the dirty rectangles touched since
// the last refresh.
//
// Brush behavior is a flat [BrushSettings] record mutated through
// [Engine.Patch]. Undo and redo work on whole-frame snapshots kept in an
// injected [SnapshotStore].
//
// # Coordinate System
//
// Standard raster coordinates: origin (0,0) at top-left, X increases
// right, Y increases down. Dab rotation is in degrees in [-180, 180).
//
// # Concurrency
//
// All drawing and compositing is synchronous on the caller's goroutine.
// The only background worker is the cancelable tip-set [Loader];
// [Engine.FinalSurface] is the single mutex-guarded cross-goroutine
// handoff.
package ink
