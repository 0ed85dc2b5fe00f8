package ink

import (
	"image"
	"math/rand"
	"sync"
	"time"

	"github.com/inklab/ink/internal/num"
)

// PointerKind discriminates pointer samples.
type PointerKind uint8

const (
	// PointerDown begins a stroke.
	PointerDown PointerKind = iota
	// PointerMove continues a stroke.
	PointerMove
	// PointerUp ends a stroke.
	PointerUp
)

// PointerEvent is one input sample: a canvas-space position (already
// corrected for pan/zoom by the host), a 0..1 pressure ratio from the
// tablet driver, and the event kind.
type PointerEvent struct {
	Pos      Point
	Pressure float64
	Kind     PointerKind
}

// StrokeListener receives stroke-lifecycle notifications, enough for a
// UI to enable and disable its undo/redo controls. All callbacks run
// synchronously on the drawing goroutine.
type StrokeListener interface {
	StrokeStarted()
	DabPlaced(total int)
	StrokeEnded(changed bool)
}

// Engine is the stroke controller: it orchestrates one
// pointer-down-to-up stroke, resolving per-dab parameters, expanding
// symmetry placements, stamping dabs through the compositor, and
// managing undo snapshots and the staged-layer merge-down.
//
// All methods must be called from a single goroutine; the only
// exception is FinalSurface, which is the documented cross-goroutine
// handoff.
type Engine struct {
	canvas *Canvas
	comp   compositor

	settings BrushSettings  // live record, mutated by Patch and auto-drift
	pending  *BrushSettings // patch applied at the next dab boundary
	active   BrushSettings  // per-stroke snapshot

	tip      *BrushTip
	symmetry SymmetryState

	stroke   strokeState
	jit      jitterer
	drift    driftState
	history  *History
	listener StrokeListener
	dabCount int

	finalMu sync.Mutex
	final   *Pixmap
}

// NewEngine creates an engine whose committed buffer starts as a copy
// of source.
func NewEngine(source *Pixmap, opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		canvas:   NewCanvas(source),
		settings: o.settings,
		tip:      o.tip,
		history:  NewHistory(o.store),
		listener: o.listener,
		jit:      jitterer{rng: rand.New(o.source)},
		drift:    newDriftState(),
	}
	e.comp = compositor{canvas: e.canvas}
	e.settings.Normalize()
	e.symmetry.Origin = Pt(float64(e.canvas.Width())/2, float64(e.canvas.Height())/2)
	return e
}

// Canvas buffers and dirty-region access.

// Committed returns the authoritative image buffer.
func (e *Engine) Committed() *Pixmap { return e.canvas.Committed() }

// Staged returns the in-progress stroke buffer.
func (e *Engine) Staged() *Pixmap { return e.canvas.Staged() }

// Merged returns the display preview buffer.
func (e *Engine) Merged() *Pixmap { return e.canvas.Merged() }

// RefreshMerged flattens all queued merge regions of staged over
// committed into the preview buffer and returns the touched rectangles
// for incremental redraw. Outside a staged stroke it returns nil.
func (e *Engine) RefreshMerged() []image.Rectangle {
	return e.comp.refreshMerged(e.active.Blend, e.active.Locks)
}

// Settings returns the current brush settings, including any patch not
// yet adopted by an in-progress stroke.
func (e *Engine) Settings() BrushSettings {
	if e.pending != nil {
		return *e.pending
	}
	return e.settings
}

// Patch applies a discrete settings mutation. Outside a stroke the
// change takes effect immediately; during a stroke it is adopted at the
// next dab boundary, so a dab is never composed from half-updated
// settings.
func (e *Engine) Patch(fn func(*BrushSettings)) {
	s := e.Settings()
	fn(&s)
	s.Normalize()
	if e.stroke.started {
		e.pending = &s
		return
	}
	e.settings = s
}

// adoptPending promotes a queued patch into the live settings.
func (e *Engine) adoptPending() {
	if e.pending != nil {
		e.settings = *e.pending
		e.pending = nil
	}
}

// SetTip replaces the brush tip wholesale, discarding all cached
// variants of the previous tip.
func (e *Engine) SetTip(tip *BrushTip) {
	if tip != nil {
		e.tip = tip
	}
}

// Symmetry returns a pointer to the symmetry state for origin and
// point-set edits.
func (e *Engine) Symmetry() *SymmetryState { return &e.symmetry }

// Pointer feeds one input sample through the stroke state machine.
func (e *Engine) Pointer(ev PointerEvent) {
	ratio := num.Clamp(ev.Pressure, 0, 1)
	switch ev.Kind {
	case PointerDown:
		if e.stroke.started {
			return
		}
		e.adoptPending()
		e.active = e.settings
		e.stroke.begin(ev.Pos)
		e.dabCount = 0
		if e.listener != nil {
			e.listener.StrokeStarted()
		}

	case PointerMove:
		if !e.stroke.started {
			return
		}
		e.syncActive()
		diameter := e.active.SizePressure.Apply(float64(e.active.Size), MaxBrushSize, ratio)
		density := num.Clamp(int(e.active.DensityPressure.Apply(float64(e.active.Density), MaxDensity, ratio)), 0, MaxDensity)
		for _, pos := range e.stroke.spacing(ev.Pos, diameter, density) {
			e.placeDab(pos, ratio)
		}

	case PointerUp:
		if !e.stroke.started {
			return
		}
		e.syncActive()
		if !e.stroke.hasDrawn {
			// A click without movement still paints: force one dab at
			// the release point, bypassing the distance gates.
			e.forceDab(ev.Pos, ratio)
		}
		e.endStroke()
	}
}

// syncActive adopts pending patches and refreshes the per-stroke
// snapshot at a dab boundary. Auto-drift already wrote into the live
// settings, so this also carries drifted values into the next dab.
func (e *Engine) syncActive() {
	e.adoptPending()
	e.active = e.settings
}

// placeDab runs the full per-dab pipeline at one spaced position:
// distance gate, parameter resolution, symmetry expansion, compositing,
// and auto-drift.
func (e *Engine) placeDab(pos Point, ratio float64) {
	// Minimum-draw-distance gate, itself pressure-mapped.
	if e.stroke.hasDrawn {
		minDist := e.active.DistancePressure.Apply(float64(e.active.MinDrawDistance), MaxDrawDistance, ratio)
		if minDist > 0 && pos.Distance(e.stroke.lastDrawn) < minDist {
			return
		}
	}
	e.renderDab(pos, ratio)
}

// forceDab places a dab unconditionally, used at pointer-up when the
// stroke would otherwise have produced nothing.
func (e *Engine) forceDab(pos Point, ratio float64) {
	e.renderDab(pos, ratio)
}

// renderDab resolves, expands, and composites one logical dab.
func (e *Engine) renderDab(pos Point, ratio float64) {
	prm := e.jit.resolveDab(&e.active, ratio, e.canvas.Width(), e.canvas.Height())
	if prm.diameter <= 0 {
		return
	}

	// First dab of the stroke: push the one-time undo snapshot and
	// clear the redo stack. A store failure is recoverable - the
	// stroke continues, it just will not be undoable.
	if !e.stroke.canvasChanged {
		if err := e.history.Push(e.canvas.Committed()); err != nil {
			Logger().Warn("ink: undo snapshot failed", "err", err)
		}
		e.stroke.canvasChanged = true
	}

	plan := planDab(&e.active, e.stroke.stagedChanged)
	e.tip.ensureDownsized(e.active.maxDabDiameter(), e.active.Smoothing)
	e.tip.ensureEffects(prm.color, prm.flow, e.active.Colorize)

	target := pos.Add(prm.offset)
	for _, pl := range e.symmetry.Placements(target) {
		e.comp.stampDab(e.tip, pl.Pos, pl, prm, plan)
	}
	if plan.staged {
		e.stroke.stagedChanged = true
	}

	e.stroke.lastDrawn = pos
	e.stroke.hasDrawn = true
	e.dabCount++
	if e.listener != nil {
		e.listener.DabPlaced(e.dabCount)
	}

	// Auto-drift advances the live sliders after each dab.
	e.drift.apply(&e.settings)
	e.settings.Normalize()
	e.active = e.settings
}

// endStroke performs the final merge-down if the stroke used the staged
// layer, resets the stroke state, and publishes the final surface.
func (e *Engine) endStroke() {
	changed := e.stroke.canvasChanged
	if e.stroke.stagedChanged {
		e.comp.finishStroke(e.active.Blend, e.active.Locks)
	}
	e.stroke.end()
	e.adoptPending()

	e.finalMu.Lock()
	e.final = e.canvas.Committed().Clone()
	e.finalMu.Unlock()

	if e.listener != nil {
		e.listener.StrokeEnded(changed)
	}
}

// abortStroke force-terminates an in-progress stroke without merging
// staged work - used by undo/redo so buffer restoration cannot race a
// half-finished stroke.
func (e *Engine) abortStroke() {
	if !e.stroke.started {
		return
	}
	e.canvas.resetStaged()
	e.stroke.end()
	e.adoptPending()
}

// CanUndo returns the number of undoable strokes.
func (e *Engine) CanUndo() int { return e.history.CanUndo() }

// CanRedo returns the number of redoable strokes.
func (e *Engine) CanRedo() int { return e.history.CanRedo() }

// Undo restores the committed buffer from the last snapshot. An
// in-progress stroke is abandoned first. Returns ErrNoSnapshot when
// there is nothing to undo; on store failure the canvas keeps its
// current contents and the error is returned, with drawing state still
// reset so the tool stays usable.
func (e *Engine) Undo() error {
	e.abortStroke()
	if err := e.history.Undo(e.canvas.Committed()); err != nil {
		return err
	}
	e.canvas.resetStaged()
	return nil
}

// Redo is the mirror of Undo.
func (e *Engine) Redo() error {
	e.abortStroke()
	if err := e.history.Redo(e.canvas.Committed()); err != nil {
		return err
	}
	e.canvas.resetStaged()
	return nil
}

// FinalSurface returns a copy of the most recently committed stroke
// result. It is the single mutex-guarded cross-goroutine handoff, read
// by the host at stroke finalization.
func (e *Engine) FinalSurface() *Pixmap {
	e.finalMu.Lock()
	defer e.finalMu.Unlock()
	if e.final == nil {
		return e.canvas.Committed().Clone()
	}
	return e.final.Clone()
}

// Close releases history snapshots and the underlying store.
func (e *Engine) Close() error {
	e.abortStroke()
	return e.history.Close()
}

// defaultRandSource seeds from the wall clock; tests inject a fixed
// seed through WithRandSource.
func defaultRandSource() rand.Source {
	return rand.NewSource(time.Now().UnixNano())
}
