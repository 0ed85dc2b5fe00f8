package ink

import "math/rand"

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Default in-memory snapshots, procedural soft round tip
//	eng := ink.NewEngine(src)
//
//	// File-backed undo snapshots (dependency injection)
//	store, _ := ink.NewFileStore(dir)
//	eng := ink.NewEngine(src, ink.WithSnapshotStore(store))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	settings BrushSettings
	tip      *BrushTip
	store    SnapshotStore
	listener StrokeListener
	source   rand.Source
}

// defaultEngineOptions returns the defaults used when no option
// overrides them.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		settings: DefaultSettings(),
		tip:      NewRoundTip(64, 0.25),
		store:    NewMemoryStore(),
		source:   defaultRandSource(),
	}
}

// WithSettings sets the initial brush settings.
func WithSettings(s BrushSettings) EngineOption {
	return func(o *engineOptions) {
		o.settings = s
	}
}

// WithTip sets the initial brush tip.
func WithTip(t *BrushTip) EngineOption {
	return func(o *engineOptions) {
		if t != nil {
			o.tip = t
		}
	}
}

// WithSnapshotStore injects the undo/redo snapshot storage.
func WithSnapshotStore(s SnapshotStore) EngineOption {
	return func(o *engineOptions) {
		if s != nil {
			o.store = s
		}
	}
}

// WithStrokeListener registers the stroke-lifecycle listener.
func WithStrokeListener(l StrokeListener) EngineOption {
	return func(o *engineOptions) {
		o.listener = l
	}
}

// WithRandSource injects the jitter random source. Tests use a fixed
// seed for deterministic dabs.
func WithRandSource(src rand.Source) EngineOption {
	return func(o *engineOptions) {
		if src != nil {
			o.source = src
		}
	}
}
