package ink

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
)

// TipAsset is one decoded brush image with its display name. Archive
// decoding is the host's concern; the loader only consumes the result.
type TipAsset struct {
	Name  string
	Image image.Image
}

// TipSource supplies the assets of one brush collection.
type TipSource interface {
	// Len returns the number of assets in the collection.
	Len() int

	// Asset returns the i-th asset. An error marks that asset
	// unreadable; the loader skips it and continues with the rest.
	Asset(i int) (TipAsset, error)
}

// LoadProgress reports loader progress after each processed asset.
type LoadProgress func(done, total int, name string)

// Loader builds TipSets from TipSources on a background goroutine.
//
// At most one load runs at a time. A Load issued while a load is
// running cancels the running one and queues exactly one restart, which
// begins once the cancellation completes; intermediate requests are
// superseded. The built set is assembled privately and handed over whole
// through the apply callback, so cache state is never half-populated.
type Loader struct {
	apply    func(*TipSet, error)
	progress LoadProgress

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	pending TipSource
	waiters []chan struct{}
}

// NewLoader creates a loader. apply receives every completed set along
// with a summary error covering skipped assets; it is called from the
// loader goroutine. progress may be nil.
func NewLoader(apply func(*TipSet, error), progress LoadProgress) *Loader {
	if apply == nil {
		panic("ink: loader apply callback must not be nil")
	}
	return &Loader{apply: apply, progress: progress}
}

// Load starts loading src in the background. If a load is already
// running it is canceled and src is queued as the single restart.
func (l *Loader) Load(src TipSource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		l.pending = src
		l.cancel()
		return
	}
	l.start(src)
}

// Cancel stops the running load, if any, and drops any queued restart.
func (l *Loader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = nil
	if l.running {
		l.cancel()
	}
}

// Wait blocks until the loader is idle: no load running and no restart
// queued.
func (l *Loader) Wait() {
	l.mu.Lock()
	if !l.running && l.pending == nil {
		l.mu.Unlock()
		return
	}
	ch := make(chan struct{})
	l.waiters = append(l.waiters, ch)
	l.mu.Unlock()
	<-ch
}

// start launches the worker. Caller holds l.mu.
func (l *Loader) start(src TipSource) {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.running = true
	go l.run(ctx, src)
}

// run is the worker body. It checks cancellation between assets and
// unwinds silently when canceled; a canceled run that left a pending
// request restarts it before going idle.
func (l *Loader) run(ctx context.Context, src TipSource) {
	set, err := buildSet(ctx, src, l.progress)

	canceled := errors.Is(err, context.Canceled)
	if !canceled {
		l.apply(set, err)
	}

	l.mu.Lock()
	l.running = false
	l.cancel = nil
	if next := l.pending; next != nil {
		l.pending = nil
		l.start(next)
		l.mu.Unlock()
		return
	}
	waiters := l.waiters
	l.waiters = nil
	l.mu.Unlock()
	for _, ch := range waiters {
		close(ch)
	}
}

// buildSet assembles a fresh TipSet from the source. Unreadable assets
// are skipped and collected into a single summary error; cancellation
// aborts with context.Canceled and no partial result.
func buildSet(ctx context.Context, src TipSource, progress LoadProgress) (*TipSet, error) {
	total := src.Len()
	set := &TipSet{}
	var errs []error

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		asset, err := src.Asset(i)
		if err != nil {
			Logger().Warn("ink: skipping brush asset", "index", i, "err", err)
			errs = append(errs, fmt.Errorf("asset %d: %w", i, err))
			continue
		}
		if asset.Image == nil {
			errs = append(errs, fmt.Errorf("asset %d (%s): nil image", i, asset.Name))
			continue
		}
		set.Add(asset.Name, NewBrushTip(asset.Image))
		if progress != nil {
			progress(i+1, total, asset.Name)
		}
	}

	if len(errs) > 0 {
		return set, fmt.Errorf("ink: tip set loaded with %d skipped asset(s): %w", len(errs), errors.Join(errs...))
	}
	Logger().Info("ink: tip set loaded", "tips", set.Len())
	return set, nil
}
