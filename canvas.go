package ink

import (
	"image"

	"github.com/inklab/ink/internal/region"
)

// Canvas owns the three equal-size pixel buffers of the engine:
//
//   - committed: the authoritative image;
//   - staged: accumulates the in-progress stroke when layer semantics
//     are required, fully transparent at all other times;
//   - merged: the display preview of staged flattened over committed,
//     rebuilt lazily from queued merge regions.
type Canvas struct {
	committed *Pixmap
	staged    *Pixmap
	merged    *Pixmap

	merge        region.Queue
	stagedActive bool
}

// NewCanvas creates a canvas whose committed buffer starts as a copy of
// source.
func NewCanvas(source *Pixmap) *Canvas {
	return &Canvas{
		committed: source.Clone(),
		staged:    NewPixmap(source.Width(), source.Height()),
		merged:    source.Clone(),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.committed.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.committed.Height() }

// Committed returns the authoritative pixel buffer.
func (c *Canvas) Committed() *Pixmap { return c.committed }

// Staged returns the in-progress stroke buffer.
func (c *Canvas) Staged() *Pixmap { return c.staged }

// Merged returns the display preview buffer. It reflects committed
// pixels plus whatever merge regions have been flattened so far; call
// the engine's RefreshMerged to bring it up to date.
func (c *Canvas) Merged() *Pixmap { return c.merged }

// beginStaged snapshots committed into merged as the preview baseline
// the first time a stroke routes through the staged layer.
func (c *Canvas) beginStaged() {
	if c.stagedActive {
		return
	}
	c.merged.CopyFrom(c.committed)
	c.stagedActive = true
}

// pushMerge queues a dirty rectangle for incremental flattening.
func (c *Canvas) pushMerge(r image.Rectangle) {
	c.merge.Push(r)
}

// resetStaged clears the stroke layer and the merge queue. The merged
// preview is resynced to committed so stale stroke pixels never linger.
func (c *Canvas) resetStaged() {
	c.staged.Clear()
	c.merge.Drain()
	c.stagedActive = false
	c.merged.CopyFrom(c.committed)
}
