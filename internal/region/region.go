// Package region tracks dirty rectangles queued for incremental
// flattening of the staged stroke layer. Each staged dab pushes its
// bounding rectangle; the display-refresh path drains the queue and
// re-merges only the touched areas instead of the whole canvas.
package region

import "image"

// coalesceLimit bounds the queue length. Past it, rectangles collapse
// into a single union so a fast stroke cannot grow the queue without
// bound between refreshes.
const coalesceLimit = 64

// Queue accumulates pending merge rectangles.
// The zero value is an empty queue ready for use.
type Queue struct {
	rects []image.Rectangle
}

// Push adds a rectangle to the queue. Empty rectangles are ignored.
// A new rectangle that overlaps an already-queued one is folded into it,
// since the merge pass would visit the shared pixels twice otherwise.
func (q *Queue) Push(r image.Rectangle) {
	if r.Empty() {
		return
	}
	for i, have := range q.rects {
		if have.Overlaps(r) {
			q.rects[i] = have.Union(r)
			return
		}
	}
	if len(q.rects) >= coalesceLimit {
		u := q.rects[0]
		for _, have := range q.rects[1:] {
			u = u.Union(have)
		}
		q.rects = append(q.rects[:0], u.Union(r))
		return
	}
	q.rects = append(q.rects, r)
}

// Drain returns all queued rectangles and clears the queue.
// Returns nil when the queue is empty.
func (q *Queue) Drain() []image.Rectangle {
	if len(q.rects) == 0 {
		return nil
	}
	out := q.rects
	q.rects = nil
	return out
}

// Empty reports whether no rectangles are queued.
func (q *Queue) Empty() bool { return len(q.rects) == 0 }

// Len returns the number of queued rectangles.
func (q *Queue) Len() int { return len(q.rects) }
