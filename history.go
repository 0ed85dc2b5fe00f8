package ink

import "fmt"

// History is the stack-based undo/redo manager. Entries are opaque
// snapshot handles into the injected store; pushing a new undo entry
// always clears the redo stack.
type History struct {
	store SnapshotStore
	undo  []string
	redo  []string
}

// NewHistory creates a history backed by the given store.
func NewHistory(store SnapshotStore) *History {
	return &History{store: store}
}

// CanUndo returns the number of undoable entries.
func (h *History) CanUndo() int { return len(h.undo) }

// CanRedo returns the number of redoable entries.
func (h *History) CanRedo() int { return len(h.redo) }

// Push snapshots current onto the undo stack and clears the redo stack.
// Called on the first dab of every stroke.
func (h *History) Push(current *Pixmap) error {
	id, err := h.store.Save(current)
	if err != nil {
		return fmt.Errorf("ink: push undo snapshot: %w", err)
	}
	for _, rid := range h.redo {
		_ = h.store.Delete(rid)
	}
	h.redo = h.redo[:0]
	h.undo = append(h.undo, id)
	return nil
}

// Undo restores current from the top undo snapshot, saving the present
// contents onto the redo stack first. Returns ErrNoSnapshot when the
// undo stack is empty; current is untouched on any error.
func (h *History) Undo(current *Pixmap) error {
	return h.step(current, &h.undo, &h.redo)
}

// Redo is the mirror of Undo.
func (h *History) Redo(current *Pixmap) error {
	return h.step(current, &h.redo, &h.undo)
}

// step moves one entry from one stack to the other, swapping the
// current frame with the stored one.
func (h *History) step(current *Pixmap, from, to *[]string) error {
	n := len(*from)
	if n == 0 {
		return ErrNoSnapshot
	}
	id := (*from)[n-1]

	restored, err := h.store.Load(id)
	if err != nil {
		return fmt.Errorf("ink: restore snapshot: %w", err)
	}
	saved, err := h.store.Save(current)
	if err != nil {
		return fmt.Errorf("ink: save current frame: %w", err)
	}

	*from = (*from)[:n-1]
	_ = h.store.Delete(id)
	*to = append(*to, saved)
	current.CopyFrom(restored)
	return nil
}

// Close deletes every remaining snapshot and closes the store.
func (h *History) Close() error {
	for _, id := range h.undo {
		_ = h.store.Delete(id)
	}
	for _, id := range h.redo {
		_ = h.store.Delete(id)
	}
	h.undo, h.redo = nil, nil
	return h.store.Close()
}
