package ink

import "errors"

// Sentinel errors returned by the history manager and snapshot stores.
var (
	// ErrNoSnapshot indicates an undo or redo was requested with an
	// empty stack. The operation is a no-op; the canvas is unchanged.
	ErrNoSnapshot = errors.New("ink: no snapshot available")

	// ErrStoreClosed indicates a snapshot store operation after Close.
	ErrStoreClosed = errors.New("ink: snapshot store closed")
)
