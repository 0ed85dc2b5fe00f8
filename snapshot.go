package ink

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SnapshotStore is the injected storage capability behind undo/redo:
// store a full-frame snapshot, retrieve it later, delete it at session
// end. Implementations need not be safe for concurrent use; the engine
// calls them from the drawing goroutine only.
type SnapshotStore interface {
	// Save stores a snapshot of the pixmap and returns its handle.
	Save(p *Pixmap) (string, error)

	// Load retrieves a previously saved snapshot.
	Load(id string) (*Pixmap, error)

	// Delete removes a snapshot. Deleting an unknown handle is not an
	// error.
	Delete(id string) error

	// Close releases every remaining snapshot.
	Close() error
}

// MemoryStore keeps snapshots in process memory. It is the default
// store.
type MemoryStore struct {
	snaps  map[string]*Pixmap
	closed bool
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]*Pixmap)}
}

// Save stores a deep copy of the pixmap.
func (s *MemoryStore) Save(p *Pixmap) (string, error) {
	if s.closed {
		return "", ErrStoreClosed
	}
	id := uuid.NewString()
	s.snaps[id] = p.Clone()
	return id, nil
}

// Load returns a deep copy of the stored snapshot.
func (s *MemoryStore) Load(id string) (*Pixmap, error) {
	if s.closed {
		return nil, ErrStoreClosed
	}
	p, ok := s.snaps[id]
	if !ok {
		return nil, fmt.Errorf("ink: snapshot %s: %w", id, ErrNoSnapshot)
	}
	return p.Clone(), nil
}

// Delete removes a snapshot.
func (s *MemoryStore) Delete(id string) error {
	if s.closed {
		return ErrStoreClosed
	}
	delete(s.snaps, id)
	return nil
}

// Close discards all snapshots.
func (s *MemoryStore) Close() error {
	s.snaps = nil
	s.closed = true
	return nil
}

// snapshot file layout: a fixed header followed by raw straight-RGBA
// pixel bytes. Raw bytes rather than an encoded envelope because
// snapshots are multi-megabyte transient session files.
const (
	snapshotMagic      = "INKS"
	snapshotHeaderSize = 16
)

// FileStore keeps snapshots as uuid-named files in a directory,
// suitable for sessions whose undo depth would not fit in memory.
type FileStore struct {
	dir    string
	owned  map[string]struct{}
	closed bool
}

// NewFileStore creates a snapshot store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ink: snapshot dir: %w", err)
	}
	return &FileStore{dir: dir, owned: make(map[string]struct{})}, nil
}

// Save writes the pixmap to a new snapshot file.
func (s *FileStore) Save(p *Pixmap) (string, error) {
	if s.closed {
		return "", ErrStoreClosed
	}
	id := uuid.NewString()

	buf := make([]byte, snapshotHeaderSize+len(p.Pix()))
	copy(buf, snapshotMagic)
	binary.BigEndian.PutUint32(buf[4:], uint32(p.Width()))
	binary.BigEndian.PutUint32(buf[8:], uint32(p.Height()))
	copy(buf[snapshotHeaderSize:], p.Pix())

	if err := os.WriteFile(s.path(id), buf, 0o644); err != nil {
		return "", fmt.Errorf("ink: save snapshot: %w", err)
	}
	s.owned[id] = struct{}{}
	return id, nil
}

// Load reads a snapshot file back into a pixmap.
func (s *FileStore) Load(id string) (*Pixmap, error) {
	if s.closed {
		return nil, ErrStoreClosed
	}
	buf, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, fmt.Errorf("ink: load snapshot %s: %w", id, err)
	}
	if len(buf) < snapshotHeaderSize || string(buf[:4]) != snapshotMagic {
		return nil, fmt.Errorf("ink: load snapshot %s: malformed header", id)
	}
	w := int(binary.BigEndian.Uint32(buf[4:]))
	h := int(binary.BigEndian.Uint32(buf[8:]))
	if len(buf) != snapshotHeaderSize+w*h*4 {
		return nil, fmt.Errorf("ink: load snapshot %s: truncated pixel data", id)
	}
	p := NewPixmap(w, h)
	copy(p.Pix(), buf[snapshotHeaderSize:])
	return p, nil
}

// Delete removes a snapshot file.
func (s *FileStore) Delete(id string) error {
	if s.closed {
		return ErrStoreClosed
	}
	delete(s.owned, id)
	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ink: delete snapshot %s: %w", id, err)
	}
	return nil
}

// Close removes every snapshot file this store created.
func (s *FileStore) Close() error {
	var firstErr error
	for id := range s.owned {
		if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	s.owned = nil
	s.closed = true
	return firstErr
}

// path maps a snapshot handle to its file.
func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".inks")
}
