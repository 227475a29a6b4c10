package collection

import (
	"errors"
	"fmt"
	"sync"

	"github.com/backmassage/mediarename/internal/media"
)

// ErrNotFound is returned when an operation names a path the store does not
// hold.
var ErrNotFound = errors.New("file not in collection")

// Store is the ordered set of files plus the selection over it.
//
// Invariants, held after every method returns:
//   - each path appears at most once;
//   - iteration order is insertion order unless Reorder replaced it;
//   - every selected path is held by the store.
type Store struct {
	mu       sync.RWMutex
	order    []string
	records  map[string]*ExtendedFileRecord
	selected map[string]struct{}
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		records:  make(map[string]*ExtendedFileRecord),
		selected: make(map[string]struct{}),
	}
}

// AddFiles inserts records keyed by path. A path already present is
// replaced in place: it keeps its position, and its proposed name, metadata
// and annotations are dropped. Duplicates inside recs resolve the same way,
// last one wins.
func (s *Store) AddFiles(recs ...FileRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recs {
		if _, exists := s.records[r.Path]; !exists {
			s.order = append(s.order, r.Path)
		}
		s.records[r.Path] = &ExtendedFileRecord{FileRecord: r}
	}
}

// RemoveFile deletes path and deselects it. Absent paths are ignored.
func (s *Store) RemoveFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(map[string]struct{}{path: {}})
}

// RemoveSelected deletes every selected file and clears the selection.
// It returns the number of files removed.
func (s *Store) RemoveSelected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.selected)
	s.removeLocked(s.selected)
	s.selected = make(map[string]struct{})
	return n
}

// RemoveAt deletes the file at position index in the current order.
// An out-of-range index is a no-op and returns false.
func (s *Store) RemoveAt(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.order) {
		return false
	}
	s.removeLocked(map[string]struct{}{s.order[index]: {}})
	return true
}

// Clear empties the store and the selection.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.records = make(map[string]*ExtendedFileRecord)
	s.selected = make(map[string]struct{})
}

// Reorder replaces the iteration order with paths. Paths the store does not
// hold and repeated paths are ignored; held paths missing from the list are
// removed, along with their selection.
func (s *Store) Reorder(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := make([]string, 0, len(paths))
	kept := make(map[string]*ExtendedFileRecord, len(paths))
	for _, p := range paths {
		rec, ok := s.records[p]
		if !ok {
			continue
		}
		if _, dup := kept[p]; dup {
			continue
		}
		kept[p] = rec
		order = append(order, p)
	}
	for p := range s.selected {
		if _, ok := kept[p]; !ok {
			delete(s.selected, p)
		}
	}
	s.order = order
	s.records = kept
}

// Select replaces the selection with paths. Paths the store does not hold
// are dropped.
func (s *Store) Select(paths ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if _, ok := s.records[p]; ok {
			s.selected[p] = struct{}{}
		}
	}
}

// ClearSelection empties the selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]struct{})
}

// SetMetadata replaces the metadata held for path.
func (s *Store) SetMetadata(path string, meta media.Metadata) error {
	return s.update(path, func(r *ExtendedFileRecord) {
		r.Metadata = meta.Clone()
	})
}

// SetProposedName records the latest rendered name for path.
func (s *Store) SetProposedName(path, name string) error {
	return s.update(path, func(r *ExtendedFileRecord) {
		r.ProposedName = name
	})
}

// Annotate attaches a free-form key/value to path.
func (s *Store) Annotate(path, key, value string) error {
	return s.update(path, func(r *ExtendedFileRecord) {
		if r.Annotations == nil {
			r.Annotations = make(map[string]string)
		}
		r.Annotations[key] = value
	})
}

func (s *Store) update(path string, fn func(*ExtendedFileRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[path]
	if !ok {
		return fmt.Errorf("collection: %w: %s", ErrNotFound, path)
	}
	fn(rec)
	return nil
}

// removeLocked deletes every path in drop from records, order and
// selection. Caller holds the write lock.
func (s *Store) removeLocked(drop map[string]struct{}) {
	if len(drop) == 0 {
		return
	}
	order := s.order[:0]
	for _, p := range s.order {
		if _, gone := drop[p]; gone {
			delete(s.records, p)
			delete(s.selected, p)
			continue
		}
		order = append(order, p)
	}
	// Zero the dropped tail of the backing array.
	for i := len(order); i < len(s.order); i++ {
		s.order[i] = ""
	}
	s.order = order
}
