package collection

// Get returns a copy of the record held for path.
func (s *Store) Get(path string) (ExtendedFileRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[path]
	if !ok {
		return ExtendedFileRecord{}, false
	}
	return rec.clone(), true
}

// Records returns copies of all records in iteration order.
func (s *Store) Records() []ExtendedFileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ExtendedFileRecord, 0, len(s.order))
	for _, p := range s.order {
		out = append(out, s.records[p].clone())
	}
	return out
}

// Paths returns all paths in iteration order.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Selected returns copies of the selected records in store order, not in
// the order they were selected.
func (s *Store) Selected() []ExtendedFileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ExtendedFileRecord, 0, len(s.selected))
	for _, p := range s.order {
		if _, ok := s.selected[p]; ok {
			out = append(out, s.records[p].clone())
		}
	}
	return out
}

// IsSelected reports whether path is in the selection.
func (s *Store) IsSelected(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[path]
	return ok
}

// Len returns the number of files held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// IsEmpty reports whether the store holds no files.
func (s *Store) IsEmpty() bool { return s.Len() == 0 }

// SelectedLen returns the number of selected files.
func (s *Store) SelectedLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// HasSelection reports whether any file is selected.
func (s *Store) HasSelection() bool { return s.SelectedLen() > 0 }
