package collection

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/backmassage/mediarename/internal/media"
)

func rec(path string) FileRecord {
	return NewFileRecord(path, nil)
}

func paths(recs []ExtendedFileRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Path)
	}
	return out
}

// checkSelectionSubset fails when a selected path is not held by the store.
func checkSelectionSubset(t *testing.T, s *Store) {
	t.Helper()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for p := range s.selected {
		if _, ok := s.records[p]; !ok {
			t.Errorf("selected path %q not in store", p)
		}
	}
}

func TestAddFiles_LastWriteWins(t *testing.T) {
	s := NewStore()
	first := rec("/media/a.mkv")
	first.LastModified = time.Unix(100, 0)
	second := first
	second.LastModified = time.Unix(200, 0)

	s.AddFiles(first)
	if err := s.SetMetadata(first.Path, media.Metadata{Title: "Old"}); err != nil {
		t.Fatal(err)
	}
	s.AddFiles(second)

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	got, ok := s.Get(first.Path)
	if !ok {
		t.Fatal("record missing")
	}
	if !got.LastModified.Equal(second.LastModified) {
		t.Errorf("LastModified = %v, want %v", got.LastModified, second.LastModified)
	}
	if got.Metadata.Title != "" {
		t.Errorf("metadata should be reset on re-add, got %q", got.Metadata.Title)
	}
}

func TestAddFiles_KeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.AddFiles(rec("/c"), rec("/a"))
	s.AddFiles(rec("/b"), rec("/a"))

	want := []string{"/c", "/a", "/b"}
	if got := s.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths = %v, want %v", got, want)
	}
}

func TestRemoveFile(t *testing.T) {
	s := NewStore()
	s.AddFiles(rec("/a"), rec("/b"), rec("/c"))
	s.Select("/a", "/b")

	s.RemoveFile("/b")
	s.RemoveFile("/missing")

	if got, want := s.Paths(), []string{"/a", "/c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Paths = %v, want %v", got, want)
	}
	if s.IsSelected("/b") {
		t.Error("removed path still selected")
	}
	if s.SelectedLen() != 1 {
		t.Errorf("SelectedLen = %d, want 1", s.SelectedLen())
	}
	checkSelectionSubset(t, s)
}

func TestRemoveSelected(t *testing.T) {
	s := NewStore()
	s.AddFiles(rec("/a"), rec("/b"), rec("/c"))
	s.Select("/a", "/c")

	if n := s.RemoveSelected(); n != 2 {
		t.Errorf("RemoveSelected = %d, want 2", n)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if got := s.Paths(); !reflect.DeepEqual(got, []string{"/b"}) {
		t.Errorf("Paths = %v", got)
	}
	if s.HasSelection() {
		t.Error("selection should be empty")
	}
}

func TestRemoveAt(t *testing.T) {
	cases := []struct {
		name      string
		index     int
		wantOK    bool
		wantPaths []string
	}{
		{"first", 0, true, []string{"/b", "/c"}},
		{"last", 2, true, []string{"/a", "/b"}},
		{"negative", -1, false, []string{"/a", "/b", "/c"}},
		{"past end", 3, false, []string{"/a", "/b", "/c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore()
			s.AddFiles(rec("/a"), rec("/b"), rec("/c"))
			s.Select("/a", "/c")

			if got := s.RemoveAt(tc.index); got != tc.wantOK {
				t.Errorf("RemoveAt(%d) = %v, want %v", tc.index, got, tc.wantOK)
			}
			if got := s.Paths(); !reflect.DeepEqual(got, tc.wantPaths) {
				t.Errorf("Paths = %v, want %v", got, tc.wantPaths)
			}
			checkSelectionSubset(t, s)
		})
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.AddFiles(rec("/a"), rec("/b"))
	s.Select("/a")
	s.Clear()

	if !s.IsEmpty() || s.HasSelection() {
		t.Errorf("Clear left Len=%d SelectedLen=%d", s.Len(), s.SelectedLen())
	}
	s.AddFiles(rec("/z"))
	if got := s.Paths(); !reflect.DeepEqual(got, []string{"/z"}) {
		t.Errorf("store unusable after Clear: %v", got)
	}
}

func TestReorder(t *testing.T) {
	s := NewStore()
	s.AddFiles(rec("/a"), rec("/b"), rec("/c"), rec("/d"))
	s.Select("/a", "/d")

	order := []string{"/c", "/a", "/b"}
	s.Reorder(order)

	if got := s.Paths(); !reflect.DeepEqual(got, order) {
		t.Errorf("Paths = %v, want %v", got, order)
	}
	if _, ok := s.Get("/d"); ok {
		t.Error("/d should have been dropped")
	}
	if s.IsSelected("/d") || !s.IsSelected("/a") {
		t.Error("selection not pruned to kept records")
	}
	checkSelectionSubset(t, s)
}

func TestReorder_IgnoresUnknownAndRepeats(t *testing.T) {
	s := NewStore()
	s.AddFiles(rec("/a"), rec("/b"))
	s.Reorder([]string{"/b", "/x", "/b", "/a"})

	if got, want := s.Paths(), []string{"/b", "/a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Paths = %v, want %v", got, want)
	}
}

func TestSelect(t *testing.T) {
	s := NewStore()
	s.AddFiles(rec("/a"), rec("/b"), rec("/c"))

	s.Select("/c", "/nope", "/a")
	if s.SelectedLen() != 2 {
		t.Errorf("SelectedLen = %d, want 2", s.SelectedLen())
	}
	// Store order, not selection order.
	if got, want := paths(s.Selected()), []string{"/a", "/c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Selected = %v, want %v", got, want)
	}

	s.Select("/b")
	if got := paths(s.Selected()); !reflect.DeepEqual(got, []string{"/b"}) {
		t.Errorf("Select should replace: %v", got)
	}

	s.ClearSelection()
	if s.HasSelection() {
		t.Error("ClearSelection left a selection")
	}
	checkSelectionSubset(t, s)
}

func TestUpdate_NotFound(t *testing.T) {
	s := NewStore()
	if err := s.SetMetadata("/missing", media.Metadata{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetMetadata err = %v, want ErrNotFound", err)
	}
	if err := s.SetProposedName("/missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetProposedName err = %v, want ErrNotFound", err)
	}
	if err := s.Annotate("/missing", "k", "v"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Annotate err = %v, want ErrNotFound", err)
	}
}

func TestViews_ReturnCopies(t *testing.T) {
	s := NewStore()
	s.AddFiles(rec("/a"))
	if err := s.SetMetadata("/a", media.Metadata{Title: "T", Season: media.Int(1)}); err != nil {
		t.Fatal(err)
	}
	if err := s.Annotate("/a", "source", "manifest"); err != nil {
		t.Fatal(err)
	}

	got, _ := s.Get("/a")
	*got.Metadata.Season = 9
	got.Annotations["source"] = "changed"
	got.ProposedName = "changed"

	again, _ := s.Get("/a")
	if *again.Metadata.Season != 1 || again.Annotations["source"] != "manifest" || again.ProposedName != "" {
		t.Errorf("store mutated through a view: %+v", again)
	}
}

func TestNewFileRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Show.S01E01.mkv")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	r := NewFileRecord(path, info)
	if r.Name != "Show.S01E01" || r.Extension != ".mkv" || r.Directory != dir {
		t.Errorf("record = %+v", r)
	}
	if r.PathSeparator != string(filepath.Separator) {
		t.Errorf("separator = %q", r.PathSeparator)
	}
	if !r.LastModified.Equal(info.ModTime()) {
		t.Errorf("LastModified = %v, want %v", r.LastModified, info.ModTime())
	}
	if r.BaseName() != "Show.S01E01.mkv" {
		t.Errorf("BaseName = %q", r.BaseName())
	}
}

func TestConcurrentMutationsKeepInvariants(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				p := fmt.Sprintf("/f%d", (w*7+i)%25)
				switch i % 5 {
				case 0:
					s.AddFiles(rec(p))
				case 1:
					s.Select(p, fmt.Sprintf("/f%d", i%25))
				case 2:
					s.RemoveFile(p)
				case 3:
					s.RemoveSelected()
				case 4:
					_ = s.Selected()
					_ = s.Records()
				}
			}
		}(w)
	}
	wg.Wait()

	checkSelectionSubset(t, s)
	seen := map[string]bool{}
	for _, p := range s.Paths() {
		if seen[p] {
			t.Errorf("duplicate path %q", p)
		}
		seen[p] = true
	}
	if len(seen) != s.Len() {
		t.Errorf("Len = %d, unique paths = %d", s.Len(), len(seen))
	}
}
