package pipeline

import (
	"path/filepath"

	"github.com/backmassage/mediarename/internal/collection"
)

// SelectByGlobs replaces the store's selection with the records whose
// base name (extension included) matches any of globs. It returns the
// number of selected records. Globs are assumed valid.
func SelectByGlobs(store *collection.Store, globs []string) int {
	store.ClearSelection()
	var picked []string
	for _, r := range store.Records() {
		base := r.BaseName()
		for _, g := range globs {
			if ok, _ := filepath.Match(g, base); ok {
				picked = append(picked, r.Path)
				break
			}
		}
	}
	store.Select(picked...)
	return store.SelectedLen()
}
