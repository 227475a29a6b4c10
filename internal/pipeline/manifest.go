package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/mediarename/internal/collection"
	"github.com/backmassage/mediarename/internal/media"
)

// ManifestEntry is the metadata supplied for one file. Relative paths are
// resolved against the manifest's directory.
type ManifestEntry struct {
	Path           string `yaml:"path"`
	media.Metadata `yaml:",inline"`
}

// Manifest is per-file metadata supplied from outside, e.g. by a lookup
// service or by hand:
//
//	files:
//	  - path: Season 01/ep01.mkv
//	    title: Show
//	    year: 2020
//	    season: 1
//	    episode: 1
//	    type: tv
type Manifest struct {
	Files []ManifestEntry `yaml:"files"`
}

// LoadManifest reads and parses a manifest file, resolving entry paths to
// absolute paths.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("pipeline: parse manifest %s: %w", path, err)
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("pipeline: manifest dir: %w", err)
	}
	for i := range m.Files {
		e := &m.Files[i]
		if e.Path == "" {
			return nil, fmt.Errorf("pipeline: manifest %s: files[%d]: path is required", path, i)
		}
		if !filepath.IsAbs(e.Path) {
			e.Path = filepath.Join(base, e.Path)
		}
		e.Path = filepath.Clean(e.Path)
		e.Type = media.ParseType(string(e.Type))
	}
	return &m, nil
}

// Apply sets metadata on every store record named by the manifest and
// annotates it with its source. It returns how many records were updated
// and the manifest paths that are not in the store.
func (m *Manifest) Apply(store *collection.Store) (applied int, missing []string) {
	for _, e := range m.Files {
		if err := store.SetMetadata(e.Path, e.Metadata); err != nil {
			missing = append(missing, e.Path)
			continue
		}
		_ = store.Annotate(e.Path, AnnotationSource, SourceManifest)
		applied++
	}
	return applied, missing
}
