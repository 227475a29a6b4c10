// Package collection holds the files under consideration for renaming: a
// deduplicated, ordered set keyed by path, plus the selected subset.
//
// A [Store] is an explicitly constructed value; independent stores can
// coexist. All methods are safe for concurrent use and every compound
// operation is atomic with respect to readers.
package collection

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/mediarename/internal/media"
)

// FileRecord identifies one file. Path is the identity; the other fields
// are display data supplied by whoever built the record.
type FileRecord struct {
	Path          string    `yaml:"path" json:"path"`
	Name          string    `yaml:"name" json:"name"`
	Extension     string    `yaml:"extension" json:"extension"`
	Directory     string    `yaml:"directory" json:"directory"`
	PathSeparator string    `yaml:"separator" json:"separator"`
	LastModified  time.Time `yaml:"last_modified" json:"lastModified"`
}

// BaseName returns the file name with its extension, as it exists on disk.
func (r FileRecord) BaseName() string {
	if r.Extension == "" {
		return r.Name
	}
	return r.Name + r.Extension
}

// NewFileRecord builds a record from a path and its stat result. info may
// be nil, in which case LastModified stays zero.
func NewFileRecord(path string, info fs.FileInfo) FileRecord {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	rec := FileRecord{
		Path:          path,
		Name:          strings.TrimSuffix(base, ext),
		Extension:     ext,
		Directory:     filepath.Dir(path),
		PathSeparator: string(filepath.Separator),
	}
	if info != nil {
		rec.LastModified = info.ModTime()
	}
	return rec
}

// ExtendedFileRecord is a FileRecord with the state the store keeps for it:
// the latest proposed name, typed media metadata and free-form annotations.
// All of it is reset when the path is added again.
type ExtendedFileRecord struct {
	FileRecord
	ProposedName string
	Metadata     media.Metadata
	Annotations  map[string]string
}

func (e ExtendedFileRecord) clone() ExtendedFileRecord {
	out := e
	out.Metadata = e.Metadata.Clone()
	if e.Annotations != nil {
		out.Annotations = make(map[string]string, len(e.Annotations))
		for k, v := range e.Annotations {
			out.Annotations[k] = v
		}
	}
	return out
}
