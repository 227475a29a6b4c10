package planner

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/mediarename/internal/collection"
	"github.com/backmassage/mediarename/internal/template"
)

// Builder renders collections into plans. A Builder is safe for use by one
// goroutine at a time; its render cache outlives individual plans so
// re-planning after a metadata edit only re-renders the edited files.
type Builder struct {
	cache *renderCache
	now   func() time.Time
}

// NewBuilder returns a Builder whose render cache holds up to cacheSize
// results.
func NewBuilder(cacheSize int) (*Builder, error) {
	c, err := newRenderCache(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Builder{cache: c, now: time.Now}, nil
}

// Build renders every file in store through tmpl, or only the selected
// files when selectedOnly is set. Each rendered name is stored as the
// record's proposed name. Files removed from the store while the plan is
// being built are left out of it.
func (b *Builder) Build(store *collection.Store, tmpl template.Template, selectedOnly bool) *Plan {
	recs := store.Records()
	if selectedOnly {
		recs = store.Selected()
	}

	plan := &Plan{
		ID:        uuid.New(),
		Template:  tmpl,
		CreatedAt: b.now(),
		Items:     make([]Item, 0, len(recs)),
	}

	for _, rec := range recs {
		original := rec.BaseName()
		res := b.cache.render(tmpl, rec.Metadata, original)
		rendersTotal.WithLabelValues(string(res.Status)).Inc()

		if err := store.SetProposedName(rec.Path, res.Name); errors.Is(err, collection.ErrNotFound) {
			continue
		}

		plan.Items = append(plan.Items, Item{
			Path:         rec.Path,
			Directory:    rec.Directory,
			OriginalName: original,
			Metadata:     rec.Metadata,
			Result:       res,
			TargetPath:   targetPath(rec.FileRecord, res.Name),
		})
	}

	markConflicts(plan.Items)
	plansBuiltTotal.Inc()
	return plan
}

// Render renders one record without touching the store.
func (b *Builder) Render(rec collection.ExtendedFileRecord, tmpl template.Template) template.Result {
	res := b.cache.render(tmpl, rec.Metadata, rec.BaseName())
	rendersTotal.WithLabelValues(string(res.Status)).Inc()
	return res
}

// targetPath joins the record's directory and name with the separator
// recorded for the file, falling back to the host separator.
func targetPath(rec collection.FileRecord, name string) string {
	if rec.Directory == "" {
		return name
	}
	sep := rec.PathSeparator
	if sep == "" {
		sep = string(filepath.Separator)
	}
	dir := rec.Directory
	if len(dir) >= len(sep) && dir[len(dir)-len(sep):] == sep {
		return dir + name
	}
	return dir + sep + name
}
