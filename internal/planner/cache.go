package planner

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/backmassage/mediarename/internal/media"
	"github.com/backmassage/mediarename/internal/template"
)

// renderCache memoizes template.Apply. Apply is pure, so a result is fully
// determined by the pattern, the original filename and the metadata values.
type renderCache struct {
	lru *lru.Cache[string, template.Result]
}

func newRenderCache(size int) (*renderCache, error) {
	c, err := lru.New[string, template.Result](size)
	if err != nil {
		return nil, err
	}
	return &renderCache{lru: c}, nil
}

func renderKey(pattern, filename string, meta media.Metadata) string {
	return pattern + "\x00" + filename + "\x00" + meta.Fingerprint()
}

// render returns the cached result or applies tmpl. Error results are not
// cached. Entries are keyed on the pattern, so renamed templates with the
// same pattern share results.
func (c *renderCache) render(tmpl template.Template, meta media.Metadata, filename string) template.Result {
	key := renderKey(tmpl.Pattern, filename, meta)
	if res, ok := c.lru.Get(key); ok {
		renderCacheHitsTotal.Inc()
		return res
	}
	renderCacheMissesTotal.Inc()
	res := tmpl.Apply(meta, filename)
	if res.Status != template.StatusError {
		c.lru.Add(key, res)
	}
	return res
}

// Len returns the number of cached results.
func (c *renderCache) Len() int { return c.lru.Len() }
