package planner

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/mediarename/internal/media"
	"github.com/backmassage/mediarename/internal/template"
)

// Item is the plan entry for one file.
type Item struct {
	Path         string // Current full path (collection key).
	Directory    string
	OriginalName string // Current base name, extension included.
	Metadata     media.Metadata
	Result       template.Result
	TargetPath   string   // Directory joined with Result.Name.
	Notes        []string // Advisory conflict notes; see conflicts.go.
}

// Changed reports whether the rendered name differs from the current one.
func (it Item) Changed() bool { return it.Result.Name != it.OriginalName }

// Conflicted reports whether any note marks the target as unusable.
func (it Item) Conflicted() bool {
	for _, n := range it.Notes {
		if strings.HasPrefix(n, conflictPrefix) || strings.HasPrefix(n, invalidPrefix) {
			return true
		}
	}
	return false
}

// Plan is the result of one Build call. Items follow collection order.
type Plan struct {
	ID        uuid.UUID
	Template  template.Template
	CreatedAt time.Time
	Items     []Item
}

// Summary counts plan items by outcome. Ready, Warning and Error partition
// Total; Unchanged and Conflicts overlap with them.
type Summary struct {
	Total     int
	Ready     int
	Warning   int
	Error     int
	Unchanged int
	Conflicts int
}

// Summary tallies the plan's items.
func (p *Plan) Summary() Summary {
	s := Summary{Total: len(p.Items)}
	for _, it := range p.Items {
		switch it.Result.Status {
		case template.StatusReady:
			s.Ready++
		case template.StatusWarning:
			s.Warning++
		case template.StatusError:
			s.Error++
		}
		if !it.Changed() {
			s.Unchanged++
		}
		if it.Conflicted() {
			s.Conflicts++
		}
	}
	return s
}

// Ready reports whether every item rendered with status ready and no item
// has a conflict. An empty plan is not ready.
func (p *Plan) Ready() bool {
	if len(p.Items) == 0 {
		return false
	}
	s := p.Summary()
	return s.Ready == s.Total && s.Conflicts == 0
}
