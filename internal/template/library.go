package template

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// libraryFile models a user templates file:
//
//	templates:
//	  - name: Anime
//	    pattern: "[title] - [##]"
//	    description: Absolute episode numbering
type libraryFile struct {
	Templates []Template `yaml:"templates"`
}

// Library is the set of templates a user can choose from: the built-ins
// plus any user-defined ones. A user template with a built-in's name
// shadows the built-in.
type Library struct {
	user []Template
}

// NewLibrary returns a library holding the built-ins and the given user
// templates.
func NewLibrary(user ...Template) *Library {
	cp := make([]Template, len(user))
	copy(cp, user)
	return &Library{user: cp}
}

// LoadLibrary reads user templates from a YAML file. Patterns that fail
// [Validate] are still accepted; see [Library.Problems].
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: read %s: %w", path, err)
	}
	return ParseLibrary(data)
}

// ParseLibrary decodes a YAML templates document.
func ParseLibrary(data []byte) (*Library, error) {
	var f libraryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("template: parse library: %w", err)
	}
	seen := make(map[string]bool, len(f.Templates))
	for i := range f.Templates {
		t := &f.Templates[i]
		t.Name = strings.TrimSpace(t.Name)
		t.Description = strings.TrimSpace(t.Description)
		if t.Name == "" {
			return nil, fmt.Errorf("template: templates[%d]: name is required", i)
		}
		if strings.TrimSpace(t.Pattern) == "" {
			return nil, fmt.Errorf("template: templates[%d]: pattern is required", i)
		}
		key := strings.ToLower(t.Name)
		if seen[key] {
			return nil, fmt.Errorf("template: templates[%d]: duplicate name %q", i, t.Name)
		}
		seen[key] = true
	}
	return &Library{user: f.Templates}, nil
}

// Templates lists the built-ins (minus shadowed ones) followed by the user
// templates.
func (l *Library) Templates() []Template {
	out := make([]Template, 0, len(builtins)+len(l.user))
	for _, b := range builtins {
		if !l.hasUser(b.Name) {
			out = append(out, b)
		}
	}
	return append(out, l.user...)
}

// Lookup finds a template by case-insensitive name.
func (l *Library) Lookup(name string) (Template, error) {
	for _, t := range l.user {
		if sameName(t.Name, name) {
			return t, nil
		}
	}
	for _, t := range builtins {
		if sameName(t.Name, name) {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}

// Problems returns the validation errors of every user template that does
// not validate, keyed by template name.
func (l *Library) Problems() map[string][]string {
	out := make(map[string][]string)
	for _, t := range l.user {
		if v := t.Validate(); !v.Valid {
			out[t.Name] = v.Errors
		}
	}
	return out
}

func (l *Library) hasUser(name string) bool {
	for _, t := range l.user {
		if sameName(t.Name, name) {
			return true
		}
	}
	return false
}
