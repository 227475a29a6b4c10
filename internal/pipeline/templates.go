package pipeline

import (
	"strings"

	"github.com/backmassage/mediarename/internal/config"
	"github.com/backmassage/mediarename/internal/template"
)

// customTemplateName names the template built from --pattern.
const customTemplateName = "custom"

// LoadLibrary returns the template library: the built-ins plus the user
// templates from cfg.TemplatesFile when set.
func LoadLibrary(cfg *config.Config) (*template.Library, error) {
	if cfg.TemplatesFile == "" {
		return template.NewLibrary(), nil
	}
	return template.LoadLibrary(cfg.TemplatesFile)
}

// ResolveTemplate picks the template for this run. A non-empty
// cfg.Pattern wins over cfg.TemplateName.
func ResolveTemplate(cfg *config.Config, lib *template.Library) (template.Template, error) {
	if strings.TrimSpace(cfg.Pattern) != "" {
		return template.Template{
			Name:        customTemplateName,
			Pattern:     cfg.Pattern,
			Description: "Pattern given on the command line",
		}, nil
	}
	return lib.Lookup(cfg.TemplateName)
}
