package packaging

import (
	"io/fs"
	"strings"

	"github.com/matzehuels/pomgen/pkg/errors"
	"github.com/matzehuels/pomgen/pkg/pom"
)

// Provider describes one packaging kind (jar, war, pom, ...).
//
// A Provider is a plain data record: the descriptor engine supplies the
// algorithm and the record supplies templates plus optional identity
// overrides. Providers are not mutated after registration.
type Provider struct {
	// ID uniquely identifies the provider. It is stamped into every
	// descriptor the provider produces.
	ID string
	// Name is the value written to the <packaging> element.
	Name string
	// Template is the path of the project template inside Templates.
	Template string
	// ModuleTemplate is the path of the module template inside Templates.
	// When empty, modules reuse Template and are assembled like projects.
	ModuleTemplate string
	// LoggingTemplate is the optional path of a logging configuration
	// template copied next to new root modules.
	LoggingTemplate string
	// Templates resolves the template paths above.
	Templates fs.FS

	// ArtifactID overrides the default artifactId resolution.
	ArtifactID func(projectName *string, module string, ns pom.Namespace) string
	// GroupID overrides the default project groupId resolution.
	GroupID func(ns pom.Namespace) string
	// ProjectName overrides the default <name> resolution.
	ProjectName func(projectName *string, module string, ns pom.Namespace) string
}

// NewProvider creates a validated provider whose templates resolve from fsys.
// moduleTemplate may be empty.
func NewProvider(id, name, template, moduleTemplate string, fsys fs.FS) (*Provider, error) {
	p := &Provider{
		ID:             id,
		Name:           name,
		Template:       template,
		ModuleTemplate: moduleTemplate,
		Templates:      fsys,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the fields every provider must carry.
func (p *Provider) Validate() error {
	if err := errors.NotBlank("provider ID", p.ID); err != nil {
		return err
	}
	if err := errors.NotBlank("provider name", p.Name); err != nil {
		return err
	}
	if err := errors.NotBlank("POM template path", p.Template); err != nil {
		return err
	}
	if p.Templates == nil {
		return errors.Validation("provider %q has no template source", p.ID)
	}
	return nil
}

// HasModuleTemplate reports whether modules get a dedicated template.
func (p *Provider) HasModuleTemplate() bool {
	return strings.TrimSpace(p.ModuleTemplate) != ""
}

// IsModule reports whether a descriptor for module is assembled from the
// module template. This is the case only for a non-blank module of a
// provider that has a module template.
func (p *Provider) IsModule(module string) bool {
	return strings.TrimSpace(module) != "" && p.HasModuleTemplate()
}

// TemplateFor returns the template path used for a module or project.
func (p *Provider) TemplateFor(isModule bool) string {
	if isModule && p.HasModuleTemplate() {
		return p.ModuleTemplate
	}
	return p.Template
}
