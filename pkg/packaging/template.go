package packaging

import (
	"io"
	"io/fs"

	"github.com/matzehuels/pomgen/pkg/errors"
	"github.com/matzehuels/pomgen/pkg/pom"
)

// LoadTemplate reads the provider's project or module template into a new
// document. Each call returns an independent tree.
func LoadTemplate(p *Provider, isModule bool) (*pom.Document, error) {
	name := p.TemplateFor(isModule)
	data, err := fs.ReadFile(p.Templates, name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTemplateLoad, err, "read template %q of provider %q", name, p.ID)
	}
	doc, err := pom.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTemplateLoad, err, "parse template %q of provider %q", name, p.ID)
	}
	return doc, nil
}

// OpenLoggingTemplate opens the provider's logging configuration template.
// It returns a NOT_FOUND error when the provider declares none.
func OpenLoggingTemplate(p *Provider) (io.ReadCloser, error) {
	if p.LoggingTemplate == "" {
		return nil, errors.New(errors.ErrCodeNotFound, "provider %q has no logging template", p.ID)
	}
	f, err := p.Templates.Open(p.LoggingTemplate)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTemplateLoad, err, "open logging template of provider %q", p.ID)
	}
	return f, nil
}
