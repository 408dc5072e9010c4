// Package paths maps module names and resource kinds to file paths inside a
// project.
//
// Paths are slash-separated and relative to the project root, which is the
// form expected by [store.Store] implementations.
//
// [store.Store]: github.com/matzehuels/pomgen/pkg/store.Store
package paths

import (
	"path"
	"strings"
)

// Kind identifies a well-known directory inside a Maven module.
type Kind string

// Maven standard directory layout.
const (
	Root             Kind = ""
	SrcMainJava      Kind = "src/main/java"
	SrcMainResources Kind = "src/main/resources"
	SrcMainWebapp    Kind = "src/main/webapp"
	SrcTestJava      Kind = "src/test/java"
	SrcTestResources Kind = "src/test/resources"
)

// Resolver is the path-resolution capability used by the descriptor engine.
type Resolver interface {
	// ResolveIdentifier returns the path of fileName inside module.
	// A blank module denotes the root (or only) module.
	ResolveIdentifier(module, fileName string) string

	// ResolveFocused returns the path of fileName inside the kind directory
	// of the currently focused module.
	ResolveFocused(kind Kind, fileName string) string
}

// ProjectResolver resolves paths for a Maven project laid out on disk with
// one directory per module. Module names are interpreted relative to Focus,
// the module the user is currently working in (blank for the root).
type ProjectResolver struct {
	Focus string
}

// New creates a resolver focused on the given module.
func New(focus string) *ProjectResolver {
	return &ProjectResolver{Focus: clean(focus)}
}

// QualifiedModule returns the path of module relative to the project root.
//
// Examples (Focus "services"):
//   - "" → "" (root module)
//   - "api" → "services/api"
//
// With a blank Focus the module name is returned unchanged.
func (r *ProjectResolver) QualifiedModule(module string) string {
	module = clean(module)
	if module == "" {
		return ""
	}
	if r.Focus == "" {
		return module
	}
	return r.Focus + "/" + module
}

// ResolveIdentifier implements Resolver.
func (r *ProjectResolver) ResolveIdentifier(module, fileName string) string {
	return join(r.QualifiedModule(module), fileName)
}

// ResolveFocused implements Resolver.
func (r *ProjectResolver) ResolveFocused(kind Kind, fileName string) string {
	return join(r.Focus, string(kind), fileName)
}

func join(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return path.Join(nonEmpty...)
}

func clean(module string) string {
	return strings.Trim(strings.TrimSpace(module), "/")
}

// Ensure ProjectResolver implements Resolver.
var _ Resolver = (*ProjectResolver)(nil)
