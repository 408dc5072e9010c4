package descriptor

import (
	"strings"

	"github.com/matzehuels/pomgen/pkg/errors"
	"github.com/matzehuels/pomgen/pkg/pom"
)

// Identity holds the values written to a descriptor's identity elements.
type Identity struct {
	GroupID    string
	ArtifactID string
	// ProjectName is the <name> value. Empty means the element is removed.
	ProjectName string
}

// ResolveIdentity computes the identity of the descriptor described by req.
// Provider overrides take precedence over the defaults. Modules assembled
// from a module template always inherit the parent's groupId.
func ResolveIdentity(req Request, isModule bool) (Identity, error) {
	p := req.Provider

	artifactID := DefaultArtifactID(req.ProjectName, req.Module, req.Namespace)
	if p.ArtifactID != nil {
		artifactID = p.ArtifactID(req.ProjectName, req.Module, req.Namespace)
	}
	artifactID = strings.TrimSpace(artifactID)
	if artifactID == "" {
		return Identity{}, errors.Validation("Maven artifactIds cannot be blank")
	}

	name := DefaultProjectName(req.ProjectName, req.Module, req.Namespace)
	if p.ProjectName != nil {
		name = p.ProjectName(req.ProjectName, req.Module, req.Namespace)
	}

	var groupID string
	switch {
	case isModule:
		groupID = req.Parent.GroupID
	case p.GroupID != nil:
		groupID = p.GroupID(req.Namespace)
	default:
		groupID = req.Namespace.FullyQualified()
	}

	return Identity{
		GroupID:     groupID,
		ArtifactID:  artifactID,
		ProjectName: strings.TrimSpace(name),
	}, nil
}

// DefaultArtifactID derives the artifactId.
//
// Without a project name it is the module name with dashes turned into dots,
// or the namespace's last element for the root module. A project name,
// even an empty one, is lower-cased with all whitespace removed.
func DefaultArtifactID(projectName *string, module string, ns pom.Namespace) string {
	if projectName == nil {
		return defaultIfEmpty(moduleName(module), ns.LastElement())
	}
	return strings.Join(strings.Fields(strings.ToLower(*projectName)), "")
}

// DefaultProjectName derives the <name> value: the project name when given,
// else the module name with dashes turned into dots, else the namespace's
// last element.
func DefaultProjectName(projectName *string, module string, ns pom.Namespace) string {
	var name string
	if projectName != nil {
		name = *projectName
	}
	name = defaultIfEmpty(name, moduleName(module))
	return defaultIfEmpty(name, ns.LastElement())
}

func moduleName(module string) string {
	return strings.ReplaceAll(module, "-", ".")
}

func defaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
