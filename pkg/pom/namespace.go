package pom

import (
	"strings"

	"github.com/matzehuels/pomgen/pkg/errors"
)

// Namespace is the dotted top-level package of a project (for example
// "com.example.app"). It provides the default groupId and artifactId.
type Namespace struct {
	segments []string
}

// ParseNamespace validates and parses a dotted package name.
// Every segment must be non-blank, which in particular rules out a trailing dot.
func ParseNamespace(s string) (Namespace, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Namespace{}, errors.Validation("top-level namespace is required")
	}
	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" || strings.ContainsAny(seg, " \t\r\n") {
			return Namespace{}, errors.Validation("invalid top-level namespace %q", s)
		}
	}
	return Namespace{segments: segments}, nil
}

// FullyQualified returns the complete dotted name.
func (n Namespace) FullyQualified() string {
	return strings.Join(n.segments, ".")
}

// LastElement returns the final segment ("app" for "com.example.app").
func (n Namespace) LastElement() string {
	if len(n.segments) == 0 {
		return ""
	}
	return n.segments[len(n.segments)-1]
}

// IsZero reports whether n was never parsed.
func (n Namespace) IsZero() bool {
	return len(n.segments) == 0
}

// String implements fmt.Stringer.
func (n Namespace) String() string {
	return n.FullyQualified()
}
