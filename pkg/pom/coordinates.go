package pom

import (
	"strings"

	"github.com/matzehuels/pomgen/pkg/errors"
)

// Coordinates identify a Maven artifact by groupId, artifactId and version.
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// ParseCoordinates parses the "groupId:artifactId:version" form.
//
// Examples:
//   - "com.example:parent-pom:1.0.0" → {com.example parent-pom 1.0.0}
//   - "com.example:parent-pom" → validation error (version missing)
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Coordinates{}, errors.Validation("coordinates must be groupId:artifactId:version, got %q", s)
	}
	c := Coordinates{
		GroupID:    strings.TrimSpace(parts[0]),
		ArtifactID: strings.TrimSpace(parts[1]),
		Version:    strings.TrimSpace(parts[2]),
	}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

// Validate requires all three coordinates to be non-blank.
func (c Coordinates) Validate() error {
	if err := errors.NotBlank("parent groupId", c.GroupID); err != nil {
		return err
	}
	if err := errors.NotBlank("parent artifactId", c.ArtifactID); err != nil {
		return err
	}
	return errors.NotBlank("parent version", c.Version)
}

// String renders the coordinates as "groupId:artifactId:version".
func (c Coordinates) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}
