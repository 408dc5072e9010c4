package pom

import (
	"encoding/xml"
	"os"
	"strings"
)

// ProviderProperty is the POM property that records which packaging provider
// produced a descriptor.
const ProviderProperty = "pomgen.packaging.provider"

// Info is the identity read back from an existing descriptor.
type Info struct {
	Coordinates
	Name       string
	Packaging  string
	Parent     *Coordinates
	Properties map[string]string
}

// ProviderID returns the id stamped by the packaging provider, if any.
func (i *Info) ProviderID() string {
	return i.Properties[ProviderProperty]
}

// EffectiveGroupID returns the project's groupId, falling back to the
// parent's when the project inherits it.
func (i *Info) EffectiveGroupID() string {
	if i.GroupID == "" && i.Parent != nil {
		return i.Parent.GroupID
	}
	return i.GroupID
}

// Inspect decodes the identity section of a descriptor.
func Inspect(data []byte) (*Info, error) {
	var p pomProject
	if err := xml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	info := &Info{
		Coordinates: Coordinates{
			GroupID:    strings.TrimSpace(p.GroupID),
			ArtifactID: strings.TrimSpace(p.ArtifactID),
			Version:    strings.TrimSpace(p.Version),
		},
		Name:       strings.TrimSpace(p.Name),
		Packaging:  strings.TrimSpace(p.Packaging),
		Properties: make(map[string]string, len(p.Properties.Entries)),
	}
	if p.Parent != nil {
		info.Parent = &Coordinates{
			GroupID:    strings.TrimSpace(p.Parent.GroupID),
			ArtifactID: strings.TrimSpace(p.Parent.ArtifactID),
			Version:    strings.TrimSpace(p.Parent.Version),
		}
	}
	for _, prop := range p.Properties.Entries {
		info.Properties[prop.XMLName.Local] = strings.TrimSpace(prop.Value)
	}
	return info, nil
}

// InspectFile reads and decodes the descriptor at path.
func InspectFile(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Inspect(data)
}

type pomProject struct {
	GroupID    string        `xml:"groupId"`
	ArtifactID string        `xml:"artifactId"`
	Version    string        `xml:"version"`
	Name       string        `xml:"name"`
	Packaging  string        `xml:"packaging"`
	Parent     *pomParent    `xml:"parent"`
	Properties pomProperties `xml:"properties"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomProperties struct {
	Entries []pomProperty `xml:",any"`
}

type pomProperty struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}
