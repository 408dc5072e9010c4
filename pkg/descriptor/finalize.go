package descriptor

import (
	"github.com/beevik/etree"

	"github.com/matzehuels/pomgen/pkg/packaging"
	"github.com/matzehuels/pomgen/pkg/pom"
)

// DefaultVersion is written to project descriptors whose template has no
// <version> element.
const DefaultVersion = "0.1.0.BUILD-SNAPSHOT"

// Finalize writes the version (projects only, when the template has none)
// and the <packaging> element.
func Finalize(root *etree.Element, p *packaging.Provider, isModule bool) {
	if !isModule && root.SelectElement("version") == nil {
		root.CreateElement("version").SetText(DefaultVersion)
	}
	pom.SetContent(pom.Child(root, "packaging"), p.Name)
}

// StampProvider records the provider ID as a POM property so the
// descriptor can later be traced back to its provider.
func StampProvider(root *etree.Element, p *packaging.Provider) {
	props := pom.Child(root, "properties")
	pom.SetContent(pom.Child(props, pom.ProviderProperty), p.ID)
}
