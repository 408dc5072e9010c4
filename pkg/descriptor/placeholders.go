package descriptor

import (
	"github.com/beevik/etree"

	"github.com/matzehuels/pomgen/pkg/pom"
)

// Placeholder tokens recognized in project templates. A token is replaced
// only when it is the entire text of an element.
const (
	JavaVersionPlaceholder        = "JAVA_PRODUCT_VERSION"
	AspectJVersionPlaceholder     = "ASPECTJ_PLUGIN_VERSION"
	AsciidocletVersionPlaceholder = "ASCIIDOCLET_PLUGIN_VERSION"
)

// Plugin versions substituted into project templates.
const (
	// AspectJPluginVersion is used for every Java version.
	AspectJPluginVersion = "1.8"
	// AsciidocletPluginVersion is the Asciidoclet doclet version.
	AsciidocletPluginVersion = "1.5.4"
)

// placeholder pairs a token with its replacement.
type placeholder struct {
	token string
	value string
}

func placeholders(javaVersion string) []placeholder {
	return []placeholder{
		{JavaVersionPlaceholder, javaVersion},
		{AspectJVersionPlaceholder, AspectJPluginVersion},
		{AsciidocletVersionPlaceholder, AsciidocletPluginVersion},
	}
}

// SubstitutePlaceholders replaces the text of every leaf element under root
// whose whole text equals a known token, and returns the number of
// replacements. Elements with child elements are never matched, so the
// template's structure survives however compactly it is formatted. Tokens
// are processed one after another in a fixed order.
func SubstitutePlaceholders(root *etree.Element, javaVersion string) int {
	n := 0
	for _, ph := range placeholders(javaVersion) {
		var matches []*etree.Element
		pom.Walk(root, func(e *etree.Element) {
			if len(e.ChildElements()) == 0 && pom.StringValue(e) == ph.token {
				matches = append(matches, e)
			}
		})
		for _, e := range matches {
			pom.SetContent(e, ph.value)
		}
		n += len(matches)
	}
	return n
}
