package descriptor

import (
	"github.com/beevik/etree"

	"github.com/matzehuels/pomgen/pkg/pom"
)

// MergeParent writes the parent coordinates and the project groupId.
//
// Both <parent> and the project <groupId> are created if absent. With a
// parent whose groupId equals groupID, the project <groupId> is removed so
// that Maven inherits it; otherwise it is set explicitly. Without a parent
// the <parent> element is left as the template defined it.
func MergeParent(root *etree.Element, groupID string, parent *pom.Coordinates) {
	parentEl := pom.Child(root, "parent")
	groupEl := pom.Child(root, "groupId")

	if parent == nil {
		pom.SetContent(groupEl, groupID)
		return
	}

	pom.SetContent(pom.Child(parentEl, "groupId"), parent.GroupID)
	pom.SetContent(pom.Child(parentEl, "artifactId"), parent.ArtifactID)
	pom.SetContent(pom.Child(parentEl, "version"), parent.Version)

	if groupID == parent.GroupID {
		root.RemoveChild(groupEl)
		pom.RemoveWhitespace(root)
		return
	}
	pom.SetContent(groupEl, groupID)
}

// SetName writes the <name> element, or removes every <name> element when
// name is empty.
func SetName(root *etree.Element, name string) {
	if name == "" {
		pom.RemoveChildren(root, "name")
		return
	}
	pom.SetContent(pom.Child(root, "name"), name)
}

// SetArtifactID writes the project <artifactId>.
func SetArtifactID(root *etree.Element, artifactID string) {
	pom.SetContent(pom.Child(root, "artifactId"), artifactID)
}
