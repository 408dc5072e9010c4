// Package pom models Maven project object model (pom.xml) descriptors.
//
// # Overview
//
// This package provides:
//
//   - [Document], a mutable XML element tree used while assembling a
//     descriptor from a template
//   - [Coordinates], the groupId/artifactId/version triple
//   - [Inspect], which reads the identity section of an existing descriptor
//
// # Mutating Documents
//
// Elements are amended with create-if-absent semantics:
//
//	doc, _ := pom.Parse(template)
//	pom.SetContent(pom.Child(doc.Root(), "artifactId"), "my-app")
//	data, _ := doc.Bytes()
//
// [Child] returns the first matching child and only appends a new one when
// none exists, so every helper keeps at most one instance of a tag at a path.
//
// # Inspecting Descriptors
//
//	info, _ := pom.InspectFile("pom.xml")
//	fmt.Println(info.EffectiveGroupID(), info.ProviderID())
package pom
