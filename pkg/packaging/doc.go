// Package packaging defines the packaging kinds a descriptor can be
// generated for.
//
// # Overview
//
// A [Provider] is a data record: an ID, the value of the <packaging>
// element, a project template and an optional module template, plus
// optional functions overriding how artifactId, groupId and name are
// derived. Providers are collected in a [Registry]:
//
//	reg := packaging.Default() // jar, war, pom
//	p, err := reg.Lookup("war")
//
// # Templates
//
// Templates are XML resources resolved through the provider's fs.FS.
// Built-in templates are embedded in the binary; providers declared in a
// configuration file read theirs from disk. [LoadTemplate] picks the module
// template when one exists and the descriptor is for a module.
//
// # Round Trip
//
// Every descriptor is stamped with the ID of the provider that produced it,
// so [Registry.Identify] can map an existing pom.xml back to its provider.
package packaging
