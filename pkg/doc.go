// Package pkg provides the core libraries for pomgen, a Maven descriptor
// generator.
//
// # Overview
//
// pomgen assembles pom.xml files for Maven projects and modules from
// packaging templates. The pkg directory is organized into:
//
//  1. [pom] - The descriptor model (XML tree, coordinates, namespaces)
//  2. [packaging] - Packaging providers and their templates (jar, war, pom)
//  3. [descriptor] - The assembly engine
//  4. [store], [paths] - Where descriptors are written
//  5. [config] - Project and user configuration
//
// # Architecture
//
//	Request (namespace, name, Java version, parent, module, provider)
//	         ↓
//	    [packaging] package (load the project or module template)
//	         ↓
//	    [descriptor] package (placeholders → identity → packaging → stamp)
//	         ↓
//	    [store] package (write pom.xml only when it changed)
//
// # Quick Start
//
//	engine := descriptor.New(
//	    descriptor.WithStore(store.NewOSFS(".")),
//	    descriptor.WithPathResolver(paths.New("")),
//	)
//	ns, _ := pom.ParseNamespace("com.example.app")
//	path, err := engine.CreateDescriptor(descriptor.Request{
//	    Namespace:   ns,
//	    JavaVersion: "17",
//	    Provider:    packaging.JAR,
//	})
//
// [pom]: github.com/matzehuels/pomgen/pkg/pom
// [packaging]: github.com/matzehuels/pomgen/pkg/packaging
// [descriptor]: github.com/matzehuels/pomgen/pkg/descriptor
// [store]: github.com/matzehuels/pomgen/pkg/store
// [paths]: github.com/matzehuels/pomgen/pkg/paths
// [config]: github.com/matzehuels/pomgen/pkg/config
package pkg
