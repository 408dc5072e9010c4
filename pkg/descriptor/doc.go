// Package descriptor assembles Maven descriptors (pom.xml) from packaging
// templates.
//
// # Assembly
//
// Each call runs a single pass over a freshly loaded template:
//
//	load → substitute placeholders → merge identity → finalize → stamp → write
//
// Placeholders (JAVA_PRODUCT_VERSION, ASPECTJ_PLUGIN_VERSION,
// ASCIIDOCLET_PLUGIN_VERSION) are only substituted in project descriptors.
// Module descriptors come from a dedicated module template and inherit the
// parent's groupId.
//
// # Usage
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
// Writes go through [store.Store.CreateOrUpdateIfDifferent], so repeating a
// call with the same request leaves the file untouched.
package descriptor
