package packaging

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embedded embed.FS

// templates is the embedded template tree with the "templates/" prefix removed.
var templates = mustSub(embedded, "templates")

const loggingTemplate = "log4j.properties-template"

// Built-in packaging providers.
var (
	// JAR packages a plain Java library or application.
	JAR = &Provider{
		ID:              "jar",
		Name:            "jar",
		Template:        "jar-template.xml",
		ModuleTemplate:  "jar-module-template.xml",
		LoggingTemplate: loggingTemplate,
		Templates:       templates,
	}

	// WAR packages a web application archive.
	WAR = &Provider{
		ID:              "war",
		Name:            "war",
		Template:        "war-template.xml",
		ModuleTemplate:  "war-module-template.xml",
		LoggingTemplate: loggingTemplate,
		Templates:       templates,
	}

	// POM is an aggregator with child modules. It has no module template, so
	// nested aggregators are assembled like projects.
	POM = &Provider{
		ID:        "pom",
		Name:      "pom",
		Template:  "pom-template.xml",
		Templates: templates,
	}
)

// Builtin returns the built-in providers in their canonical order.
func Builtin() []*Provider {
	return []*Provider{JAR, WAR, POM}
}

// Default returns a new registry holding the built-in providers.
func Default() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		panic(err)
	}
	return r
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
