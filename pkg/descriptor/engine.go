package descriptor

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/pomgen/pkg/errors"
	"github.com/matzehuels/pomgen/pkg/packaging"
	"github.com/matzehuels/pomgen/pkg/paths"
	"github.com/matzehuels/pomgen/pkg/pom"
	"github.com/matzehuels/pomgen/pkg/store"
)

// Request describes one descriptor to assemble.
type Request struct {
	// Namespace is the project's top-level namespace, e.g. com.example.app.
	Namespace pom.Namespace
	// ProjectName is the optional project name. nil means no name was
	// given, which is distinct from an empty name.
	ProjectName *string
	// JavaVersion is written verbatim in place of JAVA_PRODUCT_VERSION.
	// Required unless the descriptor is built from a module template.
	JavaVersion string
	// Parent is the optional parent POM.
	Parent *pom.Coordinates
	// Module is the module name, blank for the root (or only) module.
	Module string
	// Provider supplies the templates and packaging name.
	Provider *packaging.Provider
}

// IsModule reports whether the descriptor is assembled from the provider's
// module template.
func (r Request) IsModule() bool {
	return r.Provider != nil && r.Provider.IsModule(r.Module)
}

// Validate checks the request before any template is loaded.
func (r Request) Validate() error {
	if r.Provider == nil {
		return errors.Validation("packaging provider is required")
	}
	if err := r.Provider.Validate(); err != nil {
		return err
	}
	if r.Namespace.IsZero() {
		return errors.Validation("top-level namespace is required")
	}
	if err := errors.ValidateModuleName(r.Module); err != nil {
		return err
	}
	if r.ProjectName != nil {
		if err := errors.ValidateText("project name", *r.ProjectName); err != nil {
			return err
		}
	}
	isModule := r.IsModule()
	if !isModule {
		if err := errors.NotBlank("Java version", r.JavaVersion); err != nil {
			return err
		}
	}
	if r.Parent != nil {
		if err := r.Parent.Validate(); err != nil {
			return err
		}
	} else if isModule {
		return errors.Validation("module %q requires parent coordinates", r.Module)
	}
	return nil
}

// Result describes an assembled descriptor.
type Result struct {
	Identity Identity
	// Content is the canonical serialization of the descriptor.
	Content []byte
	// Path is where the descriptor was stored. Empty until written.
	Path string
	// Written is false when the stored descriptor already had Content.
	Written bool
	// Artifacts lists auxiliary files installed next to the descriptor.
	Artifacts []string
}

// Engine assembles Maven descriptors from packaging templates and writes
// them through a Store.
//
// An Engine holds no mutable state after construction and may be shared
// between goroutines.
type Engine struct {
	store  store.Store
	paths  paths.Resolver
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore sets the store descriptors are written to.
func WithStore(s store.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithPathResolver sets the resolver that maps modules to file paths.
func WithPathResolver(r paths.Resolver) Option {
	return func(e *Engine) { e.paths = r }
}

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine. Without a store and path resolver the engine can
// still assemble descriptors, but CreateDescriptor fails with
// PERSISTENCE_UNAVAILABLE.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	return e
}

// Assemble builds the descriptor for req without writing it.
func (e *Engine) Assemble(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	isModule := req.IsModule()
	p := req.Provider

	id, err := ResolveIdentity(req, isModule)
	if err != nil {
		return nil, err
	}

	doc, err := packaging.LoadTemplate(p, isModule)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("loaded template",
		"provider", p.ID,
		"template", p.TemplateFor(isModule))

	root := doc.Root()
	if !isModule {
		n := SubstitutePlaceholders(root, req.JavaVersion)
		e.logger.Debug("substituted placeholders", "count", n)
	}

	SetName(root, id.ProjectName)
	MergeParent(root, id.GroupID, req.Parent)
	SetArtifactID(root, id.ArtifactID)
	Finalize(root, p, isModule)
	StampProvider(root, p)

	content, err := doc.Bytes()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize descriptor")
	}
	return &Result{Identity: id, Content: content}, nil
}

// Create assembles the descriptor for req and stores it. Unchanged content
// is not rewritten.
func (e *Engine) Create(req Request) (*Result, error) {
	if e.store == nil || e.paths == nil {
		e.logger.Warn("descriptor not written: no store or path resolver configured")
		return nil, errors.New(errors.ErrCodePersistenceUnavailable, "no store or path resolver configured")
	}

	res, err := e.Assemble(req)
	if err != nil {
		return nil, err
	}

	path := e.paths.ResolveIdentifier(req.Module, pom.FileName)
	written, err := e.store.CreateOrUpdateIfDifferent(path, res.Content)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePersistence, err, "write %s", path)
	}
	res.Path = path
	res.Written = written

	if written {
		e.logger.Info("wrote descriptor",
			"path", path,
			"artifactId", res.Identity.ArtifactID,
			"hash", store.Hash(res.Content)[:12])
	} else {
		e.logger.Info("descriptor unchanged", "path", path)
	}
	return res, nil
}

// CreateDescriptor assembles and stores the descriptor for req and returns
// its path.
func (e *Engine) CreateDescriptor(req Request) (string, error) {
	res, err := e.Create(req)
	if err != nil {
		return "", err
	}
	return res.Path, nil
}
