// Package config loads pomgen project and user configuration.
//
// Configuration is looked up in order:
//   - the file given with --config
//   - pomgen.toml or pomgen.yaml in the project directory
//   - pomgen/config.toml or pomgen/config.yaml in the XDG config directories
//
// A missing file is not an error: Default() is used instead. The format is
// chosen by file extension (.toml, .yaml, .yml).
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pomgen/pkg/errors"
	"github.com/matzehuels/pomgen/pkg/packaging"
)

// Default values used when no configuration overrides them.
const (
	DefaultJavaVersion = "17"
	DefaultPackaging   = "jar"
)

// File names searched for in the project directory.
var projectFiles = []string{"pomgen.toml", "pomgen.yaml", "pomgen.yml"}

// File names searched for in the XDG config directories.
var userFiles = []string{"pomgen/config.toml", "pomgen/config.yaml"}

// Config holds defaults for the create command and custom providers.
type Config struct {
	// JavaVersion is the default Java version for project descriptors.
	JavaVersion string `toml:"java_version" yaml:"java_version"`
	// Packaging is the default provider ID.
	Packaging string `toml:"packaging" yaml:"packaging"`
	// LoggingConfig installs the provider's logging configuration for new
	// root modules.
	LoggingConfig bool `toml:"logging_config" yaml:"logging_config"`
	// FocusedModule is the module that relative module names resolve
	// against. Blank is the project root.
	FocusedModule string `toml:"focused_module" yaml:"focused_module"`
	// Providers declares additional packaging providers.
	Providers []ProviderConfig `toml:"providers" yaml:"providers"`

	// path is the file the config was loaded from, empty for defaults.
	path string
}

// ProviderConfig declares a packaging provider backed by templates on disk.
type ProviderConfig struct {
	ID             string `toml:"id" yaml:"id"`
	Name           string `toml:"name" yaml:"name"`
	Template       string `toml:"template" yaml:"template"`
	ModuleTemplate string `toml:"module_template" yaml:"module_template"`
	// LoggingTemplate is an optional logging configuration template.
	LoggingTemplate string `toml:"logging_template" yaml:"logging_template"`
	// TemplateDir holds the templates. Relative paths resolve against the
	// directory of the config file.
	TemplateDir string `toml:"template_dir" yaml:"template_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		JavaVersion: DefaultJavaVersion,
		Packaging:   DefaultPackaging,
	}
}

// Path returns the file the configuration was loaded from, or "" for the
// built-in defaults.
func (c *Config) Path() string {
	return c.path
}

// Load reads the configuration at path. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q", filepath.Ext(path))
	}

	cfg.path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover finds and loads the configuration for the project in dir.
// explicit, when non-empty, must exist. Without any file Default is
// returned.
func Discover(dir, explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	for _, name := range projectFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	for _, name := range userFiles {
		if p, err := xdg.SearchConfigFile(name); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := ValidateJavaVersion(c.JavaVersion); err != nil {
		return err
	}
	if err := errors.ValidateModuleName(c.FocusedModule); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Providers))
	for i, p := range c.Providers {
		if strings.TrimSpace(p.ID) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "providers[%d]: id is required", i)
		}
		if seen[p.ID] {
			return errors.New(errors.ErrCodeInvalidConfig, "providers[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
		if strings.TrimSpace(p.Name) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "provider %q: name is required", p.ID)
		}
		if strings.TrimSpace(p.Template) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "provider %q: template is required", p.ID)
		}
	}
	return nil
}

// ValidateJavaVersion checks that v looks like a version number, such as
// "1.8", "17" or "21.0.2". The value itself is written verbatim.
func ValidateJavaVersion(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "java_version is required")
	}
	if _, err := semver.NewVersion(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid java_version %q", v)
	}
	return nil
}

// Register adds the configured providers to reg.
func (c *Config) Register(reg *packaging.Registry) error {
	for _, pc := range c.Providers {
		p := &packaging.Provider{
			ID:              pc.ID,
			Name:            pc.Name,
			Template:        pc.Template,
			ModuleTemplate:  pc.ModuleTemplate,
			LoggingTemplate: pc.LoggingTemplate,
			Templates:       os.DirFS(c.templateDir(pc)),
		}
		if err := reg.Register(p); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) templateDir(pc ProviderConfig) string {
	dir := pc.TemplateDir
	if dir == "" {
		dir = "."
	}
	if filepath.IsAbs(dir) || c.path == "" {
		return dir
	}
	return filepath.Join(filepath.Dir(c.path), dir)
}
