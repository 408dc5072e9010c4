// Package cli implements the pomgen command-line interface.
//
// # Commands
//
//   - create: assemble a pom.xml for a project or module
//   - providers: list the registered packaging providers
//   - inspect: show the identity and provider of an existing pom.xml
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pomgen/pkg/buildinfo"
	"github.com/matzehuels/pomgen/pkg/config"
	"github.com/matzehuels/pomgen/pkg/packaging"
)

const appName = "pomgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	dir        string // project directory
	configPath string // explicit config file
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "pomgen creates Maven descriptors from packaging templates",
		Long:         `pomgen assembles pom.xml descriptors for Maven projects and modules from jar, war, pom or custom packaging templates.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.dir, "dir", "C", ".", "project directory")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: pomgen.toml in the project, then the user config)")

	root.AddCommand(c.createCommand())
	root.AddCommand(c.providersCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// environment loads the configuration and the provider registry for the
// project directory.
func (c *CLI) environment() (*config.Config, *packaging.Registry, error) {
	cfg, err := config.Discover(c.dir, c.configPath)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Path() != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path())
	}

	reg := packaging.Default()
	if err := cfg.Register(reg); err != nil {
		return nil, nil, err
	}
	return cfg, reg, nil
}
