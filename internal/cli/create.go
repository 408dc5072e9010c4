package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pomgen/pkg/config"
	"github.com/matzehuels/pomgen/pkg/descriptor"
	"github.com/matzehuels/pomgen/pkg/errors"
	"github.com/matzehuels/pomgen/pkg/paths"
	"github.com/matzehuels/pomgen/pkg/pom"
	"github.com/matzehuels/pomgen/pkg/store"
)

// createOpts holds the flags of the create command. Empty values fall back
// to the configuration.
type createOpts struct {
	namespace     string
	name          string
	javaVersion   string
	parent        string
	module        string
	packaging     string
	focus         string
	loggingConfig bool
	dryRun        bool
}

func (c *CLI) createCommand() *cobra.Command {
	var opts createOpts

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pom.xml for a project or module",
		Long: `Create a pom.xml from a packaging template.

Without --module the descriptor of the root project is written. With --module
the descriptor is written to the module's directory; jar and war modules
inherit the parent's groupId and need --parent.

Examples:
  pomgen create -n com.example.app --java 17
  pomgen create -n com.example.app -m my-module --parent com.example:app:0.1.0
  pomgen create -n com.example.app -p war --name "Web App" --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name *string
			if cmd.Flags().Changed("name") {
				name = &opts.name
			}
			return c.runCreate(cmd, opts, name)
		},
	}

	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "", "top-level namespace, e.g. com.example.app (required)")
	cmd.Flags().StringVar(&opts.name, "name", "", "project name (default: derived from module or namespace)")
	cmd.Flags().StringVar(&opts.javaVersion, "java", "", "Java version (default: from config)")
	cmd.Flags().StringVar(&opts.parent, "parent", "", "parent coordinates as groupId:artifactId:version")
	cmd.Flags().StringVarP(&opts.module, "module", "m", "", "module name (default: root project)")
	cmd.Flags().StringVarP(&opts.packaging, "packaging", "p", "", "packaging provider ID (default: from config)")
	cmd.Flags().StringVar(&opts.focus, "focus", "", "module that --module is relative to (default: from config)")
	cmd.Flags().BoolVar(&opts.loggingConfig, "logging-config", false, "install the provider's logging configuration")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the descriptor instead of writing it")
	_ = cmd.MarkFlagRequired("namespace")

	return cmd
}

func (c *CLI) runCreate(cmd *cobra.Command, opts createOpts, name *string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	cfg, reg, err := c.environment()
	if err != nil {
		return err
	}

	ns, err := pom.ParseNamespace(opts.namespace)
	if err != nil {
		return err
	}
	var parent *pom.Coordinates
	if opts.parent != "" {
		coords, err := pom.ParseCoordinates(opts.parent)
		if err != nil {
			return err
		}
		parent = &coords
	}

	javaVersion := defaultString(opts.javaVersion, cfg.JavaVersion)
	if err := config.ValidateJavaVersion(javaVersion); err != nil {
		return errors.Wrap(errors.ErrCodeValidation, err, "--java")
	}
	provider, err := reg.Lookup(defaultString(opts.packaging, cfg.Packaging))
	if err != nil {
		return err
	}
	focus := defaultString(opts.focus, cfg.FocusedModule)
	if err := errors.ValidateModuleName(focus); err != nil {
		return err
	}

	engine := descriptor.New(
		descriptor.WithStore(store.NewOSFS(c.dir)),
		descriptor.WithPathResolver(paths.New(focus)),
		descriptor.WithLogger(logger),
	)
	req := descriptor.Request{
		Namespace:   ns,
		ProjectName: name,
		JavaVersion: javaVersion,
		Parent:      parent,
		Module:      opts.module,
		Provider:    provider,
	}

	if opts.dryRun {
		res, err := engine.Assemble(req)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(res.Content)
		return err
	}

	var res *descriptor.Result
	if opts.loggingConfig || cfg.LoggingConfig {
		res, err = engine.CreateArtifacts(req)
	} else {
		res, err = engine.Create(req)
	}
	if err != nil {
		return err
	}
	prog.done("created descriptor")

	if res.Written {
		printSuccess("Created %s", StyleHighlight.Render(res.Path))
	} else {
		printInfo("%s is up to date", res.Path)
	}
	printKeyValue("groupId", res.Identity.GroupID)
	printKeyValue("artifactId", res.Identity.ArtifactID)
	printKeyValue("packaging", provider.Name)
	for _, path := range res.Artifacts {
		printFile(path)
	}
	if opts.module != "" && res.Written {
		printWarning("Add <module>%s</module> to the parent descriptor", opts.module)
	}
	return nil
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
