package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pomgen/pkg/errors"
	"github.com/matzehuels/pomgen/pkg/pom"
)

func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [pom.xml]",
		Short: "Show the identity and packaging provider of a descriptor",
		Long: `Show the identity of an existing pom.xml and the packaging provider that
created it. Defaults to the pom.xml in the project directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(c.dir, pom.FileName)
			if len(args) == 1 {
				path = args[0]
			}
			return c.runInspect(path)
		},
	}
}

func (c *CLI) runInspect(path string) error {
	_, reg, err := c.environment()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "descriptor %s", path)
		}
		return err
	}
	info, err := pom.Inspect(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeValidation, err, "decode %s", path)
	}

	printInfo("%s", path)
	printKeyValue("groupId", info.EffectiveGroupID())
	printKeyValue("artifactId", info.ArtifactID)
	printKeyValue("version", info.Version)
	printKeyValue("name", info.Name)
	printKeyValue("packaging", info.Packaging)
	if info.Parent != nil && info.Parent.GroupID != "" {
		printKeyValue("parent", info.Parent.String())
	}

	p, err := reg.Identify(data)
	switch {
	case err == nil:
		printKeyValue("provider", p.ID)
	case errors.Is(err, errors.ErrCodeNotFound):
		printWarning("No registered packaging provider for this descriptor")
	default:
		return err
	}
	return nil
}
