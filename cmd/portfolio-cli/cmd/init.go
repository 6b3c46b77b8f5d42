package cmd

import (
	"fmt"

	"github.com/nfrund/portfolio/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newInitCmd(fsys afero.Fs) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the built-in content to a YAML file",
		Long: `Write the built-in content to a YAML file (content.yaml by default) as a
starting point for CONTENT_FILE. Existing files are kept unless --force is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "content.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			exists, err := afero.Exists(fsys, path)
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			data, err := content.Marshal(content.Default())
			if err != nil {
				return err
			}
			if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
