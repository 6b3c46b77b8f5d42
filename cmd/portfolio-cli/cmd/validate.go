package cmd

import (
	"fmt"

	"github.com/nfrund/portfolio/internal/content"
	"github.com/nfrund/portfolio/internal/domain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newValidateCmd(fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a content file",
		Long: `Validate a YAML content file. Skill levels are normalised, icons and
links are checked, and unknown keys are rejected. Without a file the built-in
content is validated.

Examples:
  portfolio-cli validate content.yaml
  portfolio-cli validate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "built-in content"
			var profile *domain.Profile
			if len(args) == 1 {
				name = args[0]
				p, err := content.Load(fsys, name)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "❌ %s is invalid\n", name)
					return err
				}
				profile = p
			} else {
				profile = content.Default()
				if err := profile.Validate(); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid: %d skills, %d projects, %d education entries, %d contact links\n",
				name, len(profile.Skills), len(profile.Projects), len(profile.Education), len(profile.Contacts))
			return nil
		},
	}
}
