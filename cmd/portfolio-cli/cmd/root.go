package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Every file the commands read or write
// goes through fsys.
func NewRootCmd(fsys afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:   "portfolio-cli",
		Short: "Portfolio content and export tool",
		Long: `portfolio-cli checks portfolio content files and exports the site as static HTML.

Available commands:
  validate    Check a content file
  export      Render the site into a directory
  init        Write the built-in content as a starting file
  version     Print the version

Use "portfolio-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newValidateCmd(fsys),
		newExportCmd(fsys),
		newInitCmd(fsys),
		newVersionCmd(),
	)
	return root
}

// Execute executes the root command against the local filesystem.
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
