package cmd

import (
	"fmt"

	"github.com/nfrund/portfolio/internal/content"
	"github.com/nfrund/portfolio/internal/export"
	"github.com/nfrund/portfolio/internal/storage"
	"github.com/nfrund/portfolio/internal/theme"
	"github.com/nfrund/portfolio/web"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	out         string
	contentFile string
	theme       string
	year        int
}

func newExportCmd(fsys afero.Fs) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the portfolio as a static site",
		Long: `Render index.html and copy the site assets into the output directory.
The exported page toggles its theme in the browser and shows every section
without entrance animations.

Examples:
  portfolio-cli export --out dist
  portfolio-cli export --out dist --content content.yaml --theme light`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, fsys, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output directory")
	cmd.Flags().StringVarP(&opts.contentFile, "content", "c", "", "content file (defaults to the built-in content)")
	cmd.Flags().StringVar(&opts.theme, "theme", theme.Dark.String(), "initial theme: dark or light")
	cmd.Flags().IntVar(&opts.year, "year", 0, "footer year (defaults to the current year)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runExport(cmd *cobra.Command, fsys afero.Fs, opts exportOptions) error {
	mode, err := theme.ParseMode(opts.theme)
	if err != nil {
		return err
	}

	profile := content.Default()
	if opts.contentFile != "" {
		var loadErr error
		if profile, loadErr = content.Load(fsys, opts.contentFile); loadErr != nil {
			return loadErr
		}
	}

	res, err := export.Site(cmd.Context(), storage.NewDirStore(fsys, opts.out), export.Options{
		Profile: profile,
		Theme:   mode,
		Assets:  web.Static(),
		Year:    opts.year,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %s's portfolio to %s (%d files)\n", profile.Owner.Name, opts.out, res.Files)
	return nil
}
