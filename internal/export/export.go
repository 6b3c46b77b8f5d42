// Package export renders the portfolio to a self-contained static site.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/internal/handlers"
	"github.com/nfrund/portfolio/internal/rendering"
	"github.com/nfrund/portfolio/internal/storage"
	"github.com/nfrund/portfolio/internal/theme"
	"github.com/nfrund/portfolio/internal/view"
	"github.com/nfrund/portfolio/web/src/templates/layouts"
	"github.com/nfrund/portfolio/web/src/templates/pages"
)

// IndexFile is the name of the rendered page.
const IndexFile = "index.html"

// AssetDir is the directory assets are copied into, relative to the page.
const AssetDir = "static"

// Options controls an export.
type Options struct {
	Profile *domain.Profile
	Theme   theme.Mode
	// Assets are copied under AssetDir. Nil skips the copy.
	Assets fs.FS
	// Year overrides the footer year; zero means the current year.
	Year int
}

// Result summarises what an export wrote.
type Result struct {
	Files int
	Bytes int64
}

// Render returns the static page for opts without writing anything.
func Render(ctx context.Context, opts Options) ([]byte, error) {
	if opts.Profile == nil {
		return nil, errors.New("export: profile is required")
	}
	mode := opts.Theme
	if mode == "" {
		mode = theme.Dark
	}

	profile := withRelativeAssets(opts.Profile)
	props := handlers.LayoutProps(profile, mode == theme.Dark)
	props.Static = true
	props.AssetPrefix = AssetDir + "/"
	props.Year = opts.Year

	page := layouts.Base(props, view.AdaptGomponentToTempl(pages.Home(profile, pages.Options{Static: true})))
	html, err := rendering.NewUniversalRenderer().RenderComponent(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("export: render page: %w", err)
	}
	return html, nil
}

// servedAssetPrefix is where the server mounts assets.
const servedAssetPrefix = "/static/"

// withRelativeAssets returns a copy of p whose project images under the served
// asset path point into AssetDir instead, so the export works from disk. p is
// not modified.
func withRelativeAssets(p *domain.Profile) *domain.Profile {
	out := *p
	out.Projects = make([]domain.Project, len(p.Projects))
	for i, project := range p.Projects {
		if rest, ok := strings.CutPrefix(project.ImageURL, servedAssetPrefix); ok {
			project.ImageURL = AssetDir + "/" + rest
		}
		out.Projects[i] = project
	}
	return &out
}

// Site renders the page and copies assets into store.
func Site(ctx context.Context, store storage.Store, opts Options) (Result, error) {
	var res Result

	html, err := Render(ctx, opts)
	if err != nil {
		return res, err
	}
	n, err := store.Save(ctx, IndexFile, bytes.NewReader(html))
	if err != nil {
		return res, fmt.Errorf("export: write %s: %w", IndexFile, err)
	}
	res.Files++
	res.Bytes += n

	if opts.Assets != nil {
		copied, err := storage.CopyFS(ctx, store, opts.Assets, AssetDir)
		res.Files += copied
		if err != nil {
			return res, fmt.Errorf("export: %w", err)
		}
	}

	slog.Info("Exported static site", "files", res.Files, "page_bytes", res.Bytes, "theme", opts.Theme.String())
	return res, nil
}
