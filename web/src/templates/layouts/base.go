package layouts

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/nfrund/portfolio/internal/view"
	"github.com/nfrund/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindURL = "https://cdn.tailwindcss.com"
	htmxURL     = "https://unpkg.com/htmx.org@2.0.4"
)

// Props configures the document shell.
type Props struct {
	Title       string
	SiteTitle   string
	Description string
	Brand       string
	Credit      string
	Nav         []components.NavItem

	Dark   bool
	Static bool
	// LiveReloadPath enables the reload websocket when set.
	LiveReloadPath string
	// AssetPrefix is prepended to asset paths; "/static/" when empty.
	AssetPrefix string
	// Year is printed in the footer; the current year when zero.
	Year int
}

func (p Props) asset(name string) string {
	prefix := p.AssetPrefix
	if prefix == "" {
		prefix = "/static/"
	}
	return prefix + name
}

// Base wraps content in the full document: head, particle background,
// navigation, main, footer and the theme toggle.
func Base(p Props, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Document(p, view.AdaptTemplToGomponent(ctx, content)).Render(w)
	})
}

// Document builds the page around body as a gomponents tree.
func Document(p Props, body g.Node) g.Node {
	year := p.Year
	if year == 0 {
		year = time.Now().Year()
	}

	return h.Doctype(h.HTML(
		h.Lang("en"),
		g.If(p.Dark, h.Class("dark")),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(CalculateTitle(p.Title, p.SiteTitle))),
			g.If(p.Description != "", h.Meta(h.Name("description"), h.Content(p.Description))),
			g.If(p.Static, h.Script(g.Raw(storedThemeScript))),
			h.Script(h.Src(tailwindURL)),
			h.Script(g.Raw("tailwind.config = { darkMode: 'class' }")),
			g.If(!p.Static, h.Script(h.Src(htmxURL), h.Defer())),
			h.Link(h.Rel("stylesheet"), h.Href(p.asset("css/site.css"))),
			h.Script(h.Src(p.asset("js/site.js")), h.Defer()),
			h.NoScript(h.StyleEl(g.Raw(".reveal{opacity:1;transform:none}"))),
		),
		h.Body(
			h.Class("relative min-h-screen bg-slate-900 transition-colors duration-500"),
			g.If(p.LiveReloadPath != "", g.Attr("data-live-reload", p.LiveReloadPath)),
			Particles(),
			h.Div(
				h.Class("relative z-10"),
				components.Navigation(p.Brand, p.Nav),
				h.Main(body),
				h.Footer(
					h.Class("mt-20 py-8 bg-slate-900/95 backdrop-blur-lg border-t border-slate-800/50"),
					h.Div(
						h.Class("container mx-auto px-4 text-center text-gray-400"),
						g.Text(fmt.Sprintf("© %d - %s", year, p.Credit)),
					),
				),
			),
			components.ThemeToggle(components.ToggleProps{Dark: p.Dark, Static: p.Static}),
		),
	))
}

// storedThemeScript applies the visitor's saved theme before first paint on
// pages served without the application server.
const storedThemeScript = `(function(){try{var t=localStorage.getItem('theme');var c=document.documentElement.classList;if(t==='light'){c.remove('dark')}else if(t==='dark'){c.add('dark')}}catch(e){}})()`
