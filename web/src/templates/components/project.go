package components

import (
	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/internal/icons"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// swapToPlaceholder hides a broken image and shows the tile that follows it.
const swapToPlaceholder = "this.onerror=null;this.classList.add('hidden');this.nextElementSibling.classList.remove('hidden')"

// ProjectCard renders one project. Absent optional fields render nothing: no
// image means the code tile, no URLs means no links.
func ProjectCard(p domain.Project) g.Node {
	return h.Article(
		h.Class("project-card bg-gray-800 rounded-lg shadow-lg overflow-hidden hover:shadow-xl transition-shadow border border-slate-700/50"),
		h.Div(
			h.Class("relative h-48 overflow-hidden bg-gray-700"),
			g.If(p.HasImage(), g.Group{
				h.Img(
					h.Src(p.ImageURL),
					h.Alt(p.Title),
					g.Attr("loading", "lazy"),
					g.Attr("onerror", swapToPlaceholder),
					h.Class("w-full h-full object-cover hover:scale-105 transition-transform duration-300"),
				),
				imagePlaceholder(true),
			}),
			g.If(!p.HasImage(), imagePlaceholder(false)),
		),
		h.Div(
			h.Class("p-6"),
			h.H3(h.Class("text-xl font-semibold mb-2 text-white"), g.Text(p.Title)),
			h.P(h.Class("text-gray-300 mb-4"), g.Text(p.Description)),
			h.Div(
				h.Class("flex flex-wrap gap-2 mb-4"),
				g.Map(p.Technologies, TechTag),
			),
			g.If(p.HasSource() || p.HasDemo(), h.Div(
				h.Class("flex gap-4"),
				g.If(p.HasSource(), projectLink(p.GithubURL, domain.IconGitHub, "GitHub")),
				g.If(p.HasDemo(), projectLink(p.LiveURL, domain.IconExternalLink, "Live Demo")),
			)),
		),
	)
}

// TechTag renders one technology pill.
func TechTag(tech string) g.Node {
	return h.Span(
		h.Class("tech-tag bg-green-900/50 text-green-300 border border-green-700/50 px-3 py-1 rounded-full text-sm"),
		g.Text(tech),
	)
}

func imagePlaceholder(hidden bool) g.Node {
	class := "image-placeholder w-full h-full flex items-center justify-center"
	if hidden {
		class += " hidden"
	}
	return h.Div(h.Class(class), icons.Icon(domain.IconCode, "w-16 h-16 text-gray-500"))
}

func projectLink(href string, icon domain.IconKind, label string) g.Node {
	return h.A(
		h.Href(href),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		h.Class("flex items-center text-gray-300 hover:text-green-400 transition-colors"),
		icons.Icon(icon, "w-4 h-4 mr-2"),
		g.Text(label),
	)
}
