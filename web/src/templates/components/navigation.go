package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NavItem is one in-page anchor.
type NavItem struct {
	ID    string
	Label string
}

// Href returns the fragment link for the item.
func (n NavItem) Href() string { return "#" + n.ID }

// Navigation renders the fixed top bar linking to each section.
func Navigation(brand string, items []NavItem) g.Node {
	return h.Nav(
		h.ID("site-nav"),
		h.Class("fixed top-0 inset-x-0 z-40 bg-slate-900/80 backdrop-blur-lg border-b border-slate-800/50"),
		h.Div(
			h.Class("container mx-auto px-6 py-4 flex items-center justify-between"),
			h.A(h.Href("#home"), h.Class("text-xl font-bold text-green-400"), g.Text(brand)),
			h.Ul(
				h.Class("flex gap-6 text-sm font-medium text-gray-300"),
				g.Map(items, func(n NavItem) g.Node {
					return h.Li(h.A(
						h.Href(n.Href()),
						h.Class("nav-link hover:text-green-400 transition-colors"),
						g.Text(n.Label),
					))
				}),
			),
		),
	)
}
