package components

import (
	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/internal/icons"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ContactLink renders one outbound icon link. Mail links stay in the current tab.
func ContactLink(l domain.ContactLink) g.Node {
	return h.A(
		h.Href(l.URL),
		g.If(l.External(), g.Group{h.Target("_blank"), h.Rel("noopener noreferrer")}),
		g.Attr("aria-label", l.Label),
		g.Attr("title", l.Label),
		h.Class("contact-link text-gray-300 hover:text-green-400 transition-all duration-300 hover:scale-110"),
		icons.Icon(l.Kind, "w-8 h-8"),
	)
}

// ContactLinks renders the row of contact links in order.
func ContactLinks(links []domain.ContactLink) g.Node {
	return h.Div(
		h.Class("flex justify-center gap-8"),
		g.Map(links, ContactLink),
	)
}
