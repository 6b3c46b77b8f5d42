package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound is the body rendered for unknown routes.
func NotFound() g.Node {
	return h.Section(
		h.ID("not-found"),
		h.Class("min-h-screen flex flex-col items-center justify-center text-center space-y-6 pt-24"),
		h.H1(h.Class("text-6xl font-bold text-green-400"), g.Text("404")),
		h.P(h.Class("text-xl text-gray-300"), g.Text("This page does not exist.")),
		h.A(h.Href("/"), h.Class("text-green-400 underline hover:text-green-300"), g.Text("Back to the portfolio")),
	)
}
