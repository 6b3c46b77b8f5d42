package components

import (
	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/internal/icons"
	"github.com/nfrund/portfolio/internal/markup"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// EducationCard renders one timeline entry. The note line only appears when
// the entry carries one.
func EducationCard(e domain.Education) g.Node {
	return h.Article(
		h.Class("education-card bg-gray-800/95 backdrop-blur-lg rounded-xl p-8 border border-gray-700/50 shadow-xl"),
		h.Div(
			h.Class("flex items-start gap-6"),
			h.Div(
				h.Class("p-4 rounded-lg bg-green-900/50"),
				icons.Icon(domain.IconGraduation, "w-8 h-8 text-green-400"),
			),
			h.Div(
				h.Class("flex-1"),
				h.H3(h.Class("text-2xl font-bold text-white mb-2"), g.Text(e.Degree)),
				h.P(h.Class("text-green-400 font-medium mb-2"), g.Text(e.Institution)),
				h.Div(h.Class("prose prose-invert text-gray-300"), markup.Node(e.Description)),
				g.If(e.Note != "", h.Div(
					h.Class("mt-4 pt-4 border-t border-gray-700/50"),
					h.P(
						h.Class("text-sm text-gray-400"),
						h.Span(h.Class("text-green-400 font-medium"), g.Text(e.NoteLabel)),
						g.Text(" "+e.Note),
					),
				)),
			),
		),
	)
}
