package layouts

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const particleCount = 24

// Particles renders the decorative background. Positions are derived from the
// index so the output is stable between renders.
func Particles() g.Node {
	dots := make([]g.Node, particleCount)
	for i := range dots {
		left := (i*37 + 11) % 100
		top := (i*61 + 7) % 100
		size := 2 + i%3
		delay := (i * 7) % 10
		dots[i] = h.Span(
			h.Class("particle absolute rounded-full bg-green-400/20"),
			g.Attr("style", fmt.Sprintf("left:%d%%;top:%d%%;width:%dpx;height:%dpx;animation-delay:%ds", left, top, size, size, delay)),
		)
	}
	return h.Div(
		h.ID("particles"),
		h.Class("fixed inset-0 overflow-hidden pointer-events-none"),
		g.Attr("aria-hidden", "true"),
		g.Group(dots),
	)
}
