package components

import (
	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/internal/icons"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ThemeToggleID is the element id the toggle swaps itself into.
const ThemeToggleID = "theme-toggle"

// ThemeTogglePath is the route the toggle posts to.
const ThemeTogglePath = "/theme/toggle"

// ToggleProps configures the theme toggle.
type ToggleProps struct {
	Dark bool
	// Static renders a script-driven button instead of a form, for pages
	// served without the application server.
	Static bool
}

const toggleButtonClasses = "p-3 rounded-full bg-white/90 dark:bg-gray-800/90 shadow-lg hover:shadow-xl backdrop-blur-md border border-white/20 dark:border-gray-700/20 transition-all duration-300 hover:scale-110"

// ThemeToggle renders the floating light/dark switch. The moon shows while
// dark is active, the sun otherwise.
func ThemeToggle(p ToggleProps) g.Node {
	mode, label := "light", "Switch to dark theme"
	glyph := icons.Icon(domain.IconSun, "w-6 h-6 text-yellow-500")
	if p.Dark {
		mode, label = "dark", "Switch to light theme"
		glyph = icons.Icon(domain.IconMoon, "w-6 h-6 text-blue-400")
	}

	if p.Static {
		return h.Div(
			h.ID(ThemeToggleID),
			h.Class("fixed bottom-8 right-8 z-50"),
			h.Button(
				h.Type("button"),
				g.Attr("data-theme-toggle", mode),
				g.Attr("aria-label", label),
				h.Class(toggleButtonClasses),
				h.Span(h.Class("theme-icon-dark"+hiddenUnless(p.Dark)), icons.Icon(domain.IconMoon, "w-6 h-6 text-blue-400")),
				h.Span(h.Class("theme-icon-light"+hiddenUnless(!p.Dark)), icons.Icon(domain.IconSun, "w-6 h-6 text-yellow-500")),
			),
		)
	}

	return g.El("form",
		h.ID(ThemeToggleID),
		h.Method("post"),
		h.Action(ThemeTogglePath),
		h.Class("fixed bottom-8 right-8 z-50"),
		hx.Post(ThemeTogglePath),
		hx.Target("#"+ThemeToggleID),
		hx.Swap("outerHTML"),
		h.Button(
			h.Type("submit"),
			g.Attr("data-theme", mode),
			g.Attr("aria-label", label),
			h.Class(toggleButtonClasses),
			glyph,
		),
	)
}

func hiddenUnless(visible bool) string {
	if visible {
		return ""
	}
	return " hidden"
}
