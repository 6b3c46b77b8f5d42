// Package icons resolves domain.IconKind values to inline SVG glyphs.
package icons

import (
	"github.com/nfrund/portfolio/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// paths holds the outline path data for each icon on a 24x24 grid.
var paths = map[domain.IconKind][]string{
	domain.IconShield:       {"M12 3l7 3v5c0 4.5-3 8.3-7 10-4-1.7-7-5.5-7-10V6l7-3z"},
	domain.IconShieldCheck:  {"M12 3l7 3v5c0 4.5-3 8.3-7 10-4-1.7-7-5.5-7-10V6l7-3z", "M9 12l2 2 4-4"},
	domain.IconLock:         {"M7 11V8a5 5 0 0110 0v3", "M5 11h14v10H5z"},
	domain.IconLockClosed:   {"M8 11V7a4 4 0 018 0v4", "M5 11h14v10H5z", "M12 15v2"},
	domain.IconCloud:        {"M7 18h10a4 4 0 000-8 6 6 0 00-11.6 1.5A3.5 3.5 0 007 18z"},
	domain.IconNetwork:      {"M12 3v6", "M5 21v-4h14v4", "M12 9v8", "M9 3h6v6H9z", "M3 21h4", "M17 21h4"},
	domain.IconBug:          {"M8 8a4 4 0 018 0v7a4 4 0 01-8 0V8z", "M3 13h5", "M16 13h5", "M4 7l4 2", "M20 7l-4 2", "M4 19l4-2", "M20 19l-4-2"},
	domain.IconGlobe:        {"M12 21a9 9 0 100-18 9 9 0 000 18z", "M3 12h18", "M12 3c2.5 2.5 3.5 5.5 3.5 9s-1 6.5-3.5 9c-2.5-2.5-3.5-5.5-3.5-9s1-6.5 3.5-9z"},
	domain.IconDatabase:     {"M4 6c0-1.7 3.6-3 8-3s8 1.3 8 3-3.6 3-8 3-8-1.3-8-3z", "M4 6v12c0 1.7 3.6 3 8 3s8-1.3 8-3V6", "M4 12c0 1.7 3.6 3 8 3s8-1.3 8-3"},
	domain.IconServer:       {"M4 4h16v6H4z", "M4 14h16v6H4z", "M8 7h.01", "M8 17h.01"},
	domain.IconMobile:       {"M7 2h10v20H7z", "M11 18h2"},
	domain.IconTools:        {"M14.7 6.3a4 4 0 005 5L21 13l-8 8-2-2 8-8", "M3 21l6-6", "M9.3 9.3L4 4"},
	domain.IconCode:         {"M8 9l-4 3 4 3", "M16 9l4 3-4 3", "M14 5l-4 14"},
	domain.IconGraduation:   {"M2 9l10-5 10 5-10 5L2 9z", "M6 11v5c2 2 10 2 12 0v-5", "M22 9v6"},
	domain.IconGitHub:       {"M9 19c-4.3 1.4-4.3-2.5-6-3m12 5v-3.5c0-1 .1-1.4-.5-2 2.8-.3 5.5-1.4 5.5-6a4.6 4.6 0 00-1.3-3.2 4.2 4.2 0 00-.1-3.2s-1.1-.3-3.5 1.3a12.3 12.3 0 00-6.2 0C6.5 2.8 5.4 3.1 5.4 3.1a4.2 4.2 0 00-.1 3.2A4.6 4.6 0 004 9.5c0 4.6 2.7 5.7 5.5 6-.6.6-.6 1.2-.5 2V21"},
	domain.IconLinkedIn:     {"M4 9h4v12H4z", "M6 3a2 2 0 110 4 2 2 0 010-4z", "M10 9h4v2c.6-1.2 2-2 3.5-2 2.5 0 4.5 1.5 4.5 5v7h-4v-6.5c0-1.5-.8-2.5-2-2.5s-2 1-2 2.5V21h-4z"},
	domain.IconEnvelope:     {"M3 5h18v14H3z", "M3 6l9 7 9-7"},
	domain.IconExternalLink: {"M14 3h7v7", "M10 14L21 3", "M19 14v7H3V5h7"},
	domain.IconSun:          {"M12 17a5 5 0 100-10 5 5 0 000 10z", "M12 1v2", "M12 21v2", "M4.2 4.2l1.4 1.4", "M18.4 18.4l1.4 1.4", "M1 12h2", "M21 12h2", "M4.2 19.8l1.4-1.4", "M18.4 5.6l1.4-1.4"},
	domain.IconMoon:         {"M21 12.8A9 9 0 1111.2 3a7 7 0 009.8 9.8z"},
	domain.IconArrowDown:    {"M12 4v16", "M5 13l7 7 7-7"},
}

// fallback is drawn for kinds missing from the table.
var fallback = []string{"M12 21a9 9 0 100-18 9 9 0 000 18z", "M12 8v4", "M12 16h.01"}

// Has reports whether kind has a dedicated glyph.
func Has(kind domain.IconKind) bool {
	_, ok := paths[kind]
	return ok
}

// Icon renders kind as an inline SVG. Unknown kinds render the fallback glyph
// so a content mistake never breaks the page.
func Icon(kind domain.IconKind, class string) g.Node {
	d, ok := paths[kind]
	if !ok {
		d = fallback
	}

	children := make([]g.Node, 0, len(d)+8)
	children = append(children,
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "1.5"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", string(kind)),
	)
	if class != "" {
		children = append(children, h.Class(class))
	}
	for _, p := range d {
		children = append(children, g.El("path", g.Attr("d", p)))
	}
	return g.El("svg", children...)
}
