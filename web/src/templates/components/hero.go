package components

import (
	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/internal/icons"
	"github.com/nfrund/portfolio/internal/markup"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AchievementCard renders one headline number.
func AchievementCard(a domain.Achievement) g.Node {
	return h.Div(
		h.Class("achievement text-center space-y-2"),
		icons.Icon(a.Icon, "w-7 h-7 text-green-400 mx-auto"),
		h.Div(h.Class("text-2xl font-bold text-white"), g.Text(a.Value)),
		h.Div(h.Class("text-xs text-gray-400 leading-tight"), g.Text(a.Label)),
	)
}

// ServiceTile renders one area of practice.
func ServiceTile(s domain.Service) g.Node {
	return h.Div(
		h.Class("service flex flex-col items-center p-4 rounded-lg bg-slate-700/30 hover:bg-slate-700/50 transition-colors border border-slate-600/30"),
		icons.Icon(s.Icon, "w-7 h-7 text-green-400 mb-2"),
		h.Span(h.Class("text-sm text-white font-medium"), g.Text(s.Name)),
	)
}

// StatBlock renders a bare counter.
func StatBlock(s domain.Stat) g.Node {
	return h.Div(
		h.Class("stat text-center"),
		h.Div(h.Class("text-xl font-bold text-green-400"), g.Text(s.Value)),
		h.Div(h.Class("text-xs text-gray-400 mt-1"), g.Text(s.Label)),
	)
}

// Hero renders the home section: the owner's introduction on the left,
// achievements and services on the right.
func Hero(owner domain.Owner, achievements []domain.Achievement, services []domain.Service, highlights []domain.Stat) g.Node {
	return h.Section(
		h.ID("home"),
		h.Class("min-h-screen flex items-center justify-center relative overflow-hidden bg-gradient-to-br from-slate-900 via-slate-800 to-slate-900 pt-24"),
		h.Div(h.Class("hero-grid absolute inset-0 opacity-[0.03]")),
		h.Div(h.Class("absolute inset-0 bg-[radial-gradient(circle_at_30%_20%,rgba(34,197,94,0.08),transparent_60%)]")),
		h.Div(
			h.Class("container mx-auto px-6 sm:px-8 lg:px-12 relative z-10 py-16 sm:py-20 lg:py-24"),
			h.Div(
				h.Class("grid grid-cols-1 lg:grid-cols-2 gap-16 items-center"),
				h.Div(
					h.Class("hero-intro text-white space-y-6"),
					g.If(owner.Greeting != "", h.P(
						h.Class("text-sm md:text-base text-green-400 font-medium tracking-wider uppercase"),
						g.Text(owner.Greeting),
					)),
					h.H1(
						h.Class("text-5xl md:text-6xl lg:text-7xl font-bold text-green-400 leading-tight tracking-tight"),
						g.Text(owner.Name),
					),
					h.P(h.Class("text-xl md:text-2xl text-white/95 font-medium"), g.Text(owner.Role)),
					h.Div(h.Class("prose prose-invert text-base md:text-lg text-gray-300 leading-relaxed max-w-lg"), markup.Node(owner.Bio)),
					g.If(owner.CallToAction != "", h.A(
						h.Href("#projects"),
						h.Class("cta inline-block bg-green-500 hover:bg-green-600 text-slate-900 font-semibold px-8 py-3.5 rounded-lg transition-all duration-300 shadow-lg shadow-green-500/30 hover:shadow-green-500/50 mt-4"),
						g.Text(owner.CallToAction),
					)),
				),
				h.Div(
					h.Class("space-y-5"),
					g.If(len(achievements) > 0, heroCard("My Achievements",
						h.Div(h.Class("grid grid-cols-3 gap-6"), g.Map(achievements, AchievementCard)),
					)),
					g.If(len(services) > 0 || len(highlights) > 0, heroCard("Which Service I Provide and Learn",
						h.Div(h.Class("grid grid-cols-2 gap-3 mb-5"), g.Map(services, ServiceTile)),
						g.If(len(highlights) > 0, h.Div(
							h.Class("grid grid-cols-2 gap-4 pt-5 border-t border-slate-700/50"),
							g.Map(highlights, StatBlock),
						)),
					)),
				),
			),
		),
		h.Div(
			h.Class("scroll-indicator absolute bottom-8 left-1/2 transform -translate-x-1/2"),
			icons.Icon(domain.IconArrowDown, "w-8 h-8 text-green-400/70"),
		),
	)
}

func heroCard(title string, children ...g.Node) g.Node {
	return h.Div(
		h.Class("bg-slate-800/70 backdrop-blur-md rounded-xl p-6 border border-slate-700/50 shadow-xl"),
		h.H3(h.Class("text-lg font-bold text-green-400 text-center mb-6 tracking-wide uppercase"), g.Text(title)),
		g.Group(children),
	)
}
