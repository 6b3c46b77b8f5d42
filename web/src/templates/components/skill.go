package components

import (
	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/internal/icons"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Badge classes per proficiency level.
const (
	beginnerClasses     = "bg-blue-900/80 text-blue-200"
	intermediateClasses = "bg-green-900/80 text-green-200"
	advancedClasses     = "bg-yellow-900/80 text-yellow-200"
	expertClasses       = "bg-purple-900/80 text-purple-200"
	defaultLevelClasses = "bg-gray-900/80 text-gray-200"
)

// LevelClasses returns the badge colour classes for level. Levels outside the
// enum get the neutral default.
func LevelClasses(level domain.Level) string {
	switch level {
	case domain.LevelBeginner:
		return beginnerClasses
	case domain.LevelIntermediate:
		return intermediateClasses
	case domain.LevelAdvanced:
		return advancedClasses
	case domain.LevelExpert:
		return expertClasses
	default:
		return defaultLevelClasses
	}
}

// LevelBadge renders the pill showing a skill's level.
func LevelBadge(level domain.Level) g.Node {
	return h.Span(
		h.Class("level-badge inline-block px-4 py-1.5 rounded-full text-sm font-medium backdrop-blur-sm "+LevelClasses(level)),
		g.Text(string(level)),
	)
}

// SkillCard renders one skill.
func SkillCard(s domain.Skill) g.Node {
	return h.Article(
		h.Class("skill-card glass-card p-6 group bg-gray-800/95 border border-gray-700/30 rounded-xl"),
		h.Div(
			h.Class("flex items-center mb-4"),
			h.Div(
				h.Class("p-3 rounded-lg bg-blue-900/50 group-hover:bg-blue-800/50 transition-colors"),
				icons.Icon(s.Icon, "w-8 h-8 text-blue-400"),
			),
			h.H3(h.Class("text-xl font-semibold ml-4 gradient-text"), g.Text(s.Title)),
		),
		h.P(h.Class("text-gray-300 mb-4 leading-relaxed"), g.Text(s.Description)),
		LevelBadge(s.Level),
	)
}
