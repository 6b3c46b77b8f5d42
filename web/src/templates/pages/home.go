package pages

import (
	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Section anchors. Links elsewhere depend on these exact identifiers.
const (
	AnchorHome      = "home"
	AnchorSkills    = "skills"
	AnchorEducation = "education"
	AnchorProjects  = "projects"
	AnchorContact   = "contact"
)

// Options controls per-render behaviour of the page.
type Options struct {
	// ViewID identifies this page view for entrance-animation tracking. When
	// empty no reveal hooks are emitted.
	ViewID string
	// Static renders every section already revealed.
	Static bool
}

// NavItems returns the navigation anchors in page order.
func NavItems() []components.NavItem {
	return []components.NavItem{
		{ID: AnchorHome, Label: "Home"},
		{ID: AnchorSkills, Label: "Skills"},
		{ID: AnchorEducation, Label: "Education"},
		{ID: AnchorProjects, Label: "Projects"},
		{ID: AnchorContact, Label: "Contact"},
	}
}

// RevealPath is the endpoint a section posts to when it first scrolls into view.
func RevealPath(viewID, section string) string {
	return "/reveal/" + viewID + "/" + section
}

// Sections returns the page sections in their fixed order: hero, skills,
// education, projects, contact. Records render in declaration order.
func Sections(p *domain.Profile, opts Options) []g.Node {
	return []g.Node{
		components.Hero(p.Owner, p.Achievements, p.Services, p.Highlights),
		section(AnchorSkills, "Skills & Expertise", "bg-gray-900/50", opts,
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Map(p.Skills, components.SkillCard),
			),
		),
		section(AnchorEducation, "Education", "bg-gray-900/50", opts,
			h.Div(
				h.Class("max-w-4xl mx-auto space-y-8"),
				g.Map(p.Education, components.EducationCard),
			),
		),
		section(AnchorProjects, "My Projects", "bg-gradient-to-br from-gray-900/50 to-gray-800/50", opts,
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(p.Projects, components.ProjectCard),
			),
		),
		section(AnchorContact, "Get in Touch", "bg-gray-900/50", opts,
			components.ContactLinks(p.Contacts),
		),
	}
}

// Home renders every section of the page.
func Home(p *domain.Profile, opts Options) g.Node {
	return g.Group(Sections(p, opts))
}

func section(id, title, backdrop string, opts Options, body g.Node) g.Node {
	class := "section-container reveal relative overflow-hidden py-20"
	if opts.Static || opts.ViewID == "" {
		class += " is-revealed"
	}

	return h.Section(
		h.ID(id),
		h.Class(class),
		g.If(!opts.Static && opts.ViewID != "", g.Group{
			hx.Post(RevealPath(opts.ViewID, id)),
			hx.Trigger("intersect once"),
			hx.Swap("none"),
		}),
		h.Div(h.Class("absolute left-1/2 top-0 -translate-x-1/2 w-screen h-full -z-10 "+backdrop)),
		h.Div(
			h.Class("container mx-auto px-6 space-y-12"),
			h.H2(h.Class("heading-2 text-center mb-16 gradient-text text-4xl font-bold"), g.Text(title)),
			body,
		),
	)
}
