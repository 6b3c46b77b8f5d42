package components_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/web/src/templates/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(render(t, n)))
	require.NoError(t, err)
	return doc
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	for n := range root.Descendants() {
		if match(n) {
			out = append(out, n)
		}
	}
	return out
}

func element(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == tag }
}

func withClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, f := range strings.Fields(attr(n, "class")) {
			if f == class {
				return true
			}
		}
		return false
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			sb.WriteString(d.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

func TestLevelClasses(t *testing.T) {
	tests := []struct {
		level domain.Level
		want  string
	}{
		{domain.LevelBeginner, "bg-blue-900/80 text-blue-200"},
		{domain.LevelIntermediate, "bg-green-900/80 text-green-200"},
		{domain.LevelAdvanced, "bg-yellow-900/80 text-yellow-200"},
		{domain.LevelExpert, "bg-purple-900/80 text-purple-200"},
		{"Wizard", "bg-gray-900/80 text-gray-200"},
		{"", "bg-gray-900/80 text-gray-200"},
		{"expert", "bg-gray-900/80 text-gray-200"},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, components.LevelClasses(tt.level))
		})
	}
}

func TestSkillCardExpertIsPurple(t *testing.T) {
	doc := parse(t, components.SkillCard(domain.Skill{
		Icon:        domain.IconShield,
		Title:       "Threat Hunting",
		Description: "SIEM work",
		Level:       domain.LevelExpert,
	}))

	badges := findAll(doc, withClass("level-badge"))
	require.Len(t, badges, 1)
	class := attr(badges[0], "class")
	assert.Contains(t, class, "bg-purple-900/80")
	assert.Contains(t, class, "text-purple-200")
	for _, other := range []string{"blue", "green", "yellow"} {
		assert.NotContains(t, class, "bg-"+other+"-")
	}
	assert.Equal(t, "Expert", text(badges[0]))

	h3 := findAll(doc, element("h3"))
	require.Len(t, h3, 1)
	assert.Equal(t, "Threat Hunting", text(h3[0]))
}

func TestSkillCardUnknownLevelUsesDefault(t *testing.T) {
	doc := parse(t, components.SkillCard(domain.Skill{Icon: domain.IconCode, Title: "T", Description: "D", Level: "Wizard"}))
	badges := findAll(doc, withClass("level-badge"))
	require.Len(t, badges, 1)
	assert.Contains(t, attr(badges[0], "class"), "bg-gray-900/80 text-gray-200")
}

func TestProjectCardWithoutOptionalFields(t *testing.T) {
	doc := parse(t, components.ProjectCard(domain.Project{
		Title:        "X",
		Description:  "Y",
		Technologies: []string{"A", "B"},
	}))

	h3 := findAll(doc, element("h3"))
	require.Len(t, h3, 1)
	assert.Equal(t, "X", text(h3[0]))

	paragraphs := findAll(doc, element("p"))
	require.Len(t, paragraphs, 1)
	assert.Equal(t, "Y", text(paragraphs[0]))

	tags := findAll(doc, withClass("tech-tag"))
	require.Len(t, tags, 2)
	assert.Equal(t, "A", text(tags[0]))
	assert.Equal(t, "B", text(tags[1]))

	assert.Empty(t, findAll(doc, element("a")))
	assert.Empty(t, findAll(doc, element("img")))

	placeholders := findAll(doc, withClass("image-placeholder"))
	require.Len(t, placeholders, 1)
	assert.NotContains(t, attr(placeholders[0], "class"), "hidden")
}

func TestProjectCardSourceLink(t *testing.T) {
	const repo = "https://github.com/example/repo"
	doc := parse(t, components.ProjectCard(domain.Project{
		Title:        "X",
		Description:  "Y",
		Technologies: []string{"Go"},
		GithubURL:    repo,
	}))

	links := findAll(doc, element("a"))
	require.Len(t, links, 1)
	assert.Equal(t, repo, attr(links[0], "href"))
	assert.Equal(t, "_blank", attr(links[0], "target"))
	assert.Equal(t, "noopener noreferrer", attr(links[0], "rel"))
	assert.Equal(t, "GitHub", text(links[0]))
}

func TestProjectCardAllFields(t *testing.T) {
	doc := parse(t, components.ProjectCard(domain.Project{
		Title:        "X",
		Description:  "Y",
		Technologies: []string{"Go"},
		ImageURL:     "/static/images/x.png",
		GithubURL:    "https://github.com/example/repo",
		LiveURL:      "https://example.com",
	}))

	links := findAll(doc, element("a"))
	require.Len(t, links, 2)
	assert.Equal(t, "GitHub", text(links[0]))
	assert.Equal(t, "Live Demo", text(links[1]))
	assert.Equal(t, "https://example.com", attr(links[1], "href"))

	imgs := findAll(doc, element("img"))
	require.Len(t, imgs, 1)
	assert.Equal(t, "/static/images/x.png", attr(imgs[0], "src"))
	assert.Equal(t, "X", attr(imgs[0], "alt"))
	assert.NotEmpty(t, attr(imgs[0], "onerror"))

	placeholders := findAll(doc, withClass("image-placeholder"))
	require.Len(t, placeholders, 1)
	assert.Contains(t, attr(placeholders[0], "class"), "hidden")
}

func TestEducationCardNote(t *testing.T) {
	out := render(t, components.EducationCard(domain.Education{
		Degree:      "BSc",
		Institution: "Uni",
		Description: "Studied **hard**.",
		NoteLabel:   "Exchange Semester:",
		Note:        "Elsewhere",
	}))
	assert.Contains(t, out, "<strong>hard</strong>")
	assert.Contains(t, out, "Exchange Semester:")
	assert.Contains(t, out, " Elsewhere")

	bare := render(t, components.EducationCard(domain.Education{Degree: "MSc", Institution: "Uni"}))
	assert.NotContains(t, bare, "border-t")
}

func TestContactLinks(t *testing.T) {
	doc := parse(t, components.ContactLinks([]domain.ContactLink{
		{Kind: domain.IconGitHub, Label: "GitHub", URL: "https://github.com/example"},
		{Kind: domain.IconEnvelope, Label: "Email", URL: "mailto:me@example.com"},
	}))

	links := findAll(doc, element("a"))
	require.Len(t, links, 2)
	assert.Equal(t, "https://github.com/example", attr(links[0], "href"))
	assert.Equal(t, "_blank", attr(links[0], "target"))
	assert.Equal(t, "mailto:me@example.com", attr(links[1], "href"))
	assert.Empty(t, attr(links[1], "target"))
	assert.Equal(t, "Email", attr(links[1], "aria-label"))
}

func TestHero(t *testing.T) {
	doc := parse(t, components.Hero(
		domain.Owner{Greeting: "Hi", Name: "Jane Roe", Role: "Engineer", Bio: "Builds things.", CallToAction: "See work"},
		[]domain.Achievement{{Value: "10", Label: "Talks", Icon: domain.IconGlobe}},
		[]domain.Service{{Name: "Audits", Icon: domain.IconShield}, {Name: "Training", Icon: domain.IconTools}},
		[]domain.Stat{{Value: "5", Label: "Years"}},
	))

	sections := findAll(doc, element("section"))
	require.Len(t, sections, 1)
	assert.Equal(t, "home", attr(sections[0], "id"))

	h1 := findAll(doc, element("h1"))
	require.Len(t, h1, 1)
	assert.Equal(t, "Jane Roe", text(h1[0]))

	cta := findAll(doc, withClass("cta"))
	require.Len(t, cta, 1)
	assert.Equal(t, "#projects", attr(cta[0], "href"))

	assert.Len(t, findAll(doc, withClass("achievement")), 1)
	services := findAll(doc, withClass("service"))
	require.Len(t, services, 2)
	assert.Equal(t, "Audits", text(services[0]))
	assert.Len(t, findAll(doc, withClass("stat")), 1)
}

func TestNavigation(t *testing.T) {
	doc := parse(t, components.Navigation("Jane", []components.NavItem{
		{ID: "home", Label: "Home"},
		{ID: "skills", Label: "Skills"},
	}))
	links := findAll(doc, withClass("nav-link"))
	require.Len(t, links, 2)
	assert.Equal(t, "#home", attr(links[0], "href"))
	assert.Equal(t, "#skills", attr(links[1], "href"))
	assert.Equal(t, "Skills", text(links[1]))
}

func TestThemeToggle(t *testing.T) {
	t.Run("server dark", func(t *testing.T) {
		doc := parse(t, components.ThemeToggle(components.ToggleProps{Dark: true}))
		forms := findAll(doc, element("form"))
		require.Len(t, forms, 1)
		assert.Equal(t, components.ThemeToggleID, attr(forms[0], "id"))
		assert.Equal(t, "/theme/toggle", attr(forms[0], "action"))
		assert.Equal(t, "/theme/toggle", attr(forms[0], "hx-post"))
		assert.Equal(t, "outerHTML", attr(forms[0], "hx-swap"))

		icons := findAll(doc, element("svg"))
		require.Len(t, icons, 1)
		assert.Equal(t, "moon", attr(icons[0], "data-icon"))
	})

	t.Run("server light", func(t *testing.T) {
		doc := parse(t, components.ThemeToggle(components.ToggleProps{}))
		icons := findAll(doc, element("svg"))
		require.Len(t, icons, 1)
		assert.Equal(t, "sun", attr(icons[0], "data-icon"))
	})

	t.Run("static", func(t *testing.T) {
		doc := parse(t, components.ThemeToggle(components.ToggleProps{Dark: true, Static: true}))
		assert.Empty(t, findAll(doc, element("form")))
		buttons := findAll(doc, element("button"))
		require.Len(t, buttons, 1)
		assert.Equal(t, "dark", attr(buttons[0], "data-theme-toggle"))
		assert.Len(t, findAll(doc, element("svg")), 2)
	})
}
