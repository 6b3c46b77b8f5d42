package layouts_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nfrund/portfolio/internal/view"
	"github.com/nfrund/portfolio/web/src/templates/components"
	"github.com/nfrund/portfolio/web/src/templates/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Portfolio", layouts.CalculateTitle("", "Portfolio"))
	assert.Equal(t, "Home - Portfolio", layouts.CalculateTitle("Home", "Portfolio"))
	assert.Equal(t, "Home", layouts.CalculateTitle("Home", ""))
	assert.Equal(t, "Portfolio", layouts.CalculateTitle("Portfolio", "Portfolio"))
}

func renderBase(t *testing.T, p layouts.Props) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	content := view.AdaptGomponentToTempl(h.P(h.ID("content"), g.Text("inner")))
	require.NoError(t, layouts.Base(p, content).Render(context.Background(), &buf))
	require.True(t, strings.HasPrefix(buf.String(), "<!doctype html>"))
	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func find(doc *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for n := range doc.Descendants() {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestBaseDark(t *testing.T) {
	doc := renderBase(t, layouts.Props{
		Title:          "Home",
		SiteTitle:      "Portfolio",
		Description:    "desc",
		Brand:          "Jane",
		Credit:         "Built with Go",
		Nav:            []components.NavItem{{ID: "home", Label: "Home"}},
		Dark:           true,
		LiveReloadPath: "/ws/reload",
		Year:           2025,
	})

	root := find(doc, "html")[0]
	assert.Equal(t, "dark", attr(root, "class"))
	assert.Equal(t, "Home - Portfolio", find(doc, "title")[0].FirstChild.Data)

	mains := find(doc, "main")
	require.Len(t, mains, 1)
	var inner *html.Node
	for n := range mains[0].Descendants() {
		if attr(n, "id") == "content" {
			inner = n
		}
	}
	require.NotNil(t, inner, "content renders inside main")

	footer := find(doc, "footer")
	require.Len(t, footer, 1)
	var footerText strings.Builder
	for n := range footer[0].Descendants() {
		if n.Type == html.TextNode {
			footerText.WriteString(n.Data)
		}
	}
	assert.Equal(t, "© 2025 - Built with Go", strings.TrimSpace(footerText.String()))

	body := find(doc, "body")[0]
	assert.Equal(t, "/ws/reload", attr(body, "data-live-reload"))

	var htmx bool
	for _, s := range find(doc, "script") {
		if strings.Contains(attr(s, "src"), "htmx.org") {
			htmx = true
		}
	}
	assert.True(t, htmx)
	assert.Len(t, find(doc, "form"), 1, "server mode toggle")
}

func TestBaseLightStatic(t *testing.T) {
	doc := renderBase(t, layouts.Props{SiteTitle: "Portfolio", Static: true, AssetPrefix: "static/"})

	root := find(doc, "html")[0]
	assert.Empty(t, attr(root, "class"))
	assert.Empty(t, attr(find(doc, "body")[0], "data-live-reload"))

	for _, s := range find(doc, "script") {
		assert.NotContains(t, attr(s, "src"), "htmx.org")
	}
	var css string
	for _, l := range find(doc, "link") {
		if attr(l, "rel") == "stylesheet" {
			css = attr(l, "href")
		}
	}
	assert.Equal(t, "static/css/site.css", css)
	assert.Empty(t, find(doc, "form"))
}

func TestParticlesAreStable(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, layouts.Particles().Render(&a))
	require.NoError(t, layouts.Particles().Render(&b))
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, 24, strings.Count(a.String(), `class="particle `))
}
