package pages_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nfrund/portfolio/internal/content"
	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/web/src/templates/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const viewID = "3f1d2c4e-8a9b-4c0d-9e1f-2a3b4c5d6e7f"

func parseHome(t *testing.T, p *domain.Profile, opts pages.Options) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, pages.Home(p, opts).Render(&buf))
	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func sections(doc *html.Node) []*html.Node {
	var out []*html.Node
	for n := range doc.Descendants() {
		if n.Type == html.ElementNode && n.Data == "section" {
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

func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attr(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func TestSectionOrder(t *testing.T) {
	doc := parseHome(t, content.Default(), pages.Options{ViewID: viewID})

	var ids []string
	for _, s := range sections(doc) {
		ids = append(ids, attr(s, "id"))
	}
	assert.Equal(t, []string{"home", "skills", "education", "projects", "contact"}, ids)

	var navIDs []string
	for _, n := range pages.NavItems() {
		navIDs = append(navIDs, n.ID)
	}
	assert.Equal(t, ids, navIDs)
}

func TestRecordsRenderInDeclarationOrder(t *testing.T) {
	p := content.Default()
	doc := parseHome(t, p, pages.Options{})

	var titles []string
	for n := range doc.Descendants() {
		if n.Type == html.ElementNode && n.Data == "article" && hasClass(n, "project-card") {
			for d := range n.Descendants() {
				if d.Type == html.ElementNode && d.Data == "h3" {
					titles = append(titles, d.FirstChild.Data)
					break
				}
			}
		}
	}

	want := make([]string, len(p.Projects))
	for i, pr := range p.Projects {
		want[i] = pr.Title
	}
	assert.Equal(t, want, titles)
}

func TestRevealHooks(t *testing.T) {
	doc := parseHome(t, content.Default(), pages.Options{ViewID: viewID})

	for _, s := range sections(doc) {
		id := attr(s, "id")
		if id == pages.AnchorHome {
			assert.Empty(t, attr(s, "hx-post"), "hero has no entrance hook")
			continue
		}
		assert.Equal(t, "/reveal/"+viewID+"/"+id, attr(s, "hx-post"))
		assert.Equal(t, "intersect once", attr(s, "hx-trigger"))
		assert.Equal(t, "none", attr(s, "hx-swap"))
		assert.True(t, hasClass(s, "reveal"))
		assert.False(t, hasClass(s, "is-revealed"), id)
	}
}

func TestStaticRenderIsRevealed(t *testing.T) {
	doc := parseHome(t, content.Default(), pages.Options{ViewID: viewID, Static: true})

	for _, s := range sections(doc)[1:] {
		assert.Empty(t, attr(s, "hx-post"))
		assert.True(t, hasClass(s, "is-revealed"), attr(s, "id"))
	}
}

func TestEmptyProfileStillRendersAllSections(t *testing.T) {
	doc := parseHome(t, &domain.Profile{Owner: domain.Owner{Name: "A", Role: "B"}}, pages.Options{})
	assert.Len(t, sections(doc), 5)
}

func TestNotFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pages.NotFound().Render(&buf))
	assert.Contains(t, buf.String(), "404")
	assert.Contains(t, buf.String(), `href="/"`)
}
