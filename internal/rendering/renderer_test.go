package rendering_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/portfolio/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := rendering.NewUniversalRenderer()

	out, err := r.RenderComponent(context.Background(), h.Span(g.Text("node")))
	require.NoError(t, err)
	assert.Equal(t, "<span>node</span>", string(out))

	comp := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<i>templ</i>")
		return err
	})
	out, err = r.RenderComponent(context.Background(), comp)
	require.NoError(t, err)
	assert.Equal(t, "<i>templ</i>", string(out))

	_, err = r.RenderComponent(context.Background(), 42)
	assert.ErrorContains(t, err, "unsupported component type: int")
}

func TestEchoRender(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusCreated, "", h.P(g.Text("hi")))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "<p>hi</p>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	r := rendering.NewUniversalRenderer()
	require.NoError(t, r.RenderPage(c, http.StatusNotFound, h.Div(g.Text("gone"))))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "<div>gone</div>", rec.Body.String())

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "", struct{}{}, c))
}
