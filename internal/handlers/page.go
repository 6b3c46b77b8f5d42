package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/portfolio/internal/content"
	"github.com/nfrund/portfolio/internal/domain"
	"github.com/nfrund/portfolio/internal/events"
	"github.com/nfrund/portfolio/internal/middleware"
	"github.com/nfrund/portfolio/internal/pubsub"
	"github.com/nfrund/portfolio/internal/reveal"
	"github.com/nfrund/portfolio/internal/theme"
	"github.com/nfrund/portfolio/internal/view"
	"github.com/nfrund/portfolio/web/src/templates/components"
	"github.com/nfrund/portfolio/web/src/templates/layouts"
	"github.com/nfrund/portfolio/web/src/templates/pages"
)

// ThemeStoreFunc returns the theme store for one request.
type ThemeStoreFunc func(c echo.Context) theme.Store

// SessionThemeStore stores the theme in the request's cookie session.
func SessionThemeStore(c echo.Context) theme.Store {
	return theme.NewSessionStore(c)
}

// PageDependencies holds what the page handlers need.
type PageDependencies struct {
	Content        *content.Store
	Tracker        *reveal.Tracker
	Publisher      pubsub.Publisher
	ThemeStore     ThemeStoreFunc
	DefaultTheme   theme.Mode
	LiveReloadPath string
}

// PageHandler serves the portfolio page and its interactive endpoints.
type PageHandler struct {
	deps PageDependencies
}

// NewPageHandler creates a PageHandler. Missing optional dependencies get
// working defaults.
func NewPageHandler(deps PageDependencies) *PageHandler {
	if deps.Publisher == nil {
		deps.Publisher = pubsub.Discard
	}
	if deps.ThemeStore == nil {
		deps.ThemeStore = SessionThemeStore
	}
	if deps.DefaultTheme == "" {
		deps.DefaultTheme = theme.Dark
	}
	return &PageHandler{deps: deps}
}

// loadTheme resolves the visitor's theme, falling back to the default when the
// session cannot be read.
func (h *PageHandler) loadTheme(c echo.Context) *theme.Context {
	tc, err := theme.Load(c.Request().Context(), h.deps.ThemeStore(c), h.deps.DefaultTheme)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to load theme", "error", err)
	}
	return tc
}

// LayoutProps builds the shell properties for profile.
func LayoutProps(p *domain.Profile, dark bool) layouts.Props {
	return layouts.Props{
		SiteTitle:   p.Site.Title,
		Description: p.Site.Description,
		Brand:       p.Owner.Name,
		Credit:      p.Site.Credit,
		Nav:         pages.NavItems(),
		Dark:        dark,
	}
}

// HomeGet renders the page (GET /).
func (h *PageHandler) HomeGet(c echo.Context) error {
	ctx := c.Request().Context()
	tc := h.loadTheme(c)
	viewID := uuid.NewString()
	h.deps.Tracker.Register(viewID)
	profile := h.deps.Content.Current()

	props := LayoutProps(profile, tc.Dark())
	props.LiveReloadPath = h.deps.LiveReloadPath
	page := layouts.Base(props, view.AdaptGomponentToTempl(pages.Home(profile, pages.Options{ViewID: viewID})))

	if err := pubsub.Publish(ctx, h.deps.Publisher, events.PageView, events.PageViewed{
		ViewID:    viewID,
		Theme:     tc.Mode().String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish page view", "error", err)
	}

	return c.Render(http.StatusOK, "", page)
}

// ThemeTogglePost flips the theme (POST /theme/toggle). htmx callers receive
// the new toggle and a themeChanged trigger; plain form posts are redirected
// back to the page they came from.
func (h *PageHandler) ThemeTogglePost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	tc := h.loadTheme(c)
	mode, err := tc.Toggle(ctx)
	if err != nil {
		// The toggle stands for this response even though it was not stored.
		logger.Error("Failed to persist theme", "mode", mode, "error", err)
	}

	if err := pubsub.Publish(ctx, h.deps.Publisher, events.ThemeToggle, events.ThemeToggled{
		Mode:      mode.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		logger.Warn("Failed to publish theme toggle", "error", err)
	}

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, backTo(c))
	}

	if err := setTrigger(c, "themeChanged", map[string]string{"mode": mode.String()}); err != nil {
		return err
	}
	return c.Render(http.StatusOK, "", components.ThemeToggle(components.ToggleProps{Dark: tc.Dark()}))
}

// RevealPost records that a section entered the viewport
// (POST /reveal/:view/:section). The first report per page view answers 200
// with a reveal trigger; repeats answer 204. Views the server did not render
// answer 404.
func (h *PageHandler) RevealPost(c echo.Context) error {
	var req RevealRequest
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Code: "bad_request", Message: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Code: "invalid_reveal", Message: err.Error()})
	}

	played, err := h.deps.Tracker.Play(req.ViewID, req.Section)
	if errors.Is(err, reveal.ErrUnknownView) {
		return echo.NewHTTPError(http.StatusNotFound, ErrorResponse{Code: "unknown_view", Message: err.Error()})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Code: "unknown_section", Message: err.Error()})
	}
	if !played {
		return c.NoContent(http.StatusNoContent)
	}

	ctx := c.Request().Context()
	if err := pubsub.Publish(ctx, h.deps.Publisher, events.SectionReveal, events.SectionRevealed{
		ViewID:    req.ViewID,
		Section:   req.Section,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish reveal", "error", err)
	}

	if err := setTrigger(c, "reveal", map[string]string{"section": req.Section}); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// HealthGet reports liveness (GET /health).
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// backTo returns the local path of the referring page, or "/".
func backTo(c echo.Context) string {
	ref, err := url.Parse(c.Request().Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != c.Request().Host) {
		return "/"
	}
	// Browsers read "//host" and "/\host" as another origin.
	if !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") || strings.HasPrefix(ref.Path, "/\\") {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}

// NotFound renders the 404 page inside the layout.
func (h *PageHandler) NotFound(c echo.Context) error {
	tc := h.loadTheme(c)
	profile := h.deps.Content.Current()
	props := LayoutProps(profile, tc.Dark())
	props.Title = "Not Found"
	return c.Render(http.StatusNotFound, "", layouts.Base(props, view.AdaptGomponentToTempl(pages.NotFound())))
}
