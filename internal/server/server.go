package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/portfolio/internal/config"
	"github.com/nfrund/portfolio/internal/content"
	"github.com/nfrund/portfolio/internal/handlers"
	"github.com/nfrund/portfolio/internal/middleware"
	"github.com/nfrund/portfolio/internal/module"
	"github.com/nfrund/portfolio/internal/pubsub"
	"github.com/nfrund/portfolio/internal/registry"
	"github.com/nfrund/portfolio/internal/rendering"
	"github.com/nfrund/portfolio/internal/reveal"
	"github.com/nfrund/portfolio/internal/theme"
	"github.com/nfrund/portfolio/web"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// postRateLimit is the per-client request rate allowed on POST routes.
const postRateLimit = 10

// Dependencies holds everything the server wires together.
type Dependencies struct {
	Config  config.Provider
	Content *content.Store
	// Watcher is optional; it is run alongside the HTTP server when set.
	Watcher *content.Watcher
	Tracker *reveal.Tracker
	PubSub  pubsub.PubSub
	Logger  *slog.Logger
	// LiveReloadPath is advertised to pages when the live reload module is mounted.
	LiveReloadPath string
}

// Server is the main application server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry
	Page     *handlers.PageHandler

	watcher *content.Watcher
	tracker *reveal.Tracker
	pubsub  pubsub.PubSub
	logger  *slog.Logger
	modules []module.Module
}

// New creates the echo instance, installs middleware and the error handler,
// and registers core services. Routes are added by RegisterRoutes.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Content == nil {
		return nil, errors.New("server: content store is required")
	}
	if deps.PubSub == nil {
		return nil, errors.New("server: pubsub is required")
	}
	if deps.Tracker == nil {
		deps.Tracker = reveal.NewTracker(deps.Config.GetRevealTTL())
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	defaultTheme, err := theme.ParseMode(deps.Config.GetDefaultTheme())
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()

	s := &Server{
		E:        e,
		Cfg:      deps.Config,
		Registry: registry.New(deps.Config),
		watcher:  deps.Watcher,
		tracker:  deps.Tracker,
		pubsub:   deps.PubSub,
		logger:   deps.Logger,
	}

	s.Page = handlers.NewPageHandler(handlers.PageDependencies{
		Content:        deps.Content,
		Tracker:        deps.Tracker,
		Publisher:      deps.PubSub,
		DefaultTheme:   defaultTheme,
		LiveReloadPath: deps.LiveReloadPath,
	})

	s.setupMiddleware()
	setupErrorHandling(e, s.Page.NotFound)
	s.registerServices()
	return s, nil
}

func (s *Server) setupMiddleware() {
	store := sessions.NewCookieStore([]byte(s.Cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   s.Cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}

	s.E.Use(echomw.Recover())
	s.E.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	s.E.Use(middleware.Logger(s.logger))
	s.E.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			middleware.FromContext(c.Request().Context()).Info("request",
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))
	s.E.Use(session.Middleware(store))
}

func (s *Server) registerServices() {
	registry.Set(s.Registry, registry.RevealTrackerKey, s.tracker)
	registry.Set[pubsub.Subscriber](s.Registry, registry.SubscriberKey, s.pubsub)
	registry.Set(s.Registry, registry.LoggerKey, s.logger)
}

// staticFS returns the asset directory from config, or the embedded assets.
func (s *Server) staticFS() fs.FS {
	if dir := s.Cfg.GetStaticDir(); dir != "" {
		return os.DirFS(dir)
	}
	return web.Static()
}

// RegisterRoutes mounts the page, its interactive endpoints, and static assets.
func (s *Server) RegisterRoutes() {
	s.E.StaticFS("/static", s.staticFS())

	s.E.GET("/", s.Page.HomeGet)
	s.E.GET("/health", handlers.HealthGet)

	limited := s.E.Group("", middleware.RateLimiter(postRateLimit))
	limited.POST("/theme/toggle", s.Page.ThemeTogglePost)
	limited.POST("/reveal/:view/:section", s.Page.RevealPost)
}

// InitModules registers every module's services, then boots each one. ctx
// bounds the lifetime of any background work a module starts.
func (s *Server) InitModules(ctx context.Context, modules []module.Module) error {
	for _, mod := range modules {
		if err := mod.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", mod.Name(), err)
		}
	}

	group := s.E.Group("")
	for _, mod := range modules {
		if err := mod.Boot(ctx, group, s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", mod.Name(), err)
		}
		s.logger.Info("Module booted", "module", mod.Name())
	}
	s.modules = modules
	return nil
}

// Run serves HTTP alongside the content watcher and the reveal sweeper until
// ctx is cancelled or one of them fails, then shuts everything down.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Starting server", "address", s.Cfg.GetAppAddr())
		if err := s.E.Start(s.Cfg.GetAppAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return s.tracker.Run(ctx)
	})
	if s.watcher != nil {
		g.Go(func() error {
			return s.watcher.Run(ctx)
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Shutdown stops the HTTP server, then the modules, then the event bus.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server: %w", err))
	}
	for _, mod := range s.modules {
		if err := mod.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("module %s: %w", mod.Name(), err))
		}
	}
	if err := s.pubsub.Close(); err != nil {
		errs = append(errs, fmt.Errorf("pubsub: %w", err))
	}
	return errors.Join(errs...)
}
