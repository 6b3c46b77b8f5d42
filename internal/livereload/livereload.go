// Package livereload pushes a reload notice to open pages whenever the content
// file is reloaded.
package livereload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/portfolio/internal/events"
	"github.com/nfrund/portfolio/internal/hub"
	"github.com/nfrund/portfolio/internal/module"
	"github.com/nfrund/portfolio/internal/pubsub"
	"github.com/nfrund/portfolio/internal/registry"
)

// Path is the websocket endpoint pages connect to.
const Path = "/ws/reload"

// Message is the frame sent to clients.
var Message = []byte("reload")

// Module serves the reload websocket and relays content.reloaded events.
type Module struct {
	module.BaseModule
	hub    *hub.Hub
	logger *slog.Logger
}

// New creates the live reload module. Its services come from the registry at boot.
func New() *Module {
	return &Module{hub: hub.NewHub(), logger: slog.Default()}
}

func (m *Module) Name() string { return "livereload" }

func (m *Module) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	sub, ok := registry.Get(reg, registry.SubscriberKey)
	if !ok {
		return errors.New("livereload: no subscriber registered")
	}
	m.logger = registry.Logger(reg).With("module", m.Name())

	go m.hub.Run(ctx)

	err := pubsub.Subscribe(ctx, sub, events.ContentReload, func(ctx context.Context, e events.ContentReloaded) error {
		m.logger.Info("Notifying pages of content reload", "path", e.Path, "clients", m.hub.Len())
		m.hub.Broadcast(ctx, Message)
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribe live reload: %w", err)
	}

	router.GET(Path, m.ServeWS)
	return nil
}

// ServeWS upgrades the request and forwards hub broadcasts until either side
// goes away.
func (m *Module) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		m.logger.Error("Failed to upgrade WebSocket connection", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to upgrade to WebSocket")
	}
	defer conn.CloseNow()

	sub := hub.NewSubscriber(4)
	if !m.hub.Register(sub) {
		return conn.Close(websocket.StatusGoingAway, "shutting down")
	}
	defer m.hub.Unregister(sub)

	// Clients never send data; CloseRead handles control frames and cancels
	// ctx once the peer disconnects.
	ctx := conn.CloseRead(c.Request().Context())
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-sub.Send:
			if !ok {
				return conn.Close(websocket.StatusGoingAway, "shutting down")
			}
			if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
				m.logger.Debug("Live reload write failed", "error", err)
				return nil
			}
		}
	}
}
