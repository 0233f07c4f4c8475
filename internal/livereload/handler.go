package livereload

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/hub"
	"github.com/nfrund/zbd-node-docs/internal/middleware"
	"github.com/nfrund/zbd-node-docs/internal/pubsub"
)

// Notice is the message sent to browsers when the page content changed.
type Notice struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

// Handler upgrades browser connections and registers them with the reload hub.
type Handler struct {
	hub *hub.Hub
}

// NewHandler creates a new live reload handler.
func NewHandler(h *hub.Hub) *Handler {
	return &Handler{hub: h}
}

// ServeWS handles WebSocket connection requests from the live reload script.
func (h *Handler) ServeWS(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Development only; the route is not mounted in production.
	})
	if err != nil {
		logger.Error("Failed to upgrade live reload WebSocket", "error", err)
		return err
	}

	client := &client{conn: conn, hub: h.hub, subscriber: hub.NewSubscriber(4)}
	if !h.hub.Join(client.subscriber) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return nil
	}

	go client.writePump()
	go client.readPump()

	return nil
}

// Forward relays catalog reload events from the bus to the hub until ctx is
// cancelled.
func Forward(ctx context.Context, sub pubsub.Subscriber, h *hub.Hub) error {
	return pubsub.Subscribe(ctx, sub, catalog.Reloaded, func(ctx context.Context, ev catalog.ReloadedEvent) error {
		payload, err := json.Marshal(Notice{Type: "reload", Version: ev.Version})
		if err != nil {
			return err
		}
		select {
		case h.Broadcast <- payload:
			slog.Debug("Sent live reload notice", "version", ev.Version)
		case <-ctx.Done():
		}
		return nil
	})
}
