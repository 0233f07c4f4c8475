package livereload

import (
	"context"
	"log/slog"

	"github.com/coder/websocket"
	"github.com/nfrund/zbd-node-docs/internal/hub"
)

// client is a middleman between one browser connection and the reload hub.
type client struct {
	conn       *websocket.Conn
	hub        *hub.Hub
	subscriber *hub.Subscriber
}

// readPump only watches for the connection closing; browsers never send
// anything meaningful on this channel.
func (c *client) readPump() {
	defer c.hub.Leave(c.subscriber)

	for {
		if _, _, err := c.conn.Read(context.Background()); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				slog.Debug("Live reload WebSocket closed normally")
			} else {
				slog.Debug("Live reload readPump ended", "error", err)
			}
			return
		}
	}
}

// writePump pumps notices from the hub to the browser.
func (c *client) writePump() {
	defer func() {
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()
	for message := range c.subscriber.Send {
		if err := c.conn.Write(context.Background(), websocket.MessageText, message); err != nil {
			slog.Error("Live reload writePump error", "error", err)
			return
		}
	}
}
