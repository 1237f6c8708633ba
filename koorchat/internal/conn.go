package internal

import (
	"context"
	"time"

	"github.com/coder/websocket"
)

// Conn wraps websocket.Conn with a read timeout. The push channel is
// receive-only: the server initiates every event.
type Conn struct {
	ws          *websocket.Conn
	readTimeout time.Duration
}

func NewConn(ws *websocket.Conn, readTimeout time.Duration) *Conn {
	return &Conn{ws: ws, readTimeout: readTimeout}
}

// Read returns the next raw payload from the socket.
func (c *Conn) Read(ctx context.Context) ([]byte, error) {
	if c.readTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.readTimeout)
		defer cancel()
	}
	_, data, err := c.ws.Read(ctx)
	return data, err
}

func (c *Conn) Close(code websocket.StatusCode, reason string) error {
	return c.ws.Close(code, reason)
}
