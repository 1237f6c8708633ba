package koorchat

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/coder/websocket"

	"github.com/digimonkt/koor-chat-go/koorchat/internal"
)

// Client consumes the conversation-list push channel. It owns the websocket
// connection and feeds every inbound frame through the dispatcher; it never
// mutates list state itself.
type Client struct {
	cfg        Config
	logger     Logger
	conn       *internal.Conn
	dispatcher Dispatcher

	mu     sync.Mutex
	state  ConnectionState
	cancel context.CancelFunc
}

// NewClient constructs a client with the provided config.
// Use DefaultConfig() as a starting point and modify as needed.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		logger: noopLogger{},
		state:  StateDisconnected,
	}
}

// SetLogger overrides the logger (optional).
func (c *Client) SetLogger(l Logger) {
	if l == nil {
		return
	}
	c.logger = l
}

// OnConversation registers a callback for new-conversation pushes.
func (c *Client) OnConversation(fn func(ConversationEvent)) { c.dispatcher.SetOnConversation(fn) }

// OnPresence registers a callback for online/offline pushes.
func (c *Client) OnPresence(fn func(PresenceEvent)) { c.dispatcher.SetOnPresence(fn) }

// OnMessage registers a callback for message pushes.
func (c *Client) OnMessage(fn func(MessageEvent)) { c.dispatcher.SetOnMessage(fn) }

// OnError registers a callback for decode and connection errors.
func (c *Client) OnError(fn func(error)) { c.dispatcher.SetOnError(fn) }

// State reports the current connection state.
func (c *Client) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect dials the push channel and starts the read loop.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateConnected || c.state == StateConnecting {
		c.mu.Unlock()
		return NewError(ErrorConnection, "already connected")
	}
	c.state = StateConnecting
	c.mu.Unlock()

	if c.cfg.URL == "" {
		c.setState(StateError)
		return NewError(ErrorInvalidConfig, "empty URL")
	}
	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		c.setState(StateError)
		return WrapError(ErrorInvalidConfig, "invalid URL", err)
	}

	dialCtx := ctx
	if c.cfg.HandshakeTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, c.cfg.HandshakeTimeout)
		defer cancel()
	}

	var opts *websocket.DialOptions
	if c.cfg.Token != "" {
		h := http.Header{}
		h.Set("Authorization", "Bearer "+c.cfg.Token)
		opts = &websocket.DialOptions{HTTPHeader: h}
	}

	ws, _, err := websocket.Dial(dialCtx, u.String(), opts)
	if err != nil {
		c.setState(StateError)
		return WrapError(ErrorConnection, "dial failed", err)
	}

	c.conn = internal.NewConn(ws, c.cfg.ReadTimeout)

	runCtx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.cancel = cancel
	c.state = StateConnected
	c.mu.Unlock()

	go c.readLoop(runCtx)
	return nil
}

// Close shuts down the client and closes the websocket.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.state = StateClosed
	c.mu.Unlock()
	if c.conn != nil {
		return c.conn.Close(websocket.StatusNormalClosure, "client close")
	}
	return nil
}

func (c *Client) setState(s ConnectionState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Client) readLoop(ctx context.Context) {
	for {
		data, err := c.conn.Read(ctx)
		if err != nil {
			if isExpectedDisconnect(ctx, err) {
				c.setState(StateDisconnected)
				return
			}
			c.dispatcher.fireError(WrapError(ErrorDisconnected, "push channel read failed", err))
			c.logger.Warn("read loop exit", map[string]any{"error": err.Error()})
			c.setState(StateError)
			return
		}
		c.dispatcher.DispatchRaw(data)
	}
}

func isExpectedDisconnect(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if ctx != nil && ctx.Err() != nil {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return true
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	default:
		return false
	}
}
