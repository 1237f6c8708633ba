package koorchat

import "time"

// Config controls how the SDK connects and which room counts as open.
type Config struct {
	// URL is the websocket endpoint of the push channel.
	URL string

	// APIBase is the REST base URL for the history endpoint,
	// e.g. "https://chat.example.com/chat".
	APIBase string

	// Token is the bearer token for authenticated requests.
	Token string

	// CurrentRoom is the routing key of the conversation open in the
	// viewport; message pushes for it do not count as unread.
	CurrentRoom string

	HandshakeTimeout time.Duration
	ReadTimeout      time.Duration
}

// DefaultConfig returns sensible defaults. ReadTimeout stays 0: the push
// channel is legitimately silent between events.
func DefaultConfig() Config {
	return Config{
		HandshakeTimeout: 10 * time.Second,
	}
}
