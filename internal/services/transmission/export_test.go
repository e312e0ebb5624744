package transmission

import "strings"

// WithSessionID seeds the session token so tests can skip the handshake.
func WithSessionID(id string) Option {
	return func(c *Client) {
		c.sessionID = strings.TrimSpace(id)
	}
}
