package irc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/config"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

const (
	defaultServerURL = "wss://irc-ws.chat.twitch.tv:443"

	writeTimeout     = 5 * time.Second
	initialBackoff   = time.Second
	maxBackoff       = 30 * time.Second
	capabilitiesLine = "CAP REQ :twitch.tv/tags twitch.tv/commands twitch.tv/membership"
)

// MessageHandler receives every parsed channel message.
type MessageHandler func(msg *domain.ChatMessage)

// Client maintains the chat connection: it logs in, answers keep-alives,
// feeds parsed messages to the handler and reconnects with backoff. In debug
// mode outbound sends are diverted to the log instead of the channel.
type Client struct {
	serverURL string
	settings  func() config.Settings
	handler   MessageHandler

	mu        sync.Mutex
	conn      *websocket.Conn
	connected atomic.Bool
}

func NewClient(settings func() config.Settings, handler MessageHandler) *Client {
	return &Client{
		serverURL: defaultServerURL,
		settings:  settings,
		handler:   handler,
	}
}

// Run connects and keeps reading until ctx is cancelled. Each connection
// failure is retried with exponential backoff.
func (c *Client) Run(ctx context.Context) {
	backoff := initialBackoff

	for {
		if ctx.Err() != nil {
			return
		}

		// Debug mode runs without a chat connection at all.
		if c.settings().Debug {
			select {
			case <-ctx.Done():
				return
			case <-time.After(initialBackoff):
			}
			continue
		}

		err := c.connectAndRead(ctx)
		c.connected.Store(false)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			slog.Warn("Chat connection lost, reconnecting", "error", err, "backoff", backoff)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

func (c *Client) connectAndRead(ctx context.Context) error {
	settings := c.settings()
	if settings.Channel == "" {
		return fmt.Errorf("no channel configured")
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.serverURL, nil)
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	defer c.closeConn()

	login := []string{
		capabilitiesLine,
		"PASS oauth:" + settings.OAuth,
		"NICK " + settings.Channel,
		"JOIN #" + settings.Channel,
	}
	for _, line := range login {
		if err := c.writeRaw(line); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
	}

	c.connected.Store(true)
	slog.Info("Chat connected", "channel", settings.Channel)

	// Close the socket when ctx is cancelled so ReadMessage unblocks.
	stop := context.AfterFunc(ctx, c.closeConn)
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		for _, line := range strings.Split(string(data), "\r\n") {
			c.handleLine(line)
		}
	}
}

func (c *Client) handleLine(line string) {
	if line == "" {
		return
	}
	if IsKeepAlive(line) {
		if err := c.writeRaw(KeepAliveReply); err != nil {
			slog.Warn("Failed to answer keep-alive", "error", err)
		}
		return
	}
	if msg, ok := Parse(line); ok {
		c.handler(msg)
	}
}

// Send delivers a plain chat message to the channel. In debug mode the message
// goes to the diagnostic log instead.
func (c *Client) Send(text string) {
	settings := c.settings()
	if settings.Debug {
		slog.Info("Debug chat send", "message", text)
		return
	}
	if err := c.writeRaw(fmt.Sprintf("PRIVMSG #%s :%s", settings.Channel, text)); err != nil {
		slog.Warn("Failed to send chat message", "error", err)
	}
}

// Connected reports whether the chat connection is currently established.
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// Reconnect drops the current connection so the run loop redials with the
// latest settings. Called after the operator saves new credentials.
func (c *Client) Reconnect() {
	c.closeConn()
}

func (c *Client) writeRaw(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return fmt.Errorf("not connected")
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, []byte(line))
}

func (c *Client) closeConn() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}
