package ipc

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket is a Transport over a websocket connection to the host's bridge
// endpoint.
type WebSocket struct {
	conn *websocket.Conn

	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

type dialConfig struct {
	handshakeTimeout time.Duration
	header           http.Header
}

// DialOption configures Dial.
type DialOption func(*dialConfig)

// WithHandshakeTimeout bounds the websocket handshake. Defaults to 10s.
func WithHandshakeTimeout(d time.Duration) DialOption {
	return func(c *dialConfig) { c.handshakeTimeout = d }
}

// WithRequestHeader adds a header to the handshake request (e.g. an auth
// token expected by the host).
func WithRequestHeader(key, value string) DialOption {
	return func(c *dialConfig) {
		if c.header == nil {
			c.header = make(http.Header)
		}
		c.header.Set(key, value)
	}
}

// Dial connects to a host bridge endpoint, e.g. "ws://127.0.0.1:9223/bridge".
func Dial(ctx context.Context, url string, opts ...DialOption) (*WebSocket, error) {
	cfg := dialConfig{handshakeTimeout: 10 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}

	dialer := websocket.Dialer{HandshakeTimeout: cfg.handshakeTimeout}
	conn, resp, err := dialer.DialContext(ctx, url, cfg.header)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return &WebSocket{conn: conn}, nil
}

// Send writes one frame. Safe for concurrent use.
func (w *WebSocket) Send(f *Frame) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	return w.conn.WriteJSON(f)
}

// Recv reads the next frame. Called from the bridge's receive loop only.
func (w *WebSocket) Recv() (*Frame, error) {
	f := new(Frame)
	if err := w.conn.ReadJSON(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Close sends a close frame best-effort and tears down the connection.
func (w *WebSocket) Close() error {
	w.closeOnce.Do(func() {
		w.writeMu.Lock()
		_ = w.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		w.writeMu.Unlock()
		w.closeErr = w.conn.Close()
	})
	return w.closeErr
}
