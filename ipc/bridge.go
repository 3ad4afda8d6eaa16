package ipc

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thewh1teagle/tauri/errors"
)

// Bridge is a connection to a host runtime over a Transport. It implements
// Invoker and routes channel pushes to their registered channels.
type Bridge struct {
	transport Transport
	log       *zap.Logger
	channels  *channelRegistry

	mu      sync.Mutex
	pending map[string]chan *Frame
	closed  bool

	done chan struct{}
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the bridge's logger. Defaults to the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.log = l
		}
	}
}

// New wraps a transport and starts the receive loop. The caller owns the
// transport's lifetime through Bridge.Close.
func New(t Transport, opts ...Option) *Bridge {
	b := &Bridge{
		transport: t,
		log:       Logger(),
		channels:  newChannelRegistry(),
		pending:   make(map[string]chan *Frame),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	go b.readLoop()
	return b
}

// Invoke executes a host command. A single attempt: any failure, local or
// host-signaled, surfaces directly. Cancelling ctx abandons the local wait
// but cannot abort work already running on the host.
func (b *Bridge) Invoke(ctx context.Context, cmd string, args any, opts ...InvokeOption) (json.RawMessage, error) {
	var options InvokeOptions
	for _, opt := range opts {
		opt(&options)
	}

	payload := json.RawMessage("{}")
	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			return nil, errors.New(errors.PhaseInvoke, errors.KindInvalidInput).
				Cmd(cmd).
				Detail("marshal arguments").
				Cause(err).
				Build()
		}
		payload = data
	}

	id := uuid.NewString()
	ch := make(chan *Frame, 1)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, errors.Closed("invoke")
	}
	b.pending[id] = ch
	b.mu.Unlock()

	err := b.transport.Send(&Frame{
		Type:    frameInvoke,
		ID:      id,
		Cmd:     cmd,
		Payload: payload,
		Headers: options.Headers,
	})
	if err != nil {
		b.forget(id)
		return nil, errors.Transport("send invoke", err)
	}

	select {
	case <-ctx.Done():
		b.forget(id)
		return nil, ctx.Err()
	case resp, ok := <-ch:
		if !ok {
			return nil, errors.Closed("invoke")
		}
		if !resp.OK {
			return nil, errors.Host(cmd, resp.Error)
		}
		return resp.Value, nil
	}
}

// NewChannel allocates a channel registered for delivery on this bridge.
// A nil handler drops messages until OnMessage installs one.
func (b *Bridge) NewChannel(h Handler) *Channel {
	return b.channels.add(h)
}

// Close tears down the transport. Pending invokes fail with a closed error;
// channels receive no further pushes.
func (b *Bridge) Close() error {
	err := b.transport.Close()
	<-b.done
	return err
}

// forget drops a pending invoke without resolving it.
func (b *Bridge) forget(id string) {
	b.mu.Lock()
	delete(b.pending, id)
	b.mu.Unlock()
}

func (b *Bridge) readLoop() {
	defer close(b.done)
	for {
		f, err := b.transport.Recv()
		if err != nil {
			b.shutdown(err)
			return
		}

		switch f.Type {
		case frameResponse:
			b.mu.Lock()
			ch, ok := b.pending[f.ID]
			delete(b.pending, f.ID)
			b.mu.Unlock()
			if !ok {
				b.log.Debug("response for unknown invoke", zap.String("id", f.ID))
				continue
			}
			ch <- f

		case frameChannel:
			c, ok := b.channels.get(f.Channel)
			if !ok {
				b.log.Debug("push for unknown channel", zap.Uint32("channel", f.Channel))
				continue
			}
			c.Deliver(f.Seq, f.Payload)

		default:
			b.log.Warn("unexpected frame type", zap.String("type", f.Type))
		}
	}
}

// shutdown fails every pending invoke after the transport dies.
func (b *Bridge) shutdown(cause error) {
	b.mu.Lock()
	b.closed = true
	pending := b.pending
	b.pending = make(map[string]chan *Frame)
	b.mu.Unlock()

	if len(pending) > 0 {
		b.log.Debug("failing pending invokes on shutdown",
			zap.Int("count", len(pending)),
			zap.Error(cause))
	}
	for _, ch := range pending {
		close(ch)
	}
}
