package ipc

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// CommandFunc handles one host command in a Loopback transport. The returned
// value is marshaled as the response; a non-nil error becomes a host-signaled
// failure carrying the error text.
type CommandFunc func(payload json.RawMessage) (any, error)

// Call records one invoke that reached the Loopback.
type Call struct {
	Cmd     string
	Payload json.RawMessage
}

// Loopback is an in-process Transport that plays the host's role. Commands
// are answered by registered handlers, each dispatched on its own goroutine
// the way a real host handles invokes independently; channel pushes are
// injected with Push. Intended for tests and examples.
type Loopback struct {
	mu       sync.Mutex
	handlers map[string]CommandFunc
	fallback CommandFunc
	calls    []Call
	closed   bool

	out chan *Frame
}

// NewLoopback creates an idle loopback host.
func NewLoopback() *Loopback {
	return &Loopback{
		handlers: make(map[string]CommandFunc),
		out:      make(chan *Frame, 256),
	}
}

// Handle registers a handler for one command name.
func (l *Loopback) Handle(cmd string, fn CommandFunc) {
	l.mu.Lock()
	l.handlers[cmd] = fn
	l.mu.Unlock()
}

// HandleDefault registers a fallback for commands with no specific handler.
func (l *Loopback) HandleDefault(fn CommandFunc) {
	l.mu.Lock()
	l.fallback = fn
	l.mu.Unlock()
}

// Calls returns a copy of every invoke seen so far.
func (l *Loopback) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Call, len(l.calls))
	copy(out, l.calls)
	return out
}

// CallsTo returns how many invokes named cmd were seen.
func (l *Loopback) CallsTo(cmd string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.calls {
		if c.Cmd == cmd {
			n++
		}
	}
	return n
}

// Push injects one channel message, as the host would after an invoke handed
// it a channel reference.
func (l *Loopback) Push(channel uint32, seq uint64, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return l.emit(&Frame{
		Type:    frameChannel,
		Channel: channel,
		Seq:     seq,
		Payload: data,
	})
}

// Send accepts an invoke frame from the bridge and dispatches its handler.
func (l *Loopback) Send(f *Frame) error {
	if f.Type != frameInvoke {
		return fmt.Errorf("loopback: unexpected frame type %q", f.Type)
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return io.ErrClosedPipe
	}
	l.calls = append(l.calls, Call{Cmd: f.Cmd, Payload: f.Payload})
	fn, ok := l.handlers[f.Cmd]
	if !ok {
		fn = l.fallback
	}
	l.mu.Unlock()

	go l.dispatch(fn, f)
	return nil
}

func (l *Loopback) dispatch(fn CommandFunc, f *Frame) {
	resp := &Frame{Type: frameResponse, ID: f.ID}
	if fn == nil {
		msg, _ := json.Marshal(fmt.Sprintf("unknown command %q", f.Cmd))
		resp.Error = msg
		l.emit(resp)
		return
	}

	value, err := fn(f.Payload)
	if err != nil {
		msg, _ := json.Marshal(err.Error())
		resp.Error = msg
		l.emit(resp)
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		msg, _ := json.Marshal("marshal response: " + err.Error())
		resp.Error = msg
		l.emit(resp)
		return
	}
	resp.OK = true
	resp.Value = data
	l.emit(resp)
}

// Recv hands the next host-originated frame to the bridge.
func (l *Loopback) Recv() (*Frame, error) {
	f, ok := <-l.out
	if !ok {
		return nil, io.EOF
	}
	return f, nil
}

// Close stops the loopback; Recv drains and then reports EOF.
func (l *Loopback) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.closed = true
		close(l.out)
	}
	return nil
}

func (l *Loopback) emit(f *Frame) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return io.ErrClosedPipe
	}
	l.out <- f
	return nil
}
