package ipc

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/thewh1teagle/tauri/errors"
)

// Handler receives a single channel payload.
type Handler func(payload json.RawMessage)

// Invoker requests execution of named commands on the host. Implemented by
// Bridge; facades accept the interface so tests can substitute a bridge over
// a Loopback transport.
type Invoker interface {
	// Invoke executes a registered host command and returns its raw result.
	// Command names follow the convention "plugin:<namespace>|<action>", or a
	// bare name for core commands.
	Invoke(ctx context.Context, cmd string, args any, opts ...InvokeOption) (json.RawMessage, error)

	// NewChannel allocates an ordered delivery channel for host pushes.
	NewChannel(h Handler) *Channel
}

// InvokeOptions carries optional transport metadata for a single invoke.
type InvokeOptions struct {
	Headers map[string]string
}

// InvokeOption configures a single invoke.
type InvokeOption func(*InvokeOptions)

// WithHeader attaches one header to the invoke request.
func WithHeader(key, value string) InvokeOption {
	return func(o *InvokeOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[key] = value
	}
}

// WithHeaders attaches a header map to the invoke request.
func WithHeaders(h map[string]string) InvokeOption {
	return func(o *InvokeOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string, len(h))
		}
		for k, v := range h {
			o.Headers[k] = v
		}
	}
}

// RawBytes is a fixed-size binary buffer passed to the host as a literal
// sequence of byte values rather than a base64 string.
type RawBytes []byte

// MarshalJSON encodes the buffer as a JSON array of numbers.
func (b RawBytes) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, len(b)*4+2)
	out = append(out, '[')
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	return append(out, ']'), nil
}

// InvokeInto invokes cmd and unmarshals the result into out. A nil out
// discards the result.
func InvokeInto(ctx context.Context, inv Invoker, cmd string, args any, out any, opts ...InvokeOption) error {
	raw, err := inv.Invoke(ctx, cmd, args, opts...)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Decode(cmd, err)
	}
	return nil
}
