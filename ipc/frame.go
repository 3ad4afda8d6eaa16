package ipc

import "encoding/json"

// Frame types on the wire.
const (
	frameInvoke   = "invoke"
	frameResponse = "response"
	frameChannel  = "channel"
)

// Frame is the wire envelope exchanged with the host's bridge endpoint.
// Invoke frames carry ID, Cmd, Payload and optional Headers; response frames
// echo the ID with OK plus Value or Error; channel frames carry Channel, Seq
// and Payload.
type Frame struct {
	Type    string            `json:"type"`
	ID      string            `json:"id,omitempty"`
	Cmd     string            `json:"cmd,omitempty"`
	Payload json.RawMessage   `json:"payload,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	OK      bool              `json:"ok,omitempty"`
	Value   json.RawMessage   `json:"value,omitempty"`
	Error   json.RawMessage   `json:"error,omitempty"`
	Channel uint32            `json:"channel,omitempty"`
	Seq     uint64            `json:"seq,omitempty"`
}

// Transport moves frames between the bridge and the host.
// Send must be safe for concurrent use; Recv is called from a single
// goroutine and blocks until a frame arrives or the transport fails.
type Transport interface {
	Send(f *Frame) error
	Recv() (*Frame, error)
	Close() error
}
