// Package ipc implements the invocation boundary between a Go process and a
// Tauri-style host runtime.
//
// Every host operation is a named command. The Bridge serializes a command
// name plus a structured argument payload, sends it over a Transport, and
// resolves the host's response or failure. One attempt per call: the bridge
// performs no retries, no timeouts and no backpressure; the host owns
// scheduling.
//
// # Channels
//
// When a single request/response pair is not enough (streaming events,
// progress, multi-step handshakes) the host pushes messages back through a
// Channel. A channel is an ordered delivery endpoint: each push carries a
// sequence number, and the channel dispatches to its handler strictly in
// increasing sequence order, buffering anything that arrives early.
//
//	ch := bridge.NewChannel(func(payload json.RawMessage) {
//	    fmt.Println(string(payload))
//	})
//	bridge.Invoke(ctx, "plugin:event|listen", map[string]any{
//	    "event":   "progress",
//	    "target":  target,
//	    "handler": ch,
//	})
//
// A channel serializes as the sentinel string "__CHANNEL__:<id>", which the
// host recognizes as "route further pushes here".
//
// # Special argument encodings
//
// The host recognizes three value encodings beyond plain JSON: RawBytes
// marshals as a literal array of byte values, a resource handle marshals as
// its raw numeric id, and a *Channel marshals as its sentinel string.
//
// # Transports
//
// Two transports ship with the package: WebSocket (gorilla/websocket, the
// production path) and Loopback (an in-process host simulator for tests).
package ipc
