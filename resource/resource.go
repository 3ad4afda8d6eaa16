// Package resource provides handles to host-owned state.
//
// A handle is a process-wide unique integer id assigned by the host when it
// creates the underlying state (a menu, a tray icon, an image). The handle
// owns the right to request release exactly once; after Close the id must not
// be used again, which the host enforces. No local state tracks whether
// release already happened.
package resource

import (
	"context"
	"strconv"

	"github.com/thewh1teagle/tauri/ipc"
)

// Resource references host-owned state by its numeric id.
type Resource struct {
	inv ipc.Invoker
	rid uint32
}

// New wraps a host-assigned resource id.
func New(inv ipc.Invoker, rid uint32) Resource {
	return Resource{inv: inv, rid: rid}
}

// Rid returns the raw resource id.
func (r Resource) Rid() uint32 {
	return r.rid
}

// Invoker returns the invoker the resource was created on.
func (r Resource) Invoker() ipc.Invoker {
	return r.inv
}

// Close releases the host-side state. Call it once; a second call fails once
// the host has freed the id.
func (r Resource) Close(ctx context.Context) error {
	return ipc.InvokeInto(ctx, r.inv, "plugin:resources|close", map[string]any{
		"rid": r.rid,
	}, nil)
}

// MarshalJSON encodes the handle as its raw numeric id, the encoding the
// host recognizes in command arguments.
func (r Resource) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(r.rid), 10)), nil
}
