package event

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/thewh1teagle/tauri/ipc"
)

// Synthetic lifecycle event names. These are intercepted in-process and never
// routed through the host's event fan-out.
const (
	// Created fires once when host-side creation of a facade succeeded.
	Created = "tauri://created"
	// ErrorEvent fires once when host-side creation of a facade failed.
	ErrorEvent = "tauri://error"
)

// syntheticID is the envelope id used for locally dispatched events.
const syntheticID = -1

// Event is one delivered event envelope.
type Event struct {
	// Name the event was emitted under.
	Name string `json:"event"`
	// ID of the subscription that matched, or -1 for synthetic events.
	ID int `json:"id"`
	// Payload as emitted; nil when the emitter sent none.
	Payload json.RawMessage `json:"payload"`
}

// Handler receives delivered events.
type Handler func(Event)

// Unlisten removes a subscription. For host subscriptions it issues the
// unlisten command; for local ones it returns immediately.
type Unlisten func(ctx context.Context) error

func isSynthetic(name string) bool {
	return name == Created || name == ErrorEvent
}

// Listen subscribes to name for the given target. Delivery arrives on a
// dedicated channel in emission order.
func Listen(ctx context.Context, inv ipc.Invoker, name string, target Target, h Handler) (Unlisten, error) {
	ch := inv.NewChannel(func(payload json.RawMessage) {
		var e Event
		if err := json.Unmarshal(payload, &e); err != nil {
			ipc.Logger().Warn("event payload decode failed",
				zap.String("event", name), zap.Error(err))
			return
		}
		h(e)
	})

	var id uint32
	err := ipc.InvokeInto(ctx, inv, "plugin:event|listen", map[string]any{
		"event":   name,
		"target":  target,
		"handler": ch,
	}, &id)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		return ipc.InvokeInto(ctx, inv, "plugin:event|unlisten", map[string]any{
			"event":   name,
			"eventId": id,
		}, nil)
	}, nil
}

// Once subscribes like Listen but fires the handler at most one time, then
// removes the subscription. Unlisten failures during cleanup are swallowed:
// the handler already ran and the caller has nothing left to act on.
func Once(ctx context.Context, inv ipc.Invoker, name string, target Target, h Handler) (Unlisten, error) {
	var (
		mu       sync.Mutex
		fired    bool
		unlisten Unlisten
	)

	un, err := Listen(ctx, inv, name, target, func(e Event) {
		mu.Lock()
		if fired {
			mu.Unlock()
			return
		}
		fired = true
		u := unlisten
		mu.Unlock()

		if u != nil {
			dropUnlistenError(u, name)
		}
		h(e)
	})
	if err != nil {
		return nil, err
	}

	mu.Lock()
	unlisten = un
	firedEarly := fired
	mu.Unlock()

	// The event can land between the listen round trip and the closure
	// being stored; clean up here in that case.
	if firedEarly {
		dropUnlistenError(un, name)
	}
	return un, nil
}

// Emit publishes an event to every subscriber of name.
func Emit(ctx context.Context, inv ipc.Invoker, name string, payload any) error {
	return ipc.InvokeInto(ctx, inv, "plugin:event|emit", map[string]any{
		"event":   name,
		"payload": payload,
	}, nil)
}

// EmitTo publishes an event to subscribers matching target.
func EmitTo(ctx context.Context, inv ipc.Invoker, target Target, name string, payload any) error {
	return ipc.InvokeInto(ctx, inv, "plugin:event|emit_to", map[string]any{
		"target":  target,
		"event":   name,
		"payload": payload,
	}, nil)
}

func dropUnlistenError(u Unlisten, name string) {
	if err := u(context.Background()); err != nil {
		ipc.Logger().Debug("once cleanup unlisten failed",
			zap.String("event", name), zap.Error(err))
	}
}
