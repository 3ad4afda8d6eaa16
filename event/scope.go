package event

import (
	"context"
	"encoding/json"

	"github.com/thewh1teagle/tauri/ipc"
)

// Scope routes event operations for one target. Synthetic lifecycle events
// stay in the local table; everything else goes through the host's fan-out.
// Window and webview facades embed a Scope instead of sharing listener
// behavior through inheritance.
type Scope struct {
	inv    ipc.Invoker
	target Target
	local  Listeners
}

// NewScope creates a scope for the given target.
func NewScope(inv ipc.Invoker, target Target) *Scope {
	return &Scope{inv: inv, target: target}
}

// Invoker returns the scope's underlying invoker.
func (s *Scope) Invoker() ipc.Invoker {
	return s.inv
}

// Target returns the scope's target descriptor.
func (s *Scope) Target() Target {
	return s.target
}

// Listen subscribes to name on this scope's target. Synthetic lifecycle
// events register locally and return without a host call.
func (s *Scope) Listen(ctx context.Context, name string, h Handler) (Unlisten, error) {
	if isSynthetic(name) {
		un := s.local.Listen(name, h)
		return func(context.Context) error {
			un()
			return nil
		}, nil
	}
	return Listen(ctx, s.inv, name, s.target, h)
}

// Once subscribes like Listen but fires at most one time.
func (s *Scope) Once(ctx context.Context, name string, h Handler) (Unlisten, error) {
	if isSynthetic(name) {
		un := s.local.Once(name, h)
		return func(context.Context) error {
			un()
			return nil
		}, nil
	}
	return Once(ctx, s.inv, name, s.target, h)
}

// Emit publishes an event. Synthetic lifecycle events dispatch synchronously
// to local listeners only.
func (s *Scope) Emit(ctx context.Context, name string, payload any) error {
	if isSynthetic(name) {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		s.local.Emit(name, data)
		return nil
	}
	return Emit(ctx, s.inv, name, payload)
}

// EmitTo publishes an event to subscribers matching target.
func (s *Scope) EmitTo(ctx context.Context, target Target, name string, payload any) error {
	return EmitTo(ctx, s.inv, target, name, payload)
}

// EmitSynthetic dispatches a synthetic lifecycle event locally. Used by
// facade constructors to report host-side creation results.
func (s *Scope) EmitSynthetic(name string, payload json.RawMessage) {
	s.local.Emit(name, payload)
}

// LocalCount reports locally registered handlers for name.
func (s *Scope) LocalCount(name string) int {
	return s.local.Len(name)
}
