// Package webview provides facades for embedded webviews and for the
// combined webview-window the host exposes when one window hosts exactly
// one webview.
package webview

import (
	"context"
	"encoding/json"

	"github.com/thewh1teagle/tauri/dpi"
	"github.com/thewh1teagle/tauri/event"
	"github.com/thewh1teagle/tauri/ipc"
	"github.com/thewh1teagle/tauri/window"
)

// Webview is a handle to one host webview, addressed by label.
type Webview struct {
	inv    ipc.Invoker
	label  string
	events *event.Scope

	ready    chan struct{}
	readyErr error
}

// New asks the host to create a webview inside parent and returns a
// not-yet-ready handle. Wait on Ready, or subscribe to the synthetic
// event.Created / event.ErrorEvent lifecycle events.
func New(inv ipc.Invoker, parent *window.Window, label string, opts ...Option) *Webview {
	o := createOptions{Label: label}
	for _, opt := range opts {
		opt(&o)
	}

	v := attach(inv, label)
	go v.create(parent.Label(), o)
	return v
}

// Attach wraps an existing host webview by label, without creating one.
func Attach(inv ipc.Invoker, label string) *Webview {
	v := attach(inv, label)
	v.readyDone(nil)
	return v
}

// All lists every open webview.
func All(ctx context.Context, inv ipc.Invoker) ([]*Webview, error) {
	var labels []string
	if err := ipc.InvokeInto(ctx, inv, "plugin:webview|get_all_webviews", nil, &labels); err != nil {
		return nil, err
	}
	out := make([]*Webview, len(labels))
	for i, label := range labels {
		out[i] = Attach(inv, label)
	}
	return out, nil
}

func attach(inv ipc.Invoker, label string) *Webview {
	return &Webview{
		inv:    inv,
		label:  label,
		events: event.NewScope(inv, event.TargetWebview(label)),
		ready:  make(chan struct{}),
	}
}

func (v *Webview) create(windowLabel string, o createOptions) {
	_, err := v.inv.Invoke(context.Background(), "plugin:webview|create_webview", map[string]any{
		"windowLabel": windowLabel,
		"label":       v.label,
		"options":     o,
	})
	if err != nil {
		v.events.EmitSynthetic(event.ErrorEvent, errPayload(err))
		v.readyDone(err)
		return
	}
	v.events.EmitSynthetic(event.Created, nil)
	v.readyDone(nil)
}

func (v *Webview) readyDone(err error) {
	v.readyErr = err
	close(v.ready)
}

// Ready blocks until host-side creation finished and reports its result.
func (v *Webview) Ready(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-v.ready:
		return v.readyErr
	}
}

// Label returns the webview's label.
func (v *Webview) Label() string {
	return v.label
}

// Listen subscribes to an event scoped to this webview.
func (v *Webview) Listen(ctx context.Context, name string, h event.Handler) (event.Unlisten, error) {
	return v.events.Listen(ctx, name, h)
}

// Once subscribes like Listen but fires at most one time.
func (v *Webview) Once(ctx context.Context, name string, h event.Handler) (event.Unlisten, error) {
	return v.events.Once(ctx, name, h)
}

// Emit publishes an event to every listener of name.
func (v *Webview) Emit(ctx context.Context, name string, payload any) error {
	return v.events.Emit(ctx, name, payload)
}

// EmitTo publishes an event to listeners matching target.
func (v *Webview) EmitTo(ctx context.Context, target event.Target, name string, payload any) error {
	return v.events.EmitTo(ctx, target, name, payload)
}

func (v *Webview) getter(ctx context.Context, cmd string, out any) error {
	return ipc.InvokeInto(ctx, v.inv, cmd, map[string]any{"label": v.label}, out)
}

func (v *Webview) setter(ctx context.Context, cmd string, value any) error {
	return ipc.InvokeInto(ctx, v.inv, cmd, map[string]any{
		"label": v.label,
		"value": value,
	}, nil)
}

// Position returns the webview's position within its window.
func (v *Webview) Position(ctx context.Context) (dpi.PhysicalPosition, error) {
	var out dpi.PhysicalPosition
	err := v.getter(ctx, "plugin:webview|webview_position", &out)
	return out, err
}

// Size returns the webview's size.
func (v *Webview) Size(ctx context.Context) (dpi.PhysicalSize, error) {
	var out dpi.PhysicalSize
	err := v.getter(ctx, "plugin:webview|webview_size", &out)
	return out, err
}

// Close closes the webview.
func (v *Webview) Close(ctx context.Context) error {
	return v.getter(ctx, "plugin:webview|webview_close", nil)
}

// SetSize resizes the webview. The value must be a dpi.LogicalSize or
// dpi.PhysicalSize; anything else fails locally without a host call.
func (v *Webview) SetSize(ctx context.Context, size any) error {
	val, err := dpi.NewSize(size)
	if err != nil {
		return err
	}
	return v.setter(ctx, "plugin:webview|set_webview_size", val)
}

// SetPosition moves the webview within its window. The value must be a
// dpi.LogicalPosition or dpi.PhysicalPosition.
func (v *Webview) SetPosition(ctx context.Context, position any) error {
	val, err := dpi.NewPosition(position)
	if err != nil {
		return err
	}
	return v.setter(ctx, "plugin:webview|set_webview_position", val)
}

// SetFocus focuses the webview.
func (v *Webview) SetFocus(ctx context.Context) error {
	return v.getter(ctx, "plugin:webview|set_webview_focus", nil)
}

// SetZoom sets the webview's zoom factor.
func (v *Webview) SetZoom(ctx context.Context, factor float64) error {
	return v.setter(ctx, "plugin:webview|set_webview_zoom", factor)
}

// Show makes the webview visible.
func (v *Webview) Show(ctx context.Context) error {
	return v.getter(ctx, "plugin:webview|webview_show", nil)
}

// Hide hides the webview.
func (v *Webview) Hide(ctx context.Context) error {
	return v.getter(ctx, "plugin:webview|webview_hide", nil)
}

// Reload reloads the current page.
func (v *Webview) Reload(ctx context.Context) error {
	return v.getter(ctx, "plugin:webview|reload", nil)
}

// ClearAllBrowsingData wipes cookies, storage and caches for the webview.
func (v *Webview) ClearAllBrowsingData(ctx context.Context) error {
	return v.getter(ctx, "plugin:webview|clear_all_browsing_data", nil)
}

func errPayload(err error) json.RawMessage {
	data, mErr := json.Marshal(err.Error())
	if mErr != nil {
		return nil
	}
	return data
}
