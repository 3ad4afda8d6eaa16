// Package window provides the window facade: typed wrappers over the host's
// window commands, addressed by label. The host owns all window state; every
// method here shapes arguments, invokes, and reshapes the response.
package window

import (
	"context"
	"encoding/json"

	"github.com/thewh1teagle/tauri"
	"github.com/thewh1teagle/tauri/dpi"
	"github.com/thewh1teagle/tauri/event"
	"github.com/thewh1teagle/tauri/image"
	"github.com/thewh1teagle/tauri/ipc"
)

// UserAttentionType selects how RequestUserAttention nags the user.
type UserAttentionType int

const (
	// Critical bounces the dock icon / flashes the taskbar until focused.
	Critical UserAttentionType = 1
	// Informational bounces or flashes once.
	Informational UserAttentionType = 2
)

// Window is a handle to one host window, addressed by label.
type Window struct {
	inv    ipc.Invoker
	label  string
	events *event.Scope

	ready    chan struct{}
	readyErr error
}

// New asks the host to create a window and returns a not-yet-ready handle.
// Creation completes in the background: wait on Ready, or subscribe to the
// synthetic event.Created / event.ErrorEvent lifecycle events before waiting.
func New(inv ipc.Invoker, label string, opts ...Option) *Window {
	o := createOptions{Label: label}
	for _, opt := range opts {
		opt(&o)
	}

	w := attach(inv, label)
	go w.create(o)
	return w
}

// Attach wraps an existing host window by label, without creating one.
func Attach(inv ipc.Invoker, label string) *Window {
	w := attach(inv, label)
	w.readyDone(nil)
	return w
}

// Current returns the window the host reports as current (focused, or the
// main window when none is).
func Current(ctx context.Context, inv ipc.Invoker) (*Window, error) {
	var label string
	if err := ipc.InvokeInto(ctx, inv, "plugin:window|current", nil, &label); err != nil {
		return nil, err
	}
	return Attach(inv, label), nil
}

// All lists every open window.
func All(ctx context.Context, inv ipc.Invoker) ([]*Window, error) {
	var labels []string
	if err := ipc.InvokeInto(ctx, inv, "plugin:window|get_all_windows", nil, &labels); err != nil {
		return nil, err
	}
	out := make([]*Window, len(labels))
	for i, label := range labels {
		out[i] = Attach(inv, label)
	}
	return out, nil
}

func attach(inv ipc.Invoker, label string) *Window {
	return &Window{
		inv:    inv,
		label:  label,
		events: event.NewScope(inv, event.TargetWindow(label)),
		ready:  make(chan struct{}),
	}
}

func (w *Window) create(o createOptions) {
	_, err := w.inv.Invoke(context.Background(), "plugin:window|create", map[string]any{
		"options": o,
	})
	if err != nil {
		w.events.EmitSynthetic(event.ErrorEvent, errPayload(err))
		w.readyDone(err)
		return
	}
	w.events.EmitSynthetic(event.Created, nil)
	w.readyDone(nil)
}

func (w *Window) readyDone(err error) {
	w.readyErr = err
	close(w.ready)
}

// Ready blocks until host-side creation finished and reports its result.
func (w *Window) Ready(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-w.ready:
		return w.readyErr
	}
}

// Label returns the window's label.
func (w *Window) Label() string {
	return w.label
}

// Listen subscribes to an event scoped to this window. The synthetic
// lifecycle events stay in-process.
func (w *Window) Listen(ctx context.Context, name string, h event.Handler) (event.Unlisten, error) {
	return w.events.Listen(ctx, name, h)
}

// Once subscribes like Listen but fires at most one time.
func (w *Window) Once(ctx context.Context, name string, h event.Handler) (event.Unlisten, error) {
	return w.events.Once(ctx, name, h)
}

// Emit publishes an event to every listener of name.
func (w *Window) Emit(ctx context.Context, name string, payload any) error {
	return w.events.Emit(ctx, name, payload)
}

// EmitTo publishes an event to listeners matching target.
func (w *Window) EmitTo(ctx context.Context, target event.Target, name string, payload any) error {
	return w.events.EmitTo(ctx, target, name, payload)
}

func (w *Window) getter(ctx context.Context, cmd string, out any) error {
	return ipc.InvokeInto(ctx, w.inv, cmd, map[string]any{"label": w.label}, out)
}

func (w *Window) setter(ctx context.Context, cmd string, value any) error {
	return ipc.InvokeInto(ctx, w.inv, cmd, map[string]any{
		"label": w.label,
		"value": value,
	}, nil)
}

func (w *Window) action(ctx context.Context, cmd string) error {
	return w.getter(ctx, cmd, nil)
}

// ScaleFactor returns the window's DPI scale factor.
func (w *Window) ScaleFactor(ctx context.Context) (float64, error) {
	var out float64
	err := w.getter(ctx, "plugin:window|scale_factor", &out)
	return out, err
}

// InnerPosition returns the position of the window's content area.
func (w *Window) InnerPosition(ctx context.Context) (dpi.PhysicalPosition, error) {
	var out dpi.PhysicalPosition
	err := w.getter(ctx, "plugin:window|inner_position", &out)
	return out, err
}

// OuterPosition returns the position of the window including decorations.
func (w *Window) OuterPosition(ctx context.Context) (dpi.PhysicalPosition, error) {
	var out dpi.PhysicalPosition
	err := w.getter(ctx, "plugin:window|outer_position", &out)
	return out, err
}

// InnerSize returns the size of the window's content area.
func (w *Window) InnerSize(ctx context.Context) (dpi.PhysicalSize, error) {
	var out dpi.PhysicalSize
	err := w.getter(ctx, "plugin:window|inner_size", &out)
	return out, err
}

// OuterSize returns the size of the window including decorations.
func (w *Window) OuterSize(ctx context.Context) (dpi.PhysicalSize, error) {
	var out dpi.PhysicalSize
	err := w.getter(ctx, "plugin:window|outer_size", &out)
	return out, err
}

// IsFullscreen reports whether the window is fullscreen.
func (w *Window) IsFullscreen(ctx context.Context) (bool, error) {
	var out bool
	err := w.getter(ctx, "plugin:window|is_fullscreen", &out)
	return out, err
}

// IsMinimized reports whether the window is minimized.
func (w *Window) IsMinimized(ctx context.Context) (bool, error) {
	var out bool
	err := w.getter(ctx, "plugin:window|is_minimized", &out)
	return out, err
}

// IsMaximized reports whether the window is maximized.
func (w *Window) IsMaximized(ctx context.Context) (bool, error) {
	var out bool
	err := w.getter(ctx, "plugin:window|is_maximized", &out)
	return out, err
}

// IsFocused reports whether the window has focus.
func (w *Window) IsFocused(ctx context.Context) (bool, error) {
	var out bool
	err := w.getter(ctx, "plugin:window|is_focused", &out)
	return out, err
}

// IsDecorated reports whether the window has native chrome.
func (w *Window) IsDecorated(ctx context.Context) (bool, error) {
	var out bool
	err := w.getter(ctx, "plugin:window|is_decorated", &out)
	return out, err
}

// IsResizable reports whether the window can be resized.
func (w *Window) IsResizable(ctx context.Context) (bool, error) {
	var out bool
	err := w.getter(ctx, "plugin:window|is_resizable", &out)
	return out, err
}

// IsVisible reports whether the window is visible.
func (w *Window) IsVisible(ctx context.Context) (bool, error) {
	var out bool
	err := w.getter(ctx, "plugin:window|is_visible", &out)
	return out, err
}

// Title returns the window's current title.
func (w *Window) Title(ctx context.Context) (string, error) {
	var out string
	err := w.getter(ctx, "plugin:window|title", &out)
	return out, err
}

// Theme returns the window's current theme.
func (w *Window) Theme(ctx context.Context) (tauri.Theme, error) {
	var out tauri.Theme
	err := w.getter(ctx, "plugin:window|theme", &out)
	return out, err
}

// Center centers the window on its monitor.
func (w *Window) Center(ctx context.Context) error {
	return w.action(ctx, "plugin:window|center")
}

// RequestUserAttention asks the platform to draw attention to the window.
// A nil type cancels an earlier request.
func (w *Window) RequestUserAttention(ctx context.Context, t *UserAttentionType) error {
	return w.setter(ctx, "plugin:window|request_user_attention", t)
}

// SetResizable controls whether the window can be resized.
func (w *Window) SetResizable(ctx context.Context, resizable bool) error {
	return w.setter(ctx, "plugin:window|set_resizable", resizable)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(ctx context.Context, title string) error {
	return w.setter(ctx, "plugin:window|set_title", title)
}

// Maximize maximizes the window.
func (w *Window) Maximize(ctx context.Context) error {
	return w.action(ctx, "plugin:window|maximize")
}

// Unmaximize restores a maximized window.
func (w *Window) Unmaximize(ctx context.Context) error {
	return w.action(ctx, "plugin:window|unmaximize")
}

// ToggleMaximize flips the maximized state.
func (w *Window) ToggleMaximize(ctx context.Context) error {
	return w.action(ctx, "plugin:window|toggle_maximize")
}

// Minimize minimizes the window.
func (w *Window) Minimize(ctx context.Context) error {
	return w.action(ctx, "plugin:window|minimize")
}

// Unminimize restores a minimized window.
func (w *Window) Unminimize(ctx context.Context) error {
	return w.action(ctx, "plugin:window|unminimize")
}

// Show makes the window visible.
func (w *Window) Show(ctx context.Context) error {
	return w.action(ctx, "plugin:window|show")
}

// Hide hides the window.
func (w *Window) Hide(ctx context.Context) error {
	return w.action(ctx, "plugin:window|hide")
}

// Close asks the window to close, giving close-requested listeners a say.
func (w *Window) Close(ctx context.Context) error {
	return w.action(ctx, "plugin:window|close")
}

// Destroy force-closes the window, skipping close-requested listeners.
func (w *Window) Destroy(ctx context.Context) error {
	return w.action(ctx, "plugin:window|destroy")
}

// SetDecorations toggles native window chrome.
func (w *Window) SetDecorations(ctx context.Context, decorations bool) error {
	return w.setter(ctx, "plugin:window|set_decorations", decorations)
}

// SetAlwaysOnTop keeps the window above others.
func (w *Window) SetAlwaysOnTop(ctx context.Context, onTop bool) error {
	return w.setter(ctx, "plugin:window|set_always_on_top", onTop)
}

// SetSize resizes the content area. The value must be a dpi.LogicalSize or
// dpi.PhysicalSize; anything else fails locally without a host call.
func (w *Window) SetSize(ctx context.Context, size any) error {
	v, err := dpi.NewSize(size)
	if err != nil {
		return err
	}
	return w.setter(ctx, "plugin:window|set_size", v)
}

// SetMinSize constrains the minimum content size. A nil value clears the
// constraint; otherwise the same variants as SetSize apply.
func (w *Window) SetMinSize(ctx context.Context, size any) error {
	if size == nil {
		return w.setter(ctx, "plugin:window|set_min_size", nil)
	}
	v, err := dpi.NewSize(size)
	if err != nil {
		return err
	}
	return w.setter(ctx, "plugin:window|set_min_size", v)
}

// SetMaxSize constrains the maximum content size. A nil value clears the
// constraint.
func (w *Window) SetMaxSize(ctx context.Context, size any) error {
	if size == nil {
		return w.setter(ctx, "plugin:window|set_max_size", nil)
	}
	v, err := dpi.NewSize(size)
	if err != nil {
		return err
	}
	return w.setter(ctx, "plugin:window|set_max_size", v)
}

// SetPosition moves the window. The value must be a dpi.LogicalPosition or
// dpi.PhysicalPosition; anything else fails locally without a host call.
func (w *Window) SetPosition(ctx context.Context, position any) error {
	v, err := dpi.NewPosition(position)
	if err != nil {
		return err
	}
	return w.setter(ctx, "plugin:window|set_position", v)
}

// SetFullscreen toggles fullscreen.
func (w *Window) SetFullscreen(ctx context.Context, fullscreen bool) error {
	return w.setter(ctx, "plugin:window|set_fullscreen", fullscreen)
}

// SetFocus brings the window to front and focuses it.
func (w *Window) SetFocus(ctx context.Context) error {
	return w.action(ctx, "plugin:window|set_focus")
}

// SetIcon replaces the window icon.
func (w *Window) SetIcon(ctx context.Context, icon *image.Image) error {
	return w.setter(ctx, "plugin:window|set_icon", icon)
}

// SetSkipTaskbar keeps the window out of the taskbar.
func (w *Window) SetSkipTaskbar(ctx context.Context, skip bool) error {
	return w.setter(ctx, "plugin:window|set_skip_taskbar", skip)
}

// StartDragging begins an interactive window drag from the current cursor
// position.
func (w *Window) StartDragging(ctx context.Context) error {
	return w.action(ctx, "plugin:window|start_dragging")
}

// SetTheme overrides the window theme. A nil theme follows the system.
func (w *Window) SetTheme(ctx context.Context, theme *tauri.Theme) error {
	return w.setter(ctx, "plugin:window|set_theme", theme)
}

func errPayload(err error) json.RawMessage {
	data, mErr := json.Marshal(err.Error())
	if mErr != nil {
		return nil
	}
	return data
}
