package webview

import (
	"context"

	"github.com/thewh1teagle/tauri"
	"github.com/thewh1teagle/tauri/event"
	"github.com/thewh1teagle/tauri/ipc"
	"github.com/thewh1teagle/tauri/window"
)

// WebviewWindow is the common case of one window hosting exactly one
// webview, created in a single host call. Window- and webview-level
// operations are reached through Window and Webview; events use the
// combined webview-window target so both sides' emissions are seen.
type WebviewWindow struct {
	inv    ipc.Invoker
	label  string
	events *event.Scope

	win  *window.Window
	view *Webview

	ready    chan struct{}
	readyErr error
}

// windowOptions extends creation with window-level settings, mirroring the
// host's merged webview-window options object.
type windowOptions struct {
	Title       string       `json:"title,omitempty"`
	Center      bool         `json:"center,omitempty"`
	Resizable   *bool        `json:"resizable,omitempty"`
	Maximized   bool         `json:"maximized,omitempty"`
	Visible     *bool        `json:"visible,omitempty"`
	Decorations *bool        `json:"decorations,omitempty"`
	AlwaysOnTop bool         `json:"alwaysOnTop,omitempty"`
	Fullscreen  bool         `json:"fullscreen,omitempty"`
	SkipTaskbar bool         `json:"skipTaskbar,omitempty"`
	Theme       *tauri.Theme `json:"theme,omitempty"`
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *createOptions) { o.Title = title }
}

// WithCenter centers the window on creation.
func WithCenter() Option {
	return func(o *createOptions) { o.Center = true }
}

// WithResizable controls whether the window can be resized.
func WithResizable(resizable bool) Option {
	return func(o *createOptions) { o.Resizable = &resizable }
}

// WithMaximized starts the window maximized.
func WithMaximized() Option {
	return func(o *createOptions) { o.Maximized = true }
}

// WithVisible controls initial visibility.
func WithVisible(visible bool) Option {
	return func(o *createOptions) { o.Visible = &visible }
}

// WithDecorations toggles native window chrome.
func WithDecorations(decorations bool) Option {
	return func(o *createOptions) { o.Decorations = &decorations }
}

// WithAlwaysOnTop keeps the window above others.
func WithAlwaysOnTop() Option {
	return func(o *createOptions) { o.AlwaysOnTop = true }
}

// WithFullscreen starts the window in fullscreen.
func WithFullscreen() Option {
	return func(o *createOptions) { o.Fullscreen = true }
}

// WithSkipTaskbar keeps the window out of the taskbar.
func WithSkipTaskbar() Option {
	return func(o *createOptions) { o.SkipTaskbar = true }
}

// WithTheme forces an initial theme instead of following the system.
func WithTheme(theme tauri.Theme) Option {
	return func(o *createOptions) { o.Theme = &theme }
}

// NewWindow asks the host to create a webview window and returns a
// not-yet-ready handle. Wait on Ready, or subscribe to the synthetic
// event.Created / event.ErrorEvent lifecycle events.
func NewWindow(inv ipc.Invoker, label string, opts ...Option) *WebviewWindow {
	o := createOptions{Label: label}
	for _, opt := range opts {
		opt(&o)
	}

	w := attachWindow(inv, label)
	go w.create(o)
	return w
}

// AttachWindow wraps an existing webview window by label, without creating
// one.
func AttachWindow(inv ipc.Invoker, label string) *WebviewWindow {
	w := attachWindow(inv, label)
	w.readyDone(nil)
	return w
}

func attachWindow(inv ipc.Invoker, label string) *WebviewWindow {
	return &WebviewWindow{
		inv:    inv,
		label:  label,
		events: event.NewScope(inv, event.TargetWebviewWindow(label)),
		win:    window.Attach(inv, label),
		view:   Attach(inv, label),
		ready:  make(chan struct{}),
	}
}

func (w *WebviewWindow) create(o createOptions) {
	_, err := w.inv.Invoke(context.Background(), "plugin:webview|create_webview_window", map[string]any{
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

func (w *WebviewWindow) readyDone(err error) {
	w.readyErr = err
	close(w.ready)
}

// Ready blocks until host-side creation finished and reports its result.
func (w *WebviewWindow) Ready(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-w.ready:
		return w.readyErr
	}
}

// Label returns the webview window's label.
func (w *WebviewWindow) Label() string {
	return w.label
}

// Window returns the window-level facade sharing this label.
func (w *WebviewWindow) Window() *window.Window {
	return w.win
}

// Webview returns the webview-level facade sharing this label.
func (w *WebviewWindow) Webview() *Webview {
	return w.view
}

// Listen subscribes to an event on the combined webview-window target.
func (w *WebviewWindow) Listen(ctx context.Context, name string, h event.Handler) (event.Unlisten, error) {
	return w.events.Listen(ctx, name, h)
}

// Once subscribes like Listen but fires at most one time.
func (w *WebviewWindow) Once(ctx context.Context, name string, h event.Handler) (event.Unlisten, error) {
	return w.events.Once(ctx, name, h)
}

// Emit publishes an event to every listener of name.
func (w *WebviewWindow) Emit(ctx context.Context, name string, payload any) error {
	return w.events.Emit(ctx, name, payload)
}

// EmitTo publishes an event to listeners matching target.
func (w *WebviewWindow) EmitTo(ctx context.Context, target event.Target, name string, payload any) error {
	return w.events.EmitTo(ctx, target, name, payload)
}
