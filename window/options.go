package window

import "github.com/thewh1teagle/tauri"

// createOptions is the wire shape of plugin:window|create.
type createOptions struct {
	Label          string       `json:"label"`
	Title          string       `json:"title,omitempty"`
	Width          float64      `json:"width,omitempty"`
	Height         float64      `json:"height,omitempty"`
	X              *float64     `json:"x,omitempty"`
	Y              *float64     `json:"y,omitempty"`
	MinWidth       float64      `json:"minWidth,omitempty"`
	MinHeight      float64      `json:"minHeight,omitempty"`
	MaxWidth       float64      `json:"maxWidth,omitempty"`
	MaxHeight      float64      `json:"maxHeight,omitempty"`
	Center         bool         `json:"center,omitempty"`
	Resizable      *bool        `json:"resizable,omitempty"`
	Maximized      bool         `json:"maximized,omitempty"`
	Visible        *bool        `json:"visible,omitempty"`
	Decorations    *bool        `json:"decorations,omitempty"`
	AlwaysOnTop    bool         `json:"alwaysOnTop,omitempty"`
	Fullscreen     bool         `json:"fullscreen,omitempty"`
	Focus          *bool        `json:"focus,omitempty"`
	Transparent    bool         `json:"transparent,omitempty"`
	SkipTaskbar    bool         `json:"skipTaskbar,omitempty"`
	Theme          *tauri.Theme `json:"theme,omitempty"`
	ClosePrevented bool         `json:"closePrevented,omitempty"`
}

// Option configures window creation.
type Option func(*createOptions)

// WithTitle sets the initial window title.
func WithTitle(title string) Option {
	return func(o *createOptions) { o.Title = title }
}

// WithSize sets the initial inner size in logical pixels.
func WithSize(width, height float64) Option {
	return func(o *createOptions) {
		o.Width = width
		o.Height = height
	}
}

// WithPosition sets the initial outer position in logical pixels.
func WithPosition(x, y float64) Option {
	return func(o *createOptions) {
		o.X = &x
		o.Y = &y
	}
}

// WithMinSize constrains the minimum inner size.
func WithMinSize(width, height float64) Option {
	return func(o *createOptions) {
		o.MinWidth = width
		o.MinHeight = height
	}
}

// WithMaxSize constrains the maximum inner size.
func WithMaxSize(width, height float64) Option {
	return func(o *createOptions) {
		o.MaxWidth = width
		o.MaxHeight = height
	}
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

// WithDecorations controls native window chrome.
func WithDecorations(decorations bool) Option {
	return func(o *createOptions) { o.Decorations = &decorations }
}

// WithAlwaysOnTop keeps the window above others.
func WithAlwaysOnTop() Option {
	return func(o *createOptions) { o.AlwaysOnTop = true }
}

// WithFullscreen starts the window fullscreen.
func WithFullscreen() Option {
	return func(o *createOptions) { o.Fullscreen = true }
}

// WithFocus controls whether the window takes focus on creation.
func WithFocus(focus bool) Option {
	return func(o *createOptions) { o.Focus = &focus }
}

// WithTransparent makes the window background transparent.
func WithTransparent() Option {
	return func(o *createOptions) { o.Transparent = true }
}

// WithSkipTaskbar keeps the window out of the taskbar.
func WithSkipTaskbar() Option {
	return func(o *createOptions) { o.SkipTaskbar = true }
}

// WithTheme forces an initial theme instead of following the system.
func WithTheme(theme tauri.Theme) Option {
	return func(o *createOptions) { o.Theme = &theme }
}
