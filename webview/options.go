package webview

// createOptions is the wire shape of webview creation arguments. Only set
// fields are sent; the host fills in defaults for the rest.
type createOptions struct {
	windowOptions

	Label            string   `json:"label"`
	URL              string   `json:"url,omitempty"`
	X                *float64 `json:"x,omitempty"`
	Y                *float64 `json:"y,omitempty"`
	Width            *float64 `json:"width,omitempty"`
	Height           *float64 `json:"height,omitempty"`
	Transparent      bool     `json:"transparent,omitempty"`
	Focus            *bool    `json:"focus,omitempty"`
	AcceptFirstMouse bool     `json:"acceptFirstMouse,omitempty"`
	UserAgent        string   `json:"userAgent,omitempty"`
	Incognito        bool     `json:"incognito,omitempty"`
	Proxy            string   `json:"proxyUrl,omitempty"`
	ZoomHotkeys      bool     `json:"zoomHotkeysEnabled,omitempty"`
}

// Option customizes webview creation.
type Option func(*createOptions)

// WithURL sets the page the webview loads on creation.
func WithURL(url string) Option {
	return func(o *createOptions) { o.URL = url }
}

// WithPosition places the webview at x, y within its window.
func WithPosition(x, y float64) Option {
	return func(o *createOptions) {
		o.X = &x
		o.Y = &y
	}
}

// WithSize sets the webview's initial size.
func WithSize(width, height float64) Option {
	return func(o *createOptions) {
		o.Width = &width
		o.Height = &height
	}
}

// WithTransparent enables a transparent background.
func WithTransparent() Option {
	return func(o *createOptions) { o.Transparent = true }
}

// WithFocus controls whether the webview grabs focus on creation.
func WithFocus(focus bool) Option {
	return func(o *createOptions) { o.Focus = &focus }
}

// WithAcceptFirstMouse lets the first click both focus and interact.
func WithAcceptFirstMouse() Option {
	return func(o *createOptions) { o.AcceptFirstMouse = true }
}

// WithUserAgent overrides the user agent string.
func WithUserAgent(ua string) Option {
	return func(o *createOptions) { o.UserAgent = ua }
}

// WithIncognito runs the webview without persistent storage.
func WithIncognito() Option {
	return func(o *createOptions) { o.Incognito = true }
}

// WithProxy routes webview traffic through the given proxy URL.
func WithProxy(url string) Option {
	return func(o *createOptions) { o.Proxy = url }
}

// WithZoomHotkeys enables ctrl/cmd zoom shortcuts.
func WithZoomHotkeys() Option {
	return func(o *createOptions) { o.ZoomHotkeys = true }
}
