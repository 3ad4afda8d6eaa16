// Package tray provides the system tray icon facade. A tray icon is a host
// resource; interaction events stream back over a callback channel supplied
// at creation.
package tray

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thewh1teagle/tauri/dpi"
	"github.com/thewh1teagle/tauri/errors"
	"github.com/thewh1teagle/tauri/image"
	"github.com/thewh1teagle/tauri/ipc"
	"github.com/thewh1teagle/tauri/menu"
	"github.com/thewh1teagle/tauri/resource"
)

// EventType names one tray interaction.
type EventType string

const (
	EventClick       EventType = "Click"
	EventDoubleClick EventType = "DoubleClick"
	EventEnter       EventType = "Enter"
	EventMove        EventType = "Move"
	EventLeave       EventType = "Leave"
)

// MouseButton identifies which button produced a click event.
type MouseButton string

const (
	ButtonLeft   MouseButton = "Left"
	ButtonRight  MouseButton = "Right"
	ButtonMiddle MouseButton = "Middle"
)

// Rect is the tray icon's screen rectangle at event time.
type Rect struct {
	Position dpi.PhysicalPosition `json:"position"`
	Size     dpi.PhysicalSize     `json:"size"`
}

// Event is one tray interaction pushed by the host.
type Event struct {
	Type        EventType            `json:"type"`
	ID          string               `json:"id"`
	Position    dpi.PhysicalPosition `json:"position"`
	Rect        Rect                 `json:"rect"`
	Button      MouseButton          `json:"button,omitempty"`
	ButtonState string               `json:"buttonState,omitempty"`
}

// Options configures tray icon creation. OnEvent, when set, receives every
// interaction event in arrival order.
type Options struct {
	ID              string       `json:"id,omitempty"`
	Icon            *image.Image `json:"icon,omitempty"`
	Menu            []any        `json:"menu,omitempty"`
	Tooltip         string       `json:"tooltip,omitempty"`
	Title           string       `json:"title,omitempty"`
	Visible         *bool        `json:"visible,omitempty"`
	IconAsTemplate  bool         `json:"iconAsTemplate,omitempty"`
	MenuOnLeftClick *bool        `json:"showMenuOnLeftClick,omitempty"`
	TempDirPath     string       `json:"tempDirPath,omitempty"`

	OnEvent func(Event) `json:"-"`
}

// WithMenu attaches a menu to the options before creation.
func (o *Options) WithMenu(m *menu.Menu) {
	o.Menu = []any{m.Rid(), m.Kind()}
}

// TrayIcon is a handle to one host tray icon.
type TrayIcon struct {
	res resource.Resource
	id  string
}

// New creates a tray icon. Interaction events are delivered to opts.OnEvent
// over a callback channel, in host push order.
func New(ctx context.Context, inv ipc.Invoker, opts Options) (*TrayIcon, error) {
	args := map[string]any{"options": opts}
	if opts.OnEvent != nil {
		args["handler"] = inv.NewChannel(func(payload json.RawMessage) {
			var ev Event
			if err := json.Unmarshal(payload, &ev); err != nil {
				ipc.Logger().Debug("tray: dropping malformed event payload")
				return
			}
			opts.OnEvent(ev)
		})
	}

	var out []json.RawMessage
	if err := ipc.InvokeInto(ctx, inv, "plugin:tray|new", args, &out); err != nil {
		return nil, err
	}
	if len(out) != 2 {
		return nil, errors.Decode("plugin:tray|new", fmt.Errorf("want [rid, id] pair, got %d elements", len(out)))
	}
	var rid uint32
	if err := json.Unmarshal(out[0], &rid); err != nil {
		return nil, errors.Decode("plugin:tray|new", err)
	}
	var id string
	if err := json.Unmarshal(out[1], &id); err != nil {
		return nil, errors.Decode("plugin:tray|new", err)
	}
	return &TrayIcon{res: resource.New(inv, rid), id: id}, nil
}

// Rid returns the host resource id.
func (t *TrayIcon) Rid() uint32 { return t.res.Rid() }

// ID returns the tray icon's id.
func (t *TrayIcon) ID() string { return t.id }

// Close releases the tray icon.
func (t *TrayIcon) Close(ctx context.Context) error {
	return t.res.Close(ctx)
}

func (t *TrayIcon) set(ctx context.Context, cmd string, key string, value any) error {
	return ipc.InvokeInto(ctx, t.res.Invoker(), cmd, map[string]any{
		"rid": t.res.Rid(),
		key:   value,
	}, nil)
}

// SetIcon replaces the tray icon image; nil clears it.
func (t *TrayIcon) SetIcon(ctx context.Context, icon *image.Image) error {
	return t.set(ctx, "plugin:tray|set_icon", "icon", icon)
}

// SetMenu replaces the tray menu; nil removes it.
func (t *TrayIcon) SetMenu(ctx context.Context, m *menu.Menu) error {
	var ref any
	if m != nil {
		ref = []any{m.Rid(), m.Kind()}
	}
	return t.set(ctx, "plugin:tray|set_menu", "menu", ref)
}

// SetTooltip sets the hover tooltip; empty clears it.
func (t *TrayIcon) SetTooltip(ctx context.Context, tooltip string) error {
	var v any
	if tooltip != "" {
		v = tooltip
	}
	return t.set(ctx, "plugin:tray|set_tooltip", "tooltip", v)
}

// SetTitle sets the title shown next to the icon on platforms that support
// it; empty clears it.
func (t *TrayIcon) SetTitle(ctx context.Context, title string) error {
	var v any
	if title != "" {
		v = title
	}
	return t.set(ctx, "plugin:tray|set_title", "title", v)
}

// SetVisible shows or hides the tray icon.
func (t *TrayIcon) SetVisible(ctx context.Context, visible bool) error {
	return t.set(ctx, "plugin:tray|set_visible", "visible", visible)
}

// SetIconAsTemplate marks the icon as a macOS template image.
func (t *TrayIcon) SetIconAsTemplate(ctx context.Context, asTemplate bool) error {
	return t.set(ctx, "plugin:tray|set_icon_as_template", "asTemplate", asTemplate)
}

// SetShowMenuOnLeftClick controls whether a left click opens the menu.
func (t *TrayIcon) SetShowMenuOnLeftClick(ctx context.Context, onLeft bool) error {
	return t.set(ctx, "plugin:tray|set_show_menu_on_left_click", "onLeft", onLeft)
}

// RemoveByID removes a tray icon by its id without a handle.
func RemoveByID(ctx context.Context, inv ipc.Invoker, id string) error {
	return ipc.InvokeInto(ctx, inv, "plugin:tray|remove_by_id", map[string]any{
		"id": id,
	}, nil)
}
