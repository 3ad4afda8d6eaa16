// Package menu provides facades for host-native menus. Every menu object is
// a handle: a host resource id plus a kind discriminant. The host owns the
// menu tree; children are referenced, not embedded, so container operations
// exchange (rid, kind) pairs on the wire.
package menu

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thewh1teagle/tauri/dpi"
	"github.com/thewh1teagle/tauri/errors"
	"github.com/thewh1teagle/tauri/ipc"
	"github.com/thewh1teagle/tauri/resource"
)

// ItemKind discriminates menu object variants on the wire.
type ItemKind string

const (
	KindMenu       ItemKind = "Menu"
	KindSubmenu    ItemKind = "Submenu"
	KindItem       ItemKind = "MenuItem"
	KindCheck      ItemKind = "Check"
	KindIcon       ItemKind = "Icon"
	KindPredefined ItemKind = "Predefined"
)

// Item is any menu object that can live inside a menu or submenu.
type Item interface {
	Rid() uint32
	ID() string
	Kind() ItemKind
}

// base carries the (resource, id, kind) triple shared by every variant.
type base struct {
	res  resource.Resource
	id   string
	kind ItemKind
}

// Rid returns the host resource id.
func (b base) Rid() uint32 { return b.res.Rid() }

// ID returns the item's menu id.
func (b base) ID() string { return b.id }

// Kind returns the wire discriminant.
func (b base) Kind() ItemKind { return b.kind }

// Close releases the host-side menu object.
func (b base) Close(ctx context.Context) error {
	return b.res.Close(ctx)
}

func (b base) invoker() ipc.Invoker { return b.res.Invoker() }

func (b base) args(extra map[string]any) map[string]any {
	m := map[string]any{"rid": b.res.Rid(), "kind": b.kind}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

// Text returns the item's current text.
func (b base) Text(ctx context.Context) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, b.invoker(), "plugin:menu|text", b.args(nil), &out)
	return out, err
}

// SetText replaces the item's text.
func (b base) SetText(ctx context.Context, text string) error {
	return ipc.InvokeInto(ctx, b.invoker(), "plugin:menu|set_text", b.args(map[string]any{
		"text": text,
	}), nil)
}

// IsEnabled reports whether the item is enabled.
func (b base) IsEnabled(ctx context.Context) (bool, error) {
	var out bool
	err := ipc.InvokeInto(ctx, b.invoker(), "plugin:menu|is_enabled", b.args(nil), &out)
	return out, err
}

// SetEnabled enables or disables the item.
func (b base) SetEnabled(ctx context.Context, enabled bool) error {
	return ipc.InvokeInto(ctx, b.invoker(), "plugin:menu|set_enabled", b.args(map[string]any{
		"enabled": enabled,
	}), nil)
}

// SetAccelerator assigns a keyboard accelerator, or clears it when empty.
func (b base) SetAccelerator(ctx context.Context, accelerator string) error {
	var acc any
	if accelerator != "" {
		acc = accelerator
	}
	return ipc.InvokeInto(ctx, b.invoker(), "plugin:menu|set_accelerator", b.args(map[string]any{
		"accelerator": acc,
	}), nil)
}

// ref is the wire encoding of an item reference: a [rid, kind] pair.
func ref(it Item) []any {
	return []any{it.Rid(), it.Kind()}
}

// newObject creates a host menu object and decodes the [rid, id] response.
func newObject(ctx context.Context, inv ipc.Invoker, kind ItemKind, options any, handler *ipc.Channel) (base, error) {
	args := map[string]any{"kind": kind, "options": options}
	if handler != nil {
		args["handler"] = handler
	}
	var out []json.RawMessage
	if err := ipc.InvokeInto(ctx, inv, "plugin:menu|new", args, &out); err != nil {
		return base{}, err
	}
	if len(out) != 2 {
		return base{}, errors.Decode("plugin:menu|new", fmt.Errorf("want [rid, id] pair, got %d elements", len(out)))
	}
	var rid uint32
	if err := json.Unmarshal(out[0], &rid); err != nil {
		return base{}, errors.Decode("plugin:menu|new", err)
	}
	var id string
	if err := json.Unmarshal(out[1], &id); err != nil {
		return base{}, errors.Decode("plugin:menu|new", err)
	}
	return base{res: resource.New(inv, rid), id: id, kind: kind}, nil
}

// actionChannel wraps an item action callback in a delivery channel. The host
// pushes the clicked item's id.
func actionChannel(inv ipc.Invoker, action func(id string)) *ipc.Channel {
	if action == nil {
		return nil
	}
	return inv.NewChannel(func(payload json.RawMessage) {
		var id string
		if err := json.Unmarshal(payload, &id); err != nil {
			ipc.Logger().Debug("menu: dropping malformed action payload")
			return
		}
		action(id)
	})
}

// container implements the child-list operations shared by Menu and Submenu.
type container struct {
	base
}

// Append adds items to the end of the container.
func (c container) Append(ctx context.Context, items ...Item) error {
	return ipc.InvokeInto(ctx, c.invoker(), "plugin:menu|append", c.args(map[string]any{
		"items": refs(items),
	}), nil)
}

// Prepend adds items to the front of the container.
func (c container) Prepend(ctx context.Context, items ...Item) error {
	return ipc.InvokeInto(ctx, c.invoker(), "plugin:menu|prepend", c.args(map[string]any{
		"items": refs(items),
	}), nil)
}

// Insert adds items at position.
func (c container) Insert(ctx context.Context, position int, items ...Item) error {
	return ipc.InvokeInto(ctx, c.invoker(), "plugin:menu|insert", c.args(map[string]any{
		"items":    refs(items),
		"position": position,
	}), nil)
}

// Remove detaches one item from the container.
func (c container) Remove(ctx context.Context, item Item) error {
	return ipc.InvokeInto(ctx, c.invoker(), "plugin:menu|remove", c.args(map[string]any{
		"item": ref(item),
	}), nil)
}

// Items lists the container's children, reconstructed from their wire
// references.
func (c container) Items(ctx context.Context) ([]Item, error) {
	var raw [][3]json.RawMessage
	if err := ipc.InvokeInto(ctx, c.invoker(), "plugin:menu|items", c.args(nil), &raw); err != nil {
		return nil, err
	}
	out := make([]Item, 0, len(raw))
	for _, entry := range raw {
		var rid uint32
		if err := json.Unmarshal(entry[0], &rid); err != nil {
			return nil, errors.Decode("plugin:menu|items", err)
		}
		var id string
		if err := json.Unmarshal(entry[1], &id); err != nil {
			return nil, errors.Decode("plugin:menu|items", err)
		}
		var kind ItemKind
		if err := json.Unmarshal(entry[2], &kind); err != nil {
			return nil, errors.Decode("plugin:menu|items", err)
		}
		it, err := fromWire(c.invoker(), rid, id, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func refs(items []Item) [][]any {
	out := make([][]any, len(items))
	for i, it := range items {
		out[i] = ref(it)
	}
	return out
}

func fromWire(inv ipc.Invoker, rid uint32, id string, kind ItemKind) (Item, error) {
	b := base{res: resource.New(inv, rid), id: id, kind: kind}
	switch kind {
	case KindMenu:
		return &Menu{container{b}}, nil
	case KindSubmenu:
		return &Submenu{container{b}}, nil
	case KindItem:
		return &MenuItem{b}, nil
	case KindCheck:
		return &CheckMenuItem{b}, nil
	case KindIcon:
		return &IconMenuItem{b}, nil
	case KindPredefined:
		return &PredefinedMenuItem{b}, nil
	default:
		return nil, errors.Decode("plugin:menu|items", fmt.Errorf("unknown item kind %q", kind))
	}
}

// Menu is a root menu usable as an application or window menu, or as a
// context menu via Popup.
type Menu struct {
	container
}

// MenuOptions configures root menu creation.
type MenuOptions struct {
	ID string `json:"id,omitempty"`
}

// New creates an empty root menu.
func New(ctx context.Context, inv ipc.Invoker, opts MenuOptions) (*Menu, error) {
	b, err := newObject(ctx, inv, KindMenu, opts, nil)
	if err != nil {
		return nil, err
	}
	return &Menu{container{b}}, nil
}

// NewWithItems creates a root menu and appends items to it.
func NewWithItems(ctx context.Context, inv ipc.Invoker, opts MenuOptions, items ...Item) (*Menu, error) {
	m, err := New(ctx, inv, opts)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := m.Append(ctx, items...); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Default returns the platform's default application menu.
func Default(ctx context.Context, inv ipc.Invoker) (*Menu, error) {
	var out []json.RawMessage
	if err := ipc.InvokeInto(ctx, inv, "plugin:menu|create_default", nil, &out); err != nil {
		return nil, err
	}
	if len(out) != 2 {
		return nil, errors.Decode("plugin:menu|create_default", fmt.Errorf("want [rid, id] pair, got %d elements", len(out)))
	}
	var rid uint32
	if err := json.Unmarshal(out[0], &rid); err != nil {
		return nil, errors.Decode("plugin:menu|create_default", err)
	}
	var id string
	if err := json.Unmarshal(out[1], &id); err != nil {
		return nil, errors.Decode("plugin:menu|create_default", err)
	}
	return &Menu{container{base{res: resource.New(inv, rid), id: id, kind: KindMenu}}}, nil
}

// Popup shows the menu as a context menu on the window named by label. A nil
// position pops up at the cursor; otherwise the value must be a
// dpi.LogicalPosition or dpi.PhysicalPosition.
func (m *Menu) Popup(ctx context.Context, windowLabel string, at any) error {
	return popup(ctx, m.base, windowLabel, at)
}

// SetAsAppMenu installs the menu as the application menu.
func (m *Menu) SetAsAppMenu(ctx context.Context) error {
	return ipc.InvokeInto(ctx, m.invoker(), "plugin:menu|set_as_app_menu", map[string]any{
		"rid": m.Rid(),
	}, nil)
}

// SetAsWindowMenu installs the menu on the window named by label.
func (m *Menu) SetAsWindowMenu(ctx context.Context, windowLabel string) error {
	return ipc.InvokeInto(ctx, m.invoker(), "plugin:menu|set_as_window_menu", map[string]any{
		"rid":    m.Rid(),
		"window": windowLabel,
	}, nil)
}

func popup(ctx context.Context, b base, windowLabel string, at any) error {
	var pos any
	if at != nil {
		v, err := dpi.NewPosition(at)
		if err != nil {
			return err
		}
		pos = v
	}
	var win any
	if windowLabel != "" {
		win = windowLabel
	}
	return ipc.InvokeInto(ctx, b.invoker(), "plugin:menu|popup", b.args(map[string]any{
		"window": win,
		"at":     pos,
	}), nil)
}
