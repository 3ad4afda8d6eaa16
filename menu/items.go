package menu

import (
	"context"

	"github.com/thewh1teagle/tauri/image"
	"github.com/thewh1teagle/tauri/ipc"
)

// MenuItem is a plain clickable item.
type MenuItem struct {
	base
}

// MenuItemOptions configures plain item creation. Action, when set, is
// invoked with the item's id every time the user clicks it.
type MenuItemOptions struct {
	ID          string `json:"id,omitempty"`
	Text        string `json:"text"`
	Enabled     *bool  `json:"enabled,omitempty"`
	Accelerator string `json:"accelerator,omitempty"`

	Action func(id string) `json:"-"`
}

// NewItem creates a plain menu item.
func NewItem(ctx context.Context, inv ipc.Invoker, opts MenuItemOptions) (*MenuItem, error) {
	b, err := newObject(ctx, inv, KindItem, opts, actionChannel(inv, opts.Action))
	if err != nil {
		return nil, err
	}
	return &MenuItem{b}, nil
}

// CheckMenuItem is an item with a toggled check mark.
type CheckMenuItem struct {
	base
}

// CheckMenuItemOptions configures check item creation.
type CheckMenuItemOptions struct {
	ID          string `json:"id,omitempty"`
	Text        string `json:"text"`
	Enabled     *bool  `json:"enabled,omitempty"`
	Accelerator string `json:"accelerator,omitempty"`
	Checked     bool   `json:"checked,omitempty"`

	Action func(id string) `json:"-"`
}

// NewCheckItem creates a check menu item.
func NewCheckItem(ctx context.Context, inv ipc.Invoker, opts CheckMenuItemOptions) (*CheckMenuItem, error) {
	b, err := newObject(ctx, inv, KindCheck, opts, actionChannel(inv, opts.Action))
	if err != nil {
		return nil, err
	}
	return &CheckMenuItem{b}, nil
}

// IsChecked reports the item's check state.
func (c *CheckMenuItem) IsChecked(ctx context.Context) (bool, error) {
	var out bool
	err := ipc.InvokeInto(ctx, c.invoker(), "plugin:menu|is_checked", map[string]any{
		"rid": c.Rid(),
	}, &out)
	return out, err
}

// SetChecked sets the item's check state.
func (c *CheckMenuItem) SetChecked(ctx context.Context, checked bool) error {
	return ipc.InvokeInto(ctx, c.invoker(), "plugin:menu|set_checked", map[string]any{
		"rid":     c.Rid(),
		"checked": checked,
	}, nil)
}

// IconMenuItem is an item carrying an icon image.
type IconMenuItem struct {
	base
}

// IconMenuItemOptions configures icon item creation.
type IconMenuItemOptions struct {
	ID          string       `json:"id,omitempty"`
	Text        string       `json:"text"`
	Enabled     *bool        `json:"enabled,omitempty"`
	Accelerator string       `json:"accelerator,omitempty"`
	Icon        *image.Image `json:"icon,omitempty"`

	Action func(id string) `json:"-"`
}

// NewIconItem creates an icon menu item.
func NewIconItem(ctx context.Context, inv ipc.Invoker, opts IconMenuItemOptions) (*IconMenuItem, error) {
	b, err := newObject(ctx, inv, KindIcon, opts, actionChannel(inv, opts.Action))
	if err != nil {
		return nil, err
	}
	return &IconMenuItem{b}, nil
}

// SetIcon replaces the item's icon; nil clears it.
func (i *IconMenuItem) SetIcon(ctx context.Context, icon *image.Image) error {
	return ipc.InvokeInto(ctx, i.invoker(), "plugin:menu|set_icon", map[string]any{
		"rid":  i.Rid(),
		"icon": icon,
	}, nil)
}

// PredefinedMenuItem is a native item with platform-defined behavior, such
// as Copy, Paste, or a separator.
type PredefinedMenuItem struct {
	base
}

// PredefinedMenuItemOptions names the native behavior and optionally
// overrides its text.
type PredefinedMenuItemOptions struct {
	Item string `json:"item"`
	Text string `json:"text,omitempty"`
}

// NewPredefinedItem creates a native menu item.
func NewPredefinedItem(ctx context.Context, inv ipc.Invoker, opts PredefinedMenuItemOptions) (*PredefinedMenuItem, error) {
	b, err := newObject(ctx, inv, KindPredefined, opts, nil)
	if err != nil {
		return nil, err
	}
	return &PredefinedMenuItem{b}, nil
}

// Separator creates a separator item.
func Separator(ctx context.Context, inv ipc.Invoker) (*PredefinedMenuItem, error) {
	return NewPredefinedItem(ctx, inv, PredefinedMenuItemOptions{Item: "Separator"})
}

// Submenu is a menu nested under another menu.
type Submenu struct {
	container
}

// SubmenuOptions configures submenu creation.
type SubmenuOptions struct {
	ID      string `json:"id,omitempty"`
	Text    string `json:"text"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// NewSubmenu creates an empty submenu.
func NewSubmenu(ctx context.Context, inv ipc.Invoker, opts SubmenuOptions) (*Submenu, error) {
	b, err := newObject(ctx, inv, KindSubmenu, opts, nil)
	if err != nil {
		return nil, err
	}
	return &Submenu{container{b}}, nil
}

// Popup shows the submenu as a context menu on the window named by label.
func (s *Submenu) Popup(ctx context.Context, windowLabel string, at any) error {
	return popup(ctx, s.base, windowLabel, at)
}
