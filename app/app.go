// Package app exposes application-level metadata and operations of the host
// process.
package app

import (
	"context"

	"github.com/thewh1teagle/tauri"
	"github.com/thewh1teagle/tauri/image"
	"github.com/thewh1teagle/tauri/ipc"
)

// Name returns the application name from the host's configuration.
func Name(ctx context.Context, inv ipc.Invoker) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:app|name", nil, &out)
	return out, err
}

// Version returns the application version.
func Version(ctx context.Context, inv ipc.Invoker) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:app|version", nil, &out)
	return out, err
}

// TauriVersion returns the host runtime's own version.
func TauriVersion(ctx context.Context, inv ipc.Invoker) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:app|tauri_version", nil, &out)
	return out, err
}

// Identifier returns the application identifier, e.g. "com.example.app".
func Identifier(ctx context.Context, inv ipc.Invoker) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:app|identifier", nil, &out)
	return out, err
}

// Show makes the application visible on platforms that hide it as a whole
// (macOS).
func Show(ctx context.Context, inv ipc.Invoker) error {
	return ipc.InvokeInto(ctx, inv, "plugin:app|app_show", nil, nil)
}

// Hide hides the application as a whole.
func Hide(ctx context.Context, inv ipc.Invoker) error {
	return ipc.InvokeInto(ctx, inv, "plugin:app|app_hide", nil, nil)
}

// SetTheme overrides the app-wide theme. A nil theme returns to following the
// system.
func SetTheme(ctx context.Context, inv ipc.Invoker, theme *tauri.Theme) error {
	return ipc.InvokeInto(ctx, inv, "plugin:app|set_app_theme", map[string]any{
		"theme": theme,
	}, nil)
}

// DefaultWindowIcon returns the configured default window icon, or nil if
// the host has none.
func DefaultWindowIcon(ctx context.Context, inv ipc.Invoker) (*image.Image, error) {
	var rid *uint32
	err := ipc.InvokeInto(ctx, inv, "plugin:app|default_window_icon", nil, &rid)
	if err != nil || rid == nil {
		return nil, err
	}
	return image.FromRid(inv, *rid), nil
}
