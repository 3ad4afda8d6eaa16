package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/thewh1teagle/tauri"
	"github.com/thewh1teagle/tauri/ipc"
)

func newAppHost(t *testing.T) (*ipc.Loopback, *ipc.Bridge) {
	t.Helper()
	host := ipc.NewLoopback()
	bridge := ipc.New(host)
	t.Cleanup(func() { bridge.Close() })
	return host, bridge
}

func TestMetadata(t *testing.T) {
	host, bridge := newAppHost(t)
	host.Handle("plugin:app|name", func(json.RawMessage) (any, error) { return "demo", nil })
	host.Handle("plugin:app|version", func(json.RawMessage) (any, error) { return "0.3.1", nil })
	host.Handle("plugin:app|tauri_version", func(json.RawMessage) (any, error) { return "2.9.0", nil })

	ctx := context.Background()
	if name, err := Name(ctx, bridge); err != nil || name != "demo" {
		t.Errorf("Name = %q, %v", name, err)
	}
	if v, err := Version(ctx, bridge); err != nil || v != "0.3.1" {
		t.Errorf("Version = %q, %v", v, err)
	}
	if v, err := TauriVersion(ctx, bridge); err != nil || v != "2.9.0" {
		t.Errorf("TauriVersion = %q, %v", v, err)
	}
}

func TestSetTheme(t *testing.T) {
	host, bridge := newAppHost(t)

	var seen json.RawMessage
	host.Handle("plugin:app|set_app_theme", func(payload json.RawMessage) (any, error) {
		seen = payload
		return nil, nil
	})

	if err := SetTheme(context.Background(), bridge, tauri.Ptr(tauri.ThemeDark)); err != nil {
		t.Fatal(err)
	}
	if string(seen) != `{"theme":"dark"}` {
		t.Errorf("payload = %s", seen)
	}

	if err := SetTheme(context.Background(), bridge, nil); err != nil {
		t.Fatal(err)
	}
	if string(seen) != `{"theme":null}` {
		t.Errorf("payload = %s, want explicit null for system theme", seen)
	}
}

func TestDefaultWindowIcon(t *testing.T) {
	host, bridge := newAppHost(t)

	host.Handle("plugin:app|default_window_icon", func(json.RawMessage) (any, error) {
		return 11, nil
	})
	icon, err := DefaultWindowIcon(context.Background(), bridge)
	if err != nil {
		t.Fatal(err)
	}
	if icon == nil || icon.Rid() != 11 {
		t.Errorf("icon = %v, want rid 11", icon)
	}

	host.Handle("plugin:app|default_window_icon", func(json.RawMessage) (any, error) {
		return nil, nil
	})
	icon, err = DefaultWindowIcon(context.Background(), bridge)
	if err != nil {
		t.Fatal(err)
	}
	if icon != nil {
		t.Errorf("icon = %v, want nil when host has none", icon)
	}
}
