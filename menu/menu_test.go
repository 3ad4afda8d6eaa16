package menu

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/thewh1teagle/tauri/errors"
	"github.com/thewh1teagle/tauri/ipc"
)

func newHost(t *testing.T) (*ipc.Loopback, *ipc.Bridge) {
	t.Helper()
	lb := ipc.NewLoopback()
	b := ipc.New(lb)
	t.Cleanup(func() { _ = b.Close() })
	return lb, b
}

// menuHost answers plugin:menu|new with sequential rids and echoes the
// requested id, or a generated one.
func menuHost(lb *ipc.Loopback) {
	next := uint32(100)
	lb.Handle("plugin:menu|new", func(payload json.RawMessage) (any, error) {
		var args struct {
			Options struct {
				ID string `json:"id"`
			} `json:"options"`
		}
		if err := json.Unmarshal(payload, &args); err != nil {
			return nil, err
		}
		rid := next
		next++
		id := args.Options.ID
		if id == "" {
			id = fmt.Sprintf("gen-%d", rid)
		}
		return []any{rid, id}, nil
	})
}

func TestNewWithItems_AppendWireShape(t *testing.T) {
	lb, b := newHost(t)
	menuHost(lb)
	var appendPayload json.RawMessage
	lb.Handle("plugin:menu|append", func(payload json.RawMessage) (any, error) {
		appendPayload = payload
		return nil, nil
	})

	ctx := context.Background()
	item, err := NewItem(ctx, b, MenuItemOptions{ID: "open", Text: "Open"})
	if err != nil {
		t.Fatalf("new item: %v", err)
	}
	if item.ID() != "open" || item.Kind() != KindItem {
		t.Fatalf("item = %q/%q", item.ID(), item.Kind())
	}

	m, err := NewWithItems(ctx, b, MenuOptions{ID: "main"}, item)
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	if m.Kind() != KindMenu {
		t.Fatalf("menu kind = %q", m.Kind())
	}

	var args struct {
		Rid   uint32   `json:"rid"`
		Kind  ItemKind `json:"kind"`
		Items [][2]any `json:"items"`
	}
	if err := json.Unmarshal(appendPayload, &args); err != nil {
		t.Fatalf("unmarshal append payload: %v", err)
	}
	if args.Rid != m.Rid() || args.Kind != KindMenu {
		t.Fatalf("append target = %d/%q", args.Rid, args.Kind)
	}
	if len(args.Items) != 1 {
		t.Fatalf("append carried %d items", len(args.Items))
	}
	if rid, ok := args.Items[0][0].(float64); !ok || uint32(rid) != item.Rid() {
		t.Fatalf("item ref rid = %v", args.Items[0][0])
	}
	if kind, ok := args.Items[0][1].(string); !ok || kind != string(KindItem) {
		t.Fatalf("item ref kind = %v", args.Items[0][1])
	}
}

func TestNewItem_ActionChannel(t *testing.T) {
	lb, b := newHost(t)
	var channelID uint32
	lb.Handle("plugin:menu|new", func(payload json.RawMessage) (any, error) {
		var args struct {
			Handler string `json:"handler"`
		}
		if err := json.Unmarshal(payload, &args); err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(args.Handler, ipc.ChannelPrefix+"%d", &channelID); err != nil {
			return nil, fmt.Errorf("handler %q is not a channel sentinel", args.Handler)
		}
		return []any{uint32(7), "open"}, nil
	})

	clicked := make(chan string, 1)
	_, err := NewItem(context.Background(), b, MenuItemOptions{
		ID:     "open",
		Text:   "Open",
		Action: func(id string) { clicked <- id },
	})
	if err != nil {
		t.Fatalf("new item: %v", err)
	}

	if err := lb.Push(channelID, 0, "open"); err != nil {
		t.Fatalf("push: %v", err)
	}
	select {
	case id := <-clicked:
		if id != "open" {
			t.Fatalf("clicked id = %q", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("action never fired")
	}
}

func TestCheckItem_Checked(t *testing.T) {
	lb, b := newHost(t)
	menuHost(lb)
	var setPayload json.RawMessage
	lb.Handle("plugin:menu|set_checked", func(payload json.RawMessage) (any, error) {
		setPayload = payload
		return nil, nil
	})
	lb.Handle("plugin:menu|is_checked", func(json.RawMessage) (any, error) {
		return true, nil
	})

	ctx := context.Background()
	item, err := NewCheckItem(ctx, b, CheckMenuItemOptions{Text: "Mute", Checked: true})
	if err != nil {
		t.Fatalf("new check item: %v", err)
	}

	if err := item.SetChecked(ctx, false); err != nil {
		t.Fatalf("set checked: %v", err)
	}
	var args struct {
		Rid     uint32 `json:"rid"`
		Checked bool   `json:"checked"`
	}
	if err := json.Unmarshal(setPayload, &args); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if args.Rid != item.Rid() || args.Checked {
		t.Fatalf("payload = %s", setPayload)
	}

	checked, err := item.IsChecked(ctx)
	if err != nil {
		t.Fatalf("is checked: %v", err)
	}
	if !checked {
		t.Fatal("is checked = false")
	}
}

func TestItems_Reconstruction(t *testing.T) {
	lb, b := newHost(t)
	menuHost(lb)
	lb.Handle("plugin:menu|items", func(json.RawMessage) (any, error) {
		return []any{
			[]any{uint32(5), "open", "MenuItem"},
			[]any{uint32(6), "view", "Submenu"},
			[]any{uint32(7), "sep", "Predefined"},
		}, nil
	})

	ctx := context.Background()
	m, err := New(ctx, b, MenuOptions{})
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	items, err := m.Items(ctx)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	if _, ok := items[0].(*MenuItem); !ok || items[0].Rid() != 5 {
		t.Fatalf("item 0 = %#v", items[0])
	}
	if _, ok := items[1].(*Submenu); !ok || items[1].ID() != "view" {
		t.Fatalf("item 1 = %#v", items[1])
	}
	if _, ok := items[2].(*PredefinedMenuItem); !ok {
		t.Fatalf("item 2 = %#v", items[2])
	}
}

func TestPopup_RejectsUnknownPositionLocally(t *testing.T) {
	lb, b := newHost(t)
	menuHost(lb)

	ctx := context.Background()
	m, err := New(ctx, b, MenuOptions{})
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	calls := len(lb.Calls())

	err = m.Popup(ctx, "main", "10,20")
	if err == nil {
		t.Fatal("popup accepted a string position")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindInvalidVariant {
		t.Fatalf("error = %v, want invalid variant", err)
	}
	if n := len(lb.Calls()); n != calls {
		t.Fatalf("host saw %d extra calls", n-calls)
	}
}

func TestSetAsWindowMenu(t *testing.T) {
	lb, b := newHost(t)
	menuHost(lb)
	var got json.RawMessage
	lb.Handle("plugin:menu|set_as_window_menu", func(payload json.RawMessage) (any, error) {
		got = payload
		return nil, nil
	})

	ctx := context.Background()
	m, err := New(ctx, b, MenuOptions{})
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	if err := m.SetAsWindowMenu(ctx, "main"); err != nil {
		t.Fatalf("set as window menu: %v", err)
	}
	var args struct {
		Rid    uint32 `json:"rid"`
		Window string `json:"window"`
	}
	if err := json.Unmarshal(got, &args); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if args.Rid != m.Rid() || args.Window != "main" {
		t.Fatalf("payload = %s", got)
	}
}
