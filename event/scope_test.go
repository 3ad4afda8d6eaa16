package event

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/thewh1teagle/tauri/ipc"
)

func newScopeHost(t *testing.T) (*ipc.Loopback, *Scope) {
	t.Helper()
	host := ipc.NewLoopback()
	host.HandleDefault(func(json.RawMessage) (any, error) { return 1, nil })
	bridge := ipc.New(host)
	t.Cleanup(func() { bridge.Close() })
	return host, NewScope(bridge, TargetWindow("main"))
}

func TestScope_SyntheticListenIsLocal(t *testing.T) {
	host, scope := newScopeHost(t)

	var got []Event
	unlisten, err := scope.Listen(context.Background(), Created, func(e Event) {
		got = append(got, e)
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(host.Calls()); n != 0 {
		t.Fatalf("synthetic listen reached the host: %d calls", n)
	}
	if scope.LocalCount(Created) != 1 {
		t.Fatalf("local count = %d, want 1", scope.LocalCount(Created))
	}

	scope.EmitSynthetic(Created, nil)
	if len(got) != 1 {
		t.Fatalf("handler fired %d times, want 1", len(got))
	}
	if got[0].ID != -1 {
		t.Errorf("synthetic envelope id = %d, want -1", got[0].ID)
	}

	// Unregister removes exactly one entry, with no host call.
	if err := unlisten(context.Background()); err != nil {
		t.Fatal(err)
	}
	if scope.LocalCount(Created) != 0 {
		t.Errorf("local count after unlisten = %d, want 0", scope.LocalCount(Created))
	}
	if n := len(host.Calls()); n != 0 {
		t.Errorf("synthetic unlisten reached the host: %d calls", n)
	}
}

func TestScope_SyntheticUnlistenRemovesOne(t *testing.T) {
	_, scope := newScopeHost(t)

	un1, _ := scope.Listen(context.Background(), ErrorEvent, func(Event) {})
	_, _ = scope.Listen(context.Background(), ErrorEvent, func(Event) {})

	un1(context.Background())
	if scope.LocalCount(ErrorEvent) != 1 {
		t.Errorf("local count = %d, want 1", scope.LocalCount(ErrorEvent))
	}

	// Calling the same closure again removes nothing further.
	un1(context.Background())
	if scope.LocalCount(ErrorEvent) != 1 {
		t.Errorf("local count after repeat = %d, want 1", scope.LocalCount(ErrorEvent))
	}
}

func TestScope_SyntheticOnce(t *testing.T) {
	_, scope := newScopeHost(t)

	var count int
	_, err := scope.Once(context.Background(), Created, func(Event) { count++ })
	if err != nil {
		t.Fatal(err)
	}

	scope.EmitSynthetic(Created, nil)
	scope.EmitSynthetic(Created, nil)

	if count != 1 {
		t.Errorf("once handler fired %d times, want 1", count)
	}
	if scope.LocalCount(Created) != 0 {
		t.Errorf("local count = %d, want 0 after once", scope.LocalCount(Created))
	}
}

func TestScope_SyntheticEmitNoHostCall(t *testing.T) {
	host, scope := newScopeHost(t)

	if err := scope.Emit(context.Background(), ErrorEvent, "creation failed"); err != nil {
		t.Fatal(err)
	}
	if n := len(host.Calls()); n != 0 {
		t.Errorf("synthetic emit reached the host: %d calls", n)
	}
}

func TestScope_RegularEventsDelegate(t *testing.T) {
	host, scope := newScopeHost(t)

	if _, err := scope.Listen(context.Background(), "moved", func(Event) {}); err != nil {
		t.Fatal(err)
	}
	if n := host.CallsTo("plugin:event|listen"); n != 1 {
		t.Fatalf("listen calls = %d, want 1", n)
	}

	var args struct {
		Target Target `json:"target"`
	}
	calls := host.Calls()
	if err := json.Unmarshal(calls[0].Payload, &args); err != nil {
		t.Fatal(err)
	}
	if args.Target.Kind != KindWindow || args.Target.Label != "main" {
		t.Errorf("target = %+v, want Window/main", args.Target)
	}

	if err := scope.Emit(context.Background(), "moved", nil); err != nil {
		t.Fatal(err)
	}
	if n := host.CallsTo("plugin:event|emit"); n != 1 {
		t.Errorf("emit calls = %d, want 1", n)
	}
}
