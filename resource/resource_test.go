package resource

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/thewh1teagle/tauri/ipc"
)

func TestResource_CloseIssuesOneRelease(t *testing.T) {
	host := ipc.NewLoopback()

	var released []uint32
	host.Handle("plugin:resources|close", func(payload json.RawMessage) (any, error) {
		var args struct {
			Rid uint32 `json:"rid"`
		}
		if err := json.Unmarshal(payload, &args); err != nil {
			return nil, err
		}
		released = append(released, args.Rid)
		return nil, nil
	})

	bridge := ipc.New(host)
	defer bridge.Close()

	r := New(bridge, 42)
	if err := r.Close(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(released) != 1 || released[0] != 42 {
		t.Errorf("released = %v, want exactly [42]", released)
	}
	if n := len(host.Calls()); n != 1 {
		t.Errorf("host saw %d calls, want 1", n)
	}
}

func TestResource_MarshalsAsRawID(t *testing.T) {
	r := New(nil, 7)
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "7" {
		t.Errorf("marshal = %s, want 7", data)
	}

	// Embedded in an argument object the id stays numeric.
	args, err := json.Marshal(map[string]any{"icon": r})
	if err != nil {
		t.Fatal(err)
	}
	if string(args) != `{"icon":7}` {
		t.Errorf("args = %s, want {\"icon\":7}", args)
	}
}
