package path

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/thewh1teagle/tauri/ipc"
)

func TestDir_SendsDiscriminant(t *testing.T) {
	host := ipc.NewLoopback()
	host.Handle("plugin:path|resolve_directory", func(payload json.RawMessage) (any, error) {
		var args struct {
			Directory int `json:"directory"`
		}
		if err := json.Unmarshal(payload, &args); err != nil {
			return nil, err
		}
		if args.Directory != int(AppData) {
			t.Errorf("directory = %d, want %d", args.Directory, AppData)
		}
		return "/home/user/.local/share/app", nil
	})

	bridge := ipc.New(host)
	defer bridge.Close()

	dir, err := AppDataDir(context.Background(), bridge)
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/home/user/.local/share/app" {
		t.Errorf("dir = %q", dir)
	}
}

func TestBaseDirectory_Numbering(t *testing.T) {
	// Discriminants are part of the wire contract.
	if Audio != 1 {
		t.Errorf("Audio = %d, want 1", Audio)
	}
	if Temp != 12 {
		t.Errorf("Temp = %d, want 12", Temp)
	}
	if AppConfig != 13 {
		t.Errorf("AppConfig = %d, want 13", AppConfig)
	}
	if Template != 23 {
		t.Errorf("Template = %d, want 23", Template)
	}
}

func TestJoin_And_Basename(t *testing.T) {
	host := ipc.NewLoopback()
	host.Handle("plugin:path|join", func(payload json.RawMessage) (any, error) {
		var args struct {
			Paths []string `json:"paths"`
		}
		if err := json.Unmarshal(payload, &args); err != nil {
			return nil, err
		}
		out := ""
		for i, p := range args.Paths {
			if i > 0 {
				out += "/"
			}
			out += p
		}
		return out, nil
	})
	host.Handle("plugin:path|basename", func(payload json.RawMessage) (any, error) {
		var args struct {
			Path string `json:"path"`
			Ext  string `json:"ext"`
		}
		if err := json.Unmarshal(payload, &args); err != nil {
			return nil, err
		}
		if args.Ext != ".txt" {
			t.Errorf("ext = %q, want .txt", args.Ext)
		}
		return "notes", nil
	})

	bridge := ipc.New(host)
	defer bridge.Close()

	joined, err := Join(context.Background(), bridge, "a", "b", "c")
	if err != nil {
		t.Fatal(err)
	}
	if joined != "a/b/c" {
		t.Errorf("joined = %q", joined)
	}

	base, err := Basename(context.Background(), bridge, "/tmp/notes.txt", ".txt")
	if err != nil {
		t.Fatal(err)
	}
	if base != "notes" {
		t.Errorf("basename = %q", base)
	}
}
