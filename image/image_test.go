package image

import (
	"context"
	"encoding/json"
	"fmt"
	stdimage "image"
	"image/color"
	"testing"

	"github.com/thewh1teagle/tauri/ipc"
)

func newImageHost(t *testing.T) (*ipc.Loopback, *ipc.Bridge) {
	t.Helper()
	host := ipc.NewLoopback()
	bridge := ipc.New(host)
	t.Cleanup(func() { bridge.Close() })
	return host, bridge
}

func TestNew_SendsLiteralBytes(t *testing.T) {
	host, bridge := newImageHost(t)

	var seen json.RawMessage
	host.Handle("plugin:image|new", func(payload json.RawMessage) (any, error) {
		seen = payload
		return 9, nil
	})

	img, err := New(context.Background(), bridge, []byte{255, 0, 0, 255}, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if img.Rid() != 9 {
		t.Errorf("rid = %d, want 9", img.Rid())
	}

	var args struct {
		Rgba   []int `json:"rgba"`
		Width  uint  `json:"width"`
		Height uint  `json:"height"`
	}
	if err := json.Unmarshal(seen, &args); err != nil {
		t.Fatal(err)
	}
	if len(args.Rgba) != 4 || args.Rgba[0] != 255 || args.Rgba[3] != 255 {
		t.Errorf("rgba = %v, want literal byte values", args.Rgba)
	}
	if args.Width != 1 || args.Height != 1 {
		t.Errorf("size = %dx%d, want 1x1", args.Width, args.Height)
	}
}

func TestFromImage_NormalizesToRGBA(t *testing.T) {
	host, bridge := newImageHost(t)

	var seen struct {
		Rgba   []int `json:"rgba"`
		Width  uint  `json:"width"`
		Height uint  `json:"height"`
	}
	host.Handle("plugin:image|new", func(payload json.RawMessage) (any, error) {
		if err := json.Unmarshal(payload, &seen); err != nil {
			return nil, err
		}
		return 1, nil
	})

	src := stdimage.NewNRGBA(stdimage.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 255})

	if _, err := FromImage(context.Background(), bridge, src); err != nil {
		t.Fatal(err)
	}

	if seen.Width != 2 || seen.Height != 1 {
		t.Fatalf("size = %dx%d, want 2x1", seen.Width, seen.Height)
	}
	want := []int{10, 20, 30, 255, 40, 50, 60, 255}
	if len(seen.Rgba) != len(want) {
		t.Fatalf("rgba length = %d, want %d", len(seen.Rgba), len(want))
	}
	for i := range want {
		if seen.Rgba[i] != want[i] {
			t.Errorf("rgba[%d] = %d, want %d", i, seen.Rgba[i], want[i])
		}
	}
}

func TestRgba_Roundtrip(t *testing.T) {
	host, bridge := newImageHost(t)

	host.Handle("plugin:image|from_path", func(json.RawMessage) (any, error) {
		return 3, nil
	})
	host.Handle("plugin:image|rgba", func(payload json.RawMessage) (any, error) {
		var args struct {
			Rid uint32 `json:"rid"`
		}
		if err := json.Unmarshal(payload, &args); err != nil {
			return nil, err
		}
		if args.Rid != 3 {
			return nil, fmt.Errorf("rgba called with rid %d, want 3", args.Rid)
		}
		return []int{1, 2, 3, 4}, nil
	})
	host.Handle("plugin:image|size", func(json.RawMessage) (any, error) {
		return Size{Width: 1, Height: 1}, nil
	})

	img, err := FromPath(context.Background(), bridge, "/tmp/icon.png")
	if err != nil {
		t.Fatal(err)
	}

	pixels, err := img.Rgba(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(pixels) != 4 || pixels[0] != 1 || pixels[3] != 4 {
		t.Errorf("pixels = %v, want [1 2 3 4]", pixels)
	}

	size, err := img.Size(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if size.Width != 1 || size.Height != 1 {
		t.Errorf("size = %+v, want 1x1", size)
	}
}
