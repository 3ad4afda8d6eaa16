// Package image provides handles to host-side images, used for window and
// tray icons and menu item icons. Decoding happens on the host; this package
// only ships pixels or paths across the boundary.
package image

import (
	"context"
	stdimage "image"

	xdraw "golang.org/x/image/draw"

	"github.com/thewh1teagle/tauri/ipc"
	"github.com/thewh1teagle/tauri/resource"
)

// Size is an image's dimensions in pixels.
type Size struct {
	Width  uint `json:"width"`
	Height uint `json:"height"`
}

// Image references a host-side image resource.
type Image struct {
	resource.Resource
}

// FromRid wraps an image resource id already created on the host, e.g. one
// returned inside another command's response.
func FromRid(inv ipc.Invoker, rid uint32) *Image {
	return &Image{Resource: resource.New(inv, rid)}
}

// New creates an image from raw RGBA pixels.
func New(ctx context.Context, inv ipc.Invoker, rgba []byte, width, height uint) (*Image, error) {
	var rid uint32
	err := ipc.InvokeInto(ctx, inv, "plugin:image|new", map[string]any{
		"rgba":   ipc.RawBytes(rgba),
		"width":  width,
		"height": height,
	}, &rid)
	if err != nil {
		return nil, err
	}
	return FromRid(inv, rid), nil
}

// FromBytes creates an image from an encoded buffer (png or ico). The host
// does the decoding.
func FromBytes(ctx context.Context, inv ipc.Invoker, data []byte) (*Image, error) {
	var rid uint32
	err := ipc.InvokeInto(ctx, inv, "plugin:image|from_bytes", map[string]any{
		"bytes": ipc.RawBytes(data),
	}, &rid)
	if err != nil {
		return nil, err
	}
	return FromRid(inv, rid), nil
}

// FromPath creates an image from a file path readable by the host process.
func FromPath(ctx context.Context, inv ipc.Invoker, path string) (*Image, error) {
	var rid uint32
	err := ipc.InvokeInto(ctx, inv, "plugin:image|from_path", map[string]any{
		"path": path,
	}, &rid)
	if err != nil {
		return nil, err
	}
	return FromRid(inv, rid), nil
}

// FromImage creates a host image from any Go image, normalized to RGBA.
func FromImage(ctx context.Context, inv ipc.Invoker, img stdimage.Image) (*Image, error) {
	rgba := toRGBA(img)
	b := rgba.Bounds()
	return New(ctx, inv, rgba.Pix, uint(b.Dx()), uint(b.Dy()))
}

// FromImageScaled is FromImage with resampling to width x height, useful for
// icon sizes the host expects.
func FromImageScaled(ctx context.Context, inv ipc.Invoker, img stdimage.Image, width, height uint) (*Image, error) {
	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, int(width), int(height)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return New(ctx, inv, dst.Pix, width, height)
}

// Rgba fetches the image's pixels from the host.
func (i *Image) Rgba(ctx context.Context) ([]byte, error) {
	var raw []int
	err := ipc.InvokeInto(ctx, i.Invoker(), "plugin:image|rgba", map[string]any{
		"rid": i.Rid(),
	}, &raw)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	for idx, v := range raw {
		out[idx] = byte(v)
	}
	return out, nil
}

// Size fetches the image's dimensions from the host.
func (i *Image) Size(ctx context.Context) (Size, error) {
	var s Size
	err := ipc.InvokeInto(ctx, i.Invoker(), "plugin:image|size", map[string]any{
		"rid": i.Rid(),
	}, &s)
	return s, err
}

func toRGBA(img stdimage.Image) *stdimage.RGBA {
	if rgba, ok := img.(*stdimage.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}
