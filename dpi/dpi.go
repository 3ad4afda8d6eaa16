// Package dpi provides logical and physical size and position values.
//
// Physical values are in hardware pixels; logical values are scaled by the
// window's DPI factor. Host commands that take a size or position require one
// of exactly these two representations, tagged on the wire as
// {"Logical": {...}} or {"Physical": {...}}. Anything else is rejected
// locally before any host call.
package dpi

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/thewh1teagle/tauri/errors"
)

// LogicalSize is a size scaled by the DPI factor.
type LogicalSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToPhysical converts to hardware pixels at the given scale factor.
func (s LogicalSize) ToPhysical(scale float64) PhysicalSize {
	return PhysicalSize{
		Width:  uint(math.Round(s.Width * scale)),
		Height: uint(math.Round(s.Height * scale)),
	}
}

// PhysicalSize is a size in hardware pixels.
type PhysicalSize struct {
	Width  uint `json:"width"`
	Height uint `json:"height"`
}

// ToLogical converts to logical units at the given scale factor.
func (s PhysicalSize) ToLogical(scale float64) LogicalSize {
	return LogicalSize{
		Width:  float64(s.Width) / scale,
		Height: float64(s.Height) / scale,
	}
}

// LogicalPosition is a position scaled by the DPI factor.
type LogicalPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ToPhysical converts to hardware pixels at the given scale factor.
func (p LogicalPosition) ToPhysical(scale float64) PhysicalPosition {
	return PhysicalPosition{
		X: int(math.Round(p.X * scale)),
		Y: int(math.Round(p.Y * scale)),
	}
}

// PhysicalPosition is a position in hardware pixels.
type PhysicalPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToLogical converts to logical units at the given scale factor.
func (p PhysicalPosition) ToLogical(scale float64) LogicalPosition {
	return LogicalPosition{
		X: float64(p.X) / scale,
		Y: float64(p.Y) / scale,
	}
}

// Size is a tagged size argument: exactly one of the two recognized variants.
type Size struct {
	logical  *LogicalSize
	physical *PhysicalSize
}

// NewSize validates v as one of the two recognized size variants.
func NewSize(v any) (Size, error) {
	switch s := v.(type) {
	case LogicalSize:
		return Size{logical: &s}, nil
	case *LogicalSize:
		return Size{logical: s}, nil
	case PhysicalSize:
		return Size{physical: &s}, nil
	case *PhysicalSize:
		return Size{physical: s}, nil
	default:
		return Size{}, errors.New(errors.PhaseValidate, errors.KindInvalidVariant).
			Detail("size must be a dpi.LogicalSize or dpi.PhysicalSize, got %T", v).
			Build()
	}
}

// Logical builds a tagged logical size.
func Logical(width, height float64) Size {
	return Size{logical: &LogicalSize{Width: width, Height: height}}
}

// Physical builds a tagged physical size.
func Physical(width, height uint) Size {
	return Size{physical: &PhysicalSize{Width: width, Height: height}}
}

// MarshalJSON encodes the tagged representation the host expects.
func (s Size) MarshalJSON() ([]byte, error) {
	switch {
	case s.logical != nil:
		return json.Marshal(map[string]any{"Logical": s.logical})
	case s.physical != nil:
		return json.Marshal(map[string]any{"Physical": s.physical})
	default:
		return nil, fmt.Errorf("dpi: zero Size value")
	}
}

// Position is a tagged position argument: exactly one of the two recognized
// variants.
type Position struct {
	logical  *LogicalPosition
	physical *PhysicalPosition
}

// NewPosition validates v as one of the two recognized position variants.
func NewPosition(v any) (Position, error) {
	switch p := v.(type) {
	case LogicalPosition:
		return Position{logical: &p}, nil
	case *LogicalPosition:
		return Position{logical: p}, nil
	case PhysicalPosition:
		return Position{physical: &p}, nil
	case *PhysicalPosition:
		return Position{physical: p}, nil
	default:
		return Position{}, errors.New(errors.PhaseValidate, errors.KindInvalidVariant).
			Detail("position must be a dpi.LogicalPosition or dpi.PhysicalPosition, got %T", v).
			Build()
	}
}

// LogicalPos builds a tagged logical position.
func LogicalPos(x, y float64) Position {
	return Position{logical: &LogicalPosition{X: x, Y: y}}
}

// PhysicalPos builds a tagged physical position.
func PhysicalPos(x, y int) Position {
	return Position{physical: &PhysicalPosition{X: x, Y: y}}
}

// MarshalJSON encodes the tagged representation the host expects.
func (p Position) MarshalJSON() ([]byte, error) {
	switch {
	case p.logical != nil:
		return json.Marshal(map[string]any{"Logical": p.logical})
	case p.physical != nil:
		return json.Marshal(map[string]any{"Physical": p.physical})
	default:
		return nil, fmt.Errorf("dpi: zero Position value")
	}
}
