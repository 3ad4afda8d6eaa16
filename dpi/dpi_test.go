package dpi

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/thewh1teagle/tauri/errors"
)

func TestNewSize_Variants(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"logical value", LogicalSize{Width: 800, Height: 600}, `{"Logical":{"width":800,"height":600}}`},
		{"logical pointer", &LogicalSize{Width: 1, Height: 2}, `{"Logical":{"width":1,"height":2}}`},
		{"physical value", PhysicalSize{Width: 1920, Height: 1080}, `{"Physical":{"width":1920,"height":1080}}`},
		{"physical pointer", &PhysicalSize{Width: 3, Height: 4}, `{"Physical":{"width":3,"height":4}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSize(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			data, err := json.Marshal(s)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestNewSize_RejectsUnknownVariant(t *testing.T) {
	for _, in := range []any{nil, 5, "800x600", map[string]int{"width": 1}} {
		_, err := NewSize(in)
		if err == nil {
			t.Fatalf("NewSize(%v) succeeded, want invalid variant error", in)
		}
		var structured *errors.Error
		if !stderrors.As(err, &structured) || structured.Kind != errors.KindInvalidVariant {
			t.Errorf("err = %v, want invalid_variant", err)
		}
	}
}

func TestNewPosition_RejectsSizeTypes(t *testing.T) {
	_, err := NewPosition(LogicalSize{Width: 1, Height: 1})
	if err == nil {
		t.Fatal("a size is not a recognized position variant")
	}
}

func TestPosition_Marshal(t *testing.T) {
	data, err := json.Marshal(PhysicalPos(-10, 20))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"Physical":{"x":-10,"y":20}}` {
		t.Errorf("marshal = %s", data)
	}
}

func TestConversions(t *testing.T) {
	p := PhysicalSize{Width: 1920, Height: 1080}
	l := p.ToLogical(2)
	if l.Width != 960 || l.Height != 540 {
		t.Errorf("ToLogical = %+v, want 960x540", l)
	}
	back := l.ToPhysical(2)
	if back != p {
		t.Errorf("roundtrip = %+v, want %+v", back, p)
	}

	pos := LogicalPosition{X: 10.4, Y: -10.4}
	phys := pos.ToPhysical(1)
	if phys.X != 10 || phys.Y != -10 {
		t.Errorf("ToPhysical = %+v, want rounded 10/-10", phys)
	}
}

func TestZeroValuesRejectedAtMarshal(t *testing.T) {
	if _, err := json.Marshal(Size{}); err == nil {
		t.Error("zero Size must not marshal")
	}
	if _, err := json.Marshal(Position{}); err == nil {
		t.Error("zero Position must not marshal")
	}
}
