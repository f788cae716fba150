package thickline

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestComputeBounds(t *testing.T) {
	b := ComputeBounds([]mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}})

	if !vec3Near(b.Center, mgl64.Vec3{1, 1, 0}, 1e-12) {
		t.Errorf("Center = %v, want (1, 1, 0)", b.Center)
	}
	if math.Abs(b.Radius-math.Sqrt2) > 1e-12 {
		t.Errorf("Radius = %v, want sqrt(2)", b.Radius)
	}
	if b.Min != (mgl64.Vec3{0, 0, 0}) || b.Max != (mgl64.Vec3{2, 2, 0}) {
		t.Errorf("box = %v..%v, want (0,0,0)..(2,2,0)", b.Min, b.Max)
	}
}

func TestComputeBoundsEmpty(t *testing.T) {
	if b := ComputeBounds(nil); b != (Bounds{}) {
		t.Errorf("ComputeBounds(nil) = %+v, want zero", b)
	}
}

func TestBoundsQueries(t *testing.T) {
	b := ComputeBounds([]mgl64.Vec3{{-1, -1, -1}, {1, 1, 1}})

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"contains center", b.ContainsPoint(mgl64.Vec3{}), true},
		{"contains corner", b.ContainsPoint(mgl64.Vec3{1, 1, 1}), true},
		{"outside", b.ContainsPoint(mgl64.Vec3{1.5, 0, 0}), false},
		{"expanded contains", b.Expand(0.5).ContainsPoint(mgl64.Vec3{1.5, 0, 0}), true},
		{"sphere overlap", b.IntersectsSphere(mgl64.Vec3{3, 0, 0}, 1.5), true},
		{"sphere apart", b.IntersectsSphere(mgl64.Vec3{3, 0, 0}, 1), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLineBoundsFollowArrowPoints(t *testing.T) {
	l := NewLine(WithArrow())
	if err := l.SetPoints([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}, true); err != nil {
		t.Fatalf("SetPoints failed: %v", err)
	}
	b, ok := l.Bounds()
	if !ok {
		t.Fatal("bounds should be valid after SetPoints(..., true)")
	}
	if b.Min != (mgl64.Vec3{0, 0, 0}) || b.Max != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("box = %v..%v, want (0,0,0)..(1,0,0)", b.Min, b.Max)
	}
}
