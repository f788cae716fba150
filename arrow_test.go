package thickline

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTrimForArrow(t *testing.T) {
	tests := []struct {
		name   string
		points []mgl64.Vec3
		want   []mgl64.Vec3
	}{
		{
			name:   "straight line cut inside last segment",
			points: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}},
			want:   []mgl64.Vec3{{0, 0, 0}, {0.7, 0, 0}, {1, 0, 0}},
		},
		{
			name:   "short tail points are dropped",
			points: []mgl64.Vec3{{0, 0, 0}, {0.5, 0, 0}, {0.9, 0, 0}, {1, 0, 0}},
			want:   []mgl64.Vec3{{0, 0, 0}, {0.5, 0, 0}, {0.7, 0, 0}, {1, 0, 0}},
		},
		{
			name:   "corner inside arrow length",
			points: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0.2, 0}},
			want:   []mgl64.Vec3{{0, 0, 0}, {1 - math.Sqrt(0.05), 0, 0}, {1, 0.2, 0}},
		},
		{
			name:   "exactly arrow length away",
			points: []mgl64.Vec3{{0, 0, 0}, {0.5, 0, 0}, {0.8, 0, 0}},
			want:   []mgl64.Vec3{{0, 0, 0}, {0.5, 0, 0}, {0.8, 0, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := trimForArrow(nil, tt.points)
			if err != nil {
				t.Fatalf("trimForArrow failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if !vec3Near(got[i], tt.want[i], 1e-9) {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
			n := len(got)
			if l := got[n-1].Sub(got[n-2]).Len(); math.Abs(l-ArrowLength) > 1e-9 {
				t.Errorf("arrow segment length = %v, want %v", l, ArrowLength)
			}
		})
	}
}

func TestTrimForArrowNoSolution(t *testing.T) {
	tests := []struct {
		name   string
		points []mgl64.Vec3
	}{
		{"too short", []mgl64.Vec3{{0, 0, 0}, {0.2, 0, 0}}},
		{"all within reach", []mgl64.Vec3{{0, 0.1, 0}, {0.1, 0, 0}, {0, 0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := trimForArrow(nil, tt.points)
			if !errors.Is(err, ErrNoArrowSolution) {
				t.Errorf("err = %v, want ErrNoArrowSolution", err)
			}
		})
	}
}

func TestSolveArrowParameter(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	aNext := mgl64.Vec3{2, 0, 0}
	b := mgl64.Vec3{2, 0, 0}
	tt, err := solveArrowParameter(a, aNext, b)
	if err != nil {
		t.Fatalf("solveArrowParameter failed: %v", err)
	}
	if want := (2 - ArrowLength) / 2; math.Abs(tt-want) > 1e-12 {
		t.Errorf("t = %v, want %v", tt, want)
	}
}

func TestArrowRoots(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		lo, hi  float64
		ok      bool
	}{
		{"distinct", 1, -5, 6, 2, 3, true},
		{"scaled", 2, -10, 12, 2, 3, true},
		{"symmetric", 1, 0, -4, -2, 2, true},
		{"double", 1, 2, 1, -1, -1, true},
		{"zero double", 4, 0, 0, 0, 0, true},
		{"no real roots", 1, 0, 4, 0, 0, false},
		// b^2 >> 4ac: the small root must not cancel to zero.
		{"small root", 1, -1e8, 1, 1e-8, 1e8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := arrowRoots(tt.a, tt.b, tt.c)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if math.Abs(lo-tt.lo) > 1e-10*math.Max(1, math.Abs(tt.lo)) ||
				math.Abs(hi-tt.hi) > 1e-10*math.Max(1, math.Abs(tt.hi)) {
				t.Errorf("roots = (%v, %v), want (%v, %v)", lo, hi, tt.lo, tt.hi)
			}
			if lo > hi {
				t.Errorf("roots not ascending: %v > %v", lo, hi)
			}
		})
	}
}

func TestSolveArrowParameterSnapsNearZero(t *testing.T) {
	// A is exactly ArrowLength from B up to rounding.
	tt, err := solveArrowParameter(mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{0.8, 0, 0}, mgl64.Vec3{0.8, 0, 0})
	if err != nil {
		t.Fatalf("solveArrowParameter failed: %v", err)
	}
	if tt < 0 || tt > arrowSnapEpsilon {
		t.Errorf("t = %v, want 0", tt)
	}
}

func TestSolveArrowParameterNoCrossing(t *testing.T) {
	tests := []struct {
		name     string
		a, aNext mgl64.Vec3
	}{
		{"coincident anchor", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 0, 0}},
		{"segment never reaches the circle", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 1, 0}},
		{"crossing beyond successor", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := solveArrowParameter(tt.a, tt.aNext, mgl64.Vec3{2, 0, 0})
			if !errors.Is(err, ErrNoArrowSolution) {
				t.Errorf("err = %v, want ErrNoArrowSolution", err)
			}
		})
	}
}
