package main

import (
	"testing"

	"github.com/gogpu/thickline"
)

func sceneLine(t *testing.T, s *scene, name string) *thickline.Line {
	t.Helper()
	for i, n := range s.names {
		if n == name {
			return s.lines[i]
		}
	}
	t.Fatalf("scene has no line %q", name)
	return nil
}

func TestBuildSceneDash(t *testing.T) {
	tests := []struct {
		name string
		dash float64
		want float64
	}{
		{"dashed", 0.15, 0.15},
		{"zero is solid", 0, 0},
		{"negative is solid", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := buildScene(sceneConfig{width: 400, height: 300, lineWidth: 0.05, dash: tt.dash, drawEnd: 1})
			if err != nil {
				t.Fatalf("buildScene failed: %v", err)
			}
			if got := sceneLine(t, s, "wave").DashLength(); got != tt.want {
				t.Errorf("wave DashLength = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildSceneLines(t *testing.T) {
	for _, perspective := range []bool{false, true} {
		s, err := buildScene(sceneConfig{width: 400, height: 300, lineWidth: 0.05, drawEnd: 1, perspective: perspective})
		if err != nil {
			t.Fatalf("buildScene(perspective=%v) failed: %v", perspective, err)
		}
		if len(s.lines) != 4 || len(s.names) != 4 {
			t.Errorf("perspective=%v: got %d lines, want 4", perspective, len(s.lines))
		}
		if !sceneLine(t, s, "arrow").Arrow() {
			t.Error("arrow line has no arrowhead")
		}
	}
}
