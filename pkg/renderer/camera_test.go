package renderer

import (
	"testing"

	"github.com/mattrusch/softrt/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	origin := core.NewVec3(0, 0, -2)
	camera := NewCamera(origin)

	tests := []struct {
		name        string
		s, t        float64
		expectedDir core.Vec3
	}{
		{"center of screen", 0.5, 0.5, core.NewVec3(0, 0, 2)},
		{"top-left corner", 0, 0, core.NewVec3(-1, 1, 2)},
		{"top-right corner", 1, 0, core.NewVec3(1, 1, 2)},
		{"bottom-left corner", 0, 1, core.NewVec3(-1, -1, 2)},
		{"bottom-right corner", 1, 1, core.NewVec3(1, -1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t)

			if ray.Origin != origin {
				t.Errorf("Expected ray origin %v, got %v", origin, ray.Origin)
			}
			if ray.Direction != tt.expectedDir {
				t.Errorf("Expected direction %v, got %v", tt.expectedDir, ray.Direction)
			}
		})
	}
}

func TestCamera_Origin(t *testing.T) {
	origin := core.NewVec3(1, 2, 3)
	if got := NewCamera(origin).Origin(); got != origin {
		t.Errorf("Expected origin %v, got %v", origin, got)
	}
}
