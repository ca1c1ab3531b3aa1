package scene

import (
	"testing"

	"github.com/mattrusch/softrt/pkg/core"
	"github.com/mattrusch/softrt/pkg/material"
)

func TestNewRandomScene_Counts(t *testing.T) {
	s := NewRandomScene(40, 43)

	// 40 random spheres plus the ground sphere
	if len(s.Spheres) != 41 {
		t.Errorf("Expected 41 spheres, got %d", len(s.Spheres))
	}
	if len(s.Materials) != 14 {
		t.Errorf("Expected 14 palette materials, got %d", len(s.Materials))
	}
}

func TestNewRandomScene_GroundSphere(t *testing.T) {
	s := NewRandomScene(5, 1)

	ground := s.Spheres[len(s.Spheres)-1]
	if ground.Center != core.NewVec3(0, -1000, 5) {
		t.Errorf("Expected ground center (0,-1000,5), got %v", ground.Center)
	}
	if ground.Radius != 999.0 {
		t.Errorf("Expected ground radius 999, got %v", ground.Radius)
	}
	if ground.Material != s.Materials[0] {
		t.Errorf("Expected ground to use the first palette material")
	}
}

func TestNewRandomScene_Deterministic(t *testing.T) {
	a := NewRandomScene(40, 43)
	b := NewRandomScene(40, 43)

	for i := range a.Spheres {
		if a.Spheres[i].Center != b.Spheres[i].Center || a.Spheres[i].Radius != b.Spheres[i].Radius {
			t.Fatalf("Sphere %d differs between identical seeds: %+v vs %+v",
				i, a.Spheres[i], b.Spheres[i])
		}
	}

	c := NewRandomScene(40, 44)
	same := true
	for i := range a.Spheres[:40] {
		if a.Spheres[i].Center != c.Spheres[i].Center {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected different seeds to produce different sphere placements")
	}
}

func TestNewRandomScene_Bounds(t *testing.T) {
	s := NewRandomScene(200, 7)

	for i, sphere := range s.Spheres[:200] {
		c := sphere.Center
		if c.X < -5 || c.X >= 5 || c.Y < 0 || c.Y >= 5 || c.Z < 0 || c.Z >= 10 {
			t.Errorf("Sphere %d center %v outside expected placement volume", i, c)
		}
		if sphere.Radius < 0 || sphere.Radius >= 1.25 {
			t.Errorf("Sphere %d radius %v outside [0, 1.25)", i, sphere.Radius)
		}
	}
}

func TestNewRandomScene_SharedMaterialHandles(t *testing.T) {
	s := NewRandomScene(30, 9)

	// Materials cycle through the palette, so spheres 14 apart share the
	// same handle rather than a copy.
	if s.Spheres[0].Material != s.Spheres[14].Material {
		t.Error("Expected spheres 0 and 14 to share one material handle")
	}
	if s.Spheres[0].Material == s.Spheres[1].Material {
		t.Error("Expected adjacent spheres to use different palette entries")
	}
}

func TestAddSphere(t *testing.T) {
	mat := material.New(core.NewVec3(1, 1, 1), 0.5)
	s := &Scene{Materials: []*material.Material{mat}}

	s.AddSphere(core.NewVec3(1, 2, 3), 0.5, mat)

	if len(s.Spheres) != 1 {
		t.Fatalf("Expected 1 sphere, got %d", len(s.Spheres))
	}
	if s.Spheres[0].Material != mat {
		t.Error("Expected sphere to hold the given material handle")
	}
}
