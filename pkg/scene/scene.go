package scene

import (
	"math/rand"

	"github.com/mattrusch/softrt/pkg/core"
	"github.com/mattrusch/softrt/pkg/geometry"
	"github.com/mattrusch/softrt/pkg/material"
)

// Scene contains the spheres to render and owns the materials they
// share. It is built once per render and is read-only thereafter; sphere
// order matters only when two hits are exactly equidistant (first wins).
type Scene struct {
	Materials []*material.Material
	Spheres   []*geometry.Sphere
}

// AddSphere appends a sphere bound to one of the scene's materials
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat *material.Material) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, mat))
}

// NewRandomScene creates a scene of count randomly placed spheres cycling
// through the default palette, plus a huge ground sphere. The same seed
// always reproduces the same scene.
func NewRandomScene(count int, seed int64) *Scene {
	rng := rand.New(rand.NewSource(seed))
	palette := material.DefaultPalette()

	s := &Scene{
		Materials: palette,
		Spheres:   make([]*geometry.Sphere, 0, count+1),
	}

	for i := 0; i < count; i++ {
		x := float64(rng.Intn(1000)-500) * 0.01
		y := float64(rng.Intn(500)) * 0.01
		z := float64(rng.Intn(1000)) * 0.01
		radius := float64(rng.Intn(1000)) * 0.00125
		s.AddSphere(core.NewVec3(x, y, z), radius, palette[i%len(palette)])
	}

	// Ground: a sphere so large its visible surface reads as a plane.
	s.AddSphere(core.NewVec3(0, -1000, 5), 999.0, palette[0])

	return s
}

// NewDefaultScene creates the stock scene: forty random spheres with the
// original seed, plus the ground sphere.
func NewDefaultScene() *Scene {
	return NewRandomScene(40, 43)
}
