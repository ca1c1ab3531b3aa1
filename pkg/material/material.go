package material

import "github.com/mattrusch/softrt/pkg/core"

// Material describes how a surface responds to light. Many spheres may
// share one material; the scene owns the materials and spheres hold a
// pointer into the scene's collection.
type Material struct {
	Color     core.Vec3 // RGB reflectance, conceptually in [0,1], not clamped at storage time
	Roughness float64   // 0 = mirror-like (bounce dominates), 1 = fully diffuse (local shading dominates)
}

// New creates a new material
func New(color core.Vec3, roughness float64) *Material {
	return &Material{Color: color, Roughness: roughness}
}

// DefaultPalette returns the fourteen materials used by the stock scene
func DefaultPalette() []*Material {
	return []*Material{
		New(core.NewVec3(0.75, 1.0, 0.75), 0.975),
		New(core.NewVec3(0.0, 0.0, 1.0), 0.9),
		New(core.NewVec3(1.0, 0.0, 0.0), 0.9),
		New(core.NewVec3(0.0, 1.0, 0.0), 1.0),
		New(core.NewVec3(1.0, 1.0, 0.0), 0.985),
		New(core.NewVec3(0.0, 1.0, 1.0), 0.985),
		New(core.NewVec3(1.0, 0.0, 1.0), 0.985),
		New(core.NewVec3(1.0, 1.0, 1.0), 0.95),
		New(core.NewVec3(0.25, 0.25, 1.0), 0.95),
		New(core.NewVec3(1.0, 0.25, 0.25), 0.95),
		New(core.NewVec3(0.5, 1.0, 0.25), 0.95),
		New(core.NewVec3(1.0, 1.0, 0.25), 0.9),
		New(core.NewVec3(0.25, 1.0, 1.0), 0.9),
		New(core.NewVec3(1.0, 0.25, 1.0), 0.9),
	}
}
