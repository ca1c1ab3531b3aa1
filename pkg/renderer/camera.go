package renderer

import (
	"github.com/mattrusch/softrt/pkg/core"
)

// Camera generates rays for rendering. It maps normalized screen
// coordinates onto a near plane at z=0 spanning [-1,1] in x and [1,-1]
// in y, with rays originating at the camera position.
type Camera struct {
	origin core.Vec3
}

// NewCamera creates a camera at the given position
func NewCamera(origin core.Vec3) *Camera {
	return &Camera{origin: origin}
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// t grows downward so (0,0) is the top-left corner of the image.
func (c *Camera) GetRay(s, t float64) core.Ray {
	nearPlanePos := core.NewVec3(-1.0+2.0*s, 1.0-2.0*t, 0)
	return core.NewRay(c.origin, nearPlanePos.Subtract(c.origin))
}
