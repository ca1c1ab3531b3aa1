package geometry

import (
	"math"

	"github.com/mattrusch/softrt/pkg/core"
	"github.com/mattrusch/softrt/pkg/material"
)

// tangentEpsilon suppresses the second root when a ray grazes a sphere:
// a discriminant this close to zero would produce two nearly identical
// intersection points.
const tangentEpsilon = 1e-5

// Sphere represents a sphere shape. Spheres are immutable for the
// duration of a render.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect returns the points where the ray crosses the sphere surface,
// nearest first, at most two. Intersections behind the ray origin are not
// reported. The math accounts for non-unit ray directions; a zero-length
// direction is undefined input and is not defended against.
func (s *Sphere) Intersect(ray core.Ray) []core.Vec3 {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - 4.0*a*c

	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)

	result := make([]core.Vec3, 0, 2)
	t0 := (-b + sqrtD) / (2.0 * a)
	if t0 >= 0 {
		result = append(result, ray.At(t0))
	}

	// A tangent ray has both roots at the same point; skip the duplicate.
	if discriminant > tangentEpsilon {
		t1 := (-b - sqrtD) / (2.0 * a)
		if t1 >= 0 {
			result = append(result, ray.At(t1))

			// Order by distance; smallest positive root is closest
			if t0 >= 0 && t1 < t0 {
				result[0], result[1] = result[1], result[0]
			}
		}
	}

	return result
}
