package integrator

import (
	"math"

	"github.com/mattrusch/softrt/pkg/core"
	"github.com/mattrusch/softrt/pkg/geometry"
)

// Config contains the lighting and tuning parameters of the integrator.
// These were process-wide constants in earlier versions; passing them in
// explicitly allows deterministic tests with varied lighting.
type Config struct {
	LightDir    core.Vec3 // Direction toward the light, must be normalized
	SkyColor    core.Vec3 // Returned for rays that escape the scene
	Ambient     float64   // Floor for the diffuse intensity so unlit surfaces are never fully black
	SpecularExp float64   // Phong-style exponent, higher = narrower highlight
	MaxDepth    int       // Maximum bounce depth of the recursion
	ShadowBias  float64   // Offset along the normal before casting secondary rays
}

// DefaultConfig returns the stock lighting setup
func DefaultConfig() Config {
	return Config{
		LightDir:    core.NewVec3(1, 1, -1).Normalize(),
		SkyColor:    core.NewVec3(0.75, 0.75, 1.0),
		Ambient:     0.15,
		SpecularExp: 128.0,
		MaxDepth:    8,
		ShadowBias:  0.001,
	}
}

// Integrator recursively traces rays through a sphere scene, combining
// diffuse, specular, shadow and bounce contributions into a final color.
type Integrator struct {
	config Config
}

// NewIntegrator creates an integrator with the given lighting config
func NewIntegrator(config Config) *Integrator {
	return &Integrator{config: config}
}

// Config returns the integrator's lighting config
func (in *Integrator) Config() Config {
	return in.config
}

// IsOccluded reports whether the ray hits any sphere at all. Used to cast
// shadow rays, where only existence matters, so the scan short-circuits
// on the first hit.
func IsOccluded(ray core.Ray, spheres []*geometry.Sphere) bool {
	for _, sphere := range spheres {
		if len(sphere.Intersect(ray)) > 0 {
			return true
		}
	}
	return false
}

// Shade computes the color seen along a ray. It scans every sphere for
// the hit closest to cameraPosition, applies local shading (diffuse,
// specular highlight, shadow test, ambient floor), and recurses once
// along the surface normal while depth is below the configured maximum.
// The driver calls this once per pixel with depth 0.
//
// Two quirks are intentional and kept for compatibility:
//   - hit selection measures distance from the original camera position
//     on every recursive call, not from the current ray origin, so
//     "nearest to camera" governs hit selection along bounce chains;
//   - the strict < comparison means the first sphere in scene order wins
//     when two hits are exactly equidistant.
func (in *Integrator) Shade(ray core.Ray, spheres []*geometry.Sphere, cameraPosition core.Vec3, depth int) core.Vec3 {
	closestDist := math.MaxFloat64
	var normal, hitPoint, color, eye core.Vec3
	roughness := 0.0

	for _, sphere := range spheres {
		points := sphere.Intersect(ray)
		if len(points) == 0 {
			continue
		}
		eyeVec := points[0].Subtract(cameraPosition)
		dist := eyeVec.Length()
		if dist < closestDist {
			normal = points[0].Subtract(sphere.Center).Normalize()
			hitPoint = points[0]
			closestDist = dist
			color = sphere.Material.Color
			roughness = sphere.Material.Roughness
			eye = eyeVec.Normalize()
		}
	}

	if closestDist == math.MaxFloat64 {
		return in.config.SkyColor
	}

	diffuse := max(normal.Dot(in.config.LightDir), 0)

	half := eye.Negate().Add(in.config.LightDir).Normalize()
	specular := math.Pow(max(normal.Dot(half), 0), in.config.SpecularExp)

	// Offset the secondary ray origin to avoid self-intersection.
	origin := hitPoint.Add(normal.Multiply(in.config.ShadowBias))

	if IsOccluded(core.NewRay(origin, in.config.LightDir), spheres) {
		diffuse = 0
		specular = 0
	}

	diffuseColor := color.Multiply(max(diffuse, in.config.Ambient))

	white := core.NewVec3(1, 1, 1)
	if depth < in.config.MaxDepth {
		// Single cosine-biased bounce along the normal, not a mirror
		// reflection of the incoming ray.
		bounceColor := in.Shade(core.NewRay(origin, normal), spheres, cameraPosition, depth+1)
		local := diffuseColor.Multiply(roughness).Add(bounceColor.Multiply(1 - roughness))
		return local.Lerp(white, specular)
	}

	return diffuseColor.Lerp(white, specular)
}
