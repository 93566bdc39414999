package lights

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lumarender/go-direct-lighting/pkg/core"
)

// PointLight represents a point light, optionally restricted to a spot cone
// with a penumbra band over which intensity falls off linearly in angle.
type PointLight struct {
	position      mgl64.Vec3
	direction     mgl64.Vec3 // Normalized spot axis
	intensity     mgl64.Vec3
	openingAngle  float64 // Cone half-angle in radians; π means no cone
	cosOpening    float64 // Cached cosine of the opening angle
	penumbraAngle float64 // Angular width of the falloff band, 0 disables it
}

// NewPointLight creates an omnidirectional point light.
func NewPointLight(position, intensity mgl64.Vec3) *PointLight {
	return &PointLight{
		position:     position,
		direction:    mgl64.Vec3{0, -1, 0},
		intensity:    intensity,
		openingAngle: math.Pi,
		cosOpening:   -1,
	}
}

// NewSpotLight creates a point light restricted to a cone around direction.
// openingAngle is the cone half-angle in radians; penumbraAngle > 0 softens
// the cone edge over a band of that angular width inside the opening.
func NewSpotLight(position, direction, intensity mgl64.Vec3, openingAngle, penumbraAngle float64) *PointLight {
	return &PointLight{
		position:      position,
		direction:     direction.Normalize(),
		intensity:     intensity,
		openingAngle:  openingAngle,
		cosOpening:    math.Cos(openingAngle),
		penumbraAngle: penumbraAngle,
	}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Position returns the stored world position; the shading point is unused.
func (pl *PointLight) Position(shadingPoint mgl64.Vec3) mgl64.Vec3 {
	return pl.position
}

// Radiance returns intensity/(4π·d²) at the shading point.
func (pl *PointLight) Radiance(shadingPoint mgl64.Vec3) mgl64.Vec3 {
	toPoint := shadingPoint.Sub(pl.position)
	return pl.intensity.Mul(core.InvFourPi / toPoint.Dot(toPoint))
}

// Attributes evaluates the light for direct shading, applying the cone
// cutoff, the penumbra falloff, and the inverse-square law.
func (pl *PointLight) Attributes(shadingPoint mgl64.Vec3, shadowFactor float64) LightAttributes {
	attrs := LightAttributes{
		ShadowFactor: shadowFactor,
		Point:        pl.position,
		Direction:    directionWithin(shadingPoint, pl.position),
	}

	attenuation := 1.0
	cosTheta := -attrs.Direction.Dot(pl.direction)
	if cosTheta < pl.cosOpening {
		attenuation = 0
	}
	if pl.penumbraAngle > 0 {
		// Linear falloff across the band between the inner edge
		// (opening - penumbra) and the cone edge.
		theta := math.Acos(mgl64.Clamp(cosTheta, -1, 1))
		attenuation *= mgl64.Clamp((pl.openingAngle-theta)/pl.penumbraAngle, 0, 1)
	}

	// Same per-steradian normalization as Radiance, so the deterministic
	// and sampled paths agree on received intensity.
	toLight := pl.position.Sub(shadingPoint)
	attenuation *= core.InvFourPi / math.Max(distEpsilon, toLight.Dot(toLight))
	attrs.Intensity = pl.intensity.Mul(attenuation)
	return attrs
}

// Sample returns the light's single admissible sample: the stored position
// with PDF 1. The uniform sample is unused; a point light is a point mass.
func (pl *PointLight) Sample(shadingPoint mgl64.Vec3, sample mgl64.Vec3) LightAttributes {
	direction, _ := flooredDirection(shadingPoint, pl.position)
	return LightAttributes{
		Direction:    direction,
		ShadowFactor: 1,
		Intensity:    pl.Radiance(shadingPoint),
		Point:        pl.position,
		Normal:       direction,
		PDF:          1,
	}
}
