package lights

import (
	"github.com/go-gl/mathgl/mgl64"
)

// DirectionalLight represents a light infinitely far away: every shading
// point receives the same intensity from the same direction, with no
// distance falloff.
type DirectionalLight struct {
	anchor    mgl64.Vec3 // Reference position used to scale the synthesized stand-in position
	direction mgl64.Vec3 // Normalized direction of light travel
	intensity mgl64.Vec3
}

// NewDirectionalLight creates a directional light travelling along
// direction. The anchor fixes the distance scale of the synthesized
// stand-in position; the scene origin is a reasonable choice.
func NewDirectionalLight(anchor, direction, intensity mgl64.Vec3) *DirectionalLight {
	return &DirectionalLight{
		anchor:    anchor,
		direction: direction.Normalize(),
		intensity: intensity,
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Position synthesizes a stand-in position at the shading point's distance
// from the anchor, displaced against the light direction, so quantities
// derived from it downstream stay numerically well-scaled.
func (dl *DirectionalLight) Position(shadingPoint mgl64.Vec3) mgl64.Vec3 {
	dist := shadingPoint.Sub(dl.anchor).Len()
	return shadingPoint.Sub(dl.direction.Mul(dist))
}

// Radiance returns the stored intensity unchanged; a directional light has
// no distance falloff.
func (dl *DirectionalLight) Radiance(shadingPoint mgl64.Vec3) mgl64.Vec3 {
	return dl.intensity
}

// Attributes evaluates the light for direct shading. The direction is the
// negated light direction regardless of the stand-in position: directional
// lights are defined by orientation, not position.
func (dl *DirectionalLight) Attributes(shadingPoint mgl64.Vec3, shadowFactor float64) LightAttributes {
	return LightAttributes{
		Direction:    dl.direction.Mul(-1),
		ShadowFactor: shadowFactor,
		Intensity:    dl.intensity,
		Point:        dl.Position(shadingPoint),
	}
}

// Sample returns the light's single admissible sample with PDF 1.
func (dl *DirectionalLight) Sample(shadingPoint mgl64.Vec3, sample mgl64.Vec3) LightAttributes {
	direction := dl.direction.Mul(-1)
	return LightAttributes{
		Direction:    direction,
		ShadowFactor: 1,
		Intensity:    dl.intensity,
		Point:        dl.Position(shadingPoint),
		Normal:       direction,
		PDF:          1,
	}
}
