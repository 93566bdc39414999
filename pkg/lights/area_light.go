package lights

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lumarender/go-direct-lighting/pkg/core"
)

// RectAreaLight represents a rectangular area light defined in its own
// object space and placed in the world by an object-to-world transform.
// The tangent and bitangent run from the center toward the rectangle
// edges; their lengths are the half-extents.
type RectAreaLight struct {
	center    mgl64.Vec3 // Object-space center
	normal    mgl64.Vec3 // Object-space emission normal
	tangent   mgl64.Vec3 // Object-space half-width vector
	bitangent mgl64.Vec3 // Object-space half-height vector
	transform mgl64.Mat4 // Object-to-world
	intensity mgl64.Vec3
	area      float64 // World-space surface area of the full rectangle
}

// NewRectAreaLight creates a rectangular area light. The surface area is
// derived from the world-space edge vectors, so non-uniform scale in the
// transform is accounted for.
func NewRectAreaLight(center, normal, tangent, bitangent mgl64.Vec3, transform mgl64.Mat4, intensity mgl64.Vec3) *RectAreaLight {
	u := mgl64.TransformNormal(tangent, transform)
	v := mgl64.TransformNormal(bitangent, transform)
	return &RectAreaLight{
		center:    center,
		normal:    normal,
		tangent:   tangent,
		bitangent: bitangent,
		transform: transform,
		intensity: intensity,
		// Full edges are 2u and 2v, so the rectangle area is 4|u × v|.
		area: 4 * u.Cross(v).Len(),
	}
}

func (rl *RectAreaLight) Type() LightType {
	return LightTypeArea
}

// Area returns the world-space surface area of the rectangle.
func (rl *RectAreaLight) Area() float64 {
	return rl.area
}

// Position returns the rectangle center transformed into world space.
func (rl *RectAreaLight) Position(shadingPoint mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(rl.center, rl.transform)
}

// Radiance returns intensity/(4π·d²) at the shading point, measured from
// the rectangle center.
func (rl *RectAreaLight) Radiance(shadingPoint mgl64.Vec3) mgl64.Vec3 {
	toPoint := shadingPoint.Sub(rl.Position(shadingPoint))
	return rl.intensity.Mul(core.InvFourPi / toPoint.Dot(toPoint))
}

// Attributes evaluates the light for direct shading with the Lambertian
// emitter attenuation max(0, cosθ)·area and the inverse-square law. A
// shading point behind the emission plane receives nothing.
func (rl *RectAreaLight) Attributes(shadingPoint mgl64.Vec3, shadowFactor float64) LightAttributes {
	position := rl.Position(shadingPoint)
	attrs := LightAttributes{
		ShadowFactor: shadowFactor,
		Point:        position,
		Direction:    directionWithin(shadingPoint, position),
	}

	worldNormal := safeNormalize(mgl64.TransformNormal(rl.normal, rl.transform))
	cosTheta := -attrs.Direction.Dot(worldNormal)
	attenuation := math.Max(0, cosTheta) * rl.area

	toLight := position.Sub(shadingPoint)
	attenuation /= math.Max(distEpsilon, toLight.Dot(toLight))
	attrs.Intensity = rl.intensity.Mul(attenuation)
	return attrs
}

// Sample fails to a zero-contribution sample: rectangles are sampled
// through SampleStratified, and mesh-backed area lights own the stochastic
// triangle path. The sampled geometry is still reported so callers can
// inspect it; PDF 0 marks the sample as unusable.
func (rl *RectAreaLight) Sample(shadingPoint mgl64.Vec3, sample mgl64.Vec3) LightAttributes {
	position := rl.Position(shadingPoint)
	direction, _ := flooredDirection(shadingPoint, position)
	return LightAttributes{
		Direction:    direction,
		ShadowFactor: 1,
		Point:        position,
		Normal:       safeNormalize(mgl64.TransformNormal(rl.normal, rl.transform)),
	}
}

// SampleStratified draws one point inside stratum (x, y) of a numX×numY
// grid laid over the rectangle, jittered by the uniform sample within the
// stratum. The returned Intensity is already divided by the PDF, ready for
// uniform-weight accumulation; back-facing and edge-on samples contribute
// exactly zero.
func (rl *RectAreaLight) SampleStratified(shadingPoint mgl64.Vec3, sample mgl64.Vec2, x, y, numX, numY int) LightAttributes {
	if numX < 1 {
		numX = 1
	}
	if numY < 1 {
		numY = 1
	}

	center := mgl64.TransformCoordinate(rl.center, rl.transform)
	normal := safeNormalize(mgl64.TransformNormal(rl.normal, rl.transform))
	u := mgl64.TransformNormal(rl.tangent, rl.transform)
	v := mgl64.TransformNormal(rl.bitangent, rl.transform)
	halfWidth := u.Len()
	halfHeight := v.Len()

	// Map the stratum cell into [-0.5, 0.5) of the full extent along each
	// axis; jitter stays confined to the assigned cell.
	offsetU := ((float64(x)+sample.X())/float64(numX) - 0.5) * 2 * halfWidth
	offsetV := ((float64(y)+sample.Y())/float64(numY) - 0.5) * 2 * halfHeight

	point := center
	if halfWidth > 0 {
		point = point.Add(u.Mul(offsetU / halfWidth))
	}
	if halfHeight > 0 {
		point = point.Add(v.Mul(offsetV / halfHeight))
	}

	direction, dist := flooredDirection(shadingPoint, point)
	dist = math.Max(dist, distEpsilon)

	attrs := LightAttributes{
		Direction:    direction,
		ShadowFactor: 1,
		Point:        point,
		Normal:       normal,
	}

	cosFacing := normal.Dot(direction)
	denom := math.Abs(cosFacing) * rl.area
	if denom < cosEpsilon {
		return attrs // Edge-on or degenerate, PDF stays 0
	}

	attrs.PDF = dist * dist / denom
	if cosFacing < 0 {
		attrs.Intensity = rl.intensity.Mul(1 / attrs.PDF)
	}
	return attrs
}
