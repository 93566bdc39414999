package lights

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lumarender/go-direct-lighting/pkg/core"
)

// Geometry is an abstract triangle accessor backing a mesh area light.
// Implementations return world-space vertices; how they are stored
// (vertex/index buffers, procedural generation) is their concern.
type Geometry interface {
	TriangleCount() int
	Triangle(i int) (a, b, c mgl64.Vec3)
}

// MeshAreaLight is an area light emitting from triangle geometry. Sampling
// picks a triangle uniformly by index, a known approximation that slightly
// over-weights small triangles relative to sampling by area.
type MeshAreaLight struct {
	geometry  Geometry
	intensity mgl64.Vec3
	area      float64
	centroid  mgl64.Vec3 // Area-weighted centroid, the light's effective position
	normal    mgl64.Vec3 // Area-weighted average normal for deterministic evaluation
}

// NewMeshAreaLight creates an area light over the given geometry. Surface
// area, centroid, and average normal are accumulated once up front.
func NewMeshAreaLight(geometry Geometry, intensity mgl64.Vec3) *MeshAreaLight {
	ml := &MeshAreaLight{geometry: geometry, intensity: intensity}
	var weightedNormal mgl64.Vec3
	for i := 0; i < geometry.TriangleCount(); i++ {
		a, b, c := geometry.Triangle(i)
		cross := b.Sub(a).Cross(c.Sub(a))
		area := 0.5 * cross.Len()
		ml.area += area
		ml.centroid = ml.centroid.Add(a.Add(b).Add(c).Mul(area / 3))
		weightedNormal = weightedNormal.Add(cross.Mul(0.5))
	}
	if ml.area > 0 {
		ml.centroid = ml.centroid.Mul(1 / ml.area)
	}
	ml.normal = safeNormalize(weightedNormal)
	return ml
}

func (ml *MeshAreaLight) Type() LightType {
	return LightTypeArea
}

// Area returns the total surface area of the light's geometry.
func (ml *MeshAreaLight) Area() float64 {
	return ml.area
}

// Position returns the area-weighted centroid of the geometry.
func (ml *MeshAreaLight) Position(shadingPoint mgl64.Vec3) mgl64.Vec3 {
	return ml.centroid
}

// Radiance returns intensity/(4π·d²) at the shading point, measured from
// the centroid.
func (ml *MeshAreaLight) Radiance(shadingPoint mgl64.Vec3) mgl64.Vec3 {
	toPoint := shadingPoint.Sub(ml.centroid)
	return ml.intensity.Mul(core.InvFourPi / toPoint.Dot(toPoint))
}

// Attributes evaluates the light for direct shading using the centroid and
// the average normal, with the same cosine·area attenuation as a
// rectangular emitter.
func (ml *MeshAreaLight) Attributes(shadingPoint mgl64.Vec3, shadowFactor float64) LightAttributes {
	attrs := LightAttributes{
		ShadowFactor: shadowFactor,
		Point:        ml.centroid,
		Direction:    directionWithin(shadingPoint, ml.centroid),
	}

	cosTheta := -attrs.Direction.Dot(ml.normal)
	attenuation := math.Max(0, cosTheta) * ml.area

	toLight := ml.centroid.Sub(shadingPoint)
	attenuation /= math.Max(distEpsilon, toLight.Dot(toLight))
	attrs.Intensity = ml.intensity.Mul(attenuation)
	return attrs
}

// Sample draws one point on the geometry: the third sample component picks
// a triangle, the first two place a point on it via square-root barycentric
// remapping. The PDF converts the uniform area measure through the
// solid-angle-to-area Jacobian d²/(|cosθ|·area), and Intensity is the
// stored intensity divided by the PDF when the sampled face points toward
// the shading point, else exactly zero.
func (ml *MeshAreaLight) Sample(shadingPoint mgl64.Vec3, sample mgl64.Vec3) LightAttributes {
	count := ml.geometry.TriangleCount()
	if count == 0 || ml.area == 0 {
		return LightAttributes{ShadowFactor: 1}
	}

	index := int(sample.Z() * float64(count))
	if index >= count {
		index = count - 1
	}
	a, b, c := ml.geometry.Triangle(index)

	bary := core.SampleBarycentric(mgl64.Vec2{sample.X(), sample.Y()})
	point := a.Mul(bary.X()).Add(b.Mul(bary.Y())).Add(c.Mul(bary.Z()))
	normal := safeNormalize(b.Sub(a).Cross(c.Sub(a)))

	direction, dist := flooredDirection(shadingPoint, point)
	dist = math.Max(dist, distEpsilon)

	attrs := LightAttributes{
		Direction:    direction,
		ShadowFactor: 1,
		Point:        point,
		Normal:       normal,
	}

	cosFacing := normal.Dot(direction)
	denom := math.Abs(cosFacing) * ml.area
	if denom < cosEpsilon {
		return attrs
	}

	attrs.PDF = dist * dist / denom
	if cosFacing < 0 {
		attrs.Intensity = ml.intensity.Mul(1 / attrs.PDF)
	}
	return attrs
}
