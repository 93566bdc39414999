// Package lights evaluates and samples light sources for direct lighting.
//
// Every operation is a pure function of its inputs: no light retains a
// pointer to caller data and no call mutates shared state, so invocations
// are safe to run one per shading point per sample across any number of
// goroutines. Degenerate configurations (near-zero distances, back-facing
// or edge-on samples) collapse to a zero-contribution result rather than
// producing NaN or Inf.
package lights

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
	LightTypeArea        LightType = "area"
)

// distEpsilon floors distances (and squared distances) near a light's own
// position so attenuation and direction math never divide by zero.
const distEpsilon = 1e-3

// cosEpsilon is the edge-on threshold below which an area sample carries no
// usable solid angle and the PDF collapses to zero.
const cosEpsilon = 1e-8

// ErrNotAreaLight is returned when stratified rectangle sampling is
// requested for a light that is not a rectangular area light.
var ErrNotAreaLight = errors.New("stratified sampling requires a rectangular area light")

// Light is a light source that can be evaluated deterministically or
// sampled stochastically for direct lighting.
type Light interface {
	Type() LightType

	// Position returns the effective world-space position of the light.
	// Directional lights have no finite position; they synthesize one at
	// the shading point's distance so downstream math stays well-scaled.
	Position(shadingPoint mgl64.Vec3) mgl64.Vec3

	// Radiance returns the light's emission as received at the shading
	// point: intensity/(4π·d²) for point and area lights, the stored
	// intensity for directional lights. There is no distance guard here;
	// callers must not evaluate it at the light's own position.
	Radiance(shadingPoint mgl64.Vec3) mgl64.Vec3

	// Attributes evaluates the light deterministically for direct shading,
	// applying the light type's attenuation (spot cone, area cosine,
	// inverse square). The shadow factor is stored verbatim; Normal, PDF,
	// and Corners stay zero on this path.
	Attributes(shadingPoint mgl64.Vec3, shadowFactor float64) LightAttributes

	// Sample draws one point on the light from a uniform sample in
	// [0,1)³ and returns it with the associated radiance and PDF.
	// Point and directional lights are point masses sampled with PDF 1.
	Sample(shadingPoint mgl64.Vec3, sample mgl64.Vec3) LightAttributes
}

// LightAttributes is the record a shading routine consumes: the direction
// toward the light, the received intensity, the sampled point and normal,
// and the sampling density. A fresh value is returned per call.
type LightAttributes struct {
	Direction    mgl64.Vec3    // Unit vector from shading point toward the light (zero when degenerate)
	ShadowFactor float64       // Caller-supplied visibility factor, passed through verbatim
	Intensity    mgl64.Vec3    // Light intensity as received, post-attenuation
	Point        mgl64.Vec3    // Position on (or stand-in position of) the light
	Normal       mgl64.Vec3    // Normal at the sampled point; equals Direction for point masses
	PDF          float64       // Sampling density; 0 on the deterministic path and for rejected samples
	Corners      [4]mgl64.Vec3 // Reserved for area-light corner geometry, currently always zero
}

// SampleStratified draws a stratified sample from a rectangular area light.
// Any other light type yields ErrNotAreaLight; there is no silent no-op.
func SampleStratified(light Light, shadingPoint mgl64.Vec3, sample mgl64.Vec2, x, y, numX, numY int) (LightAttributes, error) {
	rect, ok := light.(*RectAreaLight)
	if !ok {
		return LightAttributes{}, fmt.Errorf("%w, got %q", ErrNotAreaLight, light.Type())
	}
	return rect.SampleStratified(shadingPoint, sample, x, y, numX, numY), nil
}

// directionWithin returns the unit direction from a shading point toward a
// light position, or the zero vector when the two nearly coincide.
func directionWithin(shadingPoint, lightPos mgl64.Vec3) mgl64.Vec3 {
	toLight := lightPos.Sub(shadingPoint)
	if distSq := toLight.Dot(toLight); distSq > distEpsilon {
		return toLight.Mul(1 / math.Sqrt(distSq))
	}
	return mgl64.Vec3{}
}

// flooredDirection returns the direction from a shading point toward a
// light position with the normalizing distance floored at distEpsilon,
// along with the unfloored distance.
func flooredDirection(shadingPoint, lightPos mgl64.Vec3) (mgl64.Vec3, float64) {
	toLight := lightPos.Sub(shadingPoint)
	dist := toLight.Len()
	return toLight.Mul(1 / math.Max(dist, distEpsilon)), dist
}

// safeNormalize normalizes v, falling back to zero for degenerate input.
func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	length := v.Len()
	if length == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / length)
}
