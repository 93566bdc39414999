package core

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// InvFourPi is the per-steradian normalization 1/(4π) applied to point and
// area light intensities.
const InvFourPi = 1.0 / (4.0 * math.Pi)

// Sampler provides uniform random samples for stochastic light sampling
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() mgl64.Vec2
	Get3D() mgl64.Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() mgl64.Vec2 {
	return mgl64.Vec2{r.random.Float64(), r.random.Float64()}
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() mgl64.Vec3 {
	return mgl64.Vec3{r.random.Float64(), r.random.Float64(), r.random.Float64()}
}

// SampleBarycentric maps a uniform square sample to barycentric coordinates
// (b0, b1, b2) using the square-root remapping, distributing points
// uniformly over a triangle instead of clustering them toward one vertex.
func SampleBarycentric(sample mgl64.Vec2) mgl64.Vec3 {
	a := math.Sqrt(sample.X())
	return mgl64.Vec3{1 - a, a * sample.Y(), a * (1 - sample.Y())}
}
