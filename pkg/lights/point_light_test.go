package lights

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumarender/go-direct-lighting/pkg/core"
)

func assertVec3InDelta(t *testing.T, expected, actual mgl64.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), delta, msgAndArgs...)
	assert.InDelta(t, expected.Y(), actual.Y(), delta, msgAndArgs...)
	assert.InDelta(t, expected.Z(), actual.Z(), delta, msgAndArgs...)
}

func assertFiniteVec3(t *testing.T, v mgl64.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.False(t, math.IsNaN(v.X()) || math.IsNaN(v.Y()) || math.IsNaN(v.Z()), msgAndArgs...)
	assert.False(t, math.IsInf(v.X(), 0) || math.IsInf(v.Y(), 0) || math.IsInf(v.Z(), 0), msgAndArgs...)
}

func TestPointLightAttributes(t *testing.T) {
	light := NewPointLight(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{10, 10, 10})
	attrs := light.Attributes(mgl64.Vec3{}, 0.75)

	assertVec3InDelta(t, mgl64.Vec3{0, 0, 1}, attrs.Direction, 1e-12)
	assert.Equal(t, 0.75, attrs.ShadowFactor, "shadow factor passes through verbatim")
	assertVec3InDelta(t, mgl64.Vec3{0, 0, 5}, attrs.Point, 1e-12)

	// Worked example: intensity/(4π·25) per channel
	expected := 10.0 / (4 * math.Pi * 25)
	assertVec3InDelta(t, mgl64.Vec3{expected, expected, expected}, attrs.Intensity, 1e-12)

	// Deterministic path leaves PDF, normal, and corners zero
	assert.Zero(t, attrs.PDF)
	assert.Equal(t, mgl64.Vec3{}, attrs.Normal)
	for _, corner := range attrs.Corners {
		assert.Equal(t, mgl64.Vec3{}, corner)
	}
}

func TestPointLightSample(t *testing.T) {
	light := NewPointLight(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{10, 10, 10})
	sample := light.Sample(mgl64.Vec3{}, mgl64.Vec3{0.3, 0.7, 0.1})

	assert.Equal(t, 1.0, sample.PDF, "point light sample is a unit point mass")
	assertVec3InDelta(t, mgl64.Vec3{0, 0, 1}, sample.Direction, 1e-12)
	assert.Equal(t, sample.Direction, sample.Normal, "point light normal is the sample direction")

	expected := light.Radiance(mgl64.Vec3{})
	assertVec3InDelta(t, expected, sample.Intensity, 1e-12)
}

func TestPointLightEvaluateSampleAgree(t *testing.T) {
	light := NewPointLight(mgl64.Vec3{1, 4, -2}, mgl64.Vec3{25, 18, 9})

	points := []mgl64.Vec3{
		{0, 0, 0},
		{3, 1, 2},
		{-5, 2, 8},
	}
	for _, point := range points {
		attrs := light.Attributes(point, 1.0)
		sample := light.Sample(point, mgl64.Vec3{})
		assertVec3InDelta(t, sample.Intensity, attrs.Intensity, 1e-12,
			"evaluated and sampled intensity must agree at %v", point)
	}
}

// spotConeFactor evaluates the pre-inverse-square cone attenuation by
// placing a shading point at unit distance and dividing out the
// normalization shared with an unrestricted point light.
func spotConeFactor(t *testing.T, light *PointLight, theta float64) float64 {
	t.Helper()
	// Spot axis is -Y; rotate the shading point by theta off axis.
	point := mgl64.Vec3{0, 3, 0}.Add(mgl64.Vec3{math.Sin(theta), -math.Cos(theta), 0})
	attrs := light.Attributes(point, 1.0)
	return attrs.Intensity.X() / (100 * core.InvFourPi)
}

func TestSpotLightConeFalloff(t *testing.T) {
	opening := 30 * math.Pi / 180
	penumbra := 5 * math.Pi / 180
	light := NewSpotLight(mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, -1, 0},
		mgl64.Vec3{100, 100, 100}, opening, penumbra)

	tests := []struct {
		name     string
		thetaDeg float64
		want     float64 // -1 means strictly between 0 and 1
	}{
		{"on axis", 0, 1.0},
		{"inside inner cone", 20, 1.0},
		{"at inner edge", 25, 1.0},
		{"inside penumbra band", 28, -1},
		{"outside cone", 32, 0.0},
		{"far outside cone", 60, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor := spotConeFactor(t, light, tt.thetaDeg*math.Pi/180)
			if tt.want == -1 {
				assert.Greater(t, factor, 0.0)
				assert.Less(t, factor, 1.0)
			} else {
				assert.InDelta(t, tt.want, factor, 1e-9)
			}
		})
	}
}

func TestSpotLightPenumbraMonotonic(t *testing.T) {
	opening := 30 * math.Pi / 180
	penumbra := 5 * math.Pi / 180
	light := NewSpotLight(mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, -1, 0},
		mgl64.Vec3{100, 100, 100}, opening, penumbra)

	prev := math.Inf(1)
	for deg := 0.0; deg <= 40; deg += 0.5 {
		factor := spotConeFactor(t, light, deg*math.Pi/180)
		require.LessOrEqual(t, factor, prev+1e-9, "attenuation must not increase with angle (at %v deg)", deg)
		require.GreaterOrEqual(t, factor, 0.0)
		require.LessOrEqual(t, factor, 1.0)
		prev = factor
	}
}

func TestPointLightDegenerateDistance(t *testing.T) {
	position := mgl64.Vec3{2, 2, 2}
	light := NewPointLight(position, mgl64.Vec3{10, 10, 10})

	// Shading point within sqrt(1e-3) of the light
	attrs := light.Attributes(position.Add(mgl64.Vec3{1e-4, 0, 0}), 1.0)
	assert.Equal(t, mgl64.Vec3{}, attrs.Direction, "degenerate direction collapses to zero")
	assertFiniteVec3(t, attrs.Intensity, "inverse-square floor keeps intensity finite")

	sample := light.Sample(position, mgl64.Vec3{})
	assertFiniteVec3(t, sample.Direction)
	assert.Equal(t, 1.0, sample.PDF)
}

func TestPointLightIntensityNonNegative(t *testing.T) {
	light := NewSpotLight(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0.2, -1, 0.1},
		mgl64.Vec3{50, 40, 30}, 0.8, 0.2)

	points := []mgl64.Vec3{
		{0, 0, 0}, {4, 0, -3}, {-2, 8, 1}, {0, 5.2, 0},
	}
	for _, point := range points {
		attrs := light.Attributes(point, 1.0)
		assertFiniteVec3(t, attrs.Intensity)
		assert.GreaterOrEqual(t, attrs.Intensity.X(), 0.0)
		assert.GreaterOrEqual(t, attrs.Intensity.Y(), 0.0)
		assert.GreaterOrEqual(t, attrs.Intensity.Z(), 0.0)
	}
}
