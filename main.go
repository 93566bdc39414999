package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lumarender/go-direct-lighting/pkg/core"
	"github.com/lumarender/go-direct-lighting/pkg/lights"
)

// buildLight creates the demo light for a given kind, hovering above the
// origin of the ground plane.
func buildLight(kind string) (lights.Light, error) {
	position := mgl64.Vec3{0, 3, 0}
	down := mgl64.Vec3{0, -1, 0}

	switch kind {
	case "point":
		return lights.NewPointLight(position, mgl64.Vec3{400, 400, 400}), nil
	case "spot":
		return lights.NewSpotLight(position, down, mgl64.Vec3{400, 380, 330},
			30*math.Pi/180, 5*math.Pi/180), nil
	case "directional":
		return lights.NewDirectionalLight(mgl64.Vec3{}, mgl64.Vec3{-0.4, -1, -0.2},
			mgl64.Vec3{1.2, 1.15, 1.0}), nil
	case "area":
		transform := mgl64.Translate3D(position.X(), position.Y(), position.Z())
		return lights.NewRectAreaLight(
			mgl64.Vec3{},           // center
			down,                   // emission normal
			mgl64.Vec3{0.8, 0, 0},  // half-width
			mgl64.Vec3{0, 0, 0.5},  // half-height
			transform,
			mgl64.Vec3{60, 58, 52},
		), nil
	default:
		return nil, fmt.Errorf("unknown light kind %q", kind)
	}
}

// shadePlane evaluates direct lighting on the ground plane for one pixel.
func shadePlane(light lights.Light, point mgl64.Vec3, strata int, sampler core.Sampler) mgl64.Vec3 {
	up := mgl64.Vec3{0, 1, 0}

	if rect, ok := light.(*lights.RectAreaLight); ok {
		// Monte Carlo over a stratified grid; Intensity comes back
		// pre-divided by the PDF, so contributions accumulate with
		// uniform weights.
		var sum mgl64.Vec3
		for y := 0; y < strata; y++ {
			for x := 0; x < strata; x++ {
				attrs := rect.SampleStratified(point, sampler.Get2D(), x, y, strata, strata)
				sum = sum.Add(attrs.Intensity.Mul(math.Max(0, attrs.Direction.Dot(up))))
			}
		}
		return sum.Mul(1 / float64(strata*strata))
	}

	attrs := light.Attributes(point, 1.0)
	return attrs.Intensity.Mul(attrs.ShadowFactor * math.Max(0, attrs.Direction.Dot(up)))
}

func toneMap(radiance mgl64.Vec3) color.NRGBA {
	encode := func(v float64) uint8 {
		v = math.Pow(mgl64.Clamp(v, 0, 1), 1/2.2)
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{
		R: encode(radiance.X()),
		G: encode(radiance.Y()),
		B: encode(radiance.Z()),
		A: 255,
	}
}

func main() {
	lightKind := flag.String("light", "spot", "Light kind: point, spot, directional, or area")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	strata := flag.Int("strata", 4, "Strata per axis for area-light sampling")
	output := flag.String("output", "lighting.png", "Output PNG path")
	flag.Parse()

	light, err := buildLight(*lightKind)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %s light preview (%dx%d)...\n", *lightKind, *width, *height)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	img := image.NewNRGBA(image.Rect(0, 0, *width, *height))

	// Ground plane spans [-3, 3] on x and z at y = 0.
	startTime := time.Now()
	const extent = 3.0
	for py := 0; py < *height; py++ {
		for px := 0; px < *width; px++ {
			worldX := (float64(px)/float64(*width)*2 - 1) * extent
			worldZ := (float64(py)/float64(*height)*2 - 1) * extent
			radiance := shadePlane(light, mgl64.Vec3{worldX, 0, worldZ}, *strata, sampler)
			img.SetNRGBA(px, py, toneMap(radiance))
		}
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Preview saved as %s\n", *output)
}
