// Package carrier is a development/test-only stand-in for the external
// carrier-image generator spec.md names as a separate collaborator. It
// satisfies the documented contract — gradient background, translucent
// ellipses, small gray patches, thin lines, mean cost ≤ 0.7 — from an
// explicit seed, since the original generator's non-seedable randomness
// would make property and scenario tests (spec.md 8, S3) irreproducible.
// Only the tests of internal/codec import this package; its non-test
// code does not.
package carrier

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

const (
	minEllipses = 60
	minPatches  = 200
	minLines    = 10
)

// Generate returns a deterministic W×H RGBA raster matching the
// carrier-generator contract in spec.md 6.
func Generate(seed int64, w, h int) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	paintGradient(img, rng)
	for i := 0; i < minEllipses; i++ {
		paintEllipse(img, rng)
	}
	for i := 0; i < minPatches; i++ {
		paintPatch(img, rng)
	}
	for i := 0; i < minLines; i++ {
		paintLine(img, rng)
	}

	return img
}

func paintGradient(img *image.RGBA, rng *rand.Rand) {
	bounds := img.Bounds()
	c0 := randColor(rng)
	c1 := randColor(rng)
	w, h := bounds.Dx(), bounds.Dy()

	for y := 0; y < h; y++ {
		ty := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			tx := float64(x) / float64(w)
			t := (tx + ty) / 2
			img.Set(bounds.Min.X+x, bounds.Min.Y+y, lerp(c0, c1, t))
		}
	}
}

func paintEllipse(img *image.RGBA, rng *rand.Rand) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	cx := rng.Intn(w)
	cy := rng.Intn(h)
	rx := 4 + rng.Intn(w/6+1)
	ry := 4 + rng.Intn(h/6+1)
	col := randColor(rng)
	alpha := uint8(64 + rng.Intn(128))

	for y := -ry; y <= ry; y++ {
		for x := -rx; x <= rx; x++ {
			if float64(x*x)/float64(rx*rx)+float64(y*y)/float64(ry*ry) > 1 {
				continue
			}
			px, py := cx+x, cy+y
			if px < 0 || py < 0 || px >= w || py >= h {
				continue
			}
			blendAt(img, bounds.Min.X+px, bounds.Min.Y+py, col, alpha)
		}
	}
}

func paintPatch(img *image.RGBA, rng *rand.Rand) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	x := rng.Intn(w)
	y := rng.Intn(h)
	size := 1 + rng.Intn(3)
	gray := uint8(rng.Intn(256))
	col := color.RGBA{R: gray, G: gray, B: gray, A: 255}

	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			px, py := x+dx, y+dy
			if px >= w || py >= h {
				continue
			}
			img.SetRGBA(bounds.Min.X+px, bounds.Min.Y+py, col)
		}
	}
}

func paintLine(img *image.RGBA, rng *rand.Rand) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	x0, y0 := rng.Intn(w), rng.Intn(h)
	length := w/4 + rng.Intn(w/2+1)
	angle := rng.Float64() * 2 * math.Pi
	col := randColor(rng)

	for i := 0; i < length; i++ {
		px := x0 + int(float64(i)*math.Cos(angle))
		py := y0 + int(float64(i)*math.Sin(angle))
		if px < 0 || py < 0 || px >= w || py >= h {
			continue
		}
		img.Set(bounds.Min.X+px, bounds.Min.Y+py, col)
	}
}

func randColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpByte(a.R, b.R, t),
		G: lerpByte(a.G, b.G, t),
		B: lerpByte(a.B, b.B, t),
		A: 255,
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func blendAt(img *image.RGBA, x, y int, col color.RGBA, alpha uint8) {
	bg := img.RGBAAt(x, y)
	a := float64(alpha) / 255
	img.SetRGBA(x, y, color.RGBA{
		R: blendByte(bg.R, col.R, a),
		G: blendByte(bg.G, col.G, a),
		B: blendByte(bg.B, col.B, a),
		A: 255,
	})
}

func blendByte(bg, fg uint8, a float64) uint8 {
	return uint8(float64(bg)*(1-a) + float64(fg)*a)
}
