package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Ball textures are drawn procedurally and cached by size and color.
// They must only be requested while the game is running.

type textureKey struct {
	kind string
	w, h int
	c    color.RGBA
}

var textures = map[textureKey]*ebiten.Image{}

// BallTexture is a filled disc of diameter size with a soft highlight.
func BallTexture(size int, c color.RGBA) *ebiten.Image {
	key := textureKey{kind: "ball", w: size, h: size, c: c}
	if img, ok := textures[key]; ok {
		return img
	}

	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, c, true)

	highlight := color.RGBA{R: 255, G: 255, B: 255, A: 70}
	vector.DrawFilledCircle(img, r*0.7, r*0.6, r*0.35, highlight, true)
	vector.StrokeCircle(img, r, r, r-1, 2, darken(c, 0.7), true)

	textures[key] = img
	return img
}

// LogoTexture is an elliptical seam ring that fills w x h.
func LogoTexture(w, h int, c color.RGBA) *ebiten.Image {
	key := textureKey{kind: "logo", w: w, h: h, c: c}
	if img, ok := textures[key]; ok {
		return img
	}

	thickness := math.Max(1.5, float64(min(w, h))*0.06)
	img := ebiten.NewImageFromImage(ellipse(w, h, func(d, edge float64) float64 {
		// d is the normalized distance from the center, 1 on the rim
		dist := math.Abs(d-1+edge) / edge
		return math.Max(0, 1-dist)
	}, thickness, c))

	textures[key] = img
	return img
}

// ShadowTexture is an ellipse that fades from c at the center to transparent.
func ShadowTexture(w, h int, c color.RGBA) *ebiten.Image {
	key := textureKey{kind: "shadow", w: w, h: h, c: c}
	if img, ok := textures[key]; ok {
		return img
	}

	img := ebiten.NewImageFromImage(ellipse(w, h, func(d, _ float64) float64 {
		if d >= 1 {
			return 0
		}
		return (1 - d) * (1 - d)
	}, 1, c))

	textures[key] = img
	return img
}

// ellipse rasterizes a w x h image where each pixel's coverage is
// shade(normalized radius, normalized edge width).
func ellipse(w, h int, shade func(d, edge float64) float64, thickness float64, c color.RGBA) *image.RGBA {
	w, h = max(w, 1), max(h, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rx, ry := float64(w)/2, float64(h)/2
	edge := thickness / math.Min(rx, ry)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - rx) / rx
			dy := (float64(y) + 0.5 - ry) / ry
			a := shade(math.Hypot(dx, dy), edge)
			if a <= 0 {
				continue
			}
			a = math.Min(a, 1)
			// premultiplied
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(c.R) * a * float64(c.A) / 255),
				G: uint8(float64(c.G) * a * float64(c.A) / 255),
				B: uint8(float64(c.B) * a * float64(c.A) / 255),
				A: uint8(float64(c.A) * a),
			})
		}
	}
	return img
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
