package assets

import (
	"image/color"
	"testing"
)

func TestShadowEllipseFades(t *testing.T) {
	c := color.RGBA{A: 200}
	img := ellipse(40, 20, func(d, _ float64) float64 {
		if d >= 1 {
			return 0
		}
		return (1 - d) * (1 - d)
	}, 1, c)

	center := img.RGBAAt(20, 10).A
	inner := img.RGBAAt(30, 10).A
	corner := img.RGBAAt(0, 0).A
	if !(center > inner && inner > corner) {
		t.Errorf("expected alpha to fall off from the center: %d > %d > %d", center, inner, corner)
	}
	if corner != 0 {
		t.Errorf("expected transparent corner, got %d", corner)
	}
	if center > c.A {
		t.Errorf("alpha %d exceeds color alpha %d", center, c.A)
	}
}

func TestEllipseDegenerateSize(t *testing.T) {
	img := ellipse(0, -4, func(float64, float64) float64 { return 1 }, 1, color.RGBA{A: 255})
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("expected 1x1 image, got %v", b)
	}
}
