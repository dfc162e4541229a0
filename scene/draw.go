package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageDrawer draws the image returned by img stretched to the node's W x H.
// img is called at draw time, so textures can be created lazily.
func ImageDrawer(img func(n *Node) *ebiten.Image) Drawer {
	op := &ebiten.DrawImageOptions{}
	return func(screen *ebiten.Image, n *Node, geom ebiten.GeoM, alpha float32) {
		src := img(n)
		if src == nil || n.W <= 0 || n.H <= 0 {
			return
		}
		b := src.Bounds()

		op.GeoM.Reset()
		op.GeoM.Scale(n.W/float64(b.Dx()), n.H/float64(b.Dy()))
		op.GeoM.Translate(-n.W/2, -n.H/2)
		op.GeoM.Concat(geom)

		op.ColorScale.Reset()
		op.ColorScale.ScaleAlpha(alpha)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(src, op)
	}
}
