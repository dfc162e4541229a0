package components

import "github.com/yohamta/donburi"

// DragData is attached to a ball while the pointer holds it.
type DragData struct {
	OffsetX, OffsetY float64 // grab point relative to the ball center
	Samples          []Vector
	Next             int
}

// Record stores a pointer delta in the ring of recent samples.
func (d *DragData) Record(dx, dy float64, size int) {
	if size <= 0 {
		return
	}
	if len(d.Samples) < size {
		d.Samples = append(d.Samples, Vector{X: dx, Y: dy})
		return
	}
	d.Samples[d.Next%len(d.Samples)] = Vector{X: dx, Y: dy}
	d.Next = (d.Next + 1) % len(d.Samples)
}

// Velocity is the mean of the recorded pointer deltas.
func (d *DragData) Velocity() (vx, vy float64) {
	if len(d.Samples) == 0 {
		return 0, 0
	}
	for _, s := range d.Samples {
		vx += s.X
		vy += s.Y
	}
	n := float64(len(d.Samples))
	return vx / n, vy / n
}

var Drag = donburi.NewComponentType[DragData]()
