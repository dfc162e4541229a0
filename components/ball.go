package components

import (
	"image/color"

	"github.com/automoto/ballpit/ball"
	"github.com/automoto/ballpit/scene"
	"github.com/yohamta/donburi"
)

// BallData links the animated ball to the scene nodes that draw it.
type BallData struct {
	*ball.Ball
	Root  *scene.Node
	Color color.RGBA
}

var Ball = donburi.NewComponentType[BallData]()

// BallEventsData queues the events raised for a ball during a frame.
// UpdateBalls hands them to the ball and clears the queue.
type BallEventsData struct {
	Pending []ball.Event
}

func (b *BallEventsData) Push(ev ball.Event) {
	b.Pending = append(b.Pending, ev)
}

var BallEvents = donburi.NewComponentType[BallEventsData]()
