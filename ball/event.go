package ball

// EventKind identifies what happened to a ball during a frame.
type EventKind int

const (
	EventDragStart EventKind = iota
	EventDragEnd
	EventCollision
)

func (k EventKind) String() string {
	switch k {
	case EventDragStart:
		return "DragStart"
	case EventDragEnd:
		return "DragEnd"
	case EventCollision:
		return "Collision"
	}
	return "Unknown"
}

// Event is an input to Ball.Handle. Strength and the normal are only used by
// EventCollision; Strength is 0..1 and the normal points away from the surface
// that was hit.
type Event struct {
	Kind     EventKind
	Strength float64
	NormalX  float64
	NormalY  float64
}

func DragStart() Event { return Event{Kind: EventDragStart} }
func DragEnd() Event { return Event{Kind: EventDragEnd} }

// Collision builds a collision event.
func Collision(strength, normalX, normalY float64) Event {
	return Event{Kind: EventCollision, Strength: strength, NormalX: normalX, NormalY: normalY}
}
