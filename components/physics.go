package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX      float64
	SpeedY      float64
	Gravity     float64
	Friction    float64
	Restitution float64
	MaxSpeed    float64
	OnGround    *resolv.Object

	// Contacts found by UpdateCollisions this tick.
	Impacts []Impact
}

// Impact is a contact found while moving, before it is turned into a ball event.
type Impact struct {
	Speed   float64 // closing speed along the normal
	NormalX float64
	NormalY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
