package tags

import "github.com/yohamta/donburi"

var (
	Ball  = donburi.NewTag().SetName("Ball")
	Wall  = donburi.NewTag().SetName("Wall")
	Arena = donburi.NewTag().SetName("Arena")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvBall  = "ball"
)
