// Package scene is a small retained node tree for ebiten. Children inherit
// their parent's translation, rotation, scale and opacity, and any node can
// run timed actions.
package scene

import (
	"github.com/automoto/ballpit/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// Drawer renders a node's content centered on the origin of geom.
type Drawer func(screen *ebiten.Image, n *Node, geom ebiten.GeoM, alpha float32)

type Node struct {
	Name string

	X, Y           float64
	Rotation       float64
	ScaleX, ScaleY float64

	// W and H are the content size handed to Drawer, before ScaleX/ScaleY.
	W, H float64

	Hidden bool
	Draw   Drawer

	alpha    float64
	parent   *Node
	children []*Node
	actions  []Action
}

// NewNode creates an empty container node.
func NewNode(name string) *Node {
	return &Node{
		Name:   name,
		ScaleX: 1,
		ScaleY: 1,
		alpha:  1,
	}
}

// NewSprite creates a node that draws content of the given size.
func NewSprite(name string, w, h float64, draw Drawer) *Node {
	n := NewNode(name)
	n.W, n.H = w, h
	n.Draw = draw
	return n
}

// AddChild appends c to n's children. Children are drawn in insertion order,
// so later children appear on top.
func (n *Node) AddChild(c *Node) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) RemoveChild(c *Node) {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (n *Node) Children() []*Node { return n.children }
func (n *Node) Parent() *Node { return n.parent }

func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
}

func (n *Node) SetRotation(radians float64) {
	n.Rotation = radians
}

func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
}

// SetOpacity sets the node's own opacity. Values are clamped to [0, 1].
func (n *Node) SetOpacity(alpha float64) {
	n.alpha = gamemath.Clamp(alpha, 0, 1)
}

func (n *Node) Opacity() float64 {
	return n.alpha
}

// Run starts a timed action on the node.
func (n *Node) Run(a Action) {
	n.actions = append(n.actions, a)
}

// RotateBy runs a RotateBy action on the node.
func (n *Node) RotateBy(angle, duration float64) {
	n.Run(RotateBy(angle, duration))
}

// FadeTo runs a FadeTo action on the node, replacing any fade still running.
func (n *Node) FadeTo(alpha, duration float64) {
	kept := n.actions[:0]
	for _, a := range n.actions {
		if !isFade(a) {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(n.actions); i++ {
		n.actions[i] = nil
	}
	n.actions = kept
	n.Run(FadeTo(alpha, duration))
}

// RunningActions reports how many actions are still in progress on n itself.
func (n *Node) RunningActions() int {
	return len(n.actions)
}

// Update advances the actions of n and its descendants by dt seconds.
func (n *Node) Update(dt float64) {
	if len(n.actions) > 0 {
		running := n.actions[:0]
		for _, a := range n.actions {
			if !a.Step(n, dt) {
				running = append(running, a)
			}
		}
		for i := len(running); i < len(n.actions); i++ {
			n.actions[i] = nil
		}
		n.actions = running
	}
	for _, c := range n.children {
		c.Update(dt)
	}
}

// LocalGeoM returns the node's transform relative to its parent.
func (n *Node) LocalGeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(n.ScaleX, n.ScaleY)
	g.Rotate(n.Rotation)
	g.Translate(n.X, n.Y)
	return g
}

// Render draws n and its descendants, composing transforms and opacity from parent.
func (n *Node) Render(screen *ebiten.Image, parent ebiten.GeoM, parentAlpha float64) {
	if n.Hidden {
		return
	}
	alpha := parentAlpha * n.alpha
	if alpha <= 0 {
		return
	}

	geom := n.LocalGeoM()
	geom.Concat(parent)

	if n.Draw != nil {
		n.Draw(screen, n, geom, float32(alpha))
	}
	for _, c := range n.children {
		c.Render(screen, geom, alpha)
	}
}
