package factory

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/automoto/ballpit/archetypes"
	"github.com/automoto/ballpit/assets"
	"github.com/automoto/ballpit/ball"
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/scene"
	"github.com/automoto/ballpit/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrBallLimit = errors.New("ball limit reached")
	ErrBlocked   = errors.New("spawn point is blocked")
)

// BallSpec describes a ball to create. X and Y are the center.
type BallSpec struct {
	ID     string
	X, Y   float64
	Radius float64
	Color  color.RGBA

	SquishOnCollision bool
	ShowShadow        bool
}

// CreateBall builds the ball's scene nodes, animation state and collision
// object. Nothing is added to the world if the ball cannot be built.
func CreateBall(ecs *ecs.ECS, spec BallSpec) (*donburi.Entry, error) {
	ballCfg := cfg.Ball
	ballCfg.SquishOnCollision = spec.SquishOnCollision

	root, nodes := newBallNodes(spec.Radius, spec.Color, ballCfg)
	b, err := ball.New(spec.ID, spec.Radius, nodes, ballCfg)
	if err != nil {
		return nil, fmt.Errorf("create ball %q: %w", spec.ID, err)
	}

	entry := archetypes.Ball.Spawn(ecs)

	size := spec.Radius * 2
	obj := resolv.NewObject(spec.X-spec.Radius, spec.Y-spec.Radius, size, size, tags.ResolvBall)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.SetValue(entry, components.PhysicsData{
		Gravity:     cfg.Physics.Gravity,
		Friction:    cfg.Physics.Friction,
		Restitution: cfg.Physics.Restitution,
		MaxSpeed:    cfg.Physics.MaxSpeed,
	})
	components.Ball.SetValue(entry, components.BallData{
		Ball:  b,
		Root:  root,
		Color: spec.Color,
	})

	b.Update(0, spec.X, spec.Y, spec.Y+spec.Radius)
	if spec.ShowShadow {
		b.AnimateShadow(true, cfg.Spawn.ShadowFadeIn)
	}

	return entry, nil
}

func newBallNodes(radius float64, c color.RGBA, ballCfg ball.Config) (*scene.Node, ball.Nodes) {
	root := scene.NewNode("ball")

	shadowContainer := scene.NewNode("shadowContainer")
	sw, sh := ballCfg.ShadowSize(radius)
	shadow := scene.NewSprite("shadow", sw, sh, scene.ImageDrawer(func(n *scene.Node) *ebiten.Image {
		return assets.ShadowTexture(int(n.W), int(n.H), cfg.Colors.Shadow)
	}))

	offset := scene.NewNode("offset")
	rotation := scene.NewNode("rotation")

	bw, bh := ballCfg.BodySize(radius)
	body := scene.NewSprite("body", bw, bh, scene.ImageDrawer(func(n *scene.Node) *ebiten.Image {
		return assets.BallTexture(int(n.W), c)
	}))

	lw, lh := ballCfg.LogoSize(radius)
	logo := scene.NewSprite("logo", lw, lh, scene.ImageDrawer(func(n *scene.Node) *ebiten.Image {
		return assets.LogoTexture(int(n.W), int(n.H), cfg.Colors.Logo)
	}))

	root.AddChild(shadowContainer)
	shadowContainer.AddChild(shadow)
	root.AddChild(offset)
	offset.AddChild(rotation)
	rotation.AddChild(body)
	rotation.AddChild(logo)

	return root, ball.Nodes{
		Root:            root,
		ShadowContainer: shadowContainer,
		Shadow:          shadow,
		Offset:          offset,
		Rotation:        rotation,
		Body:            body,
		Logo:            logo,
	}
}

// SpawnBallAt adds a ball centered on (x, y) using the current settings.
// A radius of 0 uses the configured default.
func SpawnBallAt(ecs *ecs.ECS, x, y, radius float64) (*donburi.Entry, error) {
	if CountBalls(ecs) >= cfg.Spawn.MaxBalls {
		return nil, ErrBallLimit
	}
	if radius <= 0 {
		radius = cfg.Spawn.DefaultRadius
	}
	if blocked(ecs, x, y, radius) {
		return nil, fmt.Errorf("%w: (%.0f, %.0f)", ErrBlocked, x, y)
	}

	var n int
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		n = level.NextBall
		level.NextBall++
	}

	spec := BallSpec{
		ID:         fmt.Sprintf("ball-%d", n),
		X:          x,
		Y:          y,
		Radius:     radius,
		Color:      cfg.BallColor(n),
		ShowShadow: true,
	}
	if settingsEntry, ok := components.Settings.First(ecs.World); ok {
		settings := components.Settings.Get(settingsEntry)
		spec.SquishOnCollision = settings.SquishOnCollision
		spec.ShowShadow = settings.ShowShadow
	}

	return CreateBall(ecs, spec)
}

// SpawnBall adds a ball at the arena's next spawn point.
func SpawnBall(ecs *ecs.ECS) (*donburi.Entry, error) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, errors.New("no level loaded")
	}
	level := components.Level.Get(levelEntry)
	spawns := level.Arena.Spawns
	if len(spawns) == 0 {
		return nil, ErrBlocked
	}

	var err error
	for i := 0; i < len(spawns); i++ {
		sp := spawns[level.NextSpawn%len(spawns)]
		level.NextSpawn = (level.NextSpawn + 1) % len(spawns)

		var e *donburi.Entry
		e, err = SpawnBallAt(ecs, sp.X, sp.Y, sp.Radius)
		if !errors.Is(err, ErrBlocked) {
			return e, err
		}
	}
	return nil, err
}

// RemoveAllBalls deletes every ball and its collision object.
func RemoveAllBalls(ecs *ecs.ECS) int {
	var entries []*donburi.Entry
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	for _, e := range entries {
		if obj := components.Object.Get(e); obj.Object != nil {
			removeFromSpace(ecs, obj.Object)
		}
		ecs.World.Remove(e.Entity())
	}
	return len(entries)
}

func CountBalls(ecs *ecs.ECS) int {
	n := 0
	tags.Ball.Each(ecs.World, func(*donburi.Entry) {
		n++
	})
	return n
}

// blocked reports whether a ball at (x, y) would overlap a wall or another ball.
func blocked(ecs *ecs.ECS, x, y, radius float64) bool {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return false
	}
	space := components.Space.Get(spaceEntry)
	for _, o := range space.Objects() {
		if o.HasTags(tags.ResolvSolid) && circleHitsRect(x, y, radius, o.X, o.Y, o.W, o.H) {
			return true
		}
		if o.HasTags(tags.ResolvBall) {
			ox, oy := o.X+o.W/2, o.Y+o.H/2
			r := radius + o.W/2
			if (ox-x)*(ox-x)+(oy-y)*(oy-y) < r*r {
				return true
			}
		}
	}
	return false
}

func circleHitsRect(cx, cy, r, x, y, w, h float64) bool {
	nx := min(max(cx, x), x+w)
	ny := min(max(cy, y), y+h)
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy < r*r
}
