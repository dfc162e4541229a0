package systems

import (
	"math"
	"testing"

	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS returns a world with a collision space and default config.
// Nothing in it needs a window.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	return e
}

func addBall(t *testing.T, e *ecs.ECS, id string, x, y, radius float64) *donburi.Entry {
	t.Helper()
	entry, err := factory.CreateBall(e, factory.BallSpec{
		ID:         id,
		X:          x,
		Y:          y,
		Radius:     radius,
		Color:      cfg.BallColor(0),
		ShowShadow: true,
	})
	if err != nil {
		t.Fatalf("CreateBall: %v", err)
	}
	return entry
}

func ballCenter(entry *donburi.Entry) (float64, float64) {
	return components.Object.Get(entry).Center()
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// memStore keeps saved items in memory.
type memStore struct {
	items map[string][]byte
	saves int
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	m.saves++
	return nil
}

func useStore(t *testing.T, s settingsStore) {
	t.Helper()
	prev := store
	store = s
	t.Cleanup(func() { store = prev })
}
