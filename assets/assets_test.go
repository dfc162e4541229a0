package assets

import (
	"errors"
	"testing"
)

func TestArenaNames(t *testing.T) {
	names, err := ArenaNames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 || names[0] != "arena" {
		t.Fatalf("expected the built-in arena, got %v", names)
	}
}

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena("arena")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if arena.Width != 640 || arena.Height != 360 {
		t.Errorf("expected 640x360, got %dx%d", arena.Width, arena.Height)
	}
	if arena.Title != "Arena" {
		t.Errorf("expected title from map properties, got %q", arena.Title)
	}
	if len(arena.Walls) != 5 {
		t.Fatalf("expected 5 walls, got %d", len(arena.Walls))
	}

	var floor *Wall
	for i := range arena.Walls {
		if arena.Walls[i].Name == "floor" {
			floor = &arena.Walls[i]
		}
	}
	if floor == nil {
		t.Fatal("expected a floor wall")
	}
	if floor.Y != 340 || floor.Width != 640 || floor.Height != 20 {
		t.Errorf("unexpected floor %+v", *floor)
	}

	if len(arena.Spawns) != 3 {
		t.Fatalf("expected 3 spawns, got %d", len(arena.Spawns))
	}
	for i := 1; i < len(arena.Spawns); i++ {
		if arena.Spawns[i-1].X > arena.Spawns[i].X {
			t.Errorf("spawns not sorted by x: %+v", arena.Spawns)
		}
	}
	if arena.Spawns[1].Name != "middle" || arena.Spawns[1].Radius != 30 {
		t.Errorf("expected middle spawn with radius 30, got %+v", arena.Spawns[1])
	}
	if arena.Spawns[0].Radius != 0 {
		t.Errorf("expected default radius on left spawn, got %v", arena.Spawns[0].Radius)
	}
}

func TestLoadArenaMissing(t *testing.T) {
	if _, err := LoadArena("nope"); err == nil {
		t.Fatal("expected error")
	} else if errors.Is(err, ErrInvalidArena) {
		t.Errorf("missing file should not be reported as invalid content: %v", err)
	}
}

func TestMustLoadArenaPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustLoadArena("nope")
}
