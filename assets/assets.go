package assets

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

var ErrInvalidArena = errors.New("invalid arena")

// Wall is a solid rectangle in world coordinates.
type Wall struct {
	X, Y, Width, Height float64
	Name                string
}

// BallSpawn is where a ball appears. Radius 0 means the configured default.
type BallSpawn struct {
	X, Y   float64
	Radius float64
	Name   string
}

type Arena struct {
	Name   string
	Title  string
	Width  int
	Height int
	Walls  []Wall
	Spawns []BallSpawn
}

// ArenaNames lists the embedded arenas in name order.
func ArenaNames() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadArena parses levels/<name>.tmx. Walls come from the "Walls" object
// group and spawn points from "BallSpawns".
func LoadArena(name string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(path.Join("levels", name+".tmx"), tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load arena %q: %w", name, err)
	}

	arena := &Arena{
		Name:   name,
		Title:  levelMap.Properties.GetString("title"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	if arena.Title == "" {
		arena.Title = name
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("%w: %s: wall %q has no area", ErrInvalidArena, name, o.Name)
				}
				arena.Walls = append(arena.Walls, Wall{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Name:   o.Name,
				})
			}
		case "BallSpawns":
			for _, o := range og.Objects {
				arena.Spawns = append(arena.Spawns, BallSpawn{
					X:      o.X,
					Y:      o.Y,
					Radius: o.Properties.GetFloat("radius"),
					Name:   o.Name,
				})
			}
			// Left to right so spawn order is stable
			sort.SliceStable(arena.Spawns, func(i, j int) bool {
				return arena.Spawns[i].X < arena.Spawns[j].X
			})
		}
	}

	if arena.Width <= 0 || arena.Height <= 0 {
		return nil, fmt.Errorf("%w: %s: empty map", ErrInvalidArena, name)
	}
	if len(arena.Walls) == 0 {
		return nil, fmt.Errorf("%w: %s: no walls", ErrInvalidArena, name)
	}
	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("%w: %s: no ball spawns", ErrInvalidArena, name)
	}
	return arena, nil
}

func MustLoadArena(name string) *Arena {
	arena, err := LoadArena(name)
	if err != nil {
		panic(err)
	}
	return arena
}
