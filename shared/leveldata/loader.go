package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	groundGroup  = "Ground"
	spawnGroup   = "PlayerSpawn"
	defaultLayer = "ground"
)

var ErrNoGround = errors.New("arena has no ground patches")

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	arena, err := buildArena(levelMap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	arena.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	return arena, nil
}

func buildArena(levelMap *tiled.Map) (*Arena, error) {
	// One tile is one world unit
	unit := float64(levelMap.TileWidth)
	if unit <= 0 {
		unit = 1
	}
	var props tiled.Properties
	if levelMap.Properties != nil {
		props = *levelMap.Properties
	}
	originX := props.GetFloat("originX")
	originZ := props.GetFloat("originZ")

	arena := &Arena{}
	if len(props.Get("minX")) > 0 && len(props.Get("maxX")) > 0 {
		arena.MinX = props.GetFloat("minX")
		arena.MaxX = props.GetFloat("maxX")
		arena.HasBounds = true
	}

	first := true
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groundGroup:
			for _, o := range og.Objects {
				layer := o.Properties.GetString("layer")
				if layer == "" {
					layer = defaultLayer
				}
				p := Patch{
					Name:   o.Name,
					X:      originX + o.X/unit,
					Z:      originZ + o.Y/unit,
					Width:  o.Width / unit,
					Depth:  o.Height / unit,
					Height: o.Properties.GetFloat("height"),
					Layer:  layer,
					Travel: o.Properties.GetFloat("travel"),
					Period: o.Properties.GetFloat("period"),
				}
				arena.Patches = append(arena.Patches, p)
				if first {
					arena.Extent = Rect{MinX: p.X, MinZ: p.Z, MaxX: p.X, MaxZ: p.Z}
					first = false
				}
				arena.Extent = arena.Extent.grow(p.X, p.Z).grow(p.X+p.Width, p.Z+p.Depth)
			}
		case spawnGroup:
			// The first spawn wins
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.Spawn = Point{
					X: originX + o.X/unit,
					Y: o.Properties.GetFloat("elevation"),
					Z: originZ + o.Y/unit,
				}
			}
		}
	}

	if len(arena.Patches) == 0 {
		return nil, ErrNoGround
	}

	// Patches are drawn lowest first
	sort.SliceStable(arena.Patches, func(i, j int) bool {
		return arena.Patches[i].Height < arena.Patches[j].Height
	})
	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each one,
// and returns them keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
