package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/thirdperson/shared/leveldata"
)

var (
	//go:embed all:arenas
	assetFS embed.FS

	//go:embed tuning.yaml
	DefaultTuning []byte
)

const arenaDir = "arenas"

// DefaultArena is loaded when no arena is chosen.
const DefaultArena = "courtyard"

// ArenaLoader loads arenas from embedded assets.
type ArenaLoader struct {
	arenas map[string]*leveldata.Arena
	names  []string
}

func NewArenaLoader() *ArenaLoader {
	return &ArenaLoader{}
}

// LoadArenas loads all embedded arenas. The result is cached.
func (l *ArenaLoader) LoadArenas() ([]string, error) {
	if l.arenas != nil {
		return l.names, nil
	}
	arenas, names, err := leveldata.LoadAllArenas(assetFS, arenaDir)
	if err != nil {
		return nil, fmt.Errorf("embedded arenas: %w", err)
	}
	l.arenas, l.names = arenas, names
	return names, nil
}

// Arena returns the named arena.
func (l *ArenaLoader) Arena(name string) (*leveldata.Arena, error) {
	if _, err := l.LoadArenas(); err != nil {
		return nil, err
	}
	arena, ok := l.arenas[name]
	if !ok {
		return nil, fmt.Errorf("unknown arena %q (have %v)", name, l.names)
	}
	return arena, nil
}

// MustLoadArena is Arena for scene setup, where a missing embedded arena is a build defect.
func (l *ArenaLoader) MustLoadArena(name string) *leveldata.Arena {
	arena, err := l.Arena(name)
	if err != nil {
		panic(err)
	}
	return arena
}
