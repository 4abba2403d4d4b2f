package assets

import (
	"testing"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/leveldata"
)

func TestEmbeddedCourtyard(t *testing.T) {
	loader := NewArenaLoader()
	names, err := loader.LoadArenas()
	if err != nil {
		t.Fatalf("LoadArenas: %v", err)
	}
	if len(names) == 0 {
		t.Fatalf("expected embedded arenas")
	}

	arena, err := loader.Arena(DefaultArena)
	if err != nil {
		t.Fatalf("Arena(%q): %v", DefaultArena, err)
	}
	if arena.Spawn != (leveldata.Point{}) {
		t.Fatalf("expected spawn at the origin, got %+v", arena.Spawn)
	}
	if !arena.HasBounds || arena.MinX != -10 || arena.MaxX != 10 {
		t.Fatalf("unexpected bounds %v..%v", arena.MinX, arena.MaxX)
	}

	lifts := 0
	for _, p := range arena.Patches {
		if p.Moves() {
			lifts++
		}
	}
	if lifts != 1 {
		t.Fatalf("expected one lift, got %d", lifts)
	}

	if _, err := loader.Arena("nowhere"); err == nil {
		t.Fatalf("expected an error for an unknown arena")
	}
}

func TestDefaultTuningParses(t *testing.T) {
	tuning, err := config.ParseTuning(DefaultTuning)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	character, camera, probe, action := config.Character, config.Camera, config.Probe, config.Action
	t.Cleanup(func() {
		config.Character, config.Camera, config.Probe, config.Action = character, camera, probe, action
	})
	if err := config.ApplyTuning(tuning); err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
}
