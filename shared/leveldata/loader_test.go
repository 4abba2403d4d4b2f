package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0">
 <properties>
  <property name="originX" type="float" value="-10"/>
  <property name="originZ" type="float" value="-5"/>
  <property name="minX" type="float" value="-8"/>
  <property name="maxX" type="float" value="8"/>
 </properties>
 <objectgroup id="1" name="Ground">
  <object id="1" name="ledge" x="32" y="16" width="32" height="48">
   <properties>
    <property name="height" type="float" value="2"/>
    <property name="layer" value="ramp"/>
   </properties>
  </object>
  <object id="2" name="floor" x="0" y="0" width="320" height="160"/>
  <object id="3" name="lift" x="160" y="80" width="32" height="32">
   <properties>
    <property name="height" type="float" value="0.5"/>
    <property name="travel" type="float" value="3"/>
    <property name="period" type="float" value="6"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="4" name="spawn" x="80" y="48">
   <properties>
    <property name="elevation" type="float" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="5" name="ignored" x="0" y="0">
   <point/>
  </object>
 </objectgroup>
</map>`

const noGroundTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="8" y="8">
   <point/>
  </object>
 </objectgroup>
</map>`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/yard.tmx": {Data: []byte(testTMX)},
	}

	arena, err := LoadArena(fsys, "arenas/yard.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if arena.Name != "yard" {
		t.Fatalf("expected name yard, got %q", arena.Name)
	}
	if !arena.HasBounds || arena.MinX != -8 || arena.MaxX != 8 {
		t.Fatalf("unexpected bounds %v..%v (has %v)", arena.MinX, arena.MaxX, arena.HasBounds)
	}
	if want := (Point{X: -5, Y: 1, Z: -2}); arena.Spawn != want {
		t.Fatalf("expected spawn %+v, got %+v", want, arena.Spawn)
	}
	if want := (Rect{MinX: -10, MinZ: -5, MaxX: 10, MaxZ: 5}); arena.Extent != want {
		t.Fatalf("expected extent %+v, got %+v", want, arena.Extent)
	}

	// Sorted lowest first
	wantPatches := []Patch{
		{Name: "floor", X: -10, Z: -5, Width: 20, Depth: 10, Height: 0, Layer: "ground"},
		{Name: "lift", X: 0, Z: 0, Width: 2, Depth: 2, Height: 0.5, Layer: "ground", Travel: 3, Period: 6},
		{Name: "ledge", X: -8, Z: -4, Width: 2, Depth: 3, Height: 2, Layer: "ramp"},
	}
	if len(arena.Patches) != len(wantPatches) {
		t.Fatalf("expected %d patches, got %d", len(wantPatches), len(arena.Patches))
	}
	for i, want := range wantPatches {
		if arena.Patches[i] != want {
			t.Fatalf("patch %d: expected %+v, got %+v", i, want, arena.Patches[i])
		}
	}
	if !arena.Patches[1].Moves() || arena.Patches[0].Moves() {
		t.Fatalf("expected only the lift to move")
	}
}

func TestLoadArenaErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/empty.tmx": {Data: []byte(noGroundTMX)},
		"arenas/bad.tmx":   {Data: []byte("<map")},
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"no ground", "arenas/empty.tmx", ErrNoGround},
		{"malformed", "arenas/bad.tmx", nil},
		{"missing", "arenas/nope.tmx", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArena(fsys, tt.path)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/yard.tmx":  {Data: []byte(testTMX)},
		"arenas/plaza.tmx": {Data: []byte(testTMX)},
		"arenas/notes.txt": {Data: []byte("not an arena")},
	}

	arenas, names, err := LoadAllArenas(fsys, "arenas")
	if err != nil {
		t.Fatalf("LoadAllArenas: %v", err)
	}
	if len(names) != 2 || names[0] != "plaza" || names[1] != "yard" {
		t.Fatalf("expected sorted [plaza yard], got %v", names)
	}
	if arenas["plaza"] == nil || arenas["yard"] == nil {
		t.Fatalf("expected both arenas keyed by name")
	}

	if _, _, err := LoadAllArenas(fstest.MapFS{}, "arenas"); err == nil {
		t.Fatalf("expected an error for a directory without arenas")
	}
}
