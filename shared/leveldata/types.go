// Package leveldata parses arena TMX files into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Arena holds everything the simulation needs from an arena file. All
// values are in world units: map x becomes world X, map y becomes world Z.
type Arena struct {
	Name    string
	Patches []Patch
	Spawn   Point
	Extent  Rect

	// Play-area bounds along world X, when the map defines them
	MinX, MaxX float64
	HasBounds  bool
}

// Patch is a flat rectangle of ground at a fixed height.
type Patch struct {
	Name         string
	X, Z         float64 // corner with the smallest coordinates
	Width, Depth float64
	Height       float64
	Layer        string

	// Lifts bob between Height and Height+Travel, one round trip per Period seconds
	Travel, Period float64
}

// Moves reports whether the patch is a lift.
func (p Patch) Moves() bool {
	return p.Travel != 0 && p.Period > 0
}

// Point is a world position.
type Point struct {
	X, Y, Z float64
}

// Rect is an axis-aligned area on the XZ plane.
type Rect struct {
	MinX, MinZ, MaxX, MaxZ float64
}

func (r Rect) grow(x, z float64) Rect {
	if x < r.MinX {
		r.MinX = x
	}
	if x > r.MaxX {
		r.MaxX = x
	}
	if z < r.MinZ {
		r.MinZ = z
	}
	if z > r.MaxZ {
		r.MaxZ = z
	}
	return r
}
