package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Reused across frames to avoid allocations
var (
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
)

func strokeLine(screen *ebiten.Image, a, b mgl64.Vec2, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), width, clr, true)
}

// fillPolygon fills a screen-space polygon with a flat color.
func fillPolygon(screen *ebiten.Image, pts []mgl64.Vec2, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		path.LineTo(float32(p[0]), float32(p[1]))
	}
	path.Close()

	fillVs, fillIs = path.AppendVerticesAndIndicesForFilling(fillVs[:0], fillIs[:0])
	for i := range fillVs {
		fillVs[i].ColorR = float32(clr.R) / 255
		fillVs[i].ColorG = float32(clr.G) / 255
		fillVs[i].ColorB = float32(clr.B) / 255
		fillVs[i].ColorA = float32(clr.A) / 255
	}
	if fillImg == nil {
		fillImg = ebiten.NewImage(1, 1)
		fillImg.Fill(color.White)
	}
	screen.DrawTriangles(fillVs, fillIs, fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// shade darkens clr by factor, keeping alpha.
func shade(clr color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(clr.R) * factor),
		G: uint8(float64(clr.G) * factor),
		B: uint8(float64(clr.B) * factor),
		A: clr.A,
	}
}
