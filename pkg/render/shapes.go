// pkg/render/shapes.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Shapes draws filled and stroked vector paths, reusing its vertex buffers
// between calls.
type Shapes struct {
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

func NewShapes() *Shapes {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Shapes{
		whiteImg: img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image),
		vs:       make([]ebiten.Vertex, 0, 64),
		is:       make([]uint16, 0, 96),
	}
}

// FillPath fills path with clr.
func (s *Shapes) FillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.draw(dst, clr)
}

// StrokePath outlines path with a line of the given width.
func (s *Shapes) StrokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	s.draw(dst, clr)
}

func (s *Shapes) draw(dst *ebiten.Image, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(r) / 0xffff
		s.vs[i].ColorG = float32(g) / 0xffff
		s.vs[i].ColorB = float32(b) / 0xffff
		s.vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(s.vs, s.is, s.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Polygon fills the closed polygon through pts (x, y pairs).
func (s *Shapes) Polygon(dst *ebiten.Image, pts []float32, clr color.Color) {
	if len(pts) < 6 {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		path.LineTo(pts[i], pts[i+1])
	}
	path.Close()
	s.FillPath(dst, &path, clr)
}

// Arc strokes a circular arc centred on (cx, cy) from angle a0 to a1 (radians,
// clockwise on screen).
func (s *Shapes) Arc(dst *ebiten.Image, cx, cy, radius, a0, a1, width float32, clr color.Color) {
	var path vector.Path
	path.MoveTo(cx+radius*float32(math.Cos(float64(a0))), cy+radius*float32(math.Sin(float64(a0))))
	path.Arc(cx, cy, radius, a0, a1, vector.Clockwise)
	s.StrokePath(dst, &path, width, clr)
}

// Ring strokes a full circle.
func (s *Shapes) Ring(dst *ebiten.Image, cx, cy, radius, width float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy, radius, width, clr, true)
}

// Disc fills a circle.
func (s *Shapes) Disc(dst *ebiten.Image, cx, cy, radius float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, radius, clr, true)
}

// Line draws a segment.
func (s *Shapes) Line(dst *ebiten.Image, x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
}

// Rect fills an axis-aligned rectangle.
func (s *Shapes) Rect(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, clr, true)
}

// Frame outlines an axis-aligned rectangle.
func (s *Shapes) Frame(dst *ebiten.Image, x, y, w, h, width float32, clr color.Color) {
	vector.StrokeRect(dst, x, y, w, h, width, clr, true)
}
