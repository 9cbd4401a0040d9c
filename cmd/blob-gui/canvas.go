package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/blob/render"
	"github.com/lixenwraith/blob/vmath"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage avoids sampling the edge pixels of whiteImage
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenCanvas draws onto an ebiten image with anti-aliased vector paths
// Vertex and index buffers are reused across frames
type ebitenCanvas struct {
	dst *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *ebitenCanvas) target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *ebitenCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ebitenCanvas) Clear(col render.RGB) {
	c.dst.Fill(color.RGBA{R: col.R, G: col.G, B: col.B, A: 0xff})
}

func (c *ebitenCanvas) FillCircle(center vmath.Vec2, radius float64, col render.RGBA) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), col.NRGBA(), true)
}

func (c *ebitenCanvas) StrokeCircle(center vmath.Vec2, radius, width float64, col render.RGBA) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), float32(width), col.NRGBA(), true)
}

func (c *ebitenCanvas) Line(a, b vmath.Vec2, width float64, col render.RGBA) {
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col.NRGBA(), true)
}

func (c *ebitenCanvas) FillRect(x, y, w, h float64, col render.RGBA) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col.NRGBA(), true)
}

func (c *ebitenCanvas) FillPath(p *render.Path, col render.RGBA) {
	if p.Empty() {
		return
	}
	path := toVectorPath(p)
	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawTriangles(col, ebiten.EvenOdd)
}

func (c *ebitenCanvas) StrokePath(p *render.Path, width float64, col render.RGBA) {
	if p.Empty() {
		return
	}
	path := toVectorPath(p)
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)
	c.drawTriangles(col, ebiten.FillAll)
}

// drawTriangles paints the buffered mesh in a flat straight-alpha color
func (c *ebitenCanvas) drawTriangles(col render.RGBA, rule ebiten.FillRule) {
	r, g, b := float32(col.R)/0xff, float32(col.G)/0xff, float32(col.B)/0xff
	a := float32(min(max(col.A, 0), 1))
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  rule,
		AntiAlias: true,
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

func toVectorPath(p *render.Path) *vector.Path {
	var path vector.Path
	start := p.Start()
	path.MoveTo(float32(start.X), float32(start.Y))
	for _, seg := range p.Segments() {
		path.CubicTo(
			float32(seg.C1.X), float32(seg.C1.Y),
			float32(seg.C2.X), float32(seg.C2.Y),
			float32(seg.End.X), float32(seg.End.Y),
		)
	}
	path.Close()
	return &path
}
