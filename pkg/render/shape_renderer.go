// pkg/render/shape_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Point is a vertex in screen coordinates.
type Point struct {
	X, Y float32
}

// ShapeRenderer fills and strokes arbitrary polygons, reusing vertex buffers between calls.
type ShapeRenderer struct {
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func NewShapeRenderer() *ShapeRenderer {
	return &ShapeRenderer{
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
	}
}

// source lazily creates the 1x1 white image; images must not be created before the game loop starts.
func (r *ShapeRenderer) source() *ebiten.Image {
	if r.fillImg == nil {
		r.fillImg = ebiten.NewImage(1, 1)
		r.fillImg.Fill(color.White)
	}
	return r.fillImg
}

// PolygonPath builds a closed path through pts.
func PolygonPath(pts []Point) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	path.Close()
	return path
}

// FillPolygon draws a filled polygon.
func (r *ShapeRenderer) FillPolygon(target *ebiten.Image, pts []Point, fillColor color.RGBA) {
	if len(pts) < 3 {
		return
	}
	path := PolygonPath(pts)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fillColor)
	target.DrawTriangles(r.fillVs, r.fillIs, r.source(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// StrokePolygon draws the outline of a polygon.
func (r *ShapeRenderer) StrokePolygon(target *ebiten.Image, pts []Point, width float32, strokeColor color.RGBA) {
	if len(pts) < 2 {
		return
	}
	path := PolygonPath(pts)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paint(r.strokeVs, strokeColor)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.source(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = vertexColor(c.R)
		vs[i].ColorG = vertexColor(c.G)
		vs[i].ColorB = vertexColor(c.B)
		vs[i].ColorA = vertexColor(c.A)
	}
}
