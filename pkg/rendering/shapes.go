package rendering

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/rangeslider/pkg/graphics"
)

// cornerSegments is the number of line segments used per rounded corner.
const cornerSegments = 8

type point struct{ x, y float64 }

// rrectPoints returns the outline of r with uniform corner radius, clockwise
// in image coordinates. The radius is clamped to fit the rectangle.
func rrectPoints(r graphics.Rect, radius float64) []point {
	radius = max(0, min(radius, r.Width()/2, r.Height()/2))
	if radius == 0 {
		return []point{
			{r.Left, r.Top}, {r.Right, r.Top}, {r.Right, r.Bottom}, {r.Left, r.Bottom},
		}
	}
	corners := []struct {
		cx, cy, start float64
	}{
		{r.Right - radius, r.Top + radius, -math.Pi / 2},
		{r.Right - radius, r.Bottom - radius, 0},
		{r.Left + radius, r.Bottom - radius, math.Pi / 2},
		{r.Left + radius, r.Top + radius, math.Pi},
	}
	pts := make([]point, 0, len(corners)*(cornerSegments+1))
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := c.start + math.Pi/2*float64(i)/cornerSegments
			pts = append(pts, point{c.cx + radius*math.Cos(a), c.cy + radius*math.Sin(a)})
		}
	}
	return pts
}

// addPolygon appends a closed polygon to z, scaling every coordinate.
func addPolygon(z *vector.Rasterizer, pts []point, scale float64, reverse bool) {
	if len(pts) == 0 {
		return
	}
	at := func(i int) point {
		if reverse {
			return pts[len(pts)-1-i]
		}
		return pts[i]
	}
	p := at(0)
	z.MoveTo(float32(p.x*scale), float32(p.y*scale))
	for i := 1; i < len(pts); i++ {
		p = at(i)
		z.LineTo(float32(p.x*scale), float32(p.y*scale))
	}
	z.ClosePath()
}

// canvas fills shapes into an RGBA image at a fixed scale.
type canvas struct {
	dst   *image.RGBA
	scale float64
}

func (c canvas) newRasterizer() *vector.Rasterizer {
	b := c.dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func (c canvas) fill(z *vector.Rasterizer, color graphics.Color) {
	z.Draw(c.dst, c.dst.Bounds(), image.NewUniform(color.NRGBA()), image.Point{})
}

// fillRRect fills r with rounded corners.
func (c canvas) fillRRect(r graphics.Rect, radius float64, color graphics.Color) {
	if r.IsEmpty() || color.Alpha() == 0 {
		return
	}
	z := c.newRasterizer()
	addPolygon(z, rrectPoints(r, radius), c.scale, false)
	c.fill(z, color)
}

// strokeRRect draws a border of the given width centered on the outline
// of r, as the ring between two rounded rectangles.
func (c canvas) strokeRRect(r graphics.Rect, radius, width float64, color graphics.Color) {
	if width <= 0 || r.IsEmpty() || color.Alpha() == 0 {
		return
	}
	half := width / 2
	outer := r.Inset(-half, -half)
	inner := r.Inset(half, half)
	z := c.newRasterizer()
	addPolygon(z, rrectPoints(outer, radius+half), c.scale, false)
	if !inner.IsEmpty() {
		addPolygon(z, rrectPoints(inner, max(radius-half, 0)), c.scale, true)
	}
	c.fill(z, color)
}
