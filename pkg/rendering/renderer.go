// Package rendering paints range slider geometry into RGBA images.
//
// The painter reads a controller's geometry and never mutates it. A
// [Renderer] keeps one cached frame and repaints only when the controller
// reports dirty parts, so a host can call Frame on every tick.
package rendering

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	slidererrors "github.com/go-drift/rangeslider/pkg/errors"
	"github.com/go-drift/rangeslider/pkg/graphics"
	"github.com/go-drift/rangeslider/pkg/rangeslider"
)

// maxFrameSide bounds each side of a painted frame in pixels.
const maxFrameSide = 1 << 14

// thumbInset is the padding between a thumb frame and its painted shape.
const thumbInset = 2.0

// highlightOverlay darkens a thumb while it is being dragged.
var highlightOverlay = graphics.RGBA(0, 0, 0, 0.1)

// Renderer paints a controller into a cached image.
// It holds the controller without owning it.
type Renderer struct {
	Style Style
	// Scale is the number of image pixels per control pixel. Zero means 1.
	Scale float64

	controller *rangeslider.Controller
	frame      *image.RGBA
	paints     int
}

// NewRenderer returns a renderer for c.
func NewRenderer(c *rangeslider.Controller, style Style) *Renderer {
	return &Renderer{Style: style, controller: c}
}

// Paints returns how many times the renderer has repainted.
func (r *Renderer) Paints() int {
	return r.paints
}

// Invalidate forces the next Frame call to repaint, e.g. after a Style change.
func (r *Renderer) Invalidate() {
	r.frame = nil
}

// Frame returns the current image of the control and whether it was
// repainted. Dirty parts are coalesced: any pending dirty set triggers a
// single full repaint. On error no image is returned and the cached frame
// is kept.
func (r *Renderer) Frame() (*image.RGBA, bool, error) {
	scale := r.scale()
	bounds := r.controller.Bounds()
	w := math.Ceil(bounds.Width * scale)
	h := math.Ceil(bounds.Height * scale)
	if !(w >= 1 && h >= 1) || w > maxFrameSide || h > maxFrameSide {
		return nil, false, slidererrors.New("rendering.Frame", slidererrors.KindRender,
			fmt.Errorf("cannot paint a %gx%g frame", w, h))
	}
	dirty := r.controller.TakeDirty()
	iw, ih := int(w), int(h)
	if r.frame != nil && dirty == rangeslider.DirtyNone &&
		r.frame.Bounds().Dx() == iw && r.frame.Bounds().Dy() == ih {
		return r.frame, false, nil
	}
	r.frame = image.NewRGBA(image.Rect(0, 0, iw, ih))
	Paint(r.frame, r.controller.Geometry(), r.controller.LineHeight(), r.labels(), r.Style, scale)
	r.paints++
	return r.frame, true, nil
}

func (r *Renderer) scale() float64 {
	if !(r.Scale > 0) {
		return 1
	}
	return r.Scale
}

func (r *Renderer) labels() *Labels {
	if !r.Style.ShowLabels {
		return nil
	}
	return &Labels{
		Lower: fmt.Sprintf("%.2f", r.controller.Lower()),
		Upper: fmt.Sprintf("%.2f", r.controller.Upper()),
	}
}

// Labels are the texts drawn under the thumbs.
type Labels struct {
	Lower string
	Upper string
}

// Paint draws geometry into dst. dst is cleared first. lineHeight is the
// track thickness the geometry was computed with; labels may be nil.
func Paint(dst *image.RGBA, g rangeslider.Geometry, lineHeight float64, labels *Labels, style Style, scale float64) {
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	c := canvas{dst: dst, scale: scale}
	curve := style.curvaceousness()

	// Track, then the ranges drawn over it in track-local coordinates.
	track := g.TrackFrame
	line := graphics.RectFromLTWH(track.Left, track.Top, track.Width(), lineHeight)
	c.fillRRect(line, track.Height()*curve/2, style.TrackColor)
	c.fillRRect(g.TrackHighlightRect.Translate(track.Left, track.Top), 0, style.TrackHighlightColor)
	c.fillRRect(g.TrackLessRect.Translate(track.Left, track.Top), 0, style.TrackLessColor)

	paintThumb(c, g.LowerThumbFrame, style.LowerThumbColor, g.LowerHighlighted, style, curve)
	paintThumb(c, g.UpperThumbFrame, style.UpperThumbColor, g.UpperHighlighted, style, curve)

	if labels != nil {
		drawLabel(dst, labels.Lower, g.LowerThumbFrame.Center().X*scale, style.LabelColor)
		drawLabel(dst, labels.Upper, g.UpperThumbFrame.Center().X*scale, style.LabelColor)
	}
}

func paintThumb(c canvas, frame graphics.Rect, fill graphics.Color, highlighted bool, style Style, curve float64) {
	shape := frame.Inset(thumbInset, thumbInset)
	radius := shape.Height() * curve / 2
	c.fillRRect(shape, radius, fill)
	c.strokeRRect(shape, radius, style.ThumbBorderWidth, style.ThumbBorderColor)
	if highlighted {
		c.fillRRect(shape, radius, highlightOverlay)
	}
}

// drawLabel draws text centered on x along the bottom edge of dst.
func drawLabel(dst *image.RGBA, text string, x float64, color graphics.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBA()),
		Face: face,
	}
	width := d.MeasureString(text)
	left := fixed.Int26_6(x*64) - width/2
	d.Dot = fixed.Point26_6{X: left, Y: fixed.I(dst.Bounds().Dy() - face.Descent)}
	d.DrawString(text)
}
