package rendering

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	slidererrors "github.com/go-drift/rangeslider/pkg/errors"
	"github.com/go-drift/rangeslider/pkg/graphics"
	"github.com/go-drift/rangeslider/pkg/rangeslider"
)

func newController(t *testing.T) *rangeslider.Controller {
	t.Helper()
	c, err := rangeslider.NewController(rangeslider.DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func mustFrame(t *testing.T, r *Renderer) (*image.RGBA, bool) {
	t.Helper()
	img, painted, err := r.Frame()
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	return img, painted
}

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	if got := img.RGBAAt(x, y); got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

func TestRendererPaintsGeometry(t *testing.T) {
	c := newController(t)
	r := NewRenderer(c, DefaultStyle())
	img, painted := mustFrame(t, r)
	if !painted {
		t.Fatal("first Frame should paint")
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 300, 30) {
		t.Fatalf("bounds = %v", got)
	}

	gray := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	// The track frame starts at y=10 and the line is 2px thick.
	assertPixel(t, img, 20, 10, gray)                                     // before the lower thumb
	assertPixel(t, img, 150, 11, color.RGBA{R: 0, G: 115, B: 240, A: 255}) // selected range
	assertPixel(t, img, 280, 10, gray)                                    // past the upper thumb
	assertPixel(t, img, 150, 25, color.RGBA{})                            // below the track
	assertPixel(t, img, 234, 10, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestRendererSkipsCleanFrames(t *testing.T) {
	c := newController(t)
	r := NewRenderer(c, DefaultStyle())
	first, _ := mustFrame(t, r)
	second, painted := mustFrame(t, r)
	if painted {
		t.Error("clean Frame should not repaint")
	}
	if first != second {
		t.Error("clean Frame should return the cached image")
	}

	c.SetLower(0.5)
	c.SetUpper(0.9)
	if _, painted := mustFrame(t, r); !painted {
		t.Error("Frame after value changes should repaint")
	}
	if r.Paints() != 2 {
		t.Errorf("Paints = %d, want 2 (changes coalesce)", r.Paints())
	}

	r.Invalidate()
	if _, painted := mustFrame(t, r); !painted {
		t.Error("Frame after Invalidate should repaint")
	}
}

func TestRendererHighlightsDraggedThumb(t *testing.T) {
	c := newController(t)
	r := NewRenderer(c, DefaultStyle())
	center := c.ThumbFrame(rangeslider.ThumbUpper).Center()

	c.BeginDrag(center)
	img, _ := mustFrame(t, r)
	if got := img.RGBAAt(int(center.X), int(center.Y)); got.R >= 240 {
		t.Errorf("highlighted thumb pixel = %v, want darkened", got)
	}

	c.EndDrag()
	img, painted := mustFrame(t, r)
	if !painted {
		t.Fatal("EndDrag should repaint the thumb")
	}
	assertPixel(t, img, int(center.X), int(center.Y), color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestRendererScale(t *testing.T) {
	c := newController(t)
	r := NewRenderer(c, DefaultStyle())
	r.Scale = 2
	img, _ := mustFrame(t, r)
	if got := img.Bounds(); got != image.Rect(0, 0, 600, 60) {
		t.Errorf("bounds = %v, want 600x60", got)
	}
	assertPixel(t, img, 300, 21, color.RGBA{R: 0, G: 115, B: 240, A: 255})
}

func TestRendererLabels(t *testing.T) {
	c := newController(t)
	style := DefaultStyle()
	style.ShowLabels = true
	img, _ := mustFrame(t, NewRenderer(c, style))

	// Some dark text pixels must appear in the bottom rows under the upper thumb.
	found := false
	for y := 17; y < 30 && !found; y++ {
		for x := 215; x < 255; x++ {
			if p := img.RGBAAt(x, y); p.A > 128 && p.R < 100 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected label pixels under the upper thumb")
	}
}

func TestRRectPoints(t *testing.T) {
	r := graphics.RectFromLTWH(0, 0, 10, 4)
	if got := len(rrectPoints(r, 0)); got != 4 {
		t.Errorf("square corners: %d points, want 4", got)
	}
	pts := rrectPoints(r, 100)
	for _, p := range pts {
		if p.x < r.Left-1e-9 || p.x > r.Right+1e-9 || p.y < r.Top-1e-9 || p.y > r.Bottom+1e-9 {
			t.Fatalf("point %v outside %v", p, r)
		}
	}
}

func TestStyleCurvaceousnessClamp(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-1, 0}, {0.4, 0.4}, {3, 1}} {
		if got := (Style{Curvaceousness: tt.in}).curvaceousness(); got != tt.want {
			t.Errorf("curvaceousness(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRendererRejectsOversizedFrame(t *testing.T) {
	c := newController(t)
	r := NewRenderer(c, DefaultStyle())
	if _, _, err := r.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	r.Scale = 1e6
	img, painted, err := r.Frame()
	if err == nil {
		t.Fatal("expected error for an oversized frame")
	}
	var serr *slidererrors.Error
	if !errors.As(err, &serr) || serr.Kind != slidererrors.KindRender {
		t.Errorf("err = %v, want a render error", err)
	}
	if img != nil || painted {
		t.Errorf("Frame = (%v, %v), want no image", img, painted)
	}

	r.Scale = math.NaN()
	if img, _ := mustFrame(t, r); img.Bounds() != image.Rect(0, 0, 300, 30) {
		t.Errorf("NaN scale bounds = %v, want the unscaled size", img.Bounds())
	}
}
