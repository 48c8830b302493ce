package rangeslider

import "github.com/go-drift/rangeslider/pkg/graphics"

// Geometry is the layout a renderer needs to paint the control.
// Frames are in control-local coordinates; TrackHighlightRect and
// TrackLessRect are relative to TrackFrame's origin.
type Geometry struct {
	TrackFrame      graphics.Rect
	LowerThumbFrame graphics.Rect
	UpperThumbFrame graphics.Rect
	// TrackHighlightRect spans the selected range between the thumb centers.
	TrackHighlightRect graphics.Rect
	// TrackLessRect spans the track from its start to the lower thumb center.
	TrackLessRect graphics.Rect

	LowerHighlighted bool
	UpperHighlighted bool
}

// PositionForValue maps a domain value to the x coordinate of a thumb
// center. Minimum maps to UpperThumbWidth/2 and Maximum to
// Width-UpperThumbWidth/2, so a thumb never overflows the track.
//
// The upper thumb width is the reference for both thumbs.
func (c *Controller) PositionForValue(v float64) float64 {
	thumb := c.upperThumbWidth
	return (c.bounds.Width-thumb)*(v-c.minimum)/(c.maximum-c.minimum) + thumb/2
}

// Geometry computes the current layout.
func (c *Controller) Geometry() Geometry {
	lowerCenter := c.PositionForValue(c.lower)
	upperCenter := c.PositionForValue(c.upper)
	bounds := graphics.RectFromLTWH(0, 0, c.bounds.Width, c.bounds.Height)
	return Geometry{
		TrackFrame:         bounds.Inset(0, c.bounds.Height/3),
		LowerThumbFrame:    c.lowerThumbFrame(lowerCenter),
		UpperThumbFrame:    c.upperThumbFrame(upperCenter),
		TrackHighlightRect: graphics.RectFromLTWH(lowerCenter, 0, upperCenter-lowerCenter, c.lineHeight),
		TrackLessRect:      graphics.RectFromLTWH(0, 0, lowerCenter, c.lineHeight),
		LowerHighlighted:   c.lowerHighlighted,
		UpperHighlighted:   c.upperHighlighted,
	}
}

// ThumbFrame returns the hit and paint rectangle of a thumb, or an empty
// rect for ThumbNone.
func (c *Controller) ThumbFrame(t Thumb) graphics.Rect {
	switch t {
	case ThumbLower:
		return c.lowerThumbFrame(c.PositionForValue(c.lower))
	case ThumbUpper:
		return c.upperThumbFrame(c.PositionForValue(c.upper))
	default:
		return graphics.Rect{}
	}
}

// The lower thumb hangs 3px above the upper thumb's vertical center.
func (c *Controller) lowerThumbFrame(center float64) graphics.Rect {
	w := c.lowerThumbWidth
	return graphics.RectFromLTWH(center-w/2, c.upperThumbWidth/2-3, w, w)
}

func (c *Controller) upperThumbFrame(center float64) graphics.Rect {
	w := c.upperThumbWidth
	return graphics.RectFromLTWH(center-w/2, c.lineHeight/2, w, w)
}
