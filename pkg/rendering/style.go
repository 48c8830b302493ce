package rendering

import "github.com/go-drift/rangeslider/pkg/graphics"

// Style holds the colors and shape parameters used to paint a slider.
type Style struct {
	TrackColor          graphics.Color
	TrackLessColor      graphics.Color
	TrackHighlightColor graphics.Color
	LowerThumbColor     graphics.Color
	UpperThumbColor     graphics.Color
	ThumbBorderColor    graphics.Color
	ThumbBorderWidth    float64
	// Curvaceousness scales corner radii from square (0) to fully round (1).
	Curvaceousness float64
	// ShowLabels draws the thumb values under each thumb.
	ShowLabels bool
	LabelColor graphics.Color
}

// DefaultStyle returns a light gray track with a blue selected range and
// white thumbs with a thin gray border.
func DefaultStyle() Style {
	return Style{
		TrackColor:          graphics.Gray(0.9, 1),
		TrackLessColor:      graphics.Gray(0.9, 1),
		TrackHighlightColor: graphics.RGB(0, 115, 240),
		LowerThumbColor:     graphics.ColorWhite,
		UpperThumbColor:     graphics.ColorWhite,
		ThumbBorderColor:    graphics.ColorGray,
		ThumbBorderWidth:    0.5,
		Curvaceousness:      1,
		LabelColor:          graphics.ColorBlack,
	}
}

// curvaceousness returns Curvaceousness clamped to [0, 1].
func (s Style) curvaceousness() float64 {
	return min(max(s.Curvaceousness, 0), 1)
}
