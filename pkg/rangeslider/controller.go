package rangeslider

import (
	"fmt"
	"math"

	slidererrors "github.com/go-drift/rangeslider/pkg/errors"
	"github.com/go-drift/rangeslider/pkg/graphics"
)

// Thumb identifies one of the two slider handles.
type Thumb int

const (
	// ThumbNone means no thumb.
	ThumbNone Thumb = iota
	// ThumbLower is the handle for the lower bound.
	ThumbLower
	// ThumbUpper is the handle for the upper bound.
	ThumbUpper
)

func (t Thumb) String() string {
	switch t {
	case ThumbLower:
		return "lower"
	case ThumbUpper:
		return "upper"
	default:
		return "none"
	}
}

// Controller holds the value and drag state of a range slider.
//
// Create one with [NewController] for each slider instance. The zero value
// is not usable.
type Controller struct {
	minimum float64
	maximum float64
	lower   float64
	upper   float64

	bounds          graphics.Size
	lowerThumbWidth float64
	upperThumbWidth float64
	lineHeight      float64

	allowLowerThumbDrag  bool
	allowUpperCrossLower bool

	lowerHighlighted bool
	upperHighlighted bool
	session          *dragSession

	dirty          Dirty
	listeners      []listener
	nextListenerID int
}

// NewController validates cfg and returns a controller in the idle state.
// Lower and Upper are clamped the same way SetLower and SetUpper clamp; a
// NaN value starts at the matching end of the domain.
// The whole control starts dirty.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, slidererrors.New("rangeslider.NewController", slidererrors.KindConfig, err)
	}
	c := &Controller{
		minimum:              cfg.Minimum,
		maximum:              cfg.Maximum,
		lower:                cfg.Minimum,
		upper:                cfg.Maximum,
		bounds:               cfg.Bounds,
		lowerThumbWidth:      cfg.LowerThumbWidth,
		upperThumbWidth:      cfg.UpperThumbWidth,
		lineHeight:           cfg.LineHeight,
		allowLowerThumbDrag:  cfg.AllowLowerThumbDrag,
		allowUpperCrossLower: cfg.AllowUpperCrossLower,
	}
	c.SetLower(cfg.Lower)
	c.SetUpper(cfg.Upper)
	c.dirty = DirtyAll
	return c, nil
}

// Minimum returns the lower end of the value domain.
func (c *Controller) Minimum() float64 { return c.minimum }

// Maximum returns the upper end of the value domain.
func (c *Controller) Maximum() float64 { return c.maximum }

// Lower returns the lower thumb value.
func (c *Controller) Lower() float64 { return c.lower }

// Upper returns the upper thumb value.
func (c *Controller) Upper() float64 { return c.upper }

// Bounds returns the control size.
func (c *Controller) Bounds() graphics.Size { return c.bounds }

// LineHeight returns the painted track thickness.
func (c *Controller) LineHeight() float64 { return c.lineHeight }

// ThumbWidths returns the lower and upper thumb widths.
func (c *Controller) ThumbWidths() (lower, upper float64) {
	return c.lowerThumbWidth, c.upperThumbWidth
}

// Config returns the controller's current configuration.
func (c *Controller) Config() Config {
	return Config{
		Minimum:              c.minimum,
		Maximum:              c.maximum,
		Lower:                c.lower,
		Upper:                c.upper,
		Bounds:               c.bounds,
		LowerThumbWidth:      c.lowerThumbWidth,
		UpperThumbWidth:      c.upperThumbWidth,
		LineHeight:           c.lineHeight,
		AllowLowerThumbDrag:  c.allowLowerThumbDrag,
		AllowUpperCrossLower: c.allowUpperCrossLower,
	}
}

// SetMinimum changes the lower end of the domain. It fails with
// ErrInvalidRange, leaving the controller unchanged, unless v < Maximum.
// The thumb values are not re-clamped.
func (c *Controller) SetMinimum(v float64) (Dirty, error) {
	if err := validateRange(v, c.maximum); err != nil {
		return DirtyNone, slidererrors.New("rangeslider.SetMinimum", slidererrors.KindConfig, err)
	}
	c.minimum = v
	return c.markDirty(DirtyAll), nil
}

// SetMaximum changes the upper end of the domain. It fails with
// ErrInvalidRange, leaving the controller unchanged, unless v > Minimum.
// The thumb values are not re-clamped.
func (c *Controller) SetMaximum(v float64) (Dirty, error) {
	if err := validateRange(c.minimum, v); err != nil {
		return DirtyNone, slidererrors.New("rangeslider.SetMaximum", slidererrors.KindConfig, err)
	}
	c.maximum = v
	return c.markDirty(DirtyAll), nil
}

// SetLower stores max(v, Minimum) as the lower value. It does not order the
// value against Upper; only dragging enforces the gap between thumbs.
// NaN is ignored.
func (c *Controller) SetLower(v float64) Dirty {
	if math.IsNaN(v) {
		return DirtyNone
	}
	c.lower = math.Max(v, c.minimum)
	return c.markDirty(DirtyAll)
}

// SetUpper stores min(v, Maximum) as the upper value. NaN is ignored.
func (c *Controller) SetUpper(v float64) Dirty {
	if math.IsNaN(v) {
		return DirtyNone
	}
	c.upper = math.Min(v, c.maximum)
	return c.markDirty(DirtyAll)
}

// SetBounds resizes the control.
func (c *Controller) SetBounds(size graphics.Size) (Dirty, error) {
	if err := validateLayout(size, c.lowerThumbWidth, c.upperThumbWidth); err != nil {
		return DirtyNone, slidererrors.New("rangeslider.SetBounds", slidererrors.KindConfig, err)
	}
	c.bounds = size
	return c.markDirty(DirtyAll), nil
}

// SetThumbWidths changes the thumb sizes.
func (c *Controller) SetThumbWidths(lower, upper float64) (Dirty, error) {
	if err := validateLayout(c.bounds, lower, upper); err != nil {
		return DirtyNone, slidererrors.New("rangeslider.SetThumbWidths", slidererrors.KindConfig, err)
	}
	c.lowerThumbWidth = lower
	c.upperThumbWidth = upper
	return c.markDirty(DirtyAll), nil
}

// SetLineHeight changes the painted track thickness. The upper thumb frame
// is offset by the line height, so it is marked dirty with the track.
func (c *Controller) SetLineHeight(h float64) (Dirty, error) {
	if !(h > 0) {
		err := fmt.Errorf("%w: line height %g must be positive", ErrInvalidDimension, h)
		return DirtyNone, slidererrors.New("rangeslider.SetLineHeight", slidererrors.KindConfig, err)
	}
	c.lineHeight = h
	return c.markDirty(DirtyTrack | DirtyUpperThumb), nil
}

// SetAllowLowerThumbDrag enables or disables dragging the lower thumb.
// It takes effect at the next BeginDrag.
func (c *Controller) SetAllowLowerThumbDrag(allow bool) {
	c.allowLowerThumbDrag = allow
}

// SetAllowUpperCrossLower enables or disables free mode for the upper
// thumb. A drag already in progress keeps the mode it started with.
func (c *Controller) SetAllowUpperCrossLower(allow bool) {
	c.allowUpperCrossLower = allow
}

// Gap is the minimum value-space separation kept between the thumbs while
// dragging, equal to half the upper thumb width converted to value units.
func (c *Controller) Gap() float64 {
	return 0.5 * c.upperThumbWidth * (c.maximum - c.minimum) / c.bounds.Width
}
