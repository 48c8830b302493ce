package rangeslider

import (
	"errors"
	"fmt"

	"github.com/go-drift/rangeslider/pkg/graphics"
)

var (
	// ErrInvalidRange is returned when minimum is not strictly lower than maximum.
	ErrInvalidRange = errors.New("minimum must be lower than maximum")
	// ErrInvalidDimension is returned for a non-positive width or height, or
	// bounds that leave no horizontal travel for the thumbs.
	ErrInvalidDimension = errors.New("invalid dimension")
)

// Config describes the initial state of a Controller.
type Config struct {
	// Minimum is the lower end of the value domain.
	Minimum float64
	// Maximum is the upper end of the value domain.
	Maximum float64
	// Lower is the initial lower thumb value.
	Lower float64
	// Upper is the initial upper thumb value.
	Upper float64

	// Bounds is the size of the control. Width is the track length and
	// Height is the cross-axis extent that also enters the drag scale.
	Bounds graphics.Size
	// LowerThumbWidth is the side of the square lower thumb.
	LowerThumbWidth float64
	// UpperThumbWidth is the side of the square upper thumb. It is also the
	// reference width for value/position mapping of both thumbs.
	UpperThumbWidth float64
	// LineHeight is the thickness of the painted track.
	LineHeight float64

	// AllowLowerThumbDrag enables dragging the lower thumb.
	AllowLowerThumbDrag bool
	// AllowUpperCrossLower lets the upper thumb travel below the lower thumb,
	// down to Minimum-1.
	AllowUpperCrossLower bool
}

// DefaultConfig returns the stock configuration: a [0, 1] domain with the
// range 0.2-0.8 selected on a 300x30 control.
func DefaultConfig() Config {
	return Config{
		Minimum:         0,
		Maximum:         1,
		Lower:           0.2,
		Upper:           0.8,
		Bounds:          graphics.Size{Width: 300, Height: 30},
		LowerThumbWidth: 10,
		UpperThumbWidth: 18,
		LineHeight:      2,
	}
}

// Validate reports the first configuration error in c.
func (c Config) Validate() error {
	if err := validateRange(c.Minimum, c.Maximum); err != nil {
		return err
	}
	if err := validateLayout(c.Bounds, c.LowerThumbWidth, c.UpperThumbWidth); err != nil {
		return err
	}
	if !(c.LineHeight > 0) {
		return fmt.Errorf("%w: line height %g must be positive", ErrInvalidDimension, c.LineHeight)
	}
	return nil
}

func validateRange(minimum, maximum float64) error {
	if !(minimum < maximum) {
		return fmt.Errorf("%w (minimum=%g, maximum=%g)", ErrInvalidRange, minimum, maximum)
	}
	return nil
}

func validateLayout(bounds graphics.Size, lowerThumb, upperThumb float64) error {
	switch {
	case !(bounds.Width > 0):
		return fmt.Errorf("%w: width %g must be positive", ErrInvalidDimension, bounds.Width)
	case !(bounds.Height > 0):
		return fmt.Errorf("%w: height %g must be positive", ErrInvalidDimension, bounds.Height)
	case bounds.Width <= bounds.Height:
		return fmt.Errorf("%w: width %g must exceed height %g", ErrInvalidDimension, bounds.Width, bounds.Height)
	case !(lowerThumb > 0):
		return fmt.Errorf("%w: lower thumb width %g must be positive", ErrInvalidDimension, lowerThumb)
	case !(upperThumb > 0):
		return fmt.Errorf("%w: upper thumb width %g must be positive", ErrInvalidDimension, upperThumb)
	case upperThumb > bounds.Width:
		return fmt.Errorf("%w: upper thumb width %g exceeds width %g", ErrInvalidDimension, upperThumb, bounds.Width)
	}
	return nil
}
