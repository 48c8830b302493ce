// Package config loads slider.yaml files for the rangeslider CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	slidererrors "github.com/go-drift/rangeslider/pkg/errors"
	"github.com/go-drift/rangeslider/pkg/gestures"
	"github.com/go-drift/rangeslider/pkg/graphics"
	"github.com/go-drift/rangeslider/pkg/rangeslider"
	"github.com/go-drift/rangeslider/pkg/rendering"
)

// FileName is the config file looked up by LoadOptional.
const FileName = "slider.yaml"

// SchemaVersion is the newest slider.yaml schema this build understands.
const SchemaVersion = "v1.1.0"

// File is the on-disk form of slider.yaml. Pointer fields are optional and
// fall back to rangeslider.DefaultConfig and rendering.DefaultStyle.
type File struct {
	Version  string        `yaml:"version,omitempty"`
	Slider   SliderConfig  `yaml:"slider"`
	Style    StyleConfig   `yaml:"style"`
	Render   RenderConfig  `yaml:"render"`
	Gestures []GestureStep `yaml:"gestures,omitempty"`
}

// SliderConfig mirrors rangeslider.Config.
type SliderConfig struct {
	Minimum              *float64 `yaml:"minimum,omitempty"`
	Maximum              *float64 `yaml:"maximum,omitempty"`
	Lower                *float64 `yaml:"lower,omitempty"`
	Upper                *float64 `yaml:"upper,omitempty"`
	Width                *float64 `yaml:"width,omitempty"`
	Height               *float64 `yaml:"height,omitempty"`
	LowerThumbWidth      *float64 `yaml:"lower_thumb_width,omitempty"`
	UpperThumbWidth      *float64 `yaml:"upper_thumb_width,omitempty"`
	LineHeight           *float64 `yaml:"line_height,omitempty"`
	AllowLowerThumbDrag  bool     `yaml:"allow_lower_thumb_drag,omitempty"`
	AllowUpperCrossLower bool     `yaml:"allow_upper_cross_lower,omitempty"`
}

// StyleConfig mirrors rendering.Style. Colors are "#RRGGBB" or "#AARRGGBB".
type StyleConfig struct {
	Track            string   `yaml:"track,omitempty"`
	TrackLess        string   `yaml:"track_less,omitempty"`
	TrackHighlight   string   `yaml:"track_highlight,omitempty"`
	LowerThumb       string   `yaml:"lower_thumb,omitempty"`
	UpperThumb       string   `yaml:"upper_thumb,omitempty"`
	ThumbBorder      string   `yaml:"thumb_border,omitempty"`
	ThumbBorderWidth *float64 `yaml:"thumb_border_width,omitempty"`
	Curvaceousness   *float64 `yaml:"curvaceousness,omitempty"`
	ShowLabels       bool     `yaml:"show_labels,omitempty"`
	Label            string   `yaml:"label,omitempty"`
}

// RenderConfig controls image output.
type RenderConfig struct {
	Scale float64 `yaml:"scale,omitempty"`
}

// GestureStep is one scripted pointer event.
type GestureStep struct {
	Phase   string  `yaml:"phase"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Pointer int64   `yaml:"pointer,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path    string
	Version string
	Slider  rangeslider.Config
	Style   rendering.Style
	Scale   float64
	Events  []gestures.PointerEvent
}

// Load reads and parses the config at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// LoadOptional reads slider.yaml from dir if present.
func LoadOptional(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(path, data)
}

// Parse decodes slider.yaml content. Unknown keys are rejected.
func Parse(source string, data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, slidererrors.New("config.Parse", slidererrors.KindParsing,
			fmt.Errorf("failed to parse %s: %w", source, err))
	}
	return &f, nil
}

// Resolve loads the config at path, or slider.yaml in the current
// directory when path is empty, and applies defaults.
func Resolve(path string) (*Resolved, error) {
	var (
		f   *File
		err error
	)
	if path == "" {
		path = FileName
		f, err = LoadOptional(".")
	} else {
		f, err = Load(path)
	}
	if err != nil {
		return nil, err
	}
	return f.Resolve(path)
}

// Resolve validates f and merges it over the defaults.
func (f *File) Resolve(source string) (*Resolved, error) {
	version, err := checkVersion(f.Version)
	if err != nil {
		return nil, err
	}
	style, err := f.Style.resolve(source)
	if err != nil {
		return nil, err
	}
	events, err := resolveGestures(source, f.Gestures)
	if err != nil {
		return nil, err
	}
	slider := f.Slider.resolve()
	if err := slider.Validate(); err != nil {
		return nil, slidererrors.New("config.Resolve", slidererrors.KindConfig,
			fmt.Errorf("%s: %w", source, err))
	}
	scale := f.Render.Scale
	if scale == 0 {
		scale = 1
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, slidererrors.New("config.Resolve", slidererrors.KindConfig,
			fmt.Errorf("%s: render.scale %g must be positive", source, scale))
	}
	return &Resolved{
		Path:    source,
		Version: version,
		Slider:  slider,
		Style:   style,
		Scale:   scale,
		Events:  events,
	}, nil
}

// checkVersion accepts an empty version or any v1 release not newer than
// SchemaVersion. Versions may omit minor and patch ("v1").
func checkVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return SchemaVersion, nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", slidererrors.New("config.checkVersion", slidererrors.KindParsing,
			&slidererrors.ParseError{Source: FileName, Field: "version", Got: v})
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return "", slidererrors.New("config.checkVersion", slidererrors.KindConfig,
			fmt.Errorf("unsupported schema version %s (want %s.x)", v, semver.Major(SchemaVersion)))
	}
	if semver.Compare(v, SchemaVersion) > 0 {
		return "", slidererrors.New("config.checkVersion", slidererrors.KindConfig,
			fmt.Errorf("schema version %s is newer than supported %s", v, SchemaVersion))
	}
	return semver.Canonical(v), nil
}

func (s SliderConfig) resolve() rangeslider.Config {
	cfg := rangeslider.DefaultConfig()
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.Minimum, s.Minimum)
	set(&cfg.Maximum, s.Maximum)
	set(&cfg.Lower, s.Lower)
	set(&cfg.Upper, s.Upper)
	set(&cfg.Bounds.Width, s.Width)
	set(&cfg.Bounds.Height, s.Height)
	set(&cfg.LowerThumbWidth, s.LowerThumbWidth)
	set(&cfg.UpperThumbWidth, s.UpperThumbWidth)
	set(&cfg.LineHeight, s.LineHeight)
	cfg.AllowLowerThumbDrag = s.AllowLowerThumbDrag
	cfg.AllowUpperCrossLower = s.AllowUpperCrossLower
	return cfg
}

func (s StyleConfig) resolve(source string) (rendering.Style, error) {
	style := rendering.DefaultStyle()
	colors := []struct {
		field string
		value string
		dst   *graphics.Color
	}{
		{"style.track", s.Track, &style.TrackColor},
		{"style.track_less", s.TrackLess, &style.TrackLessColor},
		{"style.track_highlight", s.TrackHighlight, &style.TrackHighlightColor},
		{"style.lower_thumb", s.LowerThumb, &style.LowerThumbColor},
		{"style.upper_thumb", s.UpperThumb, &style.UpperThumbColor},
		{"style.thumb_border", s.ThumbBorder, &style.ThumbBorderColor},
		{"style.label", s.Label, &style.LabelColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := graphics.ParseHex(c.value)
		if err != nil {
			return style, slidererrors.New("config.Resolve", slidererrors.KindParsing,
				&slidererrors.ParseError{Source: source, Field: c.field, Got: c.value})
		}
		*c.dst = parsed
	}
	if s.ThumbBorderWidth != nil {
		style.ThumbBorderWidth = *s.ThumbBorderWidth
	}
	if s.Curvaceousness != nil {
		style.Curvaceousness = *s.Curvaceousness
	}
	style.ShowLabels = s.ShowLabels
	return style, nil
}

func resolveGestures(source string, steps []GestureStep) ([]gestures.PointerEvent, error) {
	events := make([]gestures.PointerEvent, 0, len(steps))
	for i, step := range steps {
		phase, ok := gestures.ParsePointerPhase(strings.ToLower(strings.TrimSpace(step.Phase)))
		if !ok {
			return nil, slidererrors.New("config.Resolve", slidererrors.KindParsing,
				&slidererrors.ParseError{Source: source, Field: fmt.Sprintf("gestures[%d].phase", i), Got: step.Phase})
		}
		events = append(events, gestures.PointerEvent{
			PointerID: step.Pointer,
			Position:  graphics.Offset{X: step.X, Y: step.Y},
			Phase:     phase,
		})
	}
	return events, nil
}
