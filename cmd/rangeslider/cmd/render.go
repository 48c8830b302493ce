package cmd

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/go-drift/rangeslider/cmd/rangeslider/internal/config"
	"github.com/go-drift/rangeslider/pkg/rangeslider"
	"github.com/go-drift/rangeslider/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a slider to PNG",
		Long: `Render the slider described by a config file to a PNG image.

Flags:
  --config FILE   Config file (default: ./slider.yaml, defaults if missing)
  --out FILE      Output PNG (default: slider.png)
  --scale N       Pixels per control point, overrides render.scale`,
		Usage: "rangeslider render [--config FILE] [--out FILE] [--scale N]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	flags, err := parseFlags(args, "config", "out", "scale")
	if err != nil {
		return err
	}
	cfg, controller, err := load(flags["config"])
	if err != nil {
		return err
	}
	renderer, err := newRenderer(controller, cfg, flags["scale"])
	if err != nil {
		return err
	}
	out := flags["out"]
	if out == "" {
		out = "slider.png"
	}
	img, _, err := renderer.Frame()
	if err != nil {
		return err
	}
	if err := writePNG(out, img); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", out, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// load resolves the config at path and builds a controller from it.
func load(path string) (*config.Resolved, *rangeslider.Controller, error) {
	cfg, err := config.Resolve(path)
	if err != nil {
		return nil, nil, err
	}
	controller, err := rangeslider.NewController(cfg.Slider)
	if err != nil {
		return nil, nil, err
	}
	logrus.WithFields(logrus.Fields{
		"config":  cfg.Path,
		"version": cfg.Version,
		"lower":   controller.Lower(),
		"upper":   controller.Upper(),
	}).Debug("loaded slider")
	return cfg, controller, nil
}

func newRenderer(controller *rangeslider.Controller, cfg *config.Resolved, scaleFlag string) (*rendering.Renderer, error) {
	renderer := rendering.NewRenderer(controller, cfg.Style)
	renderer.Scale = cfg.Scale
	if scaleFlag != "" {
		scale, err := strconv.ParseFloat(scaleFlag, 64)
		if err != nil || !(scale > 0) || math.IsInf(scale, 1) {
			return nil, fmt.Errorf("--scale must be a positive number (got %q)", scaleFlag)
		}
		renderer.Scale = scale
	}
	return renderer, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
