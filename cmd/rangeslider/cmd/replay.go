package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/go-drift/rangeslider/pkg/rangeslider"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay scripted gestures against a slider",
		Long: `Feed the gestures listed in a config file to the slider and report every
value change. The final values are printed as "lower upper".

Flags:
  --config FILE   Config file (default: ./slider.yaml, defaults if missing)
  --out FILE      Also render the final state to this PNG
  --scale N       Pixels per control point for --out`,
		Usage: "rangeslider replay [--config FILE] [--out FILE] [--scale N]",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
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
	if len(cfg.Events) == 0 {
		logrus.WithField("config", cfg.Path).Warn("no gestures to replay")
	}

	changes := 0
	unsubscribe := controller.AddListener(func(change rangeslider.ValueChange) {
		changes++
		logrus.WithFields(logrus.Fields{
			"thumb": change.Thumb.String(),
			"lower": change.Lower,
			"upper": change.Upper,
		}).Info("value changed")
	})
	defer unsubscribe()

	for i, event := range cfg.Events {
		before := controller.State()
		controller.HandlePointer(event)
		logrus.WithFields(logrus.Fields{
			"step":  i,
			"phase": event.Phase.String(),
			"x":     event.Position.X,
			"y":     event.Position.Y,
			"from":  before.String(),
			"to":    controller.State().String(),
		}).Debug("pointer event")
	}

	fmt.Fprintf(stdout, "%g %g\n", controller.Lower(), controller.Upper())
	logrus.WithField("changes", changes).Debug("replay finished")

	if out := flags["out"]; out != "" {
		img, _, err := renderer.Frame()
		if err != nil {
			return err
		}
		if err := writePNG(out, img); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", out, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return nil
}
