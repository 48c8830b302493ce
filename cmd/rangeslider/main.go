// Command rangeslider renders range slider configurations and replays
// scripted pointer gestures against them.
package main

import (
	"os"

	"github.com/go-drift/rangeslider/cmd/rangeslider/cmd"
	slidererrors "github.com/go-drift/rangeslider/pkg/errors"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		slidererrors.Report(slidererrors.New("rangeslider", slidererrors.KindUnknown, err))
		os.Exit(1)
	}
}
