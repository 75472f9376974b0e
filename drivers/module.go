package drivers

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tmconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs tmconfigs.Module
}

type Options struct {
	// MaxSteps bounds one Run. Zero means unbounded.
	MaxSteps int
	// Interval is the pause between two steps of a Run.
	Interval time.Duration
	// Checkpoint is the file saved after every Run. Empty disables it.
	Checkpoint string
}

// Env carries what a Driver needs besides its machine.
type Env struct {
	Options Options
	Logger  logs.Logger
	NewSpan logs.NewSpan
}

func (Module) Options(
	maxSteps tmconfigs.MaxSteps,
	interval tmconfigs.StepInterval,
	checkpoint tmconfigs.CheckpointPath,
) Options {
	return Options{
		MaxSteps:   int(maxSteps),
		Interval:   time.Duration(interval),
		Checkpoint: string(checkpoint),
	}
}

func (Module) Env(
	options Options,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Env {
	return Env{
		Options: options,
		Logger:  logger,
		NewSpan: newSpan,
	}
}
