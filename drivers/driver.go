package drivers

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
)

var ErrStepLimit = errors.New("step limit reached")

// Driver owns the driving loop of a machine: single steps, runs until
// halt, pacing, and checkpoints.
type Driver[V comparable] struct {
	Machine *machines.Locked[V]
	Env     Env
	RunID   string

	steps  atomic.Int64
	halted atomic.Bool
}

func New[V comparable](env Env, machine *machines.Machine[V]) *Driver[V] {
	if env.Logger == nil {
		panic("nil logger")
	}
	return &Driver[V]{
		Machine: machines.NewLocked(machine),
		Env:     env,
		RunID:   uuid.NewString(),
	}
}

type Result struct {
	Steps  int
	Halted bool
}

// Steps returns the transitions taken since the driver started, checkpoints included.
func (d *Driver[V]) Steps() int {
	return int(d.steps.Load())
}

func (d *Driver[V]) Halted() bool {
	return d.halted.Load()
}

// Step performs at most one transition.
func (d *Driver[V]) Step(ctx context.Context) (bool, error) {
	running, err := d.Machine.Step(ctx)
	if err != nil {
		return false, err
	}
	if running {
		d.steps.Add(1)
	}
	d.halted.Store(!running)
	return running, nil
}

// Reset restores the starting state and clears the halt flag.
func (d *Driver[V]) Reset(ctx context.Context) error {
	return d.Machine.DoContext(ctx, func(m *machines.Machine[V]) error {
		m.Reset()
		d.halted.Store(false)
		return nil
	})
}

// Run steps until the machine halts, ctx is done, a step fails or the step
// budget is spent. The checkpoint, if configured, is saved on return.
func (d *Driver[V]) Run(ctx context.Context) (result Result, err error) {
	if d.Env.NewSpan != nil {
		ctx, _ = d.Env.NewSpan(ctx, "", "run", d.RunID)
	}
	logger := d.Env.Logger
	options := d.Env.Options

	logger.InfoContext(ctx, "run started",
		"run", d.RunID,
		"max_steps", options.MaxSteps,
		"interval", options.Interval,
	)

	defer func() {
		if options.Checkpoint != "" {
			if saveErr := d.Save(context.WithoutCancel(ctx)); saveErr != nil {
				err = errors.Join(err, saveErr)
			}
		}
		if err != nil {
			logger.ErrorContext(ctx, "run failed",
				"run", d.RunID,
				"steps", result.Steps,
				"error", err,
			)
			err = logs.WrapSpan(ctx, err)
		}
	}()

	var timer *time.Timer
	if options.Interval > 0 {
		timer = time.NewTimer(options.Interval)
		defer timer.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if options.MaxSteps > 0 && result.Steps >= options.MaxSteps {
			return result, ErrStepLimit
		}

		running, err := d.Step(ctx)
		if err != nil {
			return result, err
		}
		if !running {
			result.Halted = true
			logger.InfoContext(ctx, "machine halted",
				"run", d.RunID,
				"steps", result.Steps,
			)
			return result, nil
		}
		result.Steps++
		logger.DebugContext(ctx, "step",
			"run", d.RunID,
			"steps", result.Steps,
		)

		if timer != nil {
			timer.Reset(options.Interval)
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-timer.C:
			}
		}
	}
}
