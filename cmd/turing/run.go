package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/turing/consoles"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/drivers"
	"github.com/reusee/turing/inputs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/rules"
	"github.com/reusee/turing/tapes"
)

type deps struct {
	Env drivers.Env
	Tap debugs.Tap
}

func run[V comparable](
	ctx context.Context,
	deps deps,
	src string,
	symbols rules.SymbolParser[V],
) error {
	program, err := rules.Parse(src, symbols)
	if err != nil {
		return err
	}

	var cells []tapes.Cell[V]
	switch {
	case *inputExprFlag != "":
		cells, err = inputs.Eval(*inputExprFlag, symbols)
	case *inputFlag != "":
		cells, err = inputs.Parse(*inputFlag, symbols)
	}
	if err != nil {
		return err
	}

	driver := drivers.New(deps.Env, program.Machine(tapes.FromCells(cells)))
	if *resumeFlag {
		if deps.Env.Options.Checkpoint == "" {
			return fmt.Errorf("-resume requires a checkpoint path")
		}
		if err := driver.Resume(ctx, deps.Env.Options.Checkpoint); err != nil {
			return err
		}
	}

	if *consoleFlag {
		console := consoles.New(driver, deps.Tap)
		if *windowFlag > 0 {
			console.Radius = *windowFlag
		}
		return console.Run(ctx)
	}

	result, err := driver.Run(ctx)
	if errors.Is(err, drivers.ErrStepLimit) {
		fmt.Fprintf(os.Stderr, "stopped after %d steps\n", result.Steps)
		err = nil
	}
	if err != nil {
		return err
	}

	if *windowFlag > 0 {
		return driver.Machine.Do(func(m *machines.Machine[V]) error {
			_, err := fmt.Println(tapes.TrimBlanks(m.Tape().ContentsAroundHead(*windowFlag)))
			return err
		})
	}
	return driver.Machine.Do(func(m *machines.Machine[V]) error {
		return m.Dump(os.Stdout)
	})
}
