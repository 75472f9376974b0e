package consoles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/drivers"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

var ErrUnknownCommand = errors.New("unknown command")

const DefaultRadius = 8

// Console drives a machine interactively.
type Console[V comparable] struct {
	Driver *drivers.Driver[V]
	Tap    debugs.Tap
	Out    io.Writer
	Logger logs.Logger
	// Radius is the default window radius.
	Radius int
}

func New[V comparable](driver *drivers.Driver[V], tap debugs.Tap) *Console[V] {
	return &Console[V]{
		Driver: driver,
		Tap:    tap,
		Out:    os.Stdout,
		Logger: driver.Env.Logger,
		Radius: DefaultRadius,
	}
}

// Exec runs one console command.
func (c *Console[V]) Exec(ctx context.Context, line string) (quit bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false, nil
	}
	args := words[1:]

	switch words[0] {

	case "quit", "exit", "q":
		return true, nil

	case "step", "s":
		n, err := countArg(args, 1)
		if err != nil {
			return false, err
		}
		for range n {
			running, err := c.Driver.Step(ctx)
			if err != nil {
				return false, err
			}
			if !running {
				fmt.Fprintln(c.Out, "halted")
				break
			}
		}
		return false, c.window(ctx, c.Radius)

	case "run", "r":
		result, err := c.Driver.Run(ctx)
		if err != nil && !errors.Is(err, drivers.ErrStepLimit) {
			return false, err
		}
		fmt.Fprintf(c.Out, "steps: %d, halted: %v\n", result.Steps, result.Halted)
		return false, c.window(ctx, c.Radius)

	case "reset":
		if err := c.Driver.Reset(ctx); err != nil {
			return false, err
		}
		return false, c.window(ctx, c.Radius)

	case "show":
		return false, c.Driver.Machine.DoContext(ctx, func(m *machines.Machine[V]) error {
			return m.Dump(c.Out)
		})

	case "window", "w":
		radius, err := countArg(args, c.Radius)
		if err != nil {
			return false, err
		}
		return false, c.window(ctx, radius)

	case "tap":
		globals, err := c.Globals(ctx)
		if err != nil {
			return false, err
		}
		c.Tap(ctx, "machine", globals)
		return false, nil

	case "help", "?":
		fmt.Fprintln(c.Out, "step [n] | run | reset | show | window [radius] | tap | quit")
		return false, nil

	}

	return false, fmt.Errorf("%w: %s", ErrUnknownCommand, words[0])
}

func countArg(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count: %d", n)
	}
	return n, nil
}

func (c *Console[V]) window(ctx context.Context, radius int) error {
	return c.Driver.Machine.DoContext(ctx, func(m *machines.Machine[V]) error {
		tape := m.Tape()
		cells := tape.ContentsAroundHead(radius)
		var b strings.Builder
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(' ')
			}
			if i == radius {
				fmt.Fprintf(&b, "[%v]", cell)
			} else {
				fmt.Fprint(&b, cell)
			}
		}
		_, err := fmt.Fprintf(c.Out, "state %d head %d: %s\n", m.State(), tape.Head(), b.String())
		return err
	})
}

// Globals exposes the machine to a tap session.
func (c *Console[V]) Globals(ctx context.Context) (ret map[string]any, err error) {
	err = c.Driver.Machine.DoContext(ctx, func(m *machines.Machine[V]) error {
		tape := m.Tape()
		low, _ := tape.Bounds()
		cells := make([]any, 0, tape.Len())
		for _, cell := range tape.Contents() {
			if cell.IsBlank() {
				cells = append(cells, nil)
			} else {
				cells = append(cells, cell.Value)
			}
		}
		ret = map[string]any{
			"state":  m.State(),
			"start":  m.StartingState(),
			"head":   tape.Head(),
			"origin": low,
			"tape":   cells,
			"steps":  c.Driver.Steps(),
			"halted": c.Driver.Halted(),
			"rules":  len(m.Table()),
			"dump":   m.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// functions run outside the lock
	ret["step"] = func() bool {
		running, err := c.Driver.Step(ctx)
		if err != nil {
			c.Logger.WarnContext(ctx, "step failed", "err", err)
		}
		return running
	}
	ret["reset"] = func() {
		if err := c.Driver.Reset(ctx); err != nil {
			c.Logger.WarnContext(ctx, "reset failed", "err", err)
		}
	}
	ret["read"] = func(pos int) string {
		var cell tapes.Cell[V]
		c.Driver.Machine.Do(func(m *machines.Machine[V]) error {
			cell = m.Tape().Read(pos)
			return nil
		})
		return cell.String()
	}
	return ret, nil
}

// Run reads commands from the terminal until quit or EOF.
func (c *Console[V]) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) (ret []string) {
		for _, name := range []string{"step", "run", "reset", "show", "window", "tap", "quit", "help"} {
			if strings.HasPrefix(name, input) {
				ret = append(ret, name)
			}
		}
		return
	})

	historyPath := historyPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
		defer c.saveHistory(line, historyPath)
	}

	if err := c.window(ctx, c.Radius); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		input, err := line.Prompt("tm> ")
		if err != nil {
			switch err {
			case io.EOF, liner.ErrPromptAborted:
				return nil
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		quit, err := c.Exec(ctx, input)
		if err != nil {
			c.Logger.WarnContext(ctx, "command failed", "command", input, "err", err)
			fmt.Fprintf(c.Out, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

func (c *Console[V]) saveHistory(line *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		c.Logger.Warn("create history dir error", "err", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		c.Logger.Warn("create history file error", "err", err)
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		c.Logger.Warn("write history error", "err", err)
	}
}

func historyPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "turing", "history")
}
