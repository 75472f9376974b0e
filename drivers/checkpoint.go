package drivers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

var ErrCheckpointLocked = errors.New("checkpoint locked")

type Checkpoint[V comparable] struct {
	RunID  string            `json:"run_id"`
	Time   time.Time         `json:"time"`
	State  machines.State    `json:"state"`
	Start  machines.State    `json:"start"`
	Steps  int               `json:"steps"`
	Halted bool              `json:"halted"`
	Tape   tapes.Snapshot[V] `json:"tape"`
}

// Apply moves the machine to the checkpointed state and tape.
func (c *Checkpoint[V]) Apply(m *machines.Machine[V]) {
	m.InsertTape(c.Tape.Restore())
	m.SetState(c.State)
}

func (d *Driver[V]) checkpoint(ctx context.Context) (ret Checkpoint[V], err error) {
	err = d.Machine.DoContext(ctx, func(m *machines.Machine[V]) error {
		ret = Checkpoint[V]{
			RunID:  d.RunID,
			Time:   time.Now(),
			State:  m.State(),
			Start:  m.StartingState(),
			Steps:  d.Steps(),
			Halted: d.Halted(),
			Tape:   m.Tape().Snapshot(),
		}
		return nil
	})
	return
}

// Save writes the checkpoint file. A lock file guards against concurrent
// writers; the file is replaced atomically.
func (d *Driver[V]) Save(ctx context.Context) error {
	path := d.Env.Options.Checkpoint
	if path == "" {
		return nil
	}

	lockFile := path + ".lock"
	f, err := os.OpenFile(lockFile, os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrCheckpointLocked, lockFile)
		}
		return wrap(err)
	}
	f.Close()
	defer os.Remove(lockFile)

	checkpoint, err := d.checkpoint(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(checkpoint, "", "  ")
	if err != nil {
		return wrap(err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return wrap(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return wrap(err)
	}

	d.Env.Logger.DebugContext(ctx, "checkpoint saved",
		"path", path,
		"steps", checkpoint.Steps,
	)
	return nil
}

func LoadCheckpoint[V comparable](path string) (*Checkpoint[V], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	var checkpoint Checkpoint[V]
	if err := json.Unmarshal(data, &checkpoint); err != nil {
		return nil, fmt.Errorf("checkpoint %s: %w", path, err)
	}
	return &checkpoint, nil
}

// Resume continues the run recorded in the checkpoint at path.
func (d *Driver[V]) Resume(ctx context.Context, path string) error {
	checkpoint, err := LoadCheckpoint[V](path)
	if err != nil {
		return err
	}
	if err := d.Machine.DoContext(ctx, func(m *machines.Machine[V]) error {
		if checkpoint.Start != m.StartingState() {
			return fmt.Errorf("checkpoint %s: starting state %d, machine starts at %d",
				path, checkpoint.Start, m.StartingState())
		}
		checkpoint.Apply(m)
		return nil
	}); err != nil {
		return err
	}
	d.RunID = checkpoint.RunID
	d.steps.Store(int64(checkpoint.Steps))
	d.halted.Store(checkpoint.Halted)
	d.Env.Logger.InfoContext(ctx, "resumed",
		"run", d.RunID,
		"steps", checkpoint.Steps,
	)
	return nil
}
