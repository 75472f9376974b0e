package machines

import (
	"context"

	"github.com/reusee/turing/syncs"
)

// Locked serializes all access to a machine, so a timer-driven runner and
// viewers reading state can share it.
type Locked[V comparable] struct {
	sem     syncs.Semaphore
	machine *Machine[V]
}

func NewLocked[V comparable](machine *Machine[V]) *Locked[V] {
	return &Locked[V]{
		sem:     syncs.NewSemaphore(1),
		machine: machine,
	}
}

// Do runs fn with exclusive access to the machine.
func (l *Locked[V]) Do(fn func(*Machine[V]) error) error {
	l.sem.Acquire()
	defer l.sem.Release()
	return fn(l.machine)
}

// DoContext is Do, giving up if ctx is done before access is granted.
func (l *Locked[V]) DoContext(ctx context.Context, fn func(*Machine[V]) error) error {
	if err := l.sem.AcquireContext(ctx); err != nil {
		return err
	}
	defer l.sem.Release()
	return fn(l.machine)
}

func (l *Locked[V]) Step(ctx context.Context) (running bool, err error) {
	err = l.DoContext(ctx, func(m *Machine[V]) error {
		running, err = m.Step()
		return err
	})
	return
}
