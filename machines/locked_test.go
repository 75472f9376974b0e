package machines

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/reusee/turing/tapes"
)

func TestLocked(t *testing.T) {
	locked := NewLocked(bitFlipper(tapes.New(true, false, true, false)))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				running, err := locked.Step(context.Background())
				if err != nil {
					t.Error(err)
					return
				}
				if !running {
					return
				}
			}
		}()
	}
	wg.Wait()

	if err := locked.Do(func(m *Machine[bool]) error {
		if str := m.Tape().String(); str != "false true false true" {
			t.Fatalf("got %s", str)
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}
}

func TestLockedContext(t *testing.T) {
	locked := NewLocked(New[bool](nil))
	hold := make(chan struct{})
	held := make(chan struct{})
	go locked.Do(func(*Machine[bool]) error {
		close(held)
		<-hold
		return nil
	})
	<-held
	defer close(hold)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := locked.Step(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}
}
