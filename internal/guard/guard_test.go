package guard

import (
	"errors"
	"testing"

	"github.com/jacobsa/syncutil"
)

func TestMain(m *testing.M) {
	// Enabling invariant checking for all tests, the way gcsfuse's own
	// locking-heavy packages do before exercising anything built on
	// jacobsa/syncutil.
	syncutil.EnableInvariantChecking()
	m.Run()
}

func TestWithLockRunsUnderExclusiveAccess(t *testing.T) {
	var g RWMutex
	n := 0
	if err := g.WithLock(func() error { n++; return nil }); err != nil {
		t.Fatalf("WithLock returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
}

func TestWithLockPropagatesError(t *testing.T) {
	var g RWMutex
	want := errors.New("boom")
	if err := g.WithLock(func() error { return want }); err != want {
		t.Fatalf("WithLock returned %v, want %v", err, want)
	}
	// An error return (as opposed to a panic) must not poison the guard.
	if err := g.WithLock(func() error { return nil }); err != nil {
		t.Fatalf("guard unexpectedly poisoned after an ordinary error: %v", err)
	}
}

func TestPanicPoisons(t *testing.T) {
	var g RWMutex
	func() {
		defer func() { recover() }()
		g.WithLock(func() error { panic("boom") })
	}()

	if err := g.Lock(); !errors.Is(err, ErrPoisoned) {
		t.Fatalf("Lock() after panic = %v, want ErrPoisoned", err)
	}
	if err := g.RLock(); !errors.Is(err, ErrPoisoned) {
		t.Fatalf("RLock() after panic = %v, want ErrPoisoned", err)
	}
}
