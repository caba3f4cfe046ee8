package session

import (
	"errors"
	"sync"
	"testing"

	fperr "github.com/thermokit/fluidprop/errors"
)

func TestWith_ConfiguresOnce(t *testing.T) {
	Reset()
	id := NextID()

	configures := 0
	for i := 0; i < 5; i++ {
		err := With(id, func() error { configures++; return nil }, func() error { return nil })
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if configures != 1 {
		t.Errorf("configure ran %d times, want 1", configures)
	}
}

func TestWith_ReconfiguresOnSwitch(t *testing.T) {
	Reset()
	a, b := NextID(), NextID()

	var log []uint64
	run := func(id uint64) {
		t.Helper()
		err := With(id, func() error { log = append(log, id); return nil }, func() error { return nil })
		if err != nil {
			t.Fatal(err)
		}
	}

	run(a)
	run(a)
	run(b)
	run(b)
	run(a)

	want := []uint64{a, b, a}
	if len(log) != len(want) {
		t.Fatalf("configure log %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("configure log %v, want %v", log, want)
		}
	}
}

func TestWith_ConfigureErrorKeepsOldActive(t *testing.T) {
	Reset()
	a, b := NextID(), NextID()

	if err := With(a, func() error { return nil }, func() error { return nil }); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("setup failed")
	err := With(b, func() error { return boom }, func() error {
		t.Fatal("body must not run after configure failure")
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want configure error", err)
	}

	// a is still active: no reconfiguration needed.
	configures := 0
	if err := With(a, func() error { configures++; return nil }, func() error { return nil }); err != nil {
		t.Fatal(err)
	}
	if configures != 0 {
		t.Error("active id was clobbered by failed configure")
	}
}

func TestWith_BodyErrorReleasesLock(t *testing.T) {
	Reset()
	id := NextID()

	boom := errors.New("flash failed")
	if err := With(id, func() error { return nil }, func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}

	// Lock must be free again.
	if err := With(id, func() error { return nil }, func() error { return nil }); err != nil {
		t.Fatalf("lock leaked: %v", err)
	}
}

func TestWith_MutualExclusion(t *testing.T) {
	Reset()
	id := NextID()

	var inside, max int
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = With(id, func() error { return nil }, func() error {
					// inside is unguarded on purpose; the session lock
					// is the only thing keeping this race-free.
					inside++
					if inside > max {
						max = inside
					}
					inside--
					return nil
				})
			}
		}()
	}
	wg.Wait()

	if max != 1 {
		t.Errorf("observed %d concurrent holders, want 1", max)
	}
}

func TestWith_PanicPoisons(t *testing.T) {
	Reset()
	id := NextID()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic must propagate")
			}
		}()
		_ = With(id, func() error { return nil }, func() error { panic("engine crashed") })
	}()

	err := With(id, func() error { return nil }, func() error { return nil })
	if !errors.Is(err, &fperr.Error{Phase: fperr.PhaseSession, Kind: fperr.KindLockPoisoned}) {
		t.Fatalf("expected lock-poisoned error, got %v", err)
	}

	// Reset recovers and forces reconfiguration.
	Reset()
	configures := 0
	if err := With(id, func() error { configures++; return nil }, func() error { return nil }); err != nil {
		t.Fatalf("after reset: %v", err)
	}
	if configures != 1 {
		t.Errorf("expected reconfiguration after reset, got %d", configures)
	}
}
