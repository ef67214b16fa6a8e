package orchestrator

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestSessionLocks_MutualExclusion(t *testing.T) {
	locks := newSessionLocks()

	// A plain int is enough: without serialization the race detector
	// and lost increments both fail this.
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.acquire("same-session")
			counter++
			release()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}

func TestSessionLocks_HeldLockSurvivesManyOtherSessions(t *testing.T) {
	locks := newSessionLocks()
	release := locks.acquire("held")

	// Churn far more sessions than any bounded cache would keep.
	for i := 0; i < 5000; i++ {
		locks.acquire(fmt.Sprintf("session-%d", i))()
	}

	acquired := make(chan struct{})
	go func() {
		r := locks.acquire("held")
		r()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired the lock while the first still held it")
	case <-time.After(50 * time.Millisecond):
	}

	release()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("lock never became available after release")
	}
}

func TestSessionLocks_EntriesFreedWhenIdle(t *testing.T) {
	locks := newSessionLocks()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			release := locks.acquire(fmt.Sprintf("session-%d", n%10))
			release()
		}(i)
	}
	wg.Wait()

	locks.mu.Lock()
	remaining := len(locks.entries)
	locks.mu.Unlock()

	if remaining != 0 {
		t.Errorf("expected all idle entries freed, %d remain", remaining)
	}
}
