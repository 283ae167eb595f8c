package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures instead of failing the enclosing test
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) { r.failed = true }

func TestGoroutineChecker_FinishedGoroutines(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestGoroutineChecker_WaitsForExitingGoroutines(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() { time.Sleep(50 * time.Millisecond) }()

	checker.Check(0)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)
	checker.timeout = 50 * time.Millisecond

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	checker.Check(0)
	assert.True(t, rec.failed)

	rec.failed = false
	checker.Check(1)
	assert.False(t, rec.failed)
}

func TestMemoryChecker(t *testing.T) {
	CheckNoMemoryLeak(t, 1.0, func() {
		buf := make([]byte, 4<<20)
		buf[0] = 1
	})

	rec := &recorder{TB: t}
	var retained []byte
	CheckNoMemoryLeak(rec, 1.0, func() {
		retained = make([]byte, 8<<20)
	})
	assert.True(t, rec.failed)
	assert.Len(t, retained, 8<<20)
}
