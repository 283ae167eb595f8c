// Package leaktest checks that code under test releases its goroutines and heap.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Polling bounds for settling goroutines and the heap
const (
	DefaultSettleTimeout = time.Second
	pollInterval         = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count at creation and compares against it later
type GoroutineChecker struct {
	t        testing.TB
	baseline int
	timeout  time.Duration
}

// NewGoroutineChecker snapshots the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		t:        t,
		baseline: runtime.NumGoroutine(),
		timeout:  DefaultSettleTimeout,
	}
}

// Check fails the test when more than tolerance goroutines outlive the baseline.
// Goroutines that are still exiting get until the settle timeout to finish.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.baseline+tolerance, g.timeout)
	if leaked := after - g.baseline; leaked > tolerance {
		g.t.Errorf("goroutine leak: baseline=%d after=%d leaked=%d tolerance=%d",
			g.baseline, after, leaked, tolerance)
	}
}

// settle polls until the goroutine count drops to target or the timeout passes
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}

// MemoryChecker records live heap bytes at creation
type MemoryChecker struct {
	t      testing.TB
	before uint64
}

// NewMemoryChecker forces a collection and snapshots the live heap
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{t: t, before: liveHeap()}
}

// Check fails the test when the live heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	after := liveHeap()
	growthMB := (float64(after) - float64(m.before)) / (1 << 20)
	if growthMB > maxGrowthMB {
		m.t.Errorf("heap growth: before=%.2fMB after=%.2fMB growth=%.2fMB max=%.2fMB",
			float64(m.before)/(1<<20), float64(after)/(1<<20), growthMB, maxGrowthMB)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return stats.HeapAlloc
}

// CheckNoGoroutineLeak runs fn and fails if any goroutine it started is still alive
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and fails if it retained more than maxGrowthMB of heap
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()
	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}
