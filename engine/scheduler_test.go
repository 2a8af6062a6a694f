package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerManualStep(t *testing.T) {
	var count atomic.Int64
	s := NewScheduler(time.Hour, func() { count.Add(1) })

	s.Step()
	s.Step()

	if got := count.Load(); got != 2 {
		t.Errorf("Expected 2 callback runs, got %d", got)
	}
	if got := s.Ticks(); got != 2 {
		t.Errorf("Expected tick count 2, got %d", got)
	}
	if s.Running() {
		t.Error("Manual steps must not start the loop")
	}
}

func TestSchedulerTicks(t *testing.T) {
	var count atomic.Int64
	s := NewScheduler(5*time.Millisecond, func() { count.Add(1) })

	s.Start()
	if !s.Running() {
		t.Fatal("Expected running scheduler after start")
	}

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	s.Stop()

	if got := count.Load(); got < 3 {
		t.Errorf("Expected at least 3 ticks, got %d", got)
	}
}

func TestSchedulerStopIdempotent(t *testing.T) {
	s := NewScheduler(5*time.Millisecond, func() {})
	s.Start()

	s.Stop()
	s.Stop() // double cancel must be a no-op

	if s.Running() {
		t.Error("Scheduler still running after stop")
	}
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s := NewScheduler(5*time.Millisecond, func() {})
	s.Stop() // never started; must not panic or hang
}

func TestSchedulerNoTickAfterStop(t *testing.T) {
	var count atomic.Int64
	s := NewScheduler(time.Millisecond, func() { count.Add(1) })

	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	settled := count.Load()
	time.Sleep(20 * time.Millisecond)
	if got := count.Load(); got != settled {
		t.Errorf("Callback fired after stop: %d -> %d", settled, got)
	}
}
