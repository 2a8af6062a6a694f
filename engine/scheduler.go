package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler invokes a callback on a fixed wall-clock period.
// The callback runs on a single loop goroutine, so no two timed
// invocations overlap. Step allows manual invocation of the same
// callback outside the timer; the caller is responsible for not
// running Step concurrently with an active timer (the scene layer
// serializes both behind its own lock).
type Scheduler struct {
	interval time.Duration
	tick     func()

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
	wg       sync.WaitGroup

	tickCount atomic.Uint64
}

// NewScheduler creates a scheduler; it does not start ticking
func NewScheduler(interval time.Duration, tick func()) *Scheduler {
	return &Scheduler{
		interval: interval,
		tick:     tick,
		stopChan: make(chan struct{}),
	}
}

// Start begins the tick loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop()
	}
}

// Stop halts the tick loop and waits for it to exit.
// Safe to call multiple times; a Scheduler cannot be restarted.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.running.CompareAndSwap(true, false) {
			s.wg.Wait()
		}
	})
}

// Step invokes the callback once, outside the timer
func (s *Scheduler) Step() {
	s.tick()
	s.tickCount.Add(1)
}

// Running reports whether the tick loop is active
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Ticks returns the total number of callback invocations
func (s *Scheduler) Ticks() uint64 {
	return s.tickCount.Load()
}

// loop fires on deadline with drift correction: each deadline advances
// by one interval, and a loop that falls more than two intervals
// behind re-anchors to the present instead of bursting to catch up.
func (s *Scheduler) loop() {
	defer s.wg.Done()

	deadline := time.Now().Add(s.interval)
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-timer.C:
		}

		s.tick()
		s.tickCount.Add(1)

		deadline = deadline.Add(s.interval)
		now := time.Now()
		if now.Sub(deadline) > 2*s.interval {
			deadline = now.Add(s.interval)
		}

		sleep := deadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
