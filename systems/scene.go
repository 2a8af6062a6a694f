package systems

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/lixenwraith/snowfall/engine"
	"github.com/lixenwraith/snowfall/render"
)

// Scene is the control surface tying the snow field to a display
// surface and a frame scheduler. The mutex serializes timer ticks
// against manual steps, resize repaints, and lifecycle calls; within
// a frame all simulation state is owned by the single step function.
type Scene struct {
	mu sync.Mutex

	cfg        Config
	surface    render.Surface
	background render.Background

	field  *Field
	ground *Ground
	sched  *engine.Scheduler
}

// NewScene wires a snow field over surface. A zero cfg.Seed seeds the
// simulation from the clock; any other seed reproduces an exact run.
func NewScene(surface render.Surface, background render.Background, cfg Config) *Scene {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	storm := NewStorm(rng, cfg.WindMax, cfg.StormInterval, cfg.StormFactor)
	ground := NewGround(surface, cfg.Scale, cfg.PileFactor)

	return &Scene{
		cfg:        cfg,
		surface:    surface,
		background: background,
		field:      NewField(rng, surface, storm, ground),
		ground:     ground,
	}
}

// Start resets all scene state and begins animating. With manual set,
// no timer is created and frames advance only through Step. Fails
// fast when the background art does not fit the current grid.
// Restarting a running scene cancels its timer first.
func (s *Scene) Start(manual bool) error {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, _ := s.surface.Dimensions()
	if s.cfg.ShowBackground && s.background.Height() > rows {
		return fmt.Errorf("background art height %d does not fit %d rows",
			s.background.Height(), rows)
	}

	s.surface.Clear()
	s.field.Reset()
	s.ground.Reset()
	s.paintStatic()
	s.surface.Show()

	if !manual {
		s.sched = engine.NewScheduler(s.cfg.TickInterval, s.tick)
		s.sched.Start()
	}
	return nil
}

// Stop cancels the frame timer. Idempotent: stopping a stopped or
// never-started scene is a no-op.
func (s *Scene) Stop() {
	s.mu.Lock()
	sched := s.sched
	s.sched = nil
	s.mu.Unlock()

	if sched != nil {
		sched.Stop()
	}
}

// Pause is an alias for Stop that reads better at call sites toggling
// the timer
func (s *Scene) Pause() {
	s.Stop()
}

// Resume recreates the frame timer after a Pause. Running scenes are
// left alone.
func (s *Scene) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sched != nil {
		return
	}
	s.sched = engine.NewScheduler(s.cfg.TickInterval, s.tick)
	s.sched.Start()
}

// Running reports whether the frame timer is active
func (s *Scene) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

// Step advances one frame manually, whether or not the timer runs
func (s *Scene) Step() {
	s.tick()
}

// Redraw repaints the static layers after a resize; accumulated snow
// and airborne flakes carry over
func (s *Scene) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.surface.Clear()
	s.paintStatic()
	s.ground.Repaint()
	s.surface.Show()
}

// Flakes returns the airborne flake count, for the caller's own
// status reporting
func (s *Scene) Flakes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.FlakeCount()
}

func (s *Scene) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.field.Step()
	s.surface.Show()
}

// paintStatic draws the background anchored to the bottom row.
// Callers hold the mutex.
func (s *Scene) paintStatic() {
	if !s.cfg.ShowBackground {
		return
	}
	rows, _ := s.surface.Dimensions()
	s.surface.DrawBackground(s.background, rows-s.background.Height())
}
