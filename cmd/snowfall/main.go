package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowfall/asset"
	"github.com/lixenwraith/snowfall/render"
	"github.com/lixenwraith/snowfall/systems"
)

var (
	manualFlag   = flag.Bool("manual", false, "advance frames with space instead of the timer")
	seedFlag     = flag.Int64("seed", 0, "simulation seed (0 = from clock)")
	intervalFlag = flag.Duration("interval", 0, "frame interval (0 = default)")
	windMaxFlag  = flag.Float64("wind-max", 0, "max wind magnitude (0 = default)")
	pileFlag     = flag.Float64("pile-factor", 0, "pile factor (0 = default)")
	stormFlag    = flag.Int("storm-interval", 0, "fixed frames between storm shifts (0 = randomized)")
	factorFlag   = flag.Float64("storm-factor", 1.0, "initial storm factor (0 = randomized)")
	noBgFlag     = flag.Bool("no-background", false, "skip the decorative background")
	debugFlag    = flag.Bool("debug", false, "write debug log to logs/snowfall.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing any panic, otherwise the
	// trace lands on the alternate screen and vanishes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "snowfall crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	cfg := buildConfig()
	surface := render.NewScreen(screen)
	scene := systems.NewScene(surface, asset.WinterScene(), cfg)

	if err := scene.Start(*manualFlag); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start scene: %v\n", err)
		os.Exit(1)
	}
	defer scene.Stop()

	log.Printf("scene started: manual=%v seed=%d interval=%v",
		*manualFlag, cfg.Seed, cfg.TickInterval)

	run(screen, surface, scene)
}

func buildConfig() systems.Config {
	cfg := systems.DefaultConfig()
	cfg.Seed = *seedFlag
	cfg.StormInterval = *stormFlag
	cfg.StormFactor = *factorFlag
	cfg.ShowBackground = !*noBgFlag
	if *intervalFlag > 0 {
		cfg.TickInterval = *intervalFlag
	}
	if *windMaxFlag > 0 {
		cfg.WindMax = *windMaxFlag
	}
	if *pileFlag > 0 {
		cfg.PileFactor = *pileFlag
	}
	return cfg
}

// run drives the event loop: quit keys, pause toggle, manual step,
// and resize repaints. Simulation frames arrive from the scene's own
// scheduler, so this loop only blocks on terminal events.
func run(screen tcell.Screen, surface *render.Screen, scene *systems.Scene) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Rune() == 'q':
				return
			case ev.Rune() == ' ':
				scene.Step()
			case ev.Rune() == 'p':
				if scene.Running() {
					scene.Pause()
					log.Printf("paused at %d flakes", scene.Flakes())
				} else if !*manualFlag {
					scene.Resume()
				}
			}

		case *tcell.EventResize:
			surface.Sync()
			scene.Redraw()

		case nil:
			// Screen finalized
			return
		}
	}
}
