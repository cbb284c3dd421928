package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"thegame/internal/config"
	"thegame/internal/game"
)

// runStats aggregates the interesting firsts and counts of one run.
type runStats struct {
	ticks int

	firstTriggerTick int
	firstChaseTick   int
	firstBattleTick  int
	firstWarpTick    int

	stateChanges  int
	playerArrives int
	overlayPushes int
	battles       int
	warps         int
}

func main() {
	cmd := &cli.Command{
		Name:  "headless-report",
		Usage: "run the simulation without a window and print a structured report",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "ticks", Value: 3600, Usage: "ticks to simulate"},
			&cli.StringFlag{Name: "map", Value: game.Map1Name, Usage: "built-in map to start on"},
			&cli.StringFlag{Name: "config", Usage: "path to YAML config (optional)"},
			&cli.BoolFlag{Name: "verbose", Usage: "log per-tick lancer positions"},
			&cli.BoolFlag{Name: "full-log", Usage: "print the whole event log"},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	ticks := int(cmd.Int("ticks"))
	if ticks <= 0 {
		return fmt.Errorf("-ticks must be > 0")
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	maps, err := game.LoadBuiltinMaps()
	if err != nil {
		return err
	}
	start := cmd.String("map")
	if _, ok := maps[start]; !ok {
		return fmt.Errorf("unknown map %q", start)
	}

	ts := game.NewTestSim(
		game.WithParams(cfg.Params()),
		game.WithDt(1.0/float64(cfg.Window.TPS)),
		game.WithVerbose(cmd.Bool("verbose")),
		game.WithMaps(maps, start),
	)

	fmt.Printf("=== Headless Patrol Report ===\n")
	fmt.Printf("map=%s ticks=%d dt=%.4f\n\n", start, ticks, ts.Dt)

	ts.RunTicks(ticks)

	if cmd.Bool("full-log") {
		fmt.Print(ts.SimLog.Format())
		fmt.Println()
	}
	printStats(collectStats(ts))
	fmt.Println()
	fmt.Print(ts.Summary())
	return nil
}

func collectStats(ts *game.TestSim) runStats {
	st := runStats{
		ticks:            ts.Tick,
		firstTriggerTick: -1,
		firstChaseTick:   -1,
		firstBattleTick:  -1,
		firstWarpTick:    -1,
		battles:          len(ts.Battles),
		warps:            len(ts.Warps),
	}
	for _, e := range ts.SimLog.Entries() {
		switch {
		case e.Category == "ai" && e.Key == "state_change":
			st.stateChanges++
			if st.firstTriggerTick < 0 && strings.HasSuffix(e.Value, "triggered") {
				st.firstTriggerTick = e.Tick
			}
			if st.firstChaseTick < 0 && strings.HasSuffix(e.Value, "chasing") {
				st.firstChaseTick = e.Tick
			}
		case e.Category == "event" && e.Key == "push":
			st.overlayPushes++
		case e.Category == "event" && e.Key == "battle":
			if st.firstBattleTick < 0 {
				st.firstBattleTick = e.Tick
			}
		case e.Category == "warp" && e.Key == "reached":
			if st.firstWarpTick < 0 {
				st.firstWarpTick = e.Tick
			}
		case e.Category == "move" && e.Actor == "P":
			st.playerArrives++
		}
	}
	return st
}

func printStats(st runStats) {
	fmt.Printf("ticks simulated:   %d\n", st.ticks)
	fmt.Printf("ai state changes:  %d\n", st.stateChanges)
	fmt.Printf("overlay pushes:    %d\n", st.overlayPushes)
	fmt.Printf("player steps:      %d\n", st.playerArrives)
	fmt.Printf("battles:           %d\n", st.battles)
	fmt.Printf("warps:             %d\n", st.warps)
	fmt.Printf("first trigger:     %s\n", tickLabel(st.firstTriggerTick))
	fmt.Printf("first chase:       %s\n", tickLabel(st.firstChaseTick))
	fmt.Printf("first battle:      %s\n", tickLabel(st.firstBattleTick))
	fmt.Printf("first warp:        %s\n", tickLabel(st.firstWarpTick))
}

func tickLabel(tick int) string {
	if tick < 0 {
		return "never"
	}
	return fmt.Sprintf("T=%d", tick)
}
