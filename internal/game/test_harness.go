package game

import "fmt"

// TestSim is a headless harness over World used by tests and the
// headless report command: fixed-dt ticks, fully deterministic, with a
// structured SimLog of every state change so runs can be inspected
// after the fact instead of poking at world internals mid-tick.
type TestSim struct {
	World  *World
	SimLog *SimLog
	Dt     float64
	Tick   int

	// Warps and Battles record fired world callbacks in order.
	Warps   []GridPos
	Battles []*Lancer

	keys KeyState

	prevPlayer GridPos
	prevStates []LancerState
	prevPos    []GridPos
	prevEvents int
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptTuning simOptionKind = iota // params, dt, verbose; applied first
	simOptMap                         // map selection; applied last
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*simConfig)
}

type simConfig struct {
	params  Params
	dt      float64
	verbose bool
	maps    map[string]*MapData
	start   string
}

// WithParams overrides the stock tuning.
func WithParams(p Params) SimOption {
	return SimOption{simOptTuning, func(c *simConfig) {
		c.params = p
	}}
}

// WithDt sets the fixed tick duration in seconds.
func WithDt(dt float64) SimOption {
	return SimOption{simOptTuning, func(c *simConfig) {
		c.dt = dt
	}}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptTuning, func(c *simConfig) {
		c.verbose = v
	}}
}

// WithMap runs the sim on an inline map definition with one route grid
// per lancer marker, registered under the name "test".
func WithMap(mapText string, routeTexts ...string) SimOption {
	return SimOption{simOptMap, func(c *simConfig) {
		md, err := ParseMapData(mapText, routeTexts)
		if err != nil {
			panic(fmt.Sprintf("test sim: %v", err))
		}
		c.maps = map[string]*MapData{"test": md}
		c.start = "test"
	}}
}

// WithMaps runs the sim on a prebuilt map registry.
func WithMaps(maps map[string]*MapData, start string) SimOption {
	return SimOption{simOptMap, func(c *simConfig) {
		c.maps = maps
		c.start = start
	}}
}

// NewTestSim constructs a TestSim from the given options in two
// ordered passes: tuning first, then the map. Without a map option the
// sim runs on the built-in maps starting at map 1. Construction
// defects panic; the harness is for tests that provide valid input.
func NewTestSim(opts ...SimOption) *TestSim {
	cfg := &simConfig{
		params: DefaultParams(),
		dt:     1.0 / 60.0,
	}
	for _, o := range opts {
		if o.kind == simOptTuning {
			o.fn(cfg)
		}
	}
	for _, o := range opts {
		if o.kind == simOptMap {
			o.fn(cfg)
		}
	}
	if cfg.maps == nil {
		maps, err := LoadBuiltinMaps()
		if err != nil {
			panic(fmt.Sprintf("test sim: %v", err))
		}
		cfg.maps = maps
		cfg.start = Map1Name
	}

	world, err := NewWorld(cfg.maps, cfg.start, cfg.params, nil)
	if err != nil {
		panic(fmt.Sprintf("test sim: %v", err))
	}
	ts := &TestSim{
		World:  world,
		SimLog: NewSimLog(cfg.verbose),
		Dt:     cfg.dt,
	}
	world.SetWarpHandler(func(mapName string, pos GridPos) {
		ts.Warps = append(ts.Warps, pos)
		ts.SimLog.Add(ts.Tick, "P", "warp", "reached", fmt.Sprintf("%s at %v", mapName, pos))
	})
	world.SetBattleHandler(func(l *Lancer) {
		ts.Battles = append(ts.Battles, l)
		ts.SimLog.Add(ts.Tick, ts.lancerLabel(l), "event", "battle", fmt.Sprintf("at %v", l.Actor.Position()))
	})
	ts.snapshot()
	return ts
}

// PressKeys holds the given key state down for every following tick.
func (ts *TestSim) PressKeys(keys KeyState) {
	ts.keys = keys
}

// ReleaseKeys clears all held keys.
func (ts *TestSim) ReleaseKeys() {
	ts.keys = KeyState{}
}

// TapKeys runs a single tick with the given keys, then restores the
// held state.
func (ts *TestSim) TapKeys(keys KeyState) {
	held := ts.keys
	ts.keys = keys
	ts.RunTicks(1)
	ts.keys = held
}

// RunTicks advances the simulation n ticks, logging changes to SimLog.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.runOneTick()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if
// the predicate returns true. It returns the tick at which the
// predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.runOneTick()
		if predicate(ts) {
			return ts.Tick
		}
	}
	return -1
}

// TicksFor converts a duration in seconds to whole ticks, rounding up.
func (ts *TestSim) TicksFor(seconds float64) int {
	n := int(seconds / ts.Dt)
	if float64(n)*ts.Dt < seconds {
		n++
	}
	return n
}

func (ts *TestSim) runOneTick() {
	ts.Tick++
	ts.World.HandleKeys(ts.keys)
	ts.World.Update(ts.Dt)
	ts.logChanges()
	ts.snapshot()
}

func (ts *TestSim) lancerLabel(target *Lancer) string {
	for i, l := range ts.World.Lancers() {
		if l == target {
			return fmt.Sprintf("L%d", i)
		}
	}
	return "--"
}

func (ts *TestSim) snapshot() {
	ts.prevPlayer = ts.World.Player().Position()
	lancers := ts.World.Lancers()
	ts.prevStates = ts.prevStates[:0]
	ts.prevPos = ts.prevPos[:0]
	for _, l := range lancers {
		ts.prevStates = append(ts.prevStates, l.State)
		ts.prevPos = append(ts.prevPos, l.Actor.Position())
	}
	ts.prevEvents = ts.World.Events().Len()
}

// logChanges diffs the world against the last snapshot and records
// every discrete change. LoadMap mid-run resets the lancer set, so the
// diff only runs when the snapshot still lines up.
func (ts *TestSim) logChanges() {
	if p := ts.World.Player().Position(); p != ts.prevPlayer {
		ts.SimLog.Add(ts.Tick, "P", "move", "arrive", p.String())
	}
	lancers := ts.World.Lancers()
	if len(lancers) == len(ts.prevStates) {
		for i, l := range lancers {
			label := fmt.Sprintf("L%d", i)
			if l.State != ts.prevStates[i] {
				ts.SimLog.Add(ts.Tick, label, "ai", "state_change",
					fmt.Sprintf("%s → %s", ts.prevStates[i], l.State))
			}
			if p := l.Actor.Position(); p != ts.prevPos[i] {
				ts.SimLog.AddVerbose(ts.Tick, label, "move", "arrive", p.String())
			}
		}
	}
	if n := ts.World.Events().Len(); n != ts.prevEvents {
		entries := ts.World.Events().Entries()
		if n > ts.prevEvents {
			for _, o := range entries[ts.prevEvents:] {
				ts.SimLog.Add(ts.Tick, "--", "event", "push", o.Kind.String())
			}
		} else {
			ts.SimLog.Add(ts.Tick, "--", "event", "pop", fmt.Sprintf("%d pending", n))
		}
	}
}

// Summary returns a short human-readable summary of the run state.
func (ts *TestSim) Summary() string {
	out := fmt.Sprintf("--- Summary at T=%03d ---\n", ts.Tick)
	out += fmt.Sprintf("map: %s  state: %s  player: %v\n",
		ts.World.MapName(), ts.World.State(), ts.World.Player().Position())
	for i, l := range ts.World.Lancers() {
		out += fmt.Sprintf("L%d: %s at %v facing %s\n",
			i, l.State, l.Actor.Position(), l.Actor.Direction())
	}
	out += fmt.Sprintf("overlays pending: %d  warps: %d  battles: %d\n",
		ts.World.Events().Len(), len(ts.Warps), len(ts.Battles))
	return out
}
