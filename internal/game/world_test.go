package game

import "testing"

// openArena returns a walled arena with the player in the middle and
// no lancers.
const openArena = `
HHHHHHHHH
H.......H
H.......H
H...p...H
H.......H
H.......H
HHHHHHHHH
`

func TestWorld_PlayerMovesOnHeldKey(t *testing.T) {
	ts := NewTestSim(WithMap(openArena))
	start := ts.World.Player().Position()

	// Facing starts down, so a held down key moves without a turn tick.
	ts.PressKeys(KeyState{Down: true})
	tick := ts.RunUntil(func(ts *TestSim) bool {
		return ts.World.Player().Position() == start.Step(DirDown)
	}, 120)
	if tick < 0 {
		t.Fatalf("player never arrived; log:\n%s", ts.SimLog.Format())
	}
}

func TestWorld_PlayerTurnConsumesFirstTick(t *testing.T) {
	ts := NewTestSim(WithMap(openArena))
	p := ts.World.Player()

	ts.TapKeys(KeyState{Right: true})
	if p.Direction() != DirRight {
		t.Errorf("direction = %s, want right", p.Direction())
	}
	if p.IsMoving() {
		t.Error("turn tick must not start the step")
	}

	ts.TapKeys(KeyState{Right: true})
	if !p.IsMoving() {
		t.Error("second press should start the step")
	}
}

func TestWorld_PlayerBlockedByWall(t *testing.T) {
	ts := NewTestSim(WithMap(`
HHH
HpH
HHH
`))
	p := ts.World.Player()
	start := p.Position()

	// Facing down, wall below: the move is refused every tick and the
	// world carries on normally.
	ts.PressKeys(KeyState{Down: true})
	ts.RunTicks(30)
	if p.Position() != start || p.IsMoving() {
		t.Errorf("player moved into a wall: %v", p.Position())
	}
}

func TestWorld_RunModifierSpeedsPlayerUp(t *testing.T) {
	walk := NewTestSim(WithMap(openArena))
	run := NewTestSim(WithMap(openArena))

	walk.PressKeys(KeyState{Down: true})
	run.PressKeys(KeyState{Down: true, Run: true})

	target := walk.World.Player().Position().Step(DirDown)
	walkTick := walk.RunUntil(func(ts *TestSim) bool {
		return ts.World.Player().Position() == target
	}, 300)
	runTick := run.RunUntil(func(ts *TestSim) bool {
		return ts.World.Player().Position() == target
	}, 300)

	if walkTick < 0 || runTick < 0 {
		t.Fatalf("steps never committed: walk=%d run=%d", walkTick, runTick)
	}
	if runTick >= walkTick {
		t.Errorf("running took %d ticks, walking %d; running must be faster", runTick, walkTick)
	}
}

func TestWorld_PauseMenu(t *testing.T) {
	ts := NewTestSim(WithMap(openArena))

	ts.TapKeys(KeyState{Menu: true})
	front := ts.World.Events().Front()
	if front == nil || front.Kind != OverlayPauseMenu {
		t.Fatal("menu key should push the pause menu")
	}

	// While the menu is up, movement keys are ignored.
	start := ts.World.Player().Position()
	ts.PressKeys(KeyState{Down: true})
	ts.RunTicks(30)
	if ts.World.Player().Position() != start || ts.World.Player().IsMoving() {
		t.Error("player moved while the menu was open")
	}
	if ts.World.State() != StateGameEvent {
		t.Errorf("state = %s, want game_event", ts.World.State())
	}

	ts.ReleaseKeys()
	ts.TapKeys(KeyState{Confirm: true})
	if !ts.World.Events().Empty() {
		t.Fatal("confirm should dismiss the menu")
	}
	if ts.World.State() != StateOverworld {
		t.Errorf("state = %s, want overworld", ts.World.State())
	}

	// Movement works again afterwards.
	ts.PressKeys(KeyState{Down: true})
	if ts.RunUntil(func(ts *TestSim) bool {
		return ts.World.Player().Position() == start.Step(DirDown)
	}, 120) < 0 {
		t.Error("player frozen after menu closed")
	}
}

func TestWorld_WarpFiresAfterCommit(t *testing.T) {
	ts := NewTestSim(WithMap(`
HHHH
Hp.H
H.OH
HHHH
`))

	ts.PressKeys(KeyState{Down: true})
	ts.RunTicks(60)
	if len(ts.Warps) != 0 {
		t.Fatal("warp fired without the player on the warp cell")
	}

	ts.PressKeys(KeyState{Right: true})
	tick := ts.RunUntil(func(ts *TestSim) bool { return len(ts.Warps) > 0 }, 300)
	if tick < 0 {
		t.Fatalf("warp never fired; log:\n%s", ts.SimLog.Format())
	}
	if ts.Warps[0] != (GridPos{2, 2}) {
		t.Errorf("warp pos = %v, want (2,2)", ts.Warps[0])
	}
	// The warp fires only once per arrival.
	if len(ts.Warps) != 1 {
		t.Errorf("warp fired %d times, want 1", len(ts.Warps))
	}
}

func TestWorld_WarpHandlerMayLoadMap(t *testing.T) {
	maps := map[string]*MapData{}
	src, err := ParseMapData("Hp\nHO", nil)
	if err != nil {
		t.Fatalf("ParseMapData: %v", err)
	}
	dst, err := ParseMapData("..p\n...", nil)
	if err != nil {
		t.Fatalf("ParseMapData: %v", err)
	}
	maps["src"] = src
	maps["dst"] = dst

	w, err := NewWorld(maps, "src", DefaultParams(), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.SetWarpHandler(func(mapName string, pos GridPos) {
		if err := w.LoadMap("dst"); err != nil {
			t.Fatalf("LoadMap: %v", err)
		}
	})

	dt := 1.0 / 60.0
	for i := 0; i < 120 && w.MapName() == "src"; i++ {
		w.HandleKeys(KeyState{Down: true})
		w.Update(dt)
	}
	if w.MapName() != "dst" {
		t.Fatal("warp handler never switched maps")
	}
	if w.Player().Position() != (GridPos{2, 0}) {
		t.Errorf("player spawn on new map = %v, want (2,0)", w.Player().Position())
	}
}

func TestWorld_UnknownMapFails(t *testing.T) {
	maps := map[string]*MapData{}
	if _, err := NewWorld(maps, "nowhere", DefaultParams(), nil); err == nil {
		t.Fatal("expected error for unknown start map")
	}
}

func TestWorld_InvalidParamsFail(t *testing.T) {
	md, err := ParseMapData("p.", nil)
	if err != nil {
		t.Fatalf("ParseMapData: %v", err)
	}
	p := DefaultParams()
	p.WalkingSpeed = 0
	if _, err := NewWorld(map[string]*MapData{"m": md}, "m", p, nil); err == nil {
		t.Fatal("expected error for zero walking speed")
	}
}

func TestWorld_StateFlipsOnPushTick(t *testing.T) {
	ts := NewTestSim(WithMap(openArena))

	// The menu is pushed and the state changes hands within the same
	// tick, not one tick later.
	ts.TapKeys(KeyState{Menu: true})
	if ts.World.Events().Empty() {
		t.Fatal("menu key should push the pause menu")
	}
	if ts.World.State() != StateGameEvent {
		t.Errorf("state = %s on the push tick, want game_event", ts.World.State())
	}

	ts.TapKeys(KeyState{Confirm: true})
	if ts.World.State() != StateOverworld {
		t.Errorf("state = %s after dismissal, want overworld", ts.World.State())
	}
}

func TestWorld_LancerBlocksSightWhenPolicyOn(t *testing.T) {
	// Both lancers look down the player's column, but the near one
	// stands inside the far one's corridor. With actor occupancy
	// blocking sight, only the near lancer detects.
	p := DefaultParams()
	p.LOSBlockedByActors = true
	ts := NewTestSim(WithParams(p), WithMap(`
HHHHHHHH
H......H
H..1...H
H......H
H..2...H
H......H
H..p...H
HHHHHHHH
`, `
........
........
...a....
`, `
........
........
........
........
...a....
`))
	far, near := ts.World.Lancers()[0], ts.World.Lancers()[1]

	// The far corridor stops one cell short of the near lancer.
	cells := ts.World.SightCells(far)
	if len(cells) != 1 || cells[0] != (GridPos{3, 3}) {
		t.Fatalf("far sight = %v, want [(3,3)]", cells)
	}

	ts.RunTicks(1)
	if near.State != LancerTriggered {
		t.Errorf("near lancer state = %s, want triggered", near.State)
	}
	if far.State != LancerPatrolling {
		t.Errorf("far lancer state = %s, want still patrolling", far.State)
	}
	if ts.World.Events().Len() != 1 {
		t.Errorf("overlays pending = %d, want 1", ts.World.Events().Len())
	}
}

func TestWorld_PatrolRouteFidelityWhenBlocked(t *testing.T) {
	// The lancer's only waypoint is to its right and walled off. The
	// first tick turns, every later tick is refused, and the route
	// cursor never skips the waypoint.
	ts := NewTestSim(WithMap(`
HHHHH
H1H.H
H..pH
HHHHH
`, `
.....
..a..
.....
`))
	l := ts.World.Lancers()[0]
	want := l.Route.Next()

	ts.RunTicks(60)
	if l.Actor.Position() != (GridPos{1, 1}) {
		t.Errorf("lancer moved to %v despite the wall", l.Actor.Position())
	}
	if l.Route.Next() != want {
		t.Errorf("route cursor advanced past a blocked waypoint: %v", l.Route.Next())
	}
}
