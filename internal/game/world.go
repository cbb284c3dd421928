package game

import (
	"fmt"

	"go.uber.org/zap"
)

// KeyState is the abstract pressed-key snapshot a frontend hands in
// once per tick. The core never reads the keyboard itself.
type KeyState struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Run     bool // hold to run instead of walk
	Menu    bool // open the pause menu
	Confirm bool // dismiss the front dialog or menu
}

// WorldState says which layer owns the current tick.
type WorldState uint8

const (
	StateOverworld WorldState = iota // AI and player input run
	StateGameEvent                   // an overlay owns the tick
)

func (s WorldState) String() string {
	switch s {
	case StateOverworld:
		return "overworld"
	case StateGameEvent:
		return "game_event"
	}
	return "unknown"
}

// World owns one loaded map, its actors, and the overlay stack, and
// drives the fixed per-tick dispatch order. It is single-goroutine:
// one HandleKeys then one Update per frame.
type World struct {
	logger *zap.Logger
	params Params

	maps    map[string]*MapData
	mapName string
	grid    *GridMap

	player  *Actor
	lancers []*Lancer

	events EventStack
	state  WorldState

	pendingKeys KeyState
	pendingWarp *GridPos

	onWarp   func(mapName string, pos GridPos)
	onBattle func(l *Lancer)
}

// NewWorld builds a world over a registry of named maps and loads the
// starting one. A nil logger disables logging.
func NewWorld(maps map[string]*MapData, start string, params Params, logger *zap.Logger) (*World, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		logger: logger,
		params: params,
		maps:   maps,
	}
	if err := w.LoadMap(start); err != nil {
		return nil, err
	}
	return w, nil
}

// LoadMap rebuilds the world from the named map's data: fresh player,
// fresh lancers with routes reset to their first waypoint, empty
// overlay stack. Actors are rebuilt wholesale rather than migrated.
func (w *World) LoadMap(name string) error {
	md, ok := w.maps[name]
	if !ok {
		return fmt.Errorf("world: unknown map %q", name)
	}
	w.mapName = name
	w.grid = md.Grid
	w.player = newActor(GroupPlayer, md.PlayerSpawn, w, w.params)
	w.lancers = nil
	for i, spawn := range md.LancerSpawns {
		route, err := NewRoute(md.LancerRoutes[i])
		if err != nil {
			return fmt.Errorf("world: lancer %d: %w", i, err)
		}
		w.lancers = append(w.lancers, &Lancer{
			Actor:         newActor(GroupLancer, spawn, w, w.params),
			State:         LancerPatrolling,
			Route:         route,
			sightDistance: w.params.SightDistance,
		})
	}
	w.events = EventStack{}
	w.state = StateOverworld
	w.pendingWarp = nil
	w.logger.Info("map loaded",
		zap.String("map", name),
		zap.Int("lancers", len(w.lancers)),
		zap.Stringer("player_spawn", md.PlayerSpawn))
	return nil
}

// SetWarpHandler installs the callback fired after the player commits
// a step onto a warp cell. The handler may call LoadMap.
func (w *World) SetWarpHandler(fn func(mapName string, pos GridPos)) {
	w.onWarp = fn
}

// SetBattleHandler installs the hand-off callback fired when a chasing
// lancer reaches the player.
func (w *World) SetBattleHandler(fn func(l *Lancer)) {
	w.onBattle = fn
}

// HandleKeys records the key snapshot for the next Update. Input is
// applied inside Update at its place in the dispatch order, not here.
func (w *World) HandleKeys(keys KeyState) {
	w.pendingKeys = keys
}

// Update runs one simulation tick. The order is fixed: the front
// overlay (or, with an empty stack, AI dispatch and player input)
// first, then movement interpolation for every actor, then warp
// notification, then overlay cleanup.
func (w *World) Update(dt float64) {
	keys := w.pendingKeys
	w.pendingKeys = KeyState{}

	// 1. DISPATCH: overlay tick, or AI plus player input.
	if front := w.events.Front(); front != nil {
		w.state = StateGameEvent
		front.HandleInput(keys)
		front.Advance(dt)
	} else {
		w.state = StateOverworld
		w.dispatchLancers()
		// A detection during dispatch owns the tick: new alerts
		// suppress player input immediately.
		if w.events.Empty() {
			w.applyPlayerInput(keys)
		}
	}

	// 2. MOVEMENT: in-flight steps keep interpolating even while an
	// overlay owns the dispatch phase, so a started step always
	// finishes.
	for _, l := range w.lancers {
		l.Actor.Update(dt)
	}
	w.player.Update(dt)

	// 3. WARP: fired only after the player's step committed.
	if w.pendingWarp != nil {
		pos := *w.pendingWarp
		w.pendingWarp = nil
		w.logger.Info("warp reached",
			zap.String("map", w.mapName),
			zap.Stringer("pos", pos))
		if w.onWarp != nil {
			w.onWarp(w.mapName, pos)
		}
	}

	// 4. CLEANUP: drop at most one finished overlay and apply its
	// completion effect.
	if done := w.events.Cleanup(); done != nil {
		w.finishOverlay(done)
	}
	// Recompute ownership from the stack: a detection or menu push
	// earlier this tick hands the next tick to the overlay layer.
	if w.events.Empty() {
		w.state = StateOverworld
	} else {
		w.state = StateGameEvent
	}
}

// applyPlayerInput starts at most one player step per tick. Movement
// keys are ignored while a step is in flight; the run modifier is
// applied regardless so pace changes take effect mid-step.
func (w *World) applyPlayerInput(keys KeyState) {
	w.player.SetRunning(keys.Run)

	if keys.Menu && !w.player.IsMoving() {
		w.events.Push(NewPauseMenuOverlay())
		w.logger.Info("pause menu opened")
		return
	}
	if w.player.IsMoving() {
		return
	}

	cur := w.player.Position()
	switch {
	case keys.Down:
		w.player.Move(cur.Step(DirDown))
	case keys.Up:
		w.player.Move(cur.Step(DirUp))
	case keys.Left:
		w.player.Move(cur.Step(DirLeft))
	case keys.Right:
		w.player.Move(cur.Step(DirRight))
	}
}

// dispatchLancers runs one overworld AI pass. Detection collects every
// newly triggered lancer before any alert is pushed, so spotting the
// player does not depend on iteration order. A detection tick freezes
// all patrol and chase movement.
func (w *World) dispatchLancers() {
	playerPos := w.player.EffectivePosition()

	var triggered []*Lancer
	for _, l := range w.lancers {
		if l.State != LancerPatrolling || l.Actor.IsMoving() {
			continue
		}
		if containsPos(l.LineOfSight(w.grid, w.losBlocked()), playerPos) {
			triggered = append(triggered, l)
		}
	}
	if len(triggered) > 0 {
		for _, l := range triggered {
			l.State = LancerTriggered
			w.events.Push(NewAlertOverlay(l, w.params.AlertDuration))
			w.logger.Info("lancer triggered",
				zap.Stringer("lancer", l.Actor.ID),
				zap.Stringer("pos", l.Actor.Position()),
				zap.Stringer("player", playerPos))
		}
		return
	}

	for _, l := range w.lancers {
		if l.Actor.IsMoving() {
			continue
		}
		switch l.State {
		case LancerPatrolling:
			// Peek, step, and only then advance: a turn-only or
			// blocked tick leaves the cursor where it was.
			if l.Actor.Move(l.Route.Next()) {
				l.Route.Advance()
			}
		case LancerChasing:
			if manhattan(l.Actor.Position(), playerPos) <= 1 {
				l.State = LancerDone
				w.events.Push(NewCaughtDialogOverlay(l))
				w.events.Push(NewBattleOverlay(l))
				w.logger.Info("player caught",
					zap.Stringer("lancer", l.Actor.ID),
					zap.Stringer("pos", l.Actor.Position()))
				if w.onBattle != nil {
					w.onBattle(l)
				}
				continue
			}
			// Rejected steps (turn-only or blocked) retry next tick.
			l.Actor.Move(l.ChaseStep(playerPos))
		}
	}
}

// finishOverlay applies the completion effect of an overlay removed by
// cleanup. Finishing the alert is what releases a triggered lancer
// into the chase.
func (w *World) finishOverlay(o *Overlay) {
	switch o.Kind {
	case OverlayAlert:
		if o.Lancer != nil && o.Lancer.State == LancerTriggered {
			o.Lancer.State = LancerChasing
			w.logger.Info("lancer chasing",
				zap.Stringer("lancer", o.Lancer.Actor.ID))
		}
	case OverlayPauseMenu:
		w.logger.Info("pause menu closed")
	}
}

// losBlocked returns the dynamic sight blocker for the current policy,
// or nil when only static tiles block sight.
func (w *World) losBlocked() func(GridPos) bool {
	if !w.params.LOSBlockedByActors {
		return nil
	}
	return func(pos GridPos) bool {
		for _, l := range w.lancers {
			if l.Actor.Position() == pos {
				return true
			}
		}
		return false
	}
}

// CanEnter reports whether a member of group may reserve pos: the cell
// must be statically walkable and not held, committed or in flight, by
// the opposing group. Same-group overlap is not checked.
func (w *World) CanEnter(pos GridPos, group ActorGroup) bool {
	if !w.grid.IsWalkable(pos) {
		return false
	}
	if group == GroupPlayer {
		for _, l := range w.lancers {
			if l.Actor.occupies(pos) {
				return false
			}
		}
		return true
	}
	return !w.player.occupies(pos)
}

// occupies reports whether pos matches the committed cell or the
// reserved in-flight destination.
func (a *Actor) occupies(pos GridPos) bool {
	if a.position == pos {
		return true
	}
	return a.nextPosition != nil && *a.nextPosition == pos
}

func (w *World) actorArrived(a *Actor, pos GridPos) {
	if a == w.player && w.grid.IsWarp(pos) {
		p := pos
		w.pendingWarp = &p
	}
}

// SightCells returns the corridor a lancer currently sees under the
// active sight policy. Renderers use this so the drawn corridor always
// matches what detection checks.
func (w *World) SightCells(l *Lancer) []GridPos {
	return l.LineOfSight(w.grid, w.losBlocked())
}

// Grid returns the current map's static tiles.
func (w *World) Grid() *GridMap { return w.grid }

// MapName returns the name of the loaded map.
func (w *World) MapName() string { return w.mapName }

// Player returns the player actor.
func (w *World) Player() *Actor { return w.player }

// Lancers returns the live lancers in spawn order.
func (w *World) Lancers() []*Lancer { return w.lancers }

// Events returns the overlay stack.
func (w *World) Events() *EventStack { return &w.events }

// State reports which layer owned the last tick.
func (w *World) State() WorldState { return w.state }

// Params returns the active tuning.
func (w *World) Params() Params { return w.params }
