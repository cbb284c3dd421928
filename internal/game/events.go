package game

// OverlayKind tags one transient game event shown over the world.
type OverlayKind uint8

const (
	OverlayAlert       OverlayKind = iota // timed mark above a triggered lancer
	OverlayPauseMenu                      // player-opened menu, dismissed by confirm
	OverlayCaughtDialog                   // "you were caught" box, dismissed by confirm
	OverlayBattle                         // battle hand-off screen, dismissed by confirm
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayAlert:
		return "alert"
	case OverlayPauseMenu:
		return "pause_menu"
	case OverlayCaughtDialog:
		return "caught_dialog"
	case OverlayBattle:
		return "battle"
	}
	return "unknown"
}

// OverlayStatus is the result of advancing an overlay one tick.
type OverlayStatus uint8

const (
	OverlayContinue OverlayStatus = iota
	OverlayDone
)

// Overlay is one entry on the event stack. The kinds share a single
// advance contract instead of each carrying its own update method:
// timed kinds count their duration down, input kinds wait for a
// confirm press.
type Overlay struct {
	Kind   OverlayKind
	Lancer *Lancer // set for alert and battle overlays

	elapsed  float64
	duration float64 // > 0 only for timed kinds
	done     bool
}

// NewAlertOverlay creates the timed alert mark for a triggered lancer.
// A non-positive duration yields an already finished overlay, so a
// zero alert setting skips the visual without stalling the stack.
func NewAlertOverlay(l *Lancer, duration float64) *Overlay {
	return &Overlay{Kind: OverlayAlert, Lancer: l, duration: duration, done: duration <= 0}
}

// NewPauseMenuOverlay creates the player-opened pause menu.
func NewPauseMenuOverlay() *Overlay {
	return &Overlay{Kind: OverlayPauseMenu}
}

// NewCaughtDialogOverlay creates the caught dialog for the lancer that
// reached the player.
func NewCaughtDialogOverlay(l *Lancer) *Overlay {
	return &Overlay{Kind: OverlayCaughtDialog, Lancer: l}
}

// NewBattleOverlay creates the battle hand-off screen.
func NewBattleOverlay(l *Lancer) *Overlay {
	return &Overlay{Kind: OverlayBattle, Lancer: l}
}

// Advance moves the overlay's lifecycle one tick forward. Timed kinds
// finish when their duration elapses; input kinds only finish through
// HandleInput.
func (o *Overlay) Advance(dt float64) OverlayStatus {
	if o.duration > 0 && !o.done {
		o.elapsed += dt
		if o.elapsed >= o.duration {
			o.done = true
		}
	}
	if o.done {
		return OverlayDone
	}
	return OverlayContinue
}

// HandleInput lets input-driven overlays see the tick's key state.
// Timed overlays ignore input entirely.
func (o *Overlay) HandleInput(keys KeyState) {
	switch o.Kind {
	case OverlayPauseMenu, OverlayCaughtDialog, OverlayBattle:
		if keys.Confirm {
			o.done = true
		}
	}
}

// IsRunning reports whether the overlay still wants ticks.
func (o *Overlay) IsRunning() bool {
	return !o.done
}

// Progress returns the elapsed fraction of a timed overlay in [0,1].
// Input-driven overlays report 0 until dismissed.
func (o *Overlay) Progress() float64 {
	if o.duration <= 0 {
		if o.done {
			return 1
		}
		return 0
	}
	p := o.elapsed / o.duration
	if p > 1 {
		return 1
	}
	return p
}

// EventStack holds pending overlays in insertion order. Only the
// front entry receives input and ticks, so simultaneous triggers play
// out one after another rather than in parallel.
type EventStack struct {
	entries []*Overlay
}

// Push appends an overlay at the back of the stack.
func (s *EventStack) Push(o *Overlay) {
	s.entries = append(s.entries, o)
}

// Empty reports whether no overlays are pending.
func (s *EventStack) Empty() bool {
	return len(s.entries) == 0
}

// Len returns the number of pending overlays.
func (s *EventStack) Len() int {
	return len(s.entries)
}

// Front returns the overlay currently being processed, or nil.
func (s *EventStack) Front() *Overlay {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[0]
}

// Entries returns the pending overlays in order, front first. The
// renderer draws them all; only the front one advances.
func (s *EventStack) Entries() []*Overlay {
	return s.entries
}

// Cleanup removes and returns the first overlay that is no longer
// running, or nil when every entry is still live. At most one entry
// leaves the stack per call, matching the one-entry-per-tick
// processing of Front.
func (s *EventStack) Cleanup() *Overlay {
	for i, o := range s.entries {
		if !o.IsRunning() {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return o
		}
	}
	return nil
}
