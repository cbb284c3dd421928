package game

// LancerState tracks one lancer's progress through an encounter.
type LancerState uint8

const (
	LancerPatrolling LancerState = iota // following the patrol route
	LancerTriggered                     // player spotted, alert playing, frozen
	LancerChasing                       // greedy pursuit of the player
	LancerDone                          // reached the player, hand-off fired
)

func (s LancerState) String() string {
	switch s {
	case LancerPatrolling:
		return "patrolling"
	case LancerTriggered:
		return "triggered"
	case LancerChasing:
		return "chasing"
	case LancerDone:
		return "done"
	}
	return "unknown"
}

// Lancer couples an actor with its patrol route and encounter state.
// State transitions are driven by the world's dispatch pass, not by
// the lancer itself.
type Lancer struct {
	Actor *Actor
	State LancerState
	Route *Route

	sightDistance int
}

// LineOfSight returns the corridor the lancer currently watches.
func (l *Lancer) LineOfSight(grid *GridMap, blocked func(GridPos) bool) []GridPos {
	return LineOfSight(grid, l.Actor.Position(), l.Actor.Direction(), l.sightDistance, blocked)
}

// ChaseStep returns the single greedy step toward target: close the
// row gap first, then the column gap. Calling it with the target on
// the lancer's own cell is a dispatch defect; the adjacency check in
// the chase pass must catch that case first.
func (l *Lancer) ChaseStep(target GridPos) GridPos {
	cur := l.Actor.Position()
	switch {
	case target.Row > cur.Row:
		return GridPos{Col: cur.Col, Row: cur.Row + 1}
	case target.Row < cur.Row:
		return GridPos{Col: cur.Col, Row: cur.Row - 1}
	case target.Col > cur.Col:
		return GridPos{Col: cur.Col + 1, Row: cur.Row}
	case target.Col < cur.Col:
		return GridPos{Col: cur.Col - 1, Row: cur.Row}
	}
	panic("lancer chase: target overlaps pursuer")
}
