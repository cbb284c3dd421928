package game

import (
	"math"

	"github.com/google/uuid"
)

// Vec2 is a continuous pixel-space coordinate, used only for the
// interpolation between grid cells.
type Vec2 struct {
	X float64
	Y float64
}

// moveToward advances v toward target by at most maxDist, clamping to
// the target so a large step never overshoots.
func moveToward(v, target Vec2, maxDist float64) Vec2 {
	dx := target.X - v.X
	dy := target.Y - v.Y
	dist := math.Hypot(dx, dy)
	if dist <= maxDist {
		return target
	}
	if maxDist <= 0 {
		return v
	}
	s := maxDist / dist
	return Vec2{X: v.X + dx*s, Y: v.Y + dy*s}
}

// ActorGroup separates collision classes. The player collides with
// lancers and lancers collide with the player; same-group overlap is
// not checked.
type ActorGroup uint8

const (
	GroupPlayer ActorGroup = iota
	GroupLancer
)

func (g ActorGroup) String() string {
	switch g {
	case GroupPlayer:
		return "player"
	case GroupLancer:
		return "lancer"
	}
	return "unknown"
}

// MotionStatus is the gait an actor currently shows.
type MotionStatus uint8

const (
	MotionIdle MotionStatus = iota
	MotionWalking
	MotionRunning
)

func (m MotionStatus) String() string {
	switch m {
	case MotionIdle:
		return "idle"
	case MotionWalking:
		return "walking"
	case MotionRunning:
		return "running"
	}
	return "unknown"
}

// SurfaceKey selects the sprite an actor shows: facing plus gait.
// Renderers that lack a sprite for a key fall back to the last one
// they drew; the core only tracks which key is current.
type SurfaceKey struct {
	Direction Direction
	Status    MotionStatus
}

// actorWorld is the slice of the world an actor needs: the collision
// predicate for reserving a destination cell and the arrival hook
// fired when a step commits.
type actorWorld interface {
	CanEnter(pos GridPos, group ActorGroup) bool
	actorArrived(a *Actor, pos GridPos)
}

// Actor is one character on the grid. It keeps three positions in
// sync: the committed grid cell, the reserved in-flight destination,
// and the continuous pixel position that interpolates between them.
type Actor struct {
	ID    uuid.UUID
	Group ActorGroup

	position     GridPos
	nextPosition *GridPos // nil when no step is in flight
	direction    Direction
	gait         MotionStatus // walking or running; idle is derived
	subPosition  Vec2
	targetPixel  Vec2 // pixel image of nextPosition, valid while moving

	tileSize  float64
	walkSpeed float64
	runSpeed  float64

	world actorWorld

	surface SurfaceKey
}

func newActor(group ActorGroup, pos GridPos, w actorWorld, p Params) *Actor {
	a := &Actor{
		ID:        uuid.New(),
		Group:     group,
		position:  pos,
		direction: DirDown,
		gait:      MotionWalking,
		tileSize:  p.TileSize,
		walkSpeed: p.WalkingSpeed,
		runSpeed:  p.RunningSpeed,
		world:     w,
	}
	a.subPosition = a.pixelOf(pos)
	a.surface = SurfaceKey{Direction: DirDown, Status: MotionIdle}
	return a
}

// pixelOf maps a grid cell to its top-left pixel coordinate.
func (a *Actor) pixelOf(pos GridPos) Vec2 {
	return Vec2{X: float64(pos.Col) * a.tileSize, Y: float64(pos.Row) * a.tileSize}
}

// Position returns the committed grid cell.
func (a *Actor) Position() GridPos {
	return a.position
}

// NextPosition returns the reserved in-flight destination, if any.
func (a *Actor) NextPosition() (GridPos, bool) {
	if a.nextPosition == nil {
		return GridPos{}, false
	}
	return *a.nextPosition, true
}

// EffectivePosition is the cell the actor will occupy: the in-flight
// destination while moving, otherwise the committed cell. Detection
// uses this so a player stepping into a corridor is already seen at
// the cell they are entering.
func (a *Actor) EffectivePosition() GridPos {
	if a.nextPosition != nil {
		return *a.nextPosition
	}
	return a.position
}

// Direction returns the current facing.
func (a *Actor) Direction() Direction {
	return a.direction
}

// SubPosition returns the continuous pixel position.
func (a *Actor) SubPosition() Vec2 {
	return a.subPosition
}

// IsMoving reports whether a grid step is in flight.
func (a *Actor) IsMoving() bool {
	return a.nextPosition != nil
}

// SetRunning toggles between walking and running pace. A step already
// in flight picks the new pace up immediately.
func (a *Actor) SetRunning(running bool) {
	if running {
		a.gait = MotionRunning
	} else {
		a.gait = MotionWalking
	}
}

// Surface returns the sprite key for the current facing and gait.
func (a *Actor) Surface() SurfaceKey {
	return a.surface
}

func (a *Actor) speed() float64 {
	if a.gait == MotionRunning {
		return a.runSpeed
	}
	return a.walkSpeed
}

// Move issues a grid step toward target, an adjacent cell. Turning
// consumes the call: when the derived facing differs from the current
// one only the facing updates and no step starts. A destination the
// world refuses also returns false. On success the destination is
// reserved as the actor's next position until the step commits.
func (a *Actor) Move(target GridPos) bool {
	if a.nextPosition != nil {
		return false
	}
	// A degenerate self-target is trivially satisfied; no reservation
	// is made so the in-flight destination always differs from the
	// committed cell.
	if target == a.position {
		return true
	}
	if dir := directionTo(a.position, target, a.direction); dir != a.direction {
		a.direction = dir
		return false
	}
	if !a.world.CanEnter(target, a.Group) {
		return false
	}
	next := target
	a.nextPosition = &next
	a.targetPixel = a.pixelOf(target)
	return true
}

// Update advances the pixel interpolation by one tick and returns
// true while the step is still travelling. Reaching the target pixel
// commits the step in the same call: the grid position updates, the
// reservation clears, and the world's arrival hook fires.
func (a *Actor) Update(dt float64) bool {
	defer a.refreshSurface()
	if a.nextPosition == nil {
		return false
	}
	a.subPosition = moveToward(a.subPosition, a.targetPixel, a.speed()*dt)
	if a.subPosition == a.targetPixel {
		arrived := *a.nextPosition
		a.position = arrived
		a.nextPosition = nil
		a.world.actorArrived(a, arrived)
		return false
	}
	return true
}

func (a *Actor) refreshSurface() {
	key := SurfaceKey{Direction: a.direction, Status: MotionIdle}
	if a.nextPosition != nil {
		key.Status = a.gait
	}
	a.surface = key
}
