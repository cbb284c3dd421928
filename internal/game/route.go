package game

import "fmt"

// Route is a fixed cyclic sequence of patrol waypoints. The cursor only
// moves on Advance, never on Next, so callers peek the upcoming
// waypoint, attempt the step, and advance only once the step was
// accepted. A blocked or turn-only tick therefore cannot skip a
// waypoint.
type Route struct {
	points []GridPos
	cursor int
}

// NewRoute builds a route over the given waypoints. An empty waypoint
// list is a construction error: a patroller without a route is a map
// authoring defect and must surface at load time.
func NewRoute(points []GridPos) (*Route, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("route: no waypoints")
	}
	pts := make([]GridPos, len(points))
	copy(pts, points)
	return &Route{points: pts}, nil
}

// Next peeks the waypoint at the cursor without consuming it.
func (r *Route) Next() GridPos {
	return r.points[r.cursor]
}

// Advance moves the cursor one waypoint forward, wrapping at the end.
func (r *Route) Advance() {
	r.cursor = (r.cursor + 1) % len(r.points)
}

// Len returns the number of waypoints.
func (r *Route) Len() int {
	return len(r.points)
}

// Waypoints returns a copy of the full waypoint list, in visit order.
func (r *Route) Waypoints() []GridPos {
	out := make([]GridPos, len(r.points))
	copy(out, r.points)
	return out
}
