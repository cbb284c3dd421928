package game

import "testing"

func TestNewRoute_EmptyFails(t *testing.T) {
	if _, err := NewRoute(nil); err == nil {
		t.Fatal("expected error for empty waypoint list")
	}
	if _, err := NewRoute([]GridPos{}); err == nil {
		t.Fatal("expected error for zero-length waypoint list")
	}
}

func TestRoute_NextDoesNotConsume(t *testing.T) {
	r, err := NewRoute([]GridPos{{1, 1}, {2, 2}})
	if err != nil {
		t.Fatalf("NewRoute: %v", err)
	}
	for i := 0; i < 3; i++ {
		if got := r.Next(); got != (GridPos{1, 1}) {
			t.Fatalf("Next call %d = %v, want (1,1)", i, got)
		}
	}
}

func TestRoute_AdvanceWraps(t *testing.T) {
	pts := []GridPos{{0, 0}, {1, 0}, {1, 1}}
	r, err := NewRoute(pts)
	if err != nil {
		t.Fatalf("NewRoute: %v", err)
	}
	// Two full cycles should replay the list in order.
	for cycle := 0; cycle < 2; cycle++ {
		for i, want := range pts {
			if got := r.Next(); got != want {
				t.Fatalf("cycle %d step %d: Next = %v, want %v", cycle, i, got, want)
			}
			r.Advance()
		}
	}
}

func TestRoute_WaypointsIsCopy(t *testing.T) {
	r, err := NewRoute([]GridPos{{0, 0}, {1, 0}})
	if err != nil {
		t.Fatalf("NewRoute: %v", err)
	}
	wp := r.Waypoints()
	wp[0] = GridPos{9, 9}
	if r.Next() != (GridPos{0, 0}) {
		t.Error("mutating Waypoints result changed the route")
	}
}
