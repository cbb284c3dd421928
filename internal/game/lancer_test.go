package game

import "testing"

func chaseLancer(t *testing.T, pos GridPos) *Lancer {
	t.Helper()
	w := newStubWorld(t, 12, 12)
	route, err := NewRoute([]GridPos{pos})
	if err != nil {
		t.Fatalf("NewRoute: %v", err)
	}
	return &Lancer{
		Actor:         newActor(GroupLancer, pos, w, DefaultParams()),
		State:         LancerChasing,
		Route:         route,
		sightDistance: DefaultParams().SightDistance,
	}
}

func TestLancer_ChaseStepRowsFirst(t *testing.T) {
	l := chaseLancer(t, GridPos{5, 5})

	cases := []struct {
		target GridPos
		want   GridPos
	}{
		{GridPos{5, 9}, GridPos{5, 6}}, // below: step down
		{GridPos{5, 1}, GridPos{5, 4}}, // above: step up
		{GridPos{9, 5}, GridPos{6, 5}}, // right: step right
		{GridPos{1, 5}, GridPos{4, 5}}, // left: step left
		{GridPos{9, 9}, GridPos{5, 6}}, // diagonal: rows close first
		{GridPos{1, 1}, GridPos{5, 4}},
	}
	for _, c := range cases {
		if got := l.ChaseStep(c.target); got != c.want {
			t.Errorf("ChaseStep(%v) = %v, want %v", c.target, got, c.want)
		}
	}
}

func TestLancer_ChaseStepOverlapPanics(t *testing.T) {
	l := chaseLancer(t, GridPos{5, 5})

	defer func() {
		if recover() == nil {
			t.Error("ChaseStep with target on own cell must panic")
		}
	}()
	l.ChaseStep(GridPos{5, 5})
}

func TestLancer_LineOfSightUsesFacing(t *testing.T) {
	w := newStubWorld(t, 12, 12)
	route, err := NewRoute([]GridPos{{5, 5}})
	if err != nil {
		t.Fatalf("NewRoute: %v", err)
	}
	l := &Lancer{
		Actor:         newActor(GroupLancer, GridPos{5, 5}, w, DefaultParams()),
		State:         LancerPatrolling,
		Route:         route,
		sightDistance: 3,
	}

	got := l.LineOfSight(w.grid, nil)
	want := []GridPos{{5, 6}, {5, 7}, {5, 8}} // facing down by default
	if len(got) != len(want) {
		t.Fatalf("corridor = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}
