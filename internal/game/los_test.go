package game

import "testing"

func losGrid(t *testing.T, text string) *GridMap {
	t.Helper()
	tiles := make(map[GridPos]TileKind)
	for y, row := range splitRows(text) {
		for x, r := range row {
			kind := TileEmpty
			if r == runeWall {
				kind = TileWall
			}
			tiles[GridPos{x, y}] = kind
		}
	}
	gm, err := NewGridMap(tiles)
	if err != nil {
		t.Fatalf("NewGridMap: %v", err)
	}
	return gm
}

func TestLineOfSight_OpenCorridor(t *testing.T) {
	gm := losGrid(t, `
.......
.......
.......
.......
.......
.......
.......
`)
	got := LineOfSight(gm, GridPos{3, 0}, DirDown, 5, nil)
	want := []GridPos{{3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5}}
	if len(got) != len(want) {
		t.Fatalf("corridor length = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLineOfSight_TruncatedByWall(t *testing.T) {
	// Wall at the third cell ahead: the corridor holds exactly the two
	// cells before it and nothing past it.
	gm := losGrid(t, `
.......
.......
.......
...H...
.......
.......
`)
	got := LineOfSight(gm, GridPos{3, 0}, DirDown, 5, nil)
	want := []GridPos{{3, 1}, {3, 2}}
	if len(got) != len(want) {
		t.Fatalf("corridor length = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLineOfSight_WallAdjacentMeansBlind(t *testing.T) {
	gm := losGrid(t, `
...
.H.
...
`)
	got := LineOfSight(gm, GridPos{1, 0}, DirDown, 5, nil)
	if len(got) != 0 {
		t.Errorf("corridor = %v, want empty", got)
	}
}

func TestLineOfSight_TruncatedByMapEdge(t *testing.T) {
	gm := losGrid(t, `
...
...
...
`)
	// Looking up from the top row: outside cells are absent and
	// terminate the scan immediately.
	got := LineOfSight(gm, GridPos{1, 0}, DirUp, 5, nil)
	if len(got) != 0 {
		t.Errorf("corridor = %v, want empty", got)
	}

	got = LineOfSight(gm, GridPos{0, 1}, DirRight, 5, nil)
	want := []GridPos{{1, 1}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("corridor length = %d, want %d: %v", len(got), len(want), got)
	}
}

func TestLineOfSight_ZeroDistance(t *testing.T) {
	gm := losGrid(t, `
...
...
`)
	if got := LineOfSight(gm, GridPos{1, 0}, DirDown, 0, nil); len(got) != 0 {
		t.Errorf("zero distance corridor = %v, want empty", got)
	}
}

func TestLineOfSight_BlockedPredicate(t *testing.T) {
	gm := losGrid(t, `
.......
.......
.......
.......
.......
.......
.......
`)
	// A dynamic blocker at the third cell truncates just like a wall,
	// and the blocking cell itself stays out of the corridor.
	blocked := func(p GridPos) bool { return p == (GridPos{3, 3}) }
	got := LineOfSight(gm, GridPos{3, 0}, DirDown, 5, blocked)
	want := []GridPos{{3, 1}, {3, 2}}
	if len(got) != len(want) {
		t.Fatalf("corridor length = %d, want %d: %v", len(got), len(want), got)
	}
}
