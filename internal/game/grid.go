package game

import "fmt"

// GridPos identifies one map cell by (column, row). Columns grow
// rightward, rows grow downward.
type GridPos struct {
	Col int
	Row int
}

// Step returns the neighbouring cell one step away in dir.
func (p GridPos) Step(dir Direction) GridPos {
	dc, dr := dir.Delta()
	return GridPos{Col: p.Col + dc, Row: p.Row + dr}
}

// String formats the position as "(col,row)".
func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// manhattan returns the grid distance between two cells.
func manhattan(a, b GridPos) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is a cardinal facing.
type Direction uint8

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// Delta returns the (dCol, dRow) unit offset for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirDown:
		return 0, 1
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// directionTo derives the facing from one cell toward another. Vertical
// displacement wins over horizontal, so a diagonal target turns the
// actor up or down first. Equal cells keep the current facing.
func directionTo(from, to GridPos, cur Direction) Direction {
	switch {
	case to.Row > from.Row:
		return DirDown
	case to.Row < from.Row:
		return DirUp
	case to.Col > from.Col:
		return DirRight
	case to.Col < from.Col:
		return DirLeft
	}
	return cur
}

// TileKind classifies one grid cell.
type TileKind uint8

const (
	TileEmpty TileKind = iota // open floor
	TileWall                  // blocks movement and sight
	TileWarp                  // walkable, fires a map transition on arrival
)

func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileWarp:
		return "warp"
	}
	return "unknown"
}

// GridMap is the static tile classification of one loaded map. It is
// immutable after construction; dynamic blockers (other actors) are the
// world's concern, not the map's.
type GridMap struct {
	tiles map[GridPos]TileKind
	cols  int
	rows  int
}

// NewGridMap builds a GridMap from parsed cells. Construction fails on
// an empty cell set: the simulation must never start on a zero-size
// board.
func NewGridMap(tiles map[GridPos]TileKind) (*GridMap, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("grid map: no cells")
	}
	gm := &GridMap{tiles: make(map[GridPos]TileKind, len(tiles))}
	for pos, kind := range tiles {
		gm.tiles[pos] = kind
		if pos.Col+1 > gm.cols {
			gm.cols = pos.Col + 1
		}
		if pos.Row+1 > gm.rows {
			gm.rows = pos.Row + 1
		}
	}
	return gm, nil
}

// At returns the kind of the cell and whether the cell exists at all.
func (gm *GridMap) At(pos GridPos) (TileKind, bool) {
	kind, ok := gm.tiles[pos]
	return kind, ok
}

// IsWalkable reports whether an actor may stand on pos. Cells absent
// from the map data count as untraversable, the same as walls.
func (gm *GridMap) IsWalkable(pos GridPos) bool {
	kind, ok := gm.tiles[pos]
	return ok && kind != TileWall
}

// IsWarp reports whether pos is a warp cell.
func (gm *GridMap) IsWarp(pos GridPos) bool {
	return gm.tiles[pos] == TileWarp
}

// Extent returns the board size as (cols, rows): one past the highest
// coordinate present in either axis.
func (gm *GridMap) Extent() (int, int) {
	return gm.cols, gm.rows
}
