package game

// LineOfSight returns the corridor of cells an actor standing on from
// and facing dir can see: cells scanned outward starting one step
// ahead, up to distance cells, truncated before the first cell that is
// not walkable. The blocking cell itself is never included, and the
// scan never resumes past a gap. A nil blocked predicate means only
// the static map limits sight.
func LineOfSight(grid *GridMap, from GridPos, dir Direction, distance int, blocked func(GridPos) bool) []GridPos {
	dc, dr := dir.Delta()
	out := make([]GridPos, 0, distance)
	for i := 1; i <= distance; i++ {
		pos := GridPos{Col: from.Col + dc*i, Row: from.Row + dr*i}
		if !grid.IsWalkable(pos) {
			break
		}
		if blocked != nil && blocked(pos) {
			break
		}
		out = append(out, pos)
	}
	return out
}

func containsPos(cells []GridPos, pos GridPos) bool {
	for _, c := range cells {
		if c == pos {
			return true
		}
	}
	return false
}
