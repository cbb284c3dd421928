package game

import (
	"fmt"
	"sort"
	"strings"
)

// MapData is everything the loader extracts from one map definition:
// the static tile grid plus the spawn markers and patrol routes that
// the world turns into actors on load.
type MapData struct {
	Grid         *GridMap
	PlayerSpawn  GridPos
	LancerSpawns []GridPos
	LancerRoutes [][]GridPos // one waypoint list per spawn, same order
}

// Map rune vocabulary. Spawn markers sit on empty floor; the marker
// identifies the actor, not the tile.
const (
	runeEmpty   = '.'
	runeWall    = 'H'
	runeWarp    = 'O'
	runeLancer1 = '1'
	runeLancer2 = '2'
	runePlayer  = 'p'
)

// ParseMapData parses an ASCII map and one route grid per lancer
// marker. Any authoring defect (unknown rune, missing player marker,
// route count mismatch, empty route) fails here rather than at tick
// time.
func ParseMapData(mapText string, routeTexts []string) (*MapData, error) {
	tiles := make(map[GridPos]TileKind)
	md := &MapData{}
	playerFound := false

	for y, row := range splitRows(mapText) {
		for x, r := range row {
			pos := GridPos{Col: x, Row: y}
			switch r {
			case runeEmpty:
				tiles[pos] = TileEmpty
			case runeWall:
				tiles[pos] = TileWall
			case runeWarp:
				tiles[pos] = TileWarp
			case runeLancer1, runeLancer2:
				md.LancerSpawns = append(md.LancerSpawns, pos)
				tiles[pos] = TileEmpty
			case runePlayer:
				if playerFound {
					return nil, fmt.Errorf("map: duplicate player marker at %v", pos)
				}
				md.PlayerSpawn = pos
				playerFound = true
				tiles[pos] = TileEmpty
			default:
				return nil, fmt.Errorf("map: unknown rune %q at %v", r, pos)
			}
		}
	}

	grid, err := NewGridMap(tiles)
	if err != nil {
		return nil, err
	}
	md.Grid = grid

	if !playerFound {
		return nil, fmt.Errorf("map: no player marker")
	}
	if len(routeTexts) != len(md.LancerSpawns) {
		return nil, fmt.Errorf("map: %d lancer markers but %d routes",
			len(md.LancerSpawns), len(routeTexts))
	}
	for i, text := range routeTexts {
		points, err := ParseRouteGrid(text)
		if err != nil {
			return nil, fmt.Errorf("map: route %d: %w", i, err)
		}
		md.LancerRoutes = append(md.LancerRoutes, points)
	}
	return md, nil
}

// ParseRouteGrid reads a waypoint grid laid over the map: every rune
// other than '.' marks a waypoint, and waypoints are visited in rune
// order, so 'a' comes before 'b'. An empty grid is an error.
func ParseRouteGrid(text string) ([]GridPos, error) {
	type marked struct {
		pos GridPos
		seq rune
	}
	var marks []marked
	for y, row := range splitRows(text) {
		for x, r := range row {
			if r == runeEmpty {
				continue
			}
			marks = append(marks, marked{pos: GridPos{Col: x, Row: y}, seq: r})
		}
	}
	if len(marks) == 0 {
		return nil, fmt.Errorf("route grid: no waypoints")
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].seq < marks[j].seq })
	points := make([]GridPos, len(marks))
	for i, m := range marks {
		points[i] = m.pos
	}
	return points, nil
}

func splitRows(text string) []string {
	return strings.Split(strings.TrimSpace(text), "\n")
}
