package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"thegame/internal/game"
)

// buildDebugReport renders the full world state as text: map, actors,
// overlay stack, and each lancer's current sight corridor. Pasting it
// into a bug report beats screenshots for grid logic.
func buildDebugReport(w *game.World, tick int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- debug report ---\n")
	fmt.Fprintf(&b, "tick=%d map=%s state=%s\n\n", tick, w.MapName(), w.State())

	p := w.Player()
	fmt.Fprintf(&b, "player: pos=%v facing=%s moving=%v sub=(%.1f,%.1f)\n",
		p.Position(), p.Direction(), p.IsMoving(), p.SubPosition().X, p.SubPosition().Y)
	if next, ok := p.NextPosition(); ok {
		fmt.Fprintf(&b, "        next=%v\n", next)
	}

	for i, l := range w.Lancers() {
		fmt.Fprintf(&b, "lancer %d: state=%s pos=%v facing=%s moving=%v\n",
			i, l.State, l.Actor.Position(), l.Actor.Direction(), l.Actor.IsMoving())
		fmt.Fprintf(&b, "          route_next=%v sight=%v\n",
			l.Route.Next(), w.SightCells(l))
	}

	entries := w.Events().Entries()
	fmt.Fprintf(&b, "\noverlays (%d):\n", len(entries))
	for i, o := range entries {
		fmt.Fprintf(&b, "  %d: %s progress=%.2f\n", i, o.Kind, o.Progress())
	}
	return b.String()
}

// copyDebugReport puts the report on the system clipboard.
func copyDebugReport(w *game.World, tick int) error {
	return clipboard.WriteAll(buildDebugReport(w, tick))
}
