package game

import "fmt"

// Params are the simulation tuning knobs. The config package
// overrides the defaults from file.
type Params struct {
	TileSize      float64 // pixel edge length of one grid cell
	WalkingSpeed  float64 // pixels per second
	RunningSpeed  float64 // pixels per second
	AlertDuration float64 // seconds the alert mark stays on screen
	SightDistance int     // lancer line of sight length in cells

	// LOSBlockedByActors also terminates a sight line at cells
	// occupied by other lancers, not just at walls. Off by default:
	// only static tiles block sight.
	LOSBlockedByActors bool
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		TileSize:      32,
		WalkingSpeed:  200,
		RunningSpeed:  500,
		AlertDuration: 0.6,
		SightDistance: 5,
	}
}

// Validate rejects tunings that would stall or break the simulation.
func (p Params) Validate() error {
	if p.TileSize <= 0 {
		return fmt.Errorf("params: tile size must be positive, got %v", p.TileSize)
	}
	if p.WalkingSpeed <= 0 || p.RunningSpeed <= 0 {
		return fmt.Errorf("params: speeds must be positive, got walk=%v run=%v",
			p.WalkingSpeed, p.RunningSpeed)
	}
	if p.AlertDuration < 0 {
		return fmt.Errorf("params: alert duration must not be negative, got %v", p.AlertDuration)
	}
	if p.SightDistance < 0 {
		return fmt.Errorf("params: sight distance must not be negative, got %d", p.SightDistance)
	}
	return nil
}
