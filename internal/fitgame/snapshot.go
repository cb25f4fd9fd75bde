package fitgame

import "github.com/san-kum/gridfit/internal/curve"

// Tile is the render state of one region.
type Tile struct {
	Region Region
	// Choice is the family drawn over the tile: the areal choice in
	// ModeAreal, the region's own choice afterwards.
	Choice curve.Kind
	Status FitStatus
	Active bool
}

// Snapshot is an immutable copy of the game state with derived scores.
type Snapshot struct {
	Mode        Mode
	Areal       curve.Kind
	Choices     map[RegionID]curve.Kind
	Active      RegionID
	ArealErrors int
	GridErrors  int
	Tiles       []Tile
}

// PickerEnabled reports whether the per-region family picker accepts input.
func (s Snapshot) PickerEnabled() bool {
	return s.Mode == ModeGridwise && s.Active != 0
}

// CanTryGridwise reports whether the grid-wise phase can be entered.
func (s Snapshot) CanTryGridwise() bool {
	return s.Mode == ModeAreal && s.Areal != curve.Unset
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	choices := make(map[RegionID]curve.Kind, len(g.choices))
	for id, k := range g.choices {
		choices[id] = k
	}
	s := Snapshot{
		Mode:        g.mode,
		Areal:       g.areal,
		Choices:     choices,
		Active:      g.active,
		ArealErrors: ArealErrors(g.regions, g.areal),
		GridErrors:  GridErrors(g.regions, g.choices),
		Tiles:       make([]Tile, len(g.regions)),
	}
	for i, r := range g.regions {
		var choice curve.Kind
		switch g.mode {
		case ModeAreal:
			choice = g.areal
		case ModeGridwise, ModeVictory:
			choice = g.choices[r.ID]
		}
		s.Tiles[i] = Tile{
			Region: r,
			Choice: choice,
			Status: ComputeFitStatus(r, choice),
			Active: g.active == r.ID,
		}
	}
	return s
}

// ArealBadge summarises the areal error over the snapshot's regions.
func (s Snapshot) ArealBadge() string {
	regions := make([]Region, len(s.Tiles))
	for i, t := range s.Tiles {
		regions[i] = t.Region
	}
	return ArealBadge(regions, s.Areal)
}
