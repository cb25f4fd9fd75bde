package export

import (
	"errors"
	"fmt"

	"github.com/san-kum/gridfit/internal/curve"
	"github.com/san-kum/gridfit/internal/fitgame"
)

// ErrTooManyChoices indicates more grid-wise choices than regions.
var ErrTooManyChoices = errors.New("export: more grid choices than regions")

// Board plays the challenge up to the given choices and returns the
// resulting snapshot. With grid choices the board is in grid-wise mode and
// grid[i] applies to the i-th region (Unset skips it); the areal choice
// defaults to the first grid choice. Without them it stops in areal mode.
func Board(areal curve.Kind, grid []curve.Kind) (fitgame.Snapshot, error) {
	g := fitgame.New()
	// Closed up front: a static board never advances to the victory overlay.
	g.Close()

	regions := g.Regions()
	if len(grid) > len(regions) {
		return fitgame.Snapshot{}, fmt.Errorf("%w: %d > %d", ErrTooManyChoices, len(grid), len(regions))
	}

	g.StartExperiment()
	if areal == curve.Unset && len(grid) > 0 {
		areal = firstSet(grid)
	}
	g.SelectArealDistribution(areal)
	if len(grid) == 0 {
		return g.Snapshot(), nil
	}

	g.TryGridwise()
	for i, k := range grid {
		if k == curve.Unset {
			continue
		}
		g.ActivateRegion(regions[i].ID)
		g.SelectRegionDistribution(k)
	}
	return g.Snapshot(), nil
}

func firstSet(kinds []curve.Kind) curve.Kind {
	for _, k := range kinds {
		if k != curve.Unset {
			return k
		}
	}
	return curve.Unset
}
