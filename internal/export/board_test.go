package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/gridfit/internal/curve"
	"github.com/san-kum/gridfit/internal/fitgame"
)

func TestBoard_Areal(t *testing.T) {
	snap, err := Board(curve.Normal, nil)
	require.NoError(t, err)
	assert.Equal(t, fitgame.ModeAreal, snap.Mode)
	assert.Equal(t, 2, snap.ArealErrors)
	for _, tile := range snap.Tiles {
		assert.Equal(t, curve.Normal, tile.Choice)
	}
}

func TestBoard_GridStaysGridwise(t *testing.T) {
	snap, err := Board(curve.Unset, []curve.Kind{curve.Normal, curve.Gamma, curve.GEV})
	require.NoError(t, err)
	assert.Equal(t, fitgame.ModeGridwise, snap.Mode)
	assert.Equal(t, curve.Normal, snap.Areal)
	assert.Zero(t, snap.GridErrors)
}

func TestBoard_SkipsUnset(t *testing.T) {
	snap, err := Board(curve.Gamma, []curve.Kind{curve.Unset, curve.GEV})
	require.NoError(t, err)
	assert.Equal(t, curve.Unset, snap.Tiles[0].Choice)
	assert.Equal(t, fitgame.FitBad, snap.Tiles[1].Status)
	assert.Equal(t, 3, snap.GridErrors)
}

func TestBoard_TooManyChoices(t *testing.T) {
	_, err := Board(curve.Normal, []curve.Kind{1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrTooManyChoices)
}
