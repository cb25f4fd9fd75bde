package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "drought", GetTheme("drought").Name)
	assert.Equal(t, ThemeBasin.Name, GetTheme("nope").Name)
}

func TestNextThemeWraps(t *testing.T) {
	names := ThemeNames()
	last := names[len(names)-1]
	assert.Equal(t, names[0], NextTheme(last).Name)
	assert.Equal(t, names[1], NextTheme(names[0]).Name)
}

func TestParseHex(t *testing.T) {
	r, g, b := parseHex("#22d3ee")
	assert.Equal(t, [3]int{0x22, 0xd3, 0xee}, [3]int{r, g, b})
	r, g, b = parseHex("bad")
	assert.Equal(t, [3]int{255, 255, 255}, [3]int{r, g, b})
	assert.Equal(t, "#22d3ee", hexColor(0x22, 0xd3, 0xee))
}
