package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range ThemeNames() {
		th, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, th.Name)
		assert.Len(t, th.Swatches, 8, name)
	}

	th, err := Lookup("  Purple ")
	require.NoError(t, err)
	assert.Equal(t, "magenta", th.Name)

	_, err = Lookup(DefaultTheme)
	assert.NoError(t, err)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("chartreuse")
	require.ErrorIs(t, err, ErrUnknownTheme)
	assert.Contains(t, err.Error(), "pink")
}
