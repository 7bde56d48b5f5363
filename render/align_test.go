package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		height, bias int
		want         int
	}{
		{20, DefaultBias, 4},
		{21, DefaultBias, 4},
		{10, DefaultBias, -1},
		{12, DefaultBias, 0},
		{1, DefaultBias, -6},
		{22, DefaultBias, 5},
		{9, 0, 4},
		{-3, 0, -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Offset(tt.height, tt.bias), "Offset(%d, %d)", tt.height, tt.bias)
	}
}

func TestOffsetDependsOnlyOnHeight(t *testing.T) {
	for h := 1; h < 64; h++ {
		assert.Equal(t, Offset(h, DefaultBias), Offset(h, DefaultBias))
		assert.Equal(t, h/2-DefaultBias, Offset(h, DefaultBias))
	}
}

func TestEntryIndex(t *testing.T) {
	assert.Equal(t, 0, EntryIndex(4, 4))
	assert.Equal(t, 1, EntryIndex(0, -1))
	assert.Equal(t, -4, EntryIndex(0, 4))
}
