package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridloop/slitherloop/board"
)

func TestComponentsOnBlankBoardIsEmpty(t *testing.T) {
	b, err := board.New(3, 3)
	require.NoError(t, err)
	assert.Empty(t, Components(b))
}

func TestComponentsGroupsOrthogonallyAdjacentCluesTogether(t *testing.T) {
	b, err := board.New(3, 1)
	require.NoError(t, err)
	require.NoError(t, b.SetClue(0, 0, 2))
	require.NoError(t, b.SetClue(0, 1, 1))
	comps := Components(b)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 2)
}

func TestComponentsKeepsNonTouchingCluesSeparate(t *testing.T) {
	b, err := board.New(3, 1)
	require.NoError(t, err)
	require.NoError(t, b.SetClue(0, 0, 2))
	require.NoError(t, b.SetClue(0, 2, 1))
	comps := Components(b)
	assert.Len(t, comps, 2)
}
