package propagate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridloop/slitherloop/core"
)

func TestCheckDerivesBottomObligationFromTopEdge(t *testing.T) {
	pattern := core.Pattern{{A: 0, B: 1}}
	next, ok := Check(1, pattern, nil, []core.Clue{2}, core.Obligations{})
	assert.True(t, ok)
	assert.Equal(t, []int{0}, next.MustX)
	assert.Nil(t, next.MustNotX)
}

func TestCheckForbidsBottomEdgeWhenClueAlreadySatisfied(t *testing.T) {
	pattern := core.Pattern{{A: 0, B: 1}}
	next, ok := Check(1, pattern, nil, []core.Clue{1}, core.Obligations{})
	assert.True(t, ok)
	assert.Equal(t, []int{0}, next.MustNotX)
	assert.Nil(t, next.MustX)
}

func TestCheckRefusesOverCount(t *testing.T) {
	pattern := core.Pattern{{A: 0, B: 1}}
	_, ok := Check(1, pattern, nil, []core.Clue{0}, core.Obligations{})
	assert.False(t, ok)
}

func TestCheckCountsFrontierEdges(t *testing.T) {
	frontier := core.Frontier{{A: 1, B: 2}}
	next, ok := Check(2, nil, frontier, []core.Clue{1, 2}, core.Obligations{})
	assert.True(t, ok)
	assert.ElementsMatch(t, []int{0, 1}, next.MustNotX)
}

func TestCheckVerifiesInheritedObligations(t *testing.T) {
	pattern := core.Pattern{} // no top edge anywhere
	_, ok := Check(1, pattern, nil, nil, core.Obligations{MustX: []int{0}})
	assert.False(t, ok, "inherited MustX requires a top edge that wasn't drawn")

	pattern = core.Pattern{{A: 0, B: 1}}
	_, ok = Check(1, pattern, nil, nil, core.Obligations{MustNotX: []int{0}})
	assert.False(t, ok, "inherited MustNotX forbids a top edge that was drawn")
}

func TestCheckBlankCluesNeverRefuse(t *testing.T) {
	pattern := core.Pattern{{A: 0, B: 1}}
	next, ok := Check(1, pattern, nil, []core.Clue{core.Blank}, core.Obligations{})
	assert.True(t, ok)
	assert.Empty(t, next.MustX)
	assert.Empty(t, next.MustNotX)
}
