package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridloop/slitherloop/core"
)

func TestWriteUnitSquareLoop(t *testing.T) {
	s := Solution{
		X: 1,
		Rows: []core.Pattern{
			{{A: 0, B: 1}},
			{{A: 0, B: 1}},
		},
	}
	var b strings.Builder
	require.NoError(t, Write(&b, s))
	assert.Equal(t, "+-+\n| |\n+-+\n====\n", b.String())
}

func TestWriteTwoByOneCorridor(t *testing.T) {
	// Two adjacent unit squares sharing a middle vertical edge: the
	// outer loop runs around both cells, so the shared column never
	// carries a vertical edge.
	s := Solution{
		X: 2,
		Rows: []core.Pattern{
			{{A: 0, B: 2}},
			{{A: 0, B: 2}},
		},
	}
	var b strings.Builder
	require.NoError(t, Write(&b, s))
	assert.Equal(t, "+-+-+\n|   |\n+-+-+\n======\n", b.String())
}

func TestVerticalsAtTopEdgeAlwaysEmpty(t *testing.T) {
	s := Solution{X: 1, Rows: []core.Pattern{{{A: 0, B: 1}}, {{A: 0, B: 1}}}}
	assert.Empty(t, s.VerticalsAt(0))
}

func TestVerticalsAtParityAcrossRows(t *testing.T) {
	s := Solution{
		X: 1,
		Rows: []core.Pattern{
			{{A: 0, B: 1}},
			{{A: 0, B: 1}},
		},
	}
	assert.Equal(t, map[int]bool{0: true, 1: true}, s.VerticalsAt(1))
	// Toggled twice by the time both rows are consumed: back to empty.
	assert.Empty(t, s.VerticalsAt(2))
}

func TestToggleFlipsMembership(t *testing.T) {
	active := map[int]bool{}
	toggle(active, 3)
	assert.True(t, active[3])
	toggle(active, 3)
	assert.False(t, active[3])
}
