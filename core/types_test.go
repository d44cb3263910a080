package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontierEmpty(t *testing.T) {
	require.True(t, Frontier(nil).Empty())
	require.False(t, Frontier{{A: 1, B: 2}}.Empty())
}

func TestFrontierSort(t *testing.T) {
	f := Frontier{{A: 5, B: 8}, {A: 1, B: 4}, {A: 3, B: 9}}
	sorted := f.Sort()
	assert.Equal(t, Frontier{{A: 1, B: 4}, {A: 3, B: 9}, {A: 5, B: 8}}, sorted)
	// original slice must be untouched
	assert.Equal(t, 5, f[0].A)
}

func TestSearchStateKeyDistinguishesFields(t *testing.T) {
	base := SearchState{
		Frontier: Frontier{{A: 1, B: 4}},
		Row:      2,
		LoopDone: false,
		Must:     Obligations{MustX: []int{1}, MustNotX: []int{2}},
	}
	variants := []SearchState{
		base,
		{Frontier: Frontier{{A: 1, B: 5}}, Row: 2, Must: base.Must},
		{Frontier: base.Frontier, Row: 3, Must: base.Must},
		{Frontier: base.Frontier, Row: 2, LoopDone: true, Must: base.Must},
		{Frontier: base.Frontier, Row: 2, Must: Obligations{MustX: []int{2}, MustNotX: []int{2}}},
	}
	seen := make(map[string]bool)
	for _, v := range variants {
		k := v.Key()
		assert.False(t, seen[k], "collision for %+v", v)
		seen[k] = true
	}
}
