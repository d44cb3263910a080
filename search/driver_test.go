package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridloop/slitherloop/board"
	"github.com/gridloop/slitherloop/render"
)

func blank(t *testing.T, x, y int) *board.Board {
	t.Helper()
	b, err := board.New(x, y)
	require.NoError(t, err)

	return b
}

func TestCountUnitSquare(t *testing.T) {
	assert.Equal(t, int64(1), Count(blank(t, 1, 1), Options{}))
}

func TestCountTwoByTwo(t *testing.T) {
	assert.Equal(t, int64(13), Count(blank(t, 2, 2), Options{}))
}

func TestCountThreeByThree(t *testing.T) {
	assert.Equal(t, int64(213), Count(blank(t, 3, 3), Options{}))
}

func TestCountIsDeterministicAcrossRepeatedRuns(t *testing.T) {
	b := blank(t, 3, 3)
	first := Count(b, Options{})
	second := Count(b, Options{})
	assert.Equal(t, first, second)
}

func TestCountParallelMatchesSequentialCount(t *testing.T) {
	b := blank(t, 3, 3)
	want := Count(b, Options{})
	assert.Equal(t, want, CountParallel(b, 4))
}

func TestCountOnSolutionCapturesEveryEmittedRowSequence(t *testing.T) {
	b := blank(t, 2, 2)
	var solutions []render.Solution
	n := Count(b, Options{OnSolution: func(s render.Solution) {
		solutions = append(solutions, s)
	}})
	assert.EqualValues(t, n, len(solutions))
	assert.EqualValues(t, 13, n)
	for _, s := range solutions {
		assert.Len(t, s.Rows, b.Y+1)
	}
}

func TestCountOnSolutionOrderIsDeterministic(t *testing.T) {
	b := blank(t, 2, 2)
	var first, second []string
	Count(b, Options{OnSolution: func(s render.Solution) {
		first = append(first, renderedKey(s))
	}})
	Count(b, Options{OnSolution: func(s render.Solution) {
		second = append(second, renderedKey(s))
	}})
	assert.Equal(t, first, second)
}

func TestCountOnAnAllBlankParsedBoardMatchesTheUnconstrainedCount(t *testing.T) {
	parsed, err := board.Parse(strings.NewReader("..\n..\n"))
	require.NoError(t, err)
	assert.Equal(t, Count(blank(t, 2, 2), Options{}), Count(parsed, Options{}))
}

func TestCountStatsReportsMemoHitsOnARepeatedSubproblem(t *testing.T) {
	b := blank(t, 3, 3)
	var stats MemoStats
	n := Count(b, Options{Stats: &stats})
	assert.EqualValues(t, 213, n)
	assert.Positive(t, stats.Misses)
	assert.Positive(t, stats.Hits)
}

func TestCountStatsUntouchedWhenOnSolutionSet(t *testing.T) {
	b := blank(t, 2, 2)
	stats := MemoStats{Hits: 7, Misses: 9}
	Count(b, Options{Stats: &stats, OnSolution: func(render.Solution) {}})
	assert.Equal(t, MemoStats{Hits: 7, Misses: 9}, stats)
}

func renderedKey(s render.Solution) string {
	out := ""
	for _, row := range s.Rows {
		for _, seg := range row {
			out += string(rune('A'+seg.A)) + string(rune('A'+seg.B)) + ","
		}
		out += "|"
	}

	return out
}
