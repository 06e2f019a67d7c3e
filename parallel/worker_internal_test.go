// SPDX-License-Identifier: MIT
package parallel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teampath/matrix"
	"github.com/katalvlaran/teampath/partition"
)

func none(int) bool { return false }

func TestFindNearest(t *testing.T) {
	inf := matrix.Inf
	mind := []int64{0, 7, 3, inf, 3, 9}
	connected := func(i int) bool { return i == 0 }

	d, v := findNearest(partition.Range{Start: 0, End: 5}, mind, connected)
	require.Equal(t, int64(3), d)
	require.Equal(t, 2, v, "ties go to the lowest index")

	d, v = findNearest(partition.Range{Start: 3, End: 5}, mind, connected)
	require.Equal(t, int64(3), d)
	require.Equal(t, 4, v)

	// Only connected or infinite nodes.
	d, v = findNearest(partition.Range{Start: 0, End: 0}, mind, connected)
	require.Equal(t, inf, d)
	require.Equal(t, None, v)
	d, v = findNearest(partition.Range{Start: 3, End: 3}, mind, connected)
	require.Equal(t, inf, d)
	require.Equal(t, None, v)

	// Empty range.
	d, v = findNearest(partition.Range{Start: 2, End: 1}, mind, none)
	require.Equal(t, inf, d)
	require.Equal(t, None, v)
}

func TestUpdateMind(t *testing.T) {
	m, err := matrix.New(5, []matrix.Edge{
		{From: 1, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 10},
		{From: 1, To: 4, Weight: 1},
	})
	require.NoError(t, err)

	inf := matrix.Inf
	mind := []int64{0, 5, 9, 12, inf}
	connected := func(i int) bool { return i <= 1 }

	// Only [2,3] is owned: node 4 must stay untouched.
	updateMind(partition.Range{Start: 2, End: 3}, 1, m, mind, connected)
	require.Equal(t, []int64{0, 5, 7, 12, inf}, mind)

	updateMind(partition.Range{Start: 0, End: 4}, 1, m, mind, connected)
	require.Equal(t, []int64{0, 5, 7, 12, 6}, mind, "connected nodes are skipped")
}

func TestUpdateMind_Saturates(t *testing.T) {
	m, err := matrix.New(2, []matrix.Edge{{From: 0, To: 1, Weight: matrix.Inf - 1}})
	require.NoError(t, err)

	mind := []int64{matrix.Inf - 1, matrix.Inf}
	updateMind(partition.Range{Start: 1, End: 1}, 0, m, mind, func(i int) bool { return i == 0 })
	require.Equal(t, matrix.Inf, mind[1])
}

func TestCell_Report(t *testing.T) {
	var c cell
	c.reset()
	require.Equal(t, matrix.Inf, c.md)
	require.Equal(t, None, c.mv)

	c.report(matrix.Inf, None)
	require.Equal(t, None, c.mv, "an empty candidate never wins")

	c.report(5, 3)
	c.report(5, 1)
	require.Equal(t, 3, c.mv, "equal distance keeps the first reporter")
	c.report(4, 7)
	require.Equal(t, int64(4), c.md)
	require.Equal(t, 7, c.mv)
}

func TestCell_ConcurrentReport(t *testing.T) {
	var c cell
	c.reset()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			c.report(int64(100-v), v)
		}(i)
	}
	wg.Wait()

	require.Equal(t, int64(37), c.md)
	require.Equal(t, 63, c.mv)
}

func TestShared_CellsAlternate(t *testing.T) {
	s := newShared(matrix.Demo(), 2, defaultOptions())
	require.Same(t, s.cell(1), s.cell(3))
	require.NotSame(t, s.cell(1), s.cell(2))
}

func TestShared_InvariantViolations(t *testing.T) {
	opts := defaultOptions()
	opts.InvariantChecks = true

	s := newShared(matrix.Demo(), 1, opts)
	require.ErrorIs(t, s.connect(1, 0, 0), ErrInvariantViolation, "source already connected")

	s = newShared(matrix.Demo(), 1, opts)
	require.ErrorIs(t, s.connect(1, 14, 2), ErrInvariantViolation, "md disagrees with mind")

	s = newShared(matrix.Demo(), 1, opts)
	require.ErrorIs(t, s.connect(1, 15, 9), ErrInvariantViolation, "out of range")

	s = newShared(matrix.Demo(), 1, opts)
	require.NoError(t, s.connect(1, 15, 2))
	s.mind[1] = 10
	require.ErrorIs(t, s.connect(2, 10, 1), ErrInvariantViolation, "distance went backwards")

	s = newShared(matrix.Demo(), 1, opts)
	require.NoError(t, s.connect(1, None, None))
	require.Equal(t, 1, s.rounds)
	require.Equal(t, 1, s.connectedCount)
}

func TestShared_CheckFinal(t *testing.T) {
	s := newShared(matrix.Demo(), 1, defaultOptions())
	require.NoError(t, s.checkFinal())

	s.mind[0] = 3
	require.ErrorIs(t, s.checkFinal(), ErrInvariantViolation)
}

func TestShared_FailKeepsFirstCause(t *testing.T) {
	s := newShared(matrix.Demo(), 2, defaultOptions())
	first := ErrWorkerPanic
	s.fail(first)
	s.fail(ErrInvariantViolation)

	require.Equal(t, first, s.cause)
	require.True(t, s.bar.Broken())
}
