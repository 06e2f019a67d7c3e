// SPDX-License-Identifier: MIT
// Package matrix_test covers builders, accessors and the Floyd–Warshall reference.
package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/teampath/matrix"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Builders
// ------------------------------------------------------------------------

func TestNew_DemoShape(t *testing.T) {
	d := matrix.Demo()
	require.Equal(t, matrix.DemoNodes, d.Size())

	for i := 0; i < d.Size(); i++ {
		w, err := d.At(i, i)
		require.NoError(t, err)
		require.Zero(t, w, "diagonal (%d,%d) must be 0", i, i)
		for j := 0; j < d.Size(); j++ {
			require.Equal(t, d.Weight(i, j), d.Weight(j, i), "undirected demo must be symmetric at (%d,%d)", i, j)
		}
	}

	require.Equal(t, int64(40), d.Weight(0, 1))
	require.Equal(t, int64(100), d.Weight(3, 2))
	require.Equal(t, matrix.Inf, d.Weight(0, 3))
	require.False(t, d.HasEdge(0, 4))
	require.True(t, d.HasEdge(5, 4))
	require.False(t, d.HasEdge(2, 2), "self pair is never an edge")
}

func TestNew_Directed(t *testing.T) {
	d, err := matrix.New(3, []matrix.Edge{{From: 0, To: 1, Weight: 7}}, matrix.WithDirected())
	require.NoError(t, err)
	require.Equal(t, int64(7), d.Weight(0, 1))
	require.Equal(t, matrix.Inf, d.Weight(1, 0))
}

func TestNew_DuplicatePolicy(t *testing.T) {
	edges := []matrix.Edge{
		{From: 0, To: 1, Weight: 9},
		{From: 1, To: 0, Weight: 4},
		{From: 0, To: 1, Weight: 6},
	}

	last, err := matrix.New(2, edges)
	require.NoError(t, err)
	require.Equal(t, int64(6), last.Weight(0, 1), "last write wins by default")

	minimum, err := matrix.New(2, edges, matrix.WithKeepMin())
	require.NoError(t, err)
	require.Equal(t, int64(4), minimum.Weight(0, 1))
	require.Equal(t, int64(4), minimum.Weight(1, 0))
}

func TestNew_SelfLoopIgnored(t *testing.T) {
	d, err := matrix.New(2, []matrix.Edge{{From: 1, To: 1, Weight: 3}})
	require.NoError(t, err)
	require.Zero(t, d.Weight(1, 1))
}

func TestNew_Errors(t *testing.T) {
	_, err := matrix.New(0, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New(-3, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New(3, []matrix.Edge{{From: 0, To: 3, Weight: 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.New(3, []matrix.Edge{{From: -1, To: 0, Weight: 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNew_SingleNode(t *testing.T) {
	d, err := matrix.New(1, nil)
	require.NoError(t, err)
	require.Equal(t, 1, d.Size())
	require.Zero(t, d.Weight(0, 0))
}

func TestFromRows(t *testing.T) {
	inf := matrix.Inf
	d, err := matrix.FromRows([][]int64{
		{0, 5, inf},
		{inf, 0, 2},
		{1, inf, 0},
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), d.Weight(0, 1))
	require.Equal(t, inf, d.Weight(1, 0))

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]int64{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromRows([][]int64{{0, 1}, {1, 3}})
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]int64{{0, 1}, {1, 0}}
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	rows[0][1] = 99
	require.Equal(t, int64(1), d.Weight(0, 1))
}

// ------------------------------------------------------------------------
// 2. Accessors
// ------------------------------------------------------------------------

func TestAt_OutOfRange(t *testing.T) {
	d := matrix.Demo()
	_, err := d.At(6, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.Row(7)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestRowAndClone_AreCopies(t *testing.T) {
	d := matrix.Demo()

	row, err := d.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 40, 15, matrix.Inf, matrix.Inf, matrix.Inf}, row)
	row[1] = 1
	require.Equal(t, int64(40), d.Weight(0, 1))

	c := d.Clone()
	require.True(t, c.Equal(d))
	require.False(t, c.Equal(nil))
}

func TestString(t *testing.T) {
	s := matrix.Demo().String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	require.Len(t, lines, matrix.DemoNodes)
	require.Equal(t, "0 40 15 Inf Inf Inf", lines[0])
}

func TestSaturatingAdd(t *testing.T) {
	require.Equal(t, int64(7), matrix.SaturatingAdd(3, 4))
	require.Equal(t, matrix.Inf, matrix.SaturatingAdd(matrix.Inf, 0))
	require.Equal(t, matrix.Inf, matrix.SaturatingAdd(1, matrix.Inf))
	require.Equal(t, matrix.Inf, matrix.SaturatingAdd(matrix.Inf-1, 2))
	require.Equal(t, matrix.Inf-1, matrix.SaturatingAdd(matrix.Inf-2, 1))
}

// ------------------------------------------------------------------------
// 3. Floyd–Warshall reference
// ------------------------------------------------------------------------

func TestFloydWarshall_Demo(t *testing.T) {
	d := matrix.Demo()
	apsp, err := matrix.FloydWarshall(d)
	require.NoError(t, err)

	row, err := apsp.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 35, 15, 45, 49, 41}, row)

	// Input is untouched.
	require.Equal(t, matrix.Inf, d.Weight(0, 3))
}

func TestFloydWarshall_Unreachable(t *testing.T) {
	d, err := matrix.New(3, []matrix.Edge{{From: 0, To: 1, Weight: 2}}, matrix.WithDirected())
	require.NoError(t, err)

	apsp, err := matrix.FloydWarshall(d)
	require.NoError(t, err)
	require.Equal(t, matrix.Inf, apsp.Weight(0, 2))
	require.Equal(t, matrix.Inf, apsp.Weight(1, 0))
}

func TestFloydWarshall_Nil(t *testing.T) {
	_, err := matrix.FloydWarshall(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
