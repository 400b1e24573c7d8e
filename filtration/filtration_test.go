package filtration_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvantis/simplicial/filtration"
	"github.com/arvantis/simplicial/simplicial"
)

func mustSimplex(t *testing.T, vs ...int) simplicial.Simplex {
	t.Helper()
	s, err := simplicial.NewSimplex(vs...)
	require.NoError(t, err)

	return s
}

// TestPushAndIterate reproduces the filtration-iteration scenario: pushing
// {1} at 1, {2} at 2, {1,2} at 3 (recursive), {1,3} at 4 (recursive) should
// yield exactly the four grouped steps, in (value, dim) order.
func TestPushAndIterate(t *testing.T) {
	cx := simplicial.NewComplex()
	flt, err := filtration.New(cx, nil)
	require.NoError(t, err)

	_, err = flt.Push(mustSimplex(t, 1), 1, false)
	require.NoError(t, err)
	_, err = flt.Push(mustSimplex(t, 2), 2, false)
	require.NoError(t, err)
	_, err = flt.Push(mustSimplex(t, 1, 2), 3, true)
	require.NoError(t, err)
	_, err = flt.Push(mustSimplex(t, 1, 3), 4, true)
	require.NoError(t, err)

	steps, err := flt.Iterate(filtration.Continuous)
	require.NoError(t, err)
	require.Len(t, steps, 4)

	require.Equal(t, 1.0, steps[0].Value)
	require.Equal(t, []filtration.CellRef{{Dim: 0, Index: 1}}, steps[0].Cells)

	require.Equal(t, 2.0, steps[1].Value)
	require.Equal(t, []filtration.CellRef{{Dim: 0, Index: 2}}, steps[1].Cells)

	require.Equal(t, 3.0, steps[2].Value)
	require.Equal(t, []filtration.CellRef{{Dim: 1, Index: 1}}, steps[2].Cells)

	require.Equal(t, 4.0, steps[3].Value)
	require.Equal(t, []filtration.CellRef{{Dim: 0, Index: 3}, {Dim: 1, Index: 2}}, steps[3].Cells)
}

// TestWriteTextMatchesScenario checks the exact serialized text from the
// push scenario above.
func TestWriteTextMatchesScenario(t *testing.T) {
	cx := simplicial.NewComplex()
	flt, err := filtration.New(cx, nil)
	require.NoError(t, err)

	_, _ = flt.Push(mustSimplex(t, 1), 1, false)
	_, _ = flt.Push(mustSimplex(t, 2), 2, false)
	_, _ = flt.Push(mustSimplex(t, 1, 2), 3, true)
	_, _ = flt.Push(mustSimplex(t, 1, 3), 4, true)

	var sb strings.Builder
	require.NoError(t, filtration.WriteText(&sb, flt))
	require.Equal(t, "1,1\n2,2\n1,2,3\n3,4\n1,3,4\n", sb.String())
}

// TestCombinedBoundaryMatrixCount checks the boundary-matrix entry count
// from the same scenario: 5 cells total, 4 nonzero face incidences (the two
// edges each have 2 faces; vertices have none, unreduced).
func TestCombinedBoundaryMatrixCount(t *testing.T) {
	cx := simplicial.NewComplex()
	flt, err := filtration.New(cx, nil)
	require.NoError(t, err)

	_, _ = flt.Push(mustSimplex(t, 1), 1, false)
	_, _ = flt.Push(mustSimplex(t, 2), 2, false)
	_, _ = flt.Push(mustSimplex(t, 1, 2), 3, true)
	_, _ = flt.Push(mustSimplex(t, 1, 3), 4, true)

	cols := filtration.CombinedBoundaryMatrix(flt, false)
	require.Len(t, cols, 5)

	total := 0
	for _, c := range cols {
		total += len(c.Faces)
	}
	require.Equal(t, 4, total)
}

// TestRoundTrip verifies writing and reading back a filtration yields the
// same order and values.
func TestRoundTrip(t *testing.T) {
	cx := simplicial.NewComplex()
	flt, err := filtration.New(cx, nil)
	require.NoError(t, err)

	_, _ = flt.Push(mustSimplex(t, 1), 1, false)
	_, _ = flt.Push(mustSimplex(t, 2), 2, false)
	_, _ = flt.Push(mustSimplex(t, 1, 2), 3, true)
	_, _ = flt.Push(mustSimplex(t, 1, 3), 4, true)

	var sb strings.Builder
	require.NoError(t, filtration.WriteText(&sb, flt))

	roundTripped, err := filtration.ReadText(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, flt.Entries(), roundTripped.Entries())
}

// TestFaceOrderingInvariant checks invariant 6: in T, all faces of a
// cell appear earlier than the cell itself.
func TestFaceOrderingInvariant(t *testing.T) {
	cx := simplicial.NewComplex()
	flt, err := filtration.New(cx, nil)
	require.NoError(t, err)

	_, err = flt.Push(mustSimplex(t, 1, 2, 3), 1, true)
	require.NoError(t, err)

	entries := flt.Entries()
	posOf := make(map[string]int)
	for i, e := range entries {
		cell, err := flt.Complex().CellAt(e.Index, e.Dim)
		require.NoError(t, err)
		posOf[cell.Key()] = i
	}
	for i, e := range entries {
		cell, err := flt.Complex().CellAt(e.Index, e.Dim)
		require.NoError(t, err)
		for _, face := range cell.Faces() {
			require.Less(t, posOf[face.Key()], i)
		}
	}
}

// TestIterateDivisions exercises the N-division stepping path with a spread
// of distinct values.
func TestIterateDivisions(t *testing.T) {
	cx := simplicial.NewComplex()
	flt, err := filtration.New(cx, nil)
	require.NoError(t, err)

	_, _ = flt.Push(mustSimplex(t, 1), 0, false)
	_, _ = flt.Push(mustSimplex(t, 2), 5, false)
	_, _ = flt.Push(mustSimplex(t, 3), 10, false)

	steps, err := flt.Iterate(2)
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	total := 0
	for _, s := range steps {
		total += len(s.Cells)
	}
	require.Equal(t, 3, total)
}

func TestIterateNegativeDivisionsErrors(t *testing.T) {
	cx := simplicial.NewComplex()
	flt, err := filtration.New(cx, nil)
	require.NoError(t, err)

	_, err = flt.Iterate(-1)
	require.ErrorIs(t, err, filtration.ErrInvalidDivisions)
}
