package simplicial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvantis/simplicial/simplicial"
)

func TestNewSimplexCanonicalForm(t *testing.T) {
	s, err := simplicial.NewSimplex(3, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, s.Vertices())
	require.Equal(t, 2, s.Dim())
}

func TestNewSimplexDuplicateRejected(t *testing.T) {
	_, err := simplicial.NewSimplex(1, 2, 2, 3)
	require.ErrorIs(t, err, simplicial.ErrDuplicateVertex)
}

func TestFacesOrderAndCount(t *testing.T) {
	s, err := simplicial.NewSimplex(1, 2, 3)
	require.NoError(t, err)

	faces := s.Faces()
	require.Len(t, faces, 3)
	require.Equal(t, []int{2, 3}, faces[0].Vertices()) // removed index 0 (vertex 1)
	require.Equal(t, []int{1, 3}, faces[1].Vertices()) // removed index 1 (vertex 2)
	require.Equal(t, []int{1, 2}, faces[2].Vertices()) // removed index 2 (vertex 3)
}

func TestVertexHasNoFaces(t *testing.T) {
	s, err := simplicial.NewSimplex(5)
	require.NoError(t, err)
	require.Nil(t, s.Faces())
}

func TestEqualAndLess(t *testing.T) {
	a, _ := simplicial.NewSimplex(1, 2)
	b, _ := simplicial.NewSimplex(2, 1)
	require.True(t, a.Equal(b))

	c, _ := simplicial.NewSimplex(1, 3)
	require.True(t, a.Less(c))
	require.False(t, c.Less(a))
}

func TestKeyAndString(t *testing.T) {
	s, _ := simplicial.NewSimplex(3, 1)
	require.Equal(t, "1,3", s.Key())
	require.Equal(t, "<1,3>", s.String())
}
