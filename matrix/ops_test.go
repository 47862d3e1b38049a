package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"mlpkit/matrix"
)

func randomMatrix(t *testing.T, rows, cols int, seed uint64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(rows, cols)
	require.NoError(t, err)
	require.NoError(t, m.Randomize(-1, 1, rand.NewSource(seed)))
	return m
}

func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

func TestAddSubPointwise(t *testing.T) {
	a := randomMatrix(t, 3, 4, 1)
	b := randomMatrix(t, 3, 4, 2)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			sv, err := sum.At(i, j)
			require.NoError(t, err)
			dv, err := diff.At(i, j)
			require.NoError(t, err)
			require.Equal(t, av+bv, sv)
			require.Equal(t, av-bv, dv)
		}
	}
}

func TestElementwiseShapeMismatch(t *testing.T) {
	a := randomMatrix(t, 3, 4, 1)
	b := randomMatrix(t, 4, 3, 2)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulElem(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulKnownProduct(t *testing.T) {
	a := fromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	b := fromRows(t, [][]float64{
		{7, 8},
		{9, 10},
		{11, 12},
	})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	want := fromRows(t, [][]float64{
		{58, 64},
		{139, 154},
	})
	require.True(t, matrix.EqualApprox(got, want, 1e-12))
}

func TestMulInnerDimensionMismatch(t *testing.T) {
	a := randomMatrix(t, 2, 3, 1)
	b := randomMatrix(t, 4, 2, 2)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestScalePointwise(t *testing.T) {
	a := randomMatrix(t, 2, 5, 3)

	scaled := matrix.Scale(2.5, a)
	for i := 0; i < 2; i++ {
		for j := 0; j < 5; j++ {
			av, _ := a.At(i, j)
			sv, err := scaled.At(i, j)
			require.NoError(t, err)
			require.Equal(t, 2.5*av, sv)
		}
	}

	// Scaling is a single canonical form, so repeated application of the
	// same scalar must be bit-identical.
	require.True(t, matrix.Equal(matrix.Scale(2.5, a), matrix.Scale(2.5, a)))
}

func TestTransposeRoundTrip(t *testing.T) {
	a := randomMatrix(t, 3, 5, 4)

	tr := matrix.Transpose(a)
	require.Equal(t, 5, tr.Rows())
	require.Equal(t, 3, tr.Cols())

	v, err := tr.At(4, 2)
	require.NoError(t, err)
	orig, err := a.At(2, 4)
	require.NoError(t, err)
	require.Equal(t, orig, v)

	require.True(t, matrix.Equal(a, matrix.Transpose(tr)))
}

func TestTransposeOfProduct(t *testing.T) {
	a := randomMatrix(t, 3, 4, 5)
	b := randomMatrix(t, 4, 2, 6)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	left := matrix.Transpose(ab)

	right, err := matrix.Mul(matrix.Transpose(b), matrix.Transpose(a))
	require.NoError(t, err)

	require.True(t, matrix.EqualApprox(left, right, 1e-12))
}

func TestSum(t *testing.T) {
	a := fromRows(t, [][]float64{
		{1, 2},
		{3, 4.5},
	})
	require.InDelta(t, 10.5, matrix.Sum(a), 1e-12)
}
