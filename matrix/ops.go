package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Add returns the elementwise sum a+b. Both operands must share one shape.
func Add(a, b *Dense) (*Dense, error) {
	if !sameShape(a, b) {
		return nil, fmt.Errorf("add %dx%d and %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	r, c := a.data.Dims()
	o := mat.NewDense(r, c, nil)
	o.Add(a.data, b.data)
	return &Dense{data: o}, nil
}

// Sub returns the elementwise difference a-b. Both operands must share one shape.
func Sub(a, b *Dense) (*Dense, error) {
	if !sameShape(a, b) {
		return nil, fmt.Errorf("sub %dx%d and %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	r, c := a.data.Dims()
	o := mat.NewDense(r, c, nil)
	o.Sub(a.data, b.data)
	return &Dense{data: o}, nil
}

// MulElem returns the elementwise (Hadamard) product a∘b.
func MulElem(a, b *Dense) (*Dense, error) {
	if !sameShape(a, b) {
		return nil, fmt.Errorf("mulelem %dx%d and %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	r, c := a.data.Dims()
	o := mat.NewDense(r, c, nil)
	o.MulElem(a.data, b.data)
	return &Dense{data: o}, nil
}

// Mul returns the matrix product a×b. Requires a.Cols() == b.Rows(); the
// result has shape a.Rows()×b.Cols().
func Mul(a, b *Dense) (*Dense, error) {
	ar, ac := a.data.Dims()
	br, bc := b.data.Dims()
	if ac != br {
		return nil, fmt.Errorf("mul %dx%d and %dx%d: %w",
			ar, ac, br, bc, ErrDimensionMismatch)
	}
	o := mat.NewDense(ar, bc, nil)
	o.Mul(a.data, b.data)
	return &Dense{data: o}, nil
}

// Scale returns s·a. Scaling is commutative, so a single form serves both
// scalar-left and scalar-right uses.
func Scale(s float64, a *Dense) *Dense {
	r, c := a.data.Dims()
	o := mat.NewDense(r, c, nil)
	o.Scale(s, a.data)
	return &Dense{data: o}
}

// Transpose returns the cols×rows transpose of a.
func Transpose(a *Dense) *Dense {
	r, c := a.data.Dims()
	o := mat.NewDense(c, r, nil)
	o.Copy(a.data.T())
	return &Dense{data: o}
}

// Sum returns the sum of all elements of a.
func Sum(a *Dense) float64 {
	return mat.Sum(a.data)
}

// Equal reports whether a and b have the same shape and identical elements.
func Equal(a, b *Dense) bool {
	return mat.Equal(a.data, b.data)
}

// EqualApprox reports whether a and b have the same shape and all elements
// within eps of each other.
func EqualApprox(a, b *Dense, eps float64) bool {
	return mat.EqualApprox(a.data, b.data, eps)
}
