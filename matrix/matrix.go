// Package matrix provides the dense linear algebra primitives used by the
// feedforward network: construction, elementwise and product arithmetic,
// uniform randomization, and the sigmoid/square transforms.
//
// Dense wraps a gonum mat.Dense and layers shape validation on top of it.
// All user-triggered failure conditions are reported through the package
// sentinel errors; no exported operation panics.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense is a fixed-shape R×C matrix of float64 values. The shape is set at
// construction and never changes; contents are mutable. Every Dense owns its
// storage exclusively, so copies never alias.
type Dense struct {
	data *mat.Dense
}

// New creates a rows×cols matrix with every element set to zero.
func New(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("new %dx%d: %w", rows, cols, ErrInvalidDimension)
	}
	return &Dense{data: mat.NewDense(rows, cols, nil)}, nil
}

// NewFilled creates a rows×cols matrix with every element set to fill.
func NewFilled(rows, cols int, fill float64) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	m.data.Apply(func(_, _ int, _ float64) float64 { return fill }, m.data)
	return m, nil
}

// FromColumn creates a len(values)×1 column vector holding a copy of values.
func FromColumn(values []float64) (*Dense, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("from column of length 0: %w", ErrInvalidDimension)
	}
	data := append([]float64(nil), values...)
	return &Dense{data: mat.NewDense(len(data), 1, data)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int {
	r, _ := m.data.Dims()
	return r
}

// Cols returns the number of columns.
func (m *Dense) Cols() int {
	_, c := m.data.Dims()
	return c
}

// Dims returns the row and column counts.
func (m *Dense) Dims() (rows, cols int) {
	return m.data.Dims()
}

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) (float64, error) {
	r, c := m.data.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("at (%d,%d) of %dx%d: %w", i, j, r, c, ErrOutOfRange)
	}
	return m.data.At(i, j), nil
}

// Set assigns v to the element at row i, column j.
func (m *Dense) Set(i, j int, v float64) error {
	r, c := m.data.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return fmt.Errorf("set (%d,%d) of %dx%d: %w", i, j, r, c, ErrOutOfRange)
	}
	m.data.Set(i, j, v)
	return nil
}

// Col returns a copy of column j as a slice.
func (m *Dense) Col(j int) ([]float64, error) {
	r, c := m.data.Dims()
	if j < 0 || j >= c {
		return nil, fmt.Errorf("col %d of %dx%d: %w", j, r, c, ErrOutOfRange)
	}
	col := make([]float64, r)
	mat.Col(col, j, m.data)
	return col, nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{data: mat.DenseCopyOf(m.data)}
}

// String renders the matrix with gonum's formatter, one bracketed row per line.
func (m *Dense) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.data))
}

// sameShape reports whether a and b have identical dimensions.
func sameShape(a, b *Dense) bool {
	ar, ac := a.data.Dims()
	br, bc := b.data.Dims()
	return ar == br && ac == bc
}
