package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Randomize overwrites every element with an independent draw from the
// uniform distribution on [min, max). A nil src falls back to the shared
// global source, in which case results are not reproducible across runs;
// pass rand.NewSource(seed) for deterministic initialization.
func (m *Dense) Randomize(min, max float64, src rand.Source) error {
	if max <= min {
		return fmt.Errorf("randomize [%g,%g): %w", min, max, ErrInvalidRange)
	}
	dist := distuv.Uniform{Min: min, Max: max, Src: src}
	m.data.Apply(func(_, _ int, _ float64) float64 { return dist.Rand() }, m.data)
	return nil
}

// Sigmoid returns a new matrix with 1/(1+e^-x) applied to every element.
// For extreme inputs the IEEE arithmetic saturates cleanly to 0 or 1, so no
// clamping is needed.
func Sigmoid(a *Dense) *Dense {
	o := a.Clone()
	o.data.Apply(func(_, _ int, v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	}, o.data)
	return o
}

// Square returns a new matrix with every element squared.
func Square(a *Dense) *Dense {
	o := a.Clone()
	o.data.MulElem(o.data, o.data)
	return o
}
