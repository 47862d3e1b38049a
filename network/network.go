// Package network implements a feedforward multi-layer perceptron trained by
// per-sample gradient descent. The network owns one weight and one bias
// matrix per layer transition; hidden transitions use sigmoid activation and
// the output layer is linear.
//
// A Network is not safe for concurrent use: Train mutates the shared weight
// and bias state, so callers must serialize training or give each goroutine
// its own network.
package network

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"mlpkit/matrix"
)

// ErrInvalidArchitecture indicates fewer than two layer sizes, or a layer
// size below 1.
var ErrInvalidArchitecture = errors.New("network: architecture needs at least two positive layer sizes")

// DefaultLearningRate is used when no WithLearningRate option is given.
const DefaultLearningRate = 0.01

// Network holds the weights and biases for each layer transition. For
// transition i the weight matrix has shape sizes[i+1]×sizes[i] and the bias
// matrix sizes[i+1]×1.
type Network struct {
	sizes   []int
	weights []*matrix.Dense
	biases  []*matrix.Dense
	lr      float64
	src     rand.Source
}

// Option configures a Network during construction.
type Option func(*Network)

// WithLearningRate sets the gradient descent step size. The rate must be
// positive; it can be changed later with SetLearningRate.
func WithLearningRate(lr float64) Option {
	return func(n *Network) { n.lr = lr }
}

// WithRand sets the source used to randomize the initial weights and biases,
// making initialization deterministic for a fixed seed. Without it the
// shared global source is used.
func WithRand(src rand.Source) Option {
	return func(n *Network) { n.src = src }
}

// New constructs a network from an ordered list of layer sizes (input,
// hidden..., output). Each weight and bias matrix is randomized uniformly in
// [-1,1).
func New(sizes []int, opts ...Option) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("%d layer sizes: %w", len(sizes), ErrInvalidArchitecture)
	}
	for i, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("layer %d has size %d: %w", i, s, ErrInvalidArchitecture)
		}
	}

	n := &Network{
		sizes:   append([]int(nil), sizes...),
		weights: make([]*matrix.Dense, len(sizes)-1),
		biases:  make([]*matrix.Dense, len(sizes)-1),
		lr:      DefaultLearningRate,
	}
	for _, opt := range opts {
		opt(n)
	}

	for i := 0; i < len(sizes)-1; i++ {
		w, err := matrix.New(sizes[i+1], sizes[i])
		if err != nil {
			return nil, fmt.Errorf("weights %d: %w", i, err)
		}
		if err := w.Randomize(-1, 1, n.src); err != nil {
			return nil, fmt.Errorf("weights %d: %w", i, err)
		}
		b, err := matrix.New(sizes[i+1], 1)
		if err != nil {
			return nil, fmt.Errorf("biases %d: %w", i, err)
		}
		if err := b.Randomize(-1, 1, n.src); err != nil {
			return nil, fmt.Errorf("biases %d: %w", i, err)
		}
		n.weights[i] = w
		n.biases[i] = b
	}

	return n, nil
}

// LayerCount returns the number of layers, including input and output.
func (n *Network) LayerCount() int {
	return len(n.sizes)
}

// LayerSizes returns a copy of the layer sizes in order.
func (n *Network) LayerSizes() []int {
	return append([]int(nil), n.sizes...)
}

// LearningRate returns the current gradient descent step size.
func (n *Network) LearningRate() float64 {
	return n.lr
}

// SetLearningRate replaces the gradient descent step size for subsequent
// Train calls. The rate must be positive.
func (n *Network) SetLearningRate(lr float64) {
	n.lr = lr
}

// inputSize and outputSize are the first and last layer sizes.
func (n *Network) inputSize() int  { return n.sizes[0] }
func (n *Network) outputSize() int { return n.sizes[len(n.sizes)-1] }
