package network

import (
	"fmt"

	"mlpkit/matrix"
)

// Forward runs one inference pass. The input must be a layers[0]×1 column
// vector; the result is a layers[last]×1 column vector. Hidden transitions
// apply sigmoid; the output layer stays linear, so its range is unbounded.
func (n *Network) Forward(input *matrix.Dense) (*matrix.Dense, error) {
	if input.Rows() != n.inputSize() || input.Cols() != 1 {
		return nil, fmt.Errorf("network: forward input is %dx%d, want %dx1: %w",
			input.Rows(), input.Cols(), n.inputSize(), matrix.ErrDimensionMismatch)
	}

	activation := input
	for i := range n.weights {
		z, err := matrix.Mul(n.weights[i], activation)
		if err != nil {
			return nil, err
		}
		z, err = matrix.Add(z, n.biases[i])
		if err != nil {
			return nil, err
		}
		if i < len(n.weights)-1 {
			z = matrix.Sigmoid(z)
		}
		activation = z
	}
	return activation, nil
}

// Train performs one stochastic gradient descent step on a single
// (input, target) example, mutating the weights and biases in place. The
// input must be layers[0]×1 and the target layers[last]×1.
//
// The output layer is linear, so the output error is simply the difference
// between the final activation and the target; hidden layers scale the
// back-propagated error by the sigmoid derivative a·(1−a) evaluated at their
// own activation. Layers are processed strictly last-to-first.
func (n *Network) Train(input, target *matrix.Dense) error {
	if input.Rows() != n.inputSize() || input.Cols() != 1 {
		return fmt.Errorf("network: train input is %dx%d, want %dx1: %w",
			input.Rows(), input.Cols(), n.inputSize(), matrix.ErrDimensionMismatch)
	}
	if target.Rows() != n.outputSize() || target.Cols() != 1 {
		return fmt.Errorf("network: train target is %dx%d, want %dx1: %w",
			target.Rows(), target.Cols(), n.outputSize(), matrix.ErrDimensionMismatch)
	}

	// Forward pass, retaining each layer's activation for the backward pass.
	// activations[0] is the input itself.
	activations := make([]*matrix.Dense, len(n.sizes))
	activations[0] = input
	for i := range n.weights {
		z, err := matrix.Mul(n.weights[i], activations[i])
		if err != nil {
			return err
		}
		z, err = matrix.Add(z, n.biases[i])
		if err != nil {
			return err
		}
		if i < len(n.weights)-1 {
			z = matrix.Sigmoid(z)
		}
		activations[i+1] = z
	}

	// Output layer error: derivative of the MSE loss w.r.t. a linear output.
	last := len(n.weights) - 1
	errMat, err := matrix.Sub(activations[last+1], target)
	if err != nil {
		return err
	}
	if err := n.descend(last, errMat, activations[last]); err != nil {
		return err
	}

	// Hidden layers, strictly last-to-first.
	for i := last - 1; i >= 0; i-- {
		errMat, err = matrix.Mul(matrix.Transpose(n.weights[i+1]), errMat)
		if err != nil {
			return err
		}
		// Sigmoid derivative at the layer's activation: a·(1−a) = a − a².
		a := activations[i+1]
		deriv, err := matrix.Sub(a, matrix.Square(a))
		if err != nil {
			return err
		}
		errMat, err = matrix.MulElem(errMat, deriv)
		if err != nil {
			return err
		}
		if err := n.descend(i, errMat, activations[i]); err != nil {
			return err
		}
	}

	return nil
}

// descend applies the gradient step for transition i given its error term
// and the activation feeding the transition:
//
//	weights[i] -= lr · (errMat × activationᵗ)
//	biases[i]  -= lr · errMat
func (n *Network) descend(i int, errMat, activation *matrix.Dense) error {
	grad, err := matrix.Mul(errMat, matrix.Transpose(activation))
	if err != nil {
		return err
	}
	w, err := matrix.Sub(n.weights[i], matrix.Scale(n.lr, grad))
	if err != nil {
		return err
	}
	b, err := matrix.Sub(n.biases[i], matrix.Scale(n.lr, errMat))
	if err != nil {
		return err
	}
	n.weights[i] = w
	n.biases[i] = b
	return nil
}

// Predict runs Forward and returns the row index of the largest output,
// i.e. the predicted class for one-hot trained networks.
func (n *Network) Predict(input *matrix.Dense) (int, error) {
	out, err := n.Forward(input)
	if err != nil {
		return 0, err
	}
	col, err := out.Col(0)
	if err != nil {
		return 0, err
	}
	best := 0
	for i, v := range col {
		if v > col[best] {
			best = i
		}
	}
	return best, nil
}

// MSE returns the mean squared error between a prediction and a target of
// identical shape. It is a pure diagnostic; training itself uses the raw
// error term, not this value.
func MSE(predicted, target *matrix.Dense) (float64, error) {
	diff, err := matrix.Sub(predicted, target)
	if err != nil {
		return 0, err
	}
	sq := matrix.Square(diff)
	r, c := sq.Dims()
	return matrix.Sum(sq) / float64(r*c), nil
}
