// Package trainer drives epochs of single-sample gradient descent over a
// loaded dataset and reports loss, accuracy, and timing.
package trainer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConfig indicates a training configuration that fails validation.
var ErrInvalidConfig = errors.New("trainer: invalid configuration")

// Config holds the knobs for one training run.
type Config struct {
	Architecture []int
	LearningRate float64
	Epochs       int
	Seed         uint64
}

// ParseArchitecture parses a whitespace-separated layer size list such as
// "784 16 10 10".
func ParseArchitecture(s string) ([]int, error) {
	parts := strings.Fields(s)
	arch := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("trainer: architecture element %q: %w", p, err)
		}
		arch[i] = n
	}
	return arch, nil
}

// Validate checks the configuration before any work is done.
func (c Config) Validate() error {
	if len(c.Architecture) < 2 {
		return fmt.Errorf("%w: architecture must have at least 2 layers (input and output)", ErrInvalidConfig)
	}
	for i, size := range c.Architecture {
		if size < 1 {
			return fmt.Errorf("%w: layer %d has size %d", ErrInvalidConfig, i, size)
		}
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning rate must be positive", ErrInvalidConfig)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("%w: epochs must be positive", ErrInvalidConfig)
	}
	return nil
}
