package trainer

import (
	"fmt"
	"io"
	"time"

	"mlpkit/dataset"
	"mlpkit/network"
)

// Fit runs epochs of single-sample training over samples in order, printing
// one progress line per epoch to w. It returns the timing breakdown for the
// whole run.
func Fit(net *network.Network, samples []dataset.Sample, epochs int, w io.Writer) (*TimingStats, error) {
	if len(samples) == 0 {
		return nil, dataset.ErrEmptyDataset
	}

	stats := &TimingStats{}
	totalStart := time.Now()
	for epoch := 1; epoch <= epochs; epoch++ {
		epochStart := time.Now()

		trainStart := time.Now()
		for i, s := range samples {
			if err := net.Train(s.Input, s.Target); err != nil {
				return nil, fmt.Errorf("trainer: sample %d: %w", i, err)
			}
			stats.Steps++
		}
		stats.TrainTime += time.Since(trainStart)

		lossStart := time.Now()
		avgLoss, err := Loss(net, samples)
		if err != nil {
			return nil, err
		}
		stats.LossTime += time.Since(lossStart)

		fmt.Fprintf(w, "Epoch %d/%d | Loss: %.6f | Time: %.2fs\n",
			epoch, epochs, avgLoss, time.Since(epochStart).Seconds())
	}
	stats.TotalTime = time.Since(totalStart)

	return stats, nil
}

// Loss returns the mean of the per-sample MSE across the dataset.
func Loss(net *network.Network, samples []dataset.Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, dataset.ErrEmptyDataset
	}
	total := 0.0
	for i, s := range samples {
		out, err := net.Forward(s.Input)
		if err != nil {
			return 0, fmt.Errorf("trainer: sample %d: %w", i, err)
		}
		mse, err := network.MSE(out, s.Target)
		if err != nil {
			return 0, fmt.Errorf("trainer: sample %d: %w", i, err)
		}
		total += mse
	}
	return total / float64(len(samples)), nil
}

// Evaluate returns the classification accuracy over samples as a percentage
// in [0,100].
func Evaluate(net *network.Network, samples []dataset.Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, dataset.ErrEmptyDataset
	}
	correct := 0
	for i, s := range samples {
		predicted, err := net.Predict(s.Input)
		if err != nil {
			return 0, fmt.Errorf("trainer: sample %d: %w", i, err)
		}
		if predicted == s.Label {
			correct++
		}
	}
	return 100 * float64(correct) / float64(len(samples)), nil
}
