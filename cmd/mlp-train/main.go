// mlp-train: trains a feedforward network on a delimited image dataset and
// reports classification accuracy on a held-out test set.
//
// Usage:
//
//	mlp-train --train=train.csv --test=test.csv --arch="784 16 10 10" --epochs=5 --lr=0.01
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"mlpkit/dataset"
	"mlpkit/network"
	"mlpkit/trainer"
)

var (
	trainPath    = flag.String("train", "", "Training dataset (CSV, label first)")
	testPath     = flag.String("test", "", "Test dataset (CSV, label first)")
	archStr      = flag.String("arch", "784 16 10 10", "Layer sizes, input to output")
	epochs       = flag.Int("epochs", 5, "Number of training epochs")
	learningRate = flag.Float64("lr", network.DefaultLearningRate, "Learning rate")
	seed         = flag.Uint64("seed", 42, "Random seed for weight initialization")
	preview      = flag.Int("preview", 0, "Render the first N training images as ASCII art")
	imageWidth   = flag.Int("width", 28, "Image width in pixels, for previews")
	verbose      = flag.Bool("verbose", false, "Print timing statistics")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mlp-train: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *trainPath == "" || *testPath == "" {
		return fmt.Errorf("both --train and --test are required")
	}

	arch, err := trainer.ParseArchitecture(*archStr)
	if err != nil {
		return err
	}
	cfg := trainer.Config{
		Architecture: arch,
		LearningRate: *learningRate,
		Epochs:       *epochs,
		Seed:         *seed,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Println("Configuration:")
	fmt.Printf("  Architecture:  %v\n", cfg.Architecture)
	fmt.Printf("  Epochs:        %d\n", cfg.Epochs)
	fmt.Printf("  Learning Rate: %.4f\n", cfg.LearningRate)
	fmt.Printf("  Seed:          %d\n", cfg.Seed)

	trainRecords, err := dataset.Load(*trainPath)
	if err != nil {
		return err
	}
	testRecords, err := dataset.Load(*testPath)
	if err != nil {
		return err
	}

	inputSize := cfg.Architecture[0]
	classes := cfg.Architecture[len(cfg.Architecture)-1]

	stats := dataset.Stats(trainRecords)
	fmt.Printf("\nTotal records: %d\n", stats.Records)
	fmt.Printf("Pixels per image: %d\n", stats.PixelsPerRecord)
	fmt.Println("Label distribution:")
	for label := 0; label < classes; label++ {
		fmt.Printf("  %d: %d\n", label, stats.LabelCounts[label])
	}

	for i := 0; i < *preview && i < len(trainRecords); i++ {
		art, err := dataset.RenderImage(trainRecords[i], *imageWidth)
		if err != nil {
			return err
		}
		fmt.Println(art)
	}

	trainSamples, err := dataset.Samples(trainRecords, inputSize, classes)
	if err != nil {
		return err
	}
	testSamples, err := dataset.Samples(testRecords, inputSize, classes)
	if err != nil {
		return err
	}

	net, err := network.New(cfg.Architecture,
		network.WithLearningRate(cfg.LearningRate),
		network.WithRand(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}

	fmt.Println("\nStarting training...")
	timing, err := trainer.Fit(net, trainSamples, cfg.Epochs, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("Training complete! Total time: %.2fs\n", timing.TotalTime.Seconds())
	if *verbose {
		trainer.PrintTimingStats(os.Stdout, timing)
	}

	accuracy, err := trainer.Evaluate(net, testSamples)
	if err != nil {
		return err
	}
	fmt.Printf("\nAccuracy: %.2f%%\n", accuracy)

	return nil
}
