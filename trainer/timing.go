package trainer

import (
	"fmt"
	"io"
	"time"
)

// TimingStats accumulates wall-clock durations for one training run.
type TimingStats struct {
	TotalTime time.Duration
	TrainTime time.Duration
	LossTime  time.Duration
	Steps     int
}

// PrintTimingStats writes a breakdown of where training time went.
func PrintTimingStats(w io.Writer, stats *TimingStats) {
	if stats.Steps == 0 || stats.TotalTime == 0 {
		fmt.Fprintln(w, "no timing data collected")
		return
	}
	fmt.Fprintln(w, "=== TIMING STATISTICS ===")
	fmt.Fprintf(w, "Total training time: %v\n", stats.TotalTime)
	fmt.Fprintf(w, "Steps completed: %d\n", stats.Steps)
	fmt.Fprintf(w, "Average time per step: %v\n", stats.TotalTime/time.Duration(stats.Steps))
	fmt.Fprintf(w, "  Gradient steps: %v (%.1f%%)\n",
		stats.TrainTime, float64(stats.TrainTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(w, "  Loss evaluation: %v (%.1f%%)\n",
		stats.LossTime, float64(stats.LossTime)/float64(stats.TotalTime)*100)
}
