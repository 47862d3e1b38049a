package dataset

import (
	"fmt"
	"strings"
)

// RenderImage draws a record's pixels as ASCII art, width pixels per row:
// '#' for intensities above 127, '.' above 64, blank otherwise. The pixel
// count must be a multiple of width.
func RenderImage(rec Record, width int) (string, error) {
	if width < 1 || len(rec.Pixels)%width != 0 {
		return "", fmt.Errorf("dataset: cannot render %d pixels at width %d", len(rec.Pixels), width)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Label: %d\n", rec.Label)
	height := len(rec.Pixels) / width
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			switch p := rec.Pixels[i*width+j]; {
			case p > 127:
				b.WriteString("# ")
			case p > 64:
				b.WriteString(". ")
			default:
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
