// Package dataset loads labeled image data from delimited text files and
// converts records into the normalized column vectors the network consumes.
//
// The expected format is one record per line: an integer class label first,
// followed by pixel intensities in 0..255. A leading header line is skipped
// automatically.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"mlpkit/matrix"
)

// ErrEmptyDataset indicates a file or reader with no data records.
var ErrEmptyDataset = errors.New("dataset: no records")

// Record is one labeled image: a class label and raw pixel intensities.
type Record struct {
	Label  int
	Pixels []float64
}

// Sample is a record converted into network inputs: a normalized pixel
// column vector and a one-hot target column vector.
type Sample struct {
	Input  *matrix.Dense
	Target *matrix.Dense
	Label  int
}

// LineError reports a malformed record with its 1-based line number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Load reads all records from a delimited text file.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: reading %s: %w", path, err)
	}
	return records, nil
}

// Read parses comma-separated records from r. If the first line does not
// start with an integer label it is treated as a header and skipped. Every
// record must carry the same number of fields as the first data record.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(bufio.NewReader(r))

	var records []Record
	line := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		line++

		label, err := strconv.Atoi(fields[0])
		if err != nil {
			if line == 1 {
				// Header line.
				continue
			}
			return nil, &LineError{Line: line, Err: fmt.Errorf("label %q: %w", fields[0], err)}
		}

		pixels := make([]float64, len(fields)-1)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &LineError{Line: line, Err: fmt.Errorf("pixel %d: %w", i, err)}
			}
			pixels[i] = v
		}
		records = append(records, Record{Label: label, Pixels: pixels})
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	return records, nil
}

// Vectors converts one record into an inputSize×1 input vector with pixel
// values normalized into [0,1] (pixel/255) and a classes×1 one-hot target.
func Vectors(rec Record, inputSize, classes int) (input, target *matrix.Dense, err error) {
	if len(rec.Pixels) != inputSize {
		return nil, nil, fmt.Errorf("dataset: record has %d pixels, want %d: %w",
			len(rec.Pixels), inputSize, matrix.ErrDimensionMismatch)
	}
	if rec.Label < 0 || rec.Label >= classes {
		return nil, nil, fmt.Errorf("dataset: label %d outside [0,%d)", rec.Label, classes)
	}

	normalized := make([]float64, len(rec.Pixels))
	for i, p := range rec.Pixels {
		normalized[i] = p / 255.0
	}
	input, err = matrix.FromColumn(normalized)
	if err != nil {
		return nil, nil, err
	}

	target, err = matrix.New(classes, 1)
	if err != nil {
		return nil, nil, err
	}
	if err := target.Set(rec.Label, 0, 1.0); err != nil {
		return nil, nil, err
	}
	return input, target, nil
}

// Samples converts all records via Vectors, preserving order.
func Samples(records []Record, inputSize, classes int) ([]Sample, error) {
	samples := make([]Sample, len(records))
	for i, rec := range records {
		input, target, err := Vectors(rec, inputSize, classes)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		samples[i] = Sample{Input: input, Target: target, Label: rec.Label}
	}
	return samples, nil
}

// Summary describes a loaded dataset.
type Summary struct {
	Records         int
	PixelsPerRecord int
	LabelCounts     map[int]int
}

// Stats summarizes record count, pixels per record, and label distribution.
func Stats(records []Record) Summary {
	s := Summary{Records: len(records), LabelCounts: make(map[int]int)}
	if len(records) > 0 {
		s.PixelsPerRecord = len(records[0].Pixels)
	}
	for _, rec := range records {
		s.LabelCounts[rec.Label]++
	}
	return s
}
