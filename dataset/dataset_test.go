package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mlpkit/dataset"
	"mlpkit/matrix"
)

const sampleCSV = `label,p1,p2,p3,p4
7,0,128,255,64
2,10,20,30,40
`

func TestReadSkipsHeader(t *testing.T) {
	records, err := dataset.Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, 7, records[0].Label)
	require.Equal(t, []float64{0, 128, 255, 64}, records[0].Pixels)
	require.Equal(t, 2, records[1].Label)
	require.Equal(t, []float64{10, 20, 30, 40}, records[1].Pixels)
}

func TestReadWithoutHeader(t *testing.T) {
	records, err := dataset.Read(strings.NewReader("1,5,6\n0,7,8\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 1, records[0].Label)
}

func TestReadReportsLineNumber(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("1,5,6\n0,bad,8\n"))
	require.Error(t, err)

	var lineErr *dataset.LineError
	require.ErrorAs(t, err, &lineErr)
	require.Equal(t, 2, lineErr.Line)
}

func TestReadRejectsNonNumericLabelAfterFirstLine(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("1,5,6\nx,7,8\n"))
	var lineErr *dataset.LineError
	require.ErrorAs(t, err, &lineErr)
	require.Equal(t, 2, lineErr.Line)
}

func TestReadEmpty(t *testing.T) {
	_, err := dataset.Read(strings.NewReader(""))
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)

	_, err = dataset.Read(strings.NewReader("label,p1,p2\n"))
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

func TestVectors(t *testing.T) {
	rec := dataset.Record{Label: 2, Pixels: []float64{0, 51, 255}}

	input, target, err := dataset.Vectors(rec, 3, 4)
	require.NoError(t, err)

	col, err := input.Col(0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0.2, 1.0}, col, 1e-12)

	require.Equal(t, 4, target.Rows())
	require.Equal(t, 1, target.Cols())
	tcol, err := target.Col(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1, 0}, tcol)
}

func TestVectorsSizeMismatch(t *testing.T) {
	rec := dataset.Record{Label: 0, Pixels: []float64{1, 2, 3}}
	_, _, err := dataset.Vectors(rec, 4, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVectorsLabelOutOfRange(t *testing.T) {
	rec := dataset.Record{Label: 5, Pixels: []float64{1, 2}}
	_, _, err := dataset.Vectors(rec, 2, 3)
	require.Error(t, err)
}

func TestSamples(t *testing.T) {
	records, err := dataset.Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	samples, err := dataset.Samples(records, 4, 10)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	require.Equal(t, 7, samples[0].Label)
	require.Equal(t, 4, samples[0].Input.Rows())
	require.Equal(t, 10, samples[0].Target.Rows())
}

func TestStats(t *testing.T) {
	records := []dataset.Record{
		{Label: 1, Pixels: []float64{1, 2}},
		{Label: 1, Pixels: []float64{3, 4}},
		{Label: 0, Pixels: []float64{5, 6}},
	}

	s := dataset.Stats(records)
	require.Equal(t, 3, s.Records)
	require.Equal(t, 2, s.PixelsPerRecord)
	require.Equal(t, 2, s.LabelCounts[1])
	require.Equal(t, 1, s.LabelCounts[0])
}

func TestRenderImage(t *testing.T) {
	rec := dataset.Record{Label: 3, Pixels: []float64{
		200, 100,
		30, 255,
	}}

	art, err := dataset.RenderImage(rec, 2)
	require.NoError(t, err)
	require.Equal(t, "Label: 3\n# . \n  # \n", art)
}

func TestRenderImageBadWidth(t *testing.T) {
	rec := dataset.Record{Label: 0, Pixels: []float64{1, 2, 3}}
	_, err := dataset.RenderImage(rec, 2)
	require.Error(t, err)

	_, err = dataset.RenderImage(rec, 0)
	require.Error(t, err)
}
