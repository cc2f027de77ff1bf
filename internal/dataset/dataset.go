// Package dataset provides small two-dimensional datasets for exercising
// scalar networks.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
)

// Dataset holds feature rows and one label per row.
type Dataset struct {
	X [][]float64 // [num_samples, num_features]
	Y []float64   // [num_samples]
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Y)
}

// Features returns the width of each row, or 0 for an empty dataset.
func (d *Dataset) Features() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// Batch returns a random batch of size n drawn without replacement. If n
// is 0 or not smaller than the dataset, the whole dataset is returned in
// order.
func (d *Dataset) Batch(n int, rng *rand.Rand) *Dataset {
	if n <= 0 || n >= d.Len() {
		return d
	}
	idx := rng.Perm(d.Len())[:n]
	out := &Dataset{X: make([][]float64, n), Y: make([]float64, n)}
	for i, j := range idx {
		out.X[i] = d.X[j]
		out.Y[i] = d.Y[j]
	}
	return out
}

// Shuffle permutes the samples in place.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	rng.Shuffle(d.Len(), func(i, j int) {
		d.X[i], d.X[j] = d.X[j], d.X[i]
		d.Y[i], d.Y[j] = d.Y[j], d.Y[i]
	})
}

// Split splits the dataset into train and validation sets.
//
// validationRatio is the fraction of samples (from the end) used for
// validation, e.g. 0.2 for 20%, clamped to [0, 1]. The halves share backing
// arrays with d.
func (d *Dataset) Split(validationRatio float64) (*Dataset, *Dataset) {
	validationRatio = min(max(validationRatio, 0), 1)
	splitIdx := int(float64(d.Len()) * (1.0 - validationRatio))

	return &Dataset{
			X: d.X[:splitIdx],
			Y: d.Y[:splitIdx],
		}, &Dataset{
			X: d.X[splitIdx:],
			Y: d.Y[splitIdx:],
		}
}

// Moons generates two interleaving half circles labelled -1 and +1, with
// Gaussian noise of the given standard deviation.
func Moons(n int, noise float64, rng *rand.Rand) *Dataset {
	d := &Dataset{X: make([][]float64, n), Y: make([]float64, n)}
	outer := n / 2
	for i := 0; i < n; i++ {
		var x, y, label float64
		if i < outer {
			theta := math.Pi * float64(i) / float64(max(outer-1, 1))
			x, y, label = math.Cos(theta), math.Sin(theta), -1
		} else {
			k := i - outer
			theta := math.Pi * float64(k) / float64(max(n-outer-1, 1))
			x, y, label = 1-math.Cos(theta), 0.5-math.Sin(theta), 1
		}
		d.X[i] = []float64{x + noise*rng.NormFloat64(), y + noise*rng.NormFloat64()}
		d.Y[i] = label
	}
	return d
}

// XOR generates points in [-1, 1]² labelled +1 when exactly one coordinate
// is positive.
func XOR(n int, rng *rand.Rand) *Dataset {
	d := &Dataset{X: make([][]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		x, y := rng.Float64()*2-1, rng.Float64()*2-1
		label := -1.0
		if (x > 0) != (y > 0) {
			label = 1
		}
		d.X[i] = []float64{x, y}
		d.Y[i] = label
	}
	return d
}

// Circles generates an inner disc (+1) surrounded by a ring (-1).
func Circles(n int, noise float64, rng *rand.Rand) *Dataset {
	d := &Dataset{X: make([][]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		theta := rng.Float64() * 2 * math.Pi
		r, label := 1.0, -1.0
		if i%2 == 0 {
			r, label = 0.4, 1
		}
		d.X[i] = []float64{
			r*math.Cos(theta) + noise*rng.NormFloat64(),
			r*math.Sin(theta) + noise*rng.NormFloat64(),
		}
		d.Y[i] = label
	}
	return d
}

// Generate builds a named synthetic dataset ("moons", "xor" or "circles").
func Generate(name string, n int, noise float64, rng *rand.Rand) (*Dataset, error) {
	switch name {
	case "moons":
		return Moons(n, noise, rng), nil
	case "xor":
		return XOR(n, rng), nil
	case "circles":
		return Circles(n, noise, rng), nil
	default:
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
}

// LoadCSV loads a dataset from a CSV file.
//
// CSV Format:
//
//	label,x0,x1,...
//	1,0.25,-0.5
//	-1,1.5,0.75
//
// The first row is a header and is skipped. Every row must have the same
// number of columns. maxSamples limits the rows read (0 = load all).
func LoadCSV(filename string, maxSamples int) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, maxSamples)
}

// ReadCSV parses the format described by LoadCSV.
func ReadCSV(r io.Reader, maxSamples int) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, errors.New("CSV file is empty or missing header")
	}

	// Skip header row
	records = records[1:]
	if maxSamples > 0 && len(records) > maxSamples {
		records = records[:maxSamples]
	}

	width := len(records[0])
	if width < 2 {
		return nil, fmt.Errorf("need a label and at least one feature, got %d columns", width)
	}

	d := &Dataset{X: make([][]float64, len(records)), Y: make([]float64, len(records))}
	for i, record := range records {
		if len(record) != width {
			return nil, fmt.Errorf("invalid record length at row %d: got %d, want %d", i+1, len(record), width)
		}

		label, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid label at row %d: %w", i+1, err)
		}
		d.Y[i] = label

		d.X[i] = make([]float64, width-1)
		for j := 1; j < width; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value at row %d, column %d: %w", i+1, j, err)
			}
			d.X[i][j-1] = v
		}
	}

	return d, nil
}
