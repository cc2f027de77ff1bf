package dataset

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoons(t *testing.T) {
	d := Moons(100, 0, rand.New(rand.NewSource(1)))

	require.Equal(t, 100, d.Len())
	assert.Equal(t, 2, d.Features())

	var pos, neg int
	for _, y := range d.Y {
		switch y {
		case 1:
			pos++
		case -1:
			neg++
		}
	}
	assert.Equal(t, 50, pos)
	assert.Equal(t, 50, neg)

	// Without noise the first sample sits at (1, 0).
	assert.InDelta(t, 1.0, d.X[0][0], 1e-12)
	assert.InDelta(t, 0.0, d.X[0][1], 1e-12)
}

func TestXOR(t *testing.T) {
	d := XOR(200, rand.New(rand.NewSource(2)))
	for i, x := range d.X {
		want := -1.0
		if (x[0] > 0) != (x[1] > 0) {
			want = 1
		}
		assert.Equal(t, want, d.Y[i])
	}
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, name := range []string{"moons", "xor", "circles"} {
		d, err := Generate(name, 10, 0.1, rng)
		require.NoError(t, err, name)
		assert.Equal(t, 10, d.Len())
	}

	_, err := Generate("spirals", 10, 0, rng)
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	d := Circles(20, 0, rng)

	b := d.Batch(5, rng)
	assert.Equal(t, 5, b.Len())
	assert.Same(t, d, d.Batch(0, rng))
	assert.Same(t, d, d.Batch(50, rng))
}

func TestReadCSV(t *testing.T) {
	in := "label,x0,x1\n1,0.25,-0.5\n-1,1.5,0.75\n1,2,2\n"

	d, err := ReadCSV(strings.NewReader(in), 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1}, d.Y)
	assert.Equal(t, [][]float64{{0.25, -0.5}, {1.5, 0.75}}, d.X)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":     "",
		"header":    "label,x0\n",
		"narrow":    "label\n1\n",
		"bad_label": "label,x0\nyes,1\n",
		"bad_value": "label,x0\n1,one\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(in), 0)
			assert.Error(t, err)
		})
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("label,a,b\n1,1,2\n"), 0o600))

	d, err := LoadCSV(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), 0)
	assert.Error(t, err)
}

func TestShuffleAndSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	d := Moons(10, 0, rng)
	d.Shuffle(rng)

	for i, x := range d.X {
		// Labels travel with their rows: the upper moon (-1) never dips below y = 0.
		if d.Y[i] == -1 {
			assert.GreaterOrEqual(t, x[1], -1e-12)
		}
	}

	train, val := d.Split(0.2)
	assert.Equal(t, 8, train.Len())
	assert.Equal(t, 2, val.Len())
}

func TestSplit_RatioIsClamped(t *testing.T) {
	d := XOR(10, rand.New(rand.NewSource(6)))

	train, val := d.Split(-0.5)
	assert.Equal(t, 10, train.Len())
	assert.Zero(t, val.Len())

	train, val = d.Split(1.5)
	assert.Zero(t, train.Len())
	assert.Equal(t, 10, val.Len())
}
