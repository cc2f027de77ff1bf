package train

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradeng/internal/config"
	"github.com/born-ml/gradeng/internal/dataset"
)

func TestTrainer_Moons(t *testing.T) {
	cfg := config.Default()
	cfg.Dataset.Samples = 60
	cfg.Train.Epochs = 60
	data := dataset.Moons(cfg.Dataset.Samples, cfg.Dataset.Noise, rand.New(rand.NewSource(cfg.Seed)))

	tr, err := NewTrainer(cfg, data)
	require.NoError(t, err)

	first, err := tr.Step(0)
	require.NoError(t, err)
	last, err := tr.Run(context.Background(), 0)
	require.NoError(t, err)

	assert.Less(t, last.Loss, first.Loss)
	assert.GreaterOrEqual(t, last.Accuracy, 0.8)
	assert.Positive(t, last.Nodes)
	assert.Equal(t, cfg.Train.Epochs-1, last.Epoch)
}

func TestTrainer_AdamMSE(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Hidden = []int{8}
	cfg.Model.Activation = "tanh"
	cfg.Train.Optimizer = "adam"
	cfg.Train.Loss = "mse"
	cfg.Train.LR = 0.05
	cfg.Train.LRDecay = false
	cfg.Train.L2 = 0
	cfg.Train.Epochs = 300
	data := &dataset.Dataset{
		X: [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		Y: []float64{-1, 1, 1, -1},
	}

	tr, err := NewTrainer(cfg, data)
	require.NoError(t, err)
	last, err := tr.Run(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 1.0, last.Accuracy)
	assert.Equal(t, 0.05, last.LR)
	assert.Greater(t, tr.Predict([]float64{0, 1}), 0.0)
	assert.Less(t, tr.Predict([]float64{1, 1}), 0.0)
}

func TestTrainer_Cancelled(t *testing.T) {
	cfg := config.Default()
	data := dataset.XOR(10, rand.New(rand.NewSource(1)))
	tr, err := NewTrainer(cfg, data)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tr.Run(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrainer_Errors(t *testing.T) {
	cfg := config.Default()
	_, err := NewTrainer(cfg, &dataset.Dataset{})
	assert.Error(t, err)

	cfg.Train.Optimizer = "lbfgs"
	_, err = NewTrainer(cfg, dataset.XOR(4, rand.New(rand.NewSource(1))))
	assert.Error(t, err)
}

func TestTrainer_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Train.Epochs = 0
	_, err := NewTrainer(cfg, dataset.XOR(4, rand.New(rand.NewSource(1))))
	assert.ErrorContains(t, err, "train.epochs must be positive")
}

func TestTrainer_LRDecay(t *testing.T) {
	cfg := config.Default()
	cfg.Train.Epochs = 10
	tr, err := NewTrainer(cfg, dataset.XOR(8, rand.New(rand.NewSource(2))))
	require.NoError(t, err)

	m, err := tr.Step(5)
	require.NoError(t, err)
	assert.InDelta(t, 0.55, m.LR, 1e-12)
}
