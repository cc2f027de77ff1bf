// Package train runs the forward, loss, backward and step cycle for an MLP
// built from scalar autodiff values.
package train

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/born-ml/gradeng/internal/autodiff"
	"github.com/born-ml/gradeng/internal/config"
	"github.com/born-ml/gradeng/internal/ctxlog"
	"github.com/born-ml/gradeng/internal/dataset"
	"github.com/born-ml/gradeng/internal/nn"
	"github.com/born-ml/gradeng/internal/optim"
)

// Metrics summarises one training step.
type Metrics struct {
	Epoch    int
	Loss     float64
	Accuracy float64 // Fraction of samples whose score has the label's sign
	LR       float64
	Nodes    int // Size of the graph built for the step
}

// Trainer owns the model, optimizer and data of one run.
type Trainer struct {
	cfg   config.TrainConfig
	model *nn.MLP
	opt   optim.Optimizer
	data  *dataset.Dataset
	rng   *rand.Rand
}

// NewTrainer builds the model and optimizer described by cfg.
func NewTrainer(cfg config.Config, data *dataset.Dataset) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	if data.Len() == 0 {
		return nil, errors.New("train: empty dataset")
	}
	act, err := nn.ParseActivation(cfg.Model.Activation)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	//nolint:gosec // Reproducible runs, not security-critical
	rng := rand.New(rand.NewSource(cfg.Seed))
	sizes := append(append([]int(nil), cfg.Model.Hidden...), 1)
	model := nn.NewMLP(data.Features(), sizes, act, rng)

	var opt optim.Optimizer
	switch cfg.Train.Optimizer {
	case "sgd":
		opt = optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.Train.LR, Momentum: cfg.Train.Momentum})
	case "adam":
		opt = optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: cfg.Train.LR})
	default:
		return nil, fmt.Errorf("train: unknown optimizer %q", cfg.Train.Optimizer)
	}

	return &Trainer{
		cfg:   cfg.Train,
		model: model,
		opt:   opt,
		data:  data,
		rng:   rng,
	}, nil
}

// Model returns the network being trained.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Step runs one optimisation step for the given epoch.
func (t *Trainer) Step(epoch int) (Metrics, error) {
	if t.cfg.LRDecay {
		t.opt.SetLR(t.cfg.LR * (1.0 - 0.9*float64(epoch)/float64(t.cfg.Epochs)))
	}

	batch := t.data.Batch(t.cfg.BatchSize, t.rng)
	g := autodiff.NewGraph()
	nn.Bind(g, t.model)

	scores := make([]autodiff.Value, batch.Len())
	correct := 0
	for i, row := range batch.X {
		x := make([]autodiff.Value, len(row))
		for j, v := range row {
			x[j] = g.Leaf(v)
		}
		scores[i] = t.model.Forward(x)[0]
		if (scores[i].Data() > 0) == (batch.Y[i] > 0) {
			correct++
		}
	}

	loss, err := t.loss(g, scores, batch.Y)
	if err != nil {
		return Metrics{}, fmt.Errorf("train: epoch %d: %w", epoch, err)
	}

	loss.Backward()
	nn.CollectGrads(t.model)
	t.opt.Step()
	t.opt.ZeroGrad()

	return Metrics{
		Epoch:    epoch,
		Loss:     loss.Data(),
		Accuracy: float64(correct) / float64(batch.Len()),
		LR:       t.opt.GetLR(),
		Nodes:    g.Len(),
	}, nil
}

func (t *Trainer) loss(g *autodiff.Graph, scores []autodiff.Value, labels []float64) (autodiff.Value, error) {
	var (
		data autodiff.Value
		err  error
	)
	switch t.cfg.Loss {
	case "hinge":
		data, err = nn.HingeLoss(scores, labels)
	case "mse":
		data, err = nn.MSELoss(scores, labels)
	default:
		err = fmt.Errorf("unknown loss %q", t.cfg.Loss)
	}
	if err != nil {
		return autodiff.Value{}, err
	}
	if t.cfg.L2 == 0 {
		return data, nil
	}
	return data.Add(nn.L2Penalty(g, t.model.Parameters(), t.cfg.L2)), nil
}

// Run trains for the configured number of epochs and returns the metrics
// of the last step. It stops early when ctx is cancelled.
func (t *Trainer) Run(ctx context.Context, logEvery int) (Metrics, error) {
	log := ctxlog.FromContext(ctx)
	log.Info("training started",
		"parameters", nn.NumParameters(t.model),
		"samples", t.data.Len(),
		"epochs", t.cfg.Epochs,
	)

	var last Metrics
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}
		m, err := t.Step(epoch)
		if err != nil {
			return last, err
		}
		last = m
		if logEvery > 0 && (epoch%logEvery == 0 || epoch == t.cfg.Epochs-1) {
			log.Info("step",
				"epoch", m.Epoch,
				"loss", m.Loss,
				"accuracy", m.Accuracy,
				"lr", m.LR,
			)
		}
		log.Debug("graph", "epoch", m.Epoch, "nodes", m.Nodes)
	}
	return last, nil
}

// Predict returns the model score for one input row.
func (t *Trainer) Predict(row []float64) float64 {
	g := autodiff.NewGraph()
	nn.Bind(g, t.model)
	x := make([]autodiff.Value, len(row))
	for i, v := range row {
		x[i] = g.Leaf(v)
	}
	return t.model.Forward(x)[0].Data()
}
