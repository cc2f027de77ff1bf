package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/gradeng/internal/autodiff"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
func MSELoss(predictions []autodiff.Value, targets []float64) (autodiff.Value, error) {
	if err := checkBatch(len(predictions), len(targets)); err != nil {
		return autodiff.Value{}, fmt.Errorf("mse loss: %w", err)
	}
	g := predictions[0].Graph()
	terms := make([]autodiff.Value, len(predictions))
	for i, p := range predictions {
		diff := p.SubConst(targets[i])
		terms[i] = diff.Mul(diff)
	}
	return g.Sum(terms...).DivConst(float64(len(terms)))
}

// HingeLoss computes the max-margin loss mean(relu(1 - y*score)) for labels
// in {-1, +1}.
func HingeLoss(scores []autodiff.Value, labels []float64) (autodiff.Value, error) {
	if err := checkBatch(len(scores), len(labels)); err != nil {
		return autodiff.Value{}, fmt.Errorf("hinge loss: %w", err)
	}
	g := scores[0].Graph()
	terms := make([]autodiff.Value, len(scores))
	for i, s := range scores {
		terms[i] = autodiff.RSub(1, s.MulConst(labels[i])).ReLU()
	}
	return g.Sum(terms...).DivConst(float64(len(terms)))
}

// CrossEntropyLoss computes -log(softmax(logits)[target]).
func CrossEntropyLoss(logits []autodiff.Value, target int) (autodiff.Value, error) {
	if target < 0 || target >= len(logits) {
		return autodiff.Value{}, fmt.Errorf("cross entropy loss: target %d out of range [0, %d)", target, len(logits))
	}
	probs, err := autodiff.Softmax(logits)
	if err != nil {
		return autodiff.Value{}, fmt.Errorf("cross entropy loss: %w", err)
	}
	logp, err := probs[target].Log()
	if err != nil {
		return autodiff.Value{}, fmt.Errorf("cross entropy loss: %w", err)
	}
	return logp.Neg(), nil
}

// L2Penalty returns alpha * sum(p²) over the bound parameters.
func L2Penalty(g *autodiff.Graph, params []*Parameter, alpha float64) autodiff.Value {
	terms := make([]autodiff.Value, len(params))
	for i, p := range params {
		v := p.Value()
		terms[i] = v.Mul(v)
	}
	return g.Sum(terms...).MulConst(alpha)
}

func checkBatch(predictions, targets int) error {
	if predictions == 0 {
		return errors.New("empty batch")
	}
	if predictions != targets {
		return fmt.Errorf("%d predictions but %d targets", predictions, targets)
	}
	return nil
}
