package regularizer

import (
	"fmt"

	"github.com/decay-ml/decay/internal/tensor"
)

// Weight penalizes the magnitude of a parameter tensor:
//
//	penalty = l1 * sum(|W|) + l2 * sum(W²)
//
// A term is skipped entirely when its coefficient is zero.
type Weight[B tensor.Backend] struct {
	l1    float32
	l2    float32
	param *tensor.Tensor[float32, B]
}

// NewWeight creates a weight regularizer with the given L1 and L2
// coefficients. Coefficients are expected to be non-negative.
func NewWeight[B tensor.Backend](l1, l2 float64) *Weight[B] {
	return &Weight[B]{
		l1: float32(l1),
		l2: float32(l2),
	}
}

// L1 returns the L1 coefficient.
func (w *Weight[B]) L1() float64 { return float64(w.l1) }

// L2 returns the L2 coefficient.
func (w *Weight[B]) L2() float64 { return float64(w.l2) }

// BindParam binds the regularizer to a parameter tensor.
// A second call fails with ErrAlreadyBound.
func (w *Weight[B]) BindParam(p *tensor.Tensor[float32, B]) error {
	if w.param != nil {
		return fmt.Errorf("weight regularizer: %w", ErrAlreadyBound)
	}
	w.param = p
	return nil
}

// Apply adds the L1/L2 penalty of the bound parameter to the loss.
// Evaluation-phase calls return the loss unchanged.
func (w *Weight[B]) Apply(loss *tensor.Tensor[float32, B], phase Phase) (*tensor.Tensor[float32, B], error) {
	if w.param == nil {
		return nil, fmt.Errorf("weight regularizer: %w (call BindParam before Apply; "+
			"check that a weight regularizer was not used where an activity regularizer was expected)", ErrUnbound)
	}
	if phase != Training {
		return loss, nil
	}

	var penalty float32
	if w.l1 != 0 {
		penalty += w.param.Abs().MulScalar(w.l1).Sum().Item()
	}
	if w.l2 != 0 {
		penalty += w.param.Square().MulScalar(w.l2).Sum().Item()
	}

	return loss.AddScalar(penalty), nil
}

// Describe returns the configuration summary.
func (w *Weight[B]) Describe() Config {
	return Config{
		Name: "WeightRegularizer",
		L1:   float64(w.l1),
		L2:   float64(w.l2),
	}
}
