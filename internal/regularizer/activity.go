package regularizer

import (
	"fmt"

	"github.com/decay-ml/decay/internal/tensor"
)

// Activity penalizes the magnitude of a layer's output tensors:
//
//	penalty = sum over outputs of (l1 * sum(|out|) + l2 * sum(out²))
//
// A layer invoked at multiple call sites contributes one output per
// invocation; all of them are accumulated. Terms with a zero
// coefficient are skipped.
type Activity[B tensor.Backend] struct {
	l1    float32
	l2    float32
	layer Layer[B]
}

// NewActivity creates an activity regularizer with the given L1 and L2
// coefficients. Coefficients are expected to be non-negative.
func NewActivity[B tensor.Backend](l1, l2 float64) *Activity[B] {
	return &Activity[B]{
		l1: float32(l1),
		l2: float32(l2),
	}
}

// L1 returns the L1 coefficient.
func (a *Activity[B]) L1() float64 { return float64(a.l1) }

// L2 returns the L2 coefficient.
func (a *Activity[B]) L2() float64 { return float64(a.l2) }

// BindLayer binds the regularizer to a layer.
// A second call fails with ErrAlreadyBound.
func (a *Activity[B]) BindLayer(layer Layer[B]) error {
	if a.layer != nil {
		return fmt.Errorf("activity regularizer: %w", ErrAlreadyBound)
	}
	a.layer = layer
	return nil
}

// Apply adds the L1/L2 penalty of every recorded layer output to the
// loss. Evaluation-phase calls return the loss unchanged.
func (a *Activity[B]) Apply(loss *tensor.Tensor[float32, B], phase Phase) (*tensor.Tensor[float32, B], error) {
	if a.layer == nil {
		return nil, fmt.Errorf("activity regularizer: %w (call BindLayer before Apply)", ErrUnbound)
	}
	if phase != Training {
		return loss, nil
	}

	var penalty float32
	for i := 0; i < a.layer.OutputCount(); i++ {
		output := a.layer.OutputAt(i)
		if a.l1 != 0 {
			penalty += output.Abs().MulScalar(a.l1).Sum().Item()
		}
		if a.l2 != 0 {
			penalty += output.Square().MulScalar(a.l2).Sum().Item()
		}
	}

	return loss.AddScalar(penalty), nil
}

// Describe returns the configuration summary.
func (a *Activity[B]) Describe() Config {
	return Config{
		Name: "ActivityRegularizer",
		L1:   float64(a.l1),
		L2:   float64(a.l2),
	}
}
