package regularizer

import (
	"fmt"

	"github.com/decay-ml/decay/internal/tensor"
)

// powerIterations is the fixed multiplication budget of the power
// method. There is no convergence check; the budget matches the
// Eigenvalue Decay paper's reference implementation.
const powerIterations = 9

// Eigenvalue implements Eigenvalue Decay: a penalty proportional to the
// square root of the dominant eigenvalue of WᵗW, i.e. an estimate of
// the largest singular value of the weight matrix W, scaled by a gain
// k. Penalizing it encourages better-conditioned weight matrices.
//
// The dominant eigenvalue is estimated by power iteration followed by a
// Rayleigh quotient. Only rank-1 and rank-2 weights are supported
// (dense and embedding layers, not convolutional kernels).
type Eigenvalue[B tensor.Backend] struct {
	k     float32
	param *tensor.Tensor[float32, B]
}

// NewEigenvalue creates an eigenvalue-decay regularizer with
// regularization gain k.
func NewEigenvalue[B tensor.Backend](k float64) *Eigenvalue[B] {
	return &Eigenvalue[B]{k: float32(k)}
}

// K returns the regularization gain.
func (e *Eigenvalue[B]) K() float64 { return float64(e.k) }

// BindParam binds the regularizer to a parameter tensor.
// A second call fails with ErrAlreadyBound.
func (e *Eigenvalue[B]) BindParam(p *tensor.Tensor[float32, B]) error {
	if e.param != nil {
		return fmt.Errorf("eigenvalue decay: %w", ErrAlreadyBound)
	}
	e.param = p
	return nil
}

// Apply adds sqrt(dominant eigenvalue of WᵗW) * k to the loss.
// Evaluation-phase calls return the loss unchanged.
//
// Fails with ErrUnsupportedRank if the bound tensor has more than two
// dimensions.
func (e *Eigenvalue[B]) Apply(loss *tensor.Tensor[float32, B], phase Phase) (*tensor.Tensor[float32, B], error) {
	if e.param == nil {
		return nil, fmt.Errorf("eigenvalue decay: %w (call BindParam before Apply)", ErrUnbound)
	}
	if e.param.NDim() > 2 {
		return nil, fmt.Errorf("eigenvalue decay: %w, got rank %d", ErrUnsupportedRank, e.param.NDim())
	}
	if phase != Training {
		return loss, nil
	}

	w := e.param
	if w.NDim() < 2 {
		// A vector is treated as a single-column matrix.
		w = w.Reshape(w.NumElements(), 1)
	}

	// WW = Wᵗ·W, square of size dim × dim.
	ww := w.T().MatMul(w)
	dim := ww.Shape()[0]

	// Power method: start from the all-ones vector and apply WW a fixed
	// number of times to approach the dominant eigenvector.
	v := tensor.Ones[float32](tensor.Shape{dim, 1}, loss.Backend())
	for i := 0; i < powerIterations; i++ {
		v = ww.MatMul(v)
	}

	// Rayleigh quotient: λ = (WW·v)ᵗ·v / vᵗ·v.
	wv := ww.MatMul(v)
	den := v.T().MatMul(v).Item()
	if den == 0 {
		// Degenerate case (W is the zero matrix): 0/0 is defined as a
		// zero penalty rather than NaN.
		return loss, nil
	}
	lambda := wv.T().MatMul(v).MulScalar(1 / den)
	if lambda.Item() <= 0 {
		// WW is positive semi-definite; anything below zero is rounding
		// noise around a zero eigenvalue.
		return loss, nil
	}

	penalty := lambda.Sqrt().MulScalar(e.k).Item()
	return loss.AddScalar(penalty), nil
}

// Describe returns the configuration summary.
// The gain k is not serialized (matches the reference implementation).
func (e *Eigenvalue[B]) Describe() Config {
	return Config{Name: "EigenvalueRegularizer"}
}
