// Package regularizer implements loss regularization penalties for the
// Decay toolkit.
//
// A regularizer is a stateful object bound to exactly one target (a
// parameter tensor or a layer) that transforms a scalar loss into a
// penalized scalar loss:
//
//	reg := regularizer.NewWeight[Backend](0.01, 0)
//	reg.BindParam(layer.Weight().Tensor())
//	loss, err := reg.Apply(loss, regularizer.Training)
//
// Binding is single-use: a second bind fails with ErrAlreadyBound, so a
// regularizer instance can never silently alias parameters across
// layers. Apply before bind fails with ErrUnbound. Apply never mutates
// the regularizer, and the penalty is added only during the training
// phase; evaluation-phase calls return the loss unchanged.
package regularizer

import "github.com/decay-ml/decay/internal/tensor"

// Phase distinguishes the loss used for gradient updates (training,
// penalized) from the loss used for monitoring and validation
// (evaluation, unpenalized).
type Phase int

// Supported phases.
const (
	Training Phase = iota
	Evaluation
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case Training:
		return "training"
	case Evaluation:
		return "evaluation"
	default:
		return "unknown"
	}
}

// Regularizer transforms a scalar loss into a penalized scalar loss.
//
// Type parameter B must satisfy the tensor.Backend interface.
type Regularizer[B tensor.Backend] interface {
	// Apply returns the loss with this regularizer's penalty added.
	// Evaluation-phase calls return the loss unchanged.
	//
	// Apply fails if the regularizer has not been bound to its target.
	Apply(loss *tensor.Tensor[float32, B], phase Phase) (*tensor.Tensor[float32, B], error)

	// Describe returns a serializable summary of the regularizer's
	// configuration, used for model-config persistence.
	Describe() Config
}

// ParamRegularizer is a regularizer bound to a single parameter tensor.
type ParamRegularizer[B tensor.Backend] interface {
	Regularizer[B]

	// BindParam binds the regularizer to a parameter tensor.
	// Fails with ErrAlreadyBound on a second call.
	BindParam(p *tensor.Tensor[float32, B]) error
}

// LayerRegularizer is a regularizer bound to a single layer.
type LayerRegularizer[B tensor.Backend] interface {
	Regularizer[B]

	// BindLayer binds the regularizer to a layer.
	// Fails with ErrAlreadyBound on a second call.
	BindLayer(layer Layer[B]) error
}

// Layer is the view of a network layer an activity regularizer needs:
// the output tensor produced at each call site. A layer invoked at
// multiple call sites exposes one output per invocation.
type Layer[B tensor.Backend] interface {
	// OutputCount returns the number of recorded outputs.
	OutputCount() int

	// OutputAt returns the output tensor at index i (0 <= i < OutputCount).
	OutputAt(i int) *tensor.Tensor[float32, B]
}

// None is the null regularizer: Apply returns the loss unchanged.
// It needs no binding and serves as a placeholder where a layer slot
// requires a regularizer value.
type None[B tensor.Backend] struct{}

// NewNone creates a null regularizer.
func NewNone[B tensor.Backend]() None[B] {
	return None[B]{}
}

// Apply returns the loss unchanged.
func (None[B]) Apply(loss *tensor.Tensor[float32, B], _ Phase) (*tensor.Tensor[float32, B], error) {
	return loss, nil
}

// Describe returns the configuration summary.
func (None[B]) Describe() Config {
	return Config{Name: "None"}
}

// Fold applies every regularizer in turn, threading the loss through.
// This is how a training loop accumulates the penalties of all layers:
//
//	loss, err := regularizer.Fold(loss, regularizer.Training, model.Regularizers()...)
func Fold[B tensor.Backend](loss *tensor.Tensor[float32, B], phase Phase, regs ...Regularizer[B]) (*tensor.Tensor[float32, B], error) {
	var err error
	for _, reg := range regs {
		if reg == nil {
			continue
		}
		loss, err = reg.Apply(loss, phase)
		if err != nil {
			return nil, err
		}
	}
	return loss, nil
}
