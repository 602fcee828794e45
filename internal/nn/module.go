// Package nn implements neural network building blocks for the Decay
// toolkit.
//
// The package exists to give regularizers their natural consumers:
//   - Module interface: base interface for all NN components
//   - Parameter: named trainable parameters
//   - Linear: fully connected layer that binds weight and activity
//     regularizers during construction
package nn

import (
	"github.com/decay-ml/decay/internal/regularizer"
	"github.com/decay-ml/decay/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for modules without trainable parameters.
	Parameters() []*Parameter[B]

	// Regularizers returns the regularizers attached to this module,
	// already bound to their targets. The training loop folds them over
	// the loss with regularizer.Fold.
	Regularizers() []regularizer.Regularizer[B]
}
