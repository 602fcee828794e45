// Copyright 2026 Decay ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/decay-ml/decay/internal/nn"
	"github.com/decay-ml/decay/internal/regularizer"
	"github.com/decay-ml/decay/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter represents a trainable parameter in a neural network.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Linear represents a fully connected (dense) layer.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(784, 128, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// NewRegularizedLinear creates a linear layer and binds the given
// weight and activity regularizers (either may be nil).
func NewRegularizedLinear[B tensor.Backend](
	inFeatures, outFeatures int,
	backend B,
	weightReg regularizer.ParamRegularizer[B],
	activityReg regularizer.LayerRegularizer[B],
) (*Linear[B], error) {
	return nn.NewRegularizedLinear(inFeatures, outFeatures, backend, weightReg, activityReg)
}

// Xavier initializes a tensor with Xavier/Glorot uniform distribution.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Xavier(fanIn, fanOut, shape, backend)
}
