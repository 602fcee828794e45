// Copyright 2026 Decay ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package regularizer

import (
	"github.com/decay-ml/decay/internal/regularizer"
	"github.com/decay-ml/decay/internal/tensor"
)

// Phase distinguishes the training loss (penalized) from the
// evaluation loss (unpenalized).
type Phase = regularizer.Phase

// Supported phases.
const (
	Training   Phase = regularizer.Training
	Evaluation Phase = regularizer.Evaluation
)

// Regularizer transforms a scalar loss into a penalized scalar loss.
type Regularizer[B tensor.Backend] = regularizer.Regularizer[B]

// ParamRegularizer is a regularizer bound to a single parameter tensor.
type ParamRegularizer[B tensor.Backend] = regularizer.ParamRegularizer[B]

// LayerRegularizer is a regularizer bound to a single layer.
type LayerRegularizer[B tensor.Backend] = regularizer.LayerRegularizer[B]

// Layer is the view of a network layer an activity regularizer needs.
type Layer[B tensor.Backend] = regularizer.Layer[B]

// Weight penalizes the magnitude of a parameter tensor (L1/L2).
type Weight[B tensor.Backend] = regularizer.Weight[B]

// Activity penalizes the magnitude of a layer's output tensors (L1/L2).
type Activity[B tensor.Backend] = regularizer.Activity[B]

// Eigenvalue implements Eigenvalue Decay over a weight matrix.
type Eigenvalue[B tensor.Backend] = regularizer.Eigenvalue[B]

// None is the null regularizer: Apply returns the loss unchanged.
type None[B tensor.Backend] = regularizer.None[B]

// Config is the serializable summary of a regularizer's configuration.
type Config = regularizer.Config

// Registry resolves string identifiers to regularizer instances.
type Registry[B tensor.Backend] = regularizer.Registry[B]

// Builder constructs a regularizer from keyword arguments.
type Builder[B tensor.Backend] = regularizer.Builder[B]

// Errors.
var (
	ErrAlreadyBound       = regularizer.ErrAlreadyBound
	ErrUnbound            = regularizer.ErrUnbound
	ErrUnsupportedRank    = regularizer.ErrUnsupportedRank
	ErrUnknownRegularizer = regularizer.ErrUnknownRegularizer
)

// DefaultRate is the coefficient used by the shorthand factories.
const DefaultRate = regularizer.DefaultRate

// NewWeight creates a weight regularizer with L1 and L2 coefficients.
func NewWeight[B tensor.Backend](l1, l2 float64) *Weight[B] {
	return regularizer.NewWeight[B](l1, l2)
}

// NewActivity creates an activity regularizer with L1 and L2 coefficients.
func NewActivity[B tensor.Backend](l1, l2 float64) *Activity[B] {
	return regularizer.NewActivity[B](l1, l2)
}

// NewEigenvalue creates an eigenvalue-decay regularizer with gain k.
func NewEigenvalue[B tensor.Backend](k float64) *Eigenvalue[B] {
	return regularizer.NewEigenvalue[B](k)
}

// NewNone creates a null regularizer.
func NewNone[B tensor.Backend]() None[B] {
	return regularizer.NewNone[B]()
}

// L1 creates a weight regularizer with only an L1 penalty.
func L1[B tensor.Backend](l float64) *Weight[B] {
	return regularizer.L1[B](l)
}

// L2 creates a weight regularizer with only an L2 penalty.
func L2[B tensor.Backend](l float64) *Weight[B] {
	return regularizer.L2[B](l)
}

// L1L2 creates a weight regularizer with both penalties.
func L1L2[B tensor.Backend](l1, l2 float64) *Weight[B] {
	return regularizer.L1L2[B](l1, l2)
}

// ActivityL1 creates an activity regularizer with only an L1 penalty.
func ActivityL1[B tensor.Backend](l float64) *Activity[B] {
	return regularizer.ActivityL1[B](l)
}

// ActivityL2 creates an activity regularizer with only an L2 penalty.
func ActivityL2[B tensor.Backend](l float64) *Activity[B] {
	return regularizer.ActivityL2[B](l)
}

// ActivityL1L2 creates an activity regularizer with both penalties.
func ActivityL1L2[B tensor.Backend](l1, l2 float64) *Activity[B] {
	return regularizer.ActivityL1L2[B](l1, l2)
}

// NewRegistry creates a registry with all built-in regularizers
// registered.
func NewRegistry[B tensor.Backend]() *Registry[B] {
	return regularizer.NewRegistry[B]()
}

// ConfigFromJSON unmarshals a serialized config.
func ConfigFromJSON(data []byte) (Config, error) {
	return regularizer.ConfigFromJSON(data)
}

// Fold applies every regularizer in turn, threading the loss through.
func Fold[B tensor.Backend](loss *tensor.Tensor[float32, B], phase Phase, regs ...Regularizer[B]) (*tensor.Tensor[float32, B], error) {
	return regularizer.Fold(loss, phase, regs...)
}
