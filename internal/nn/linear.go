package nn

import (
	"fmt"

	"github.com/decay-ml/decay/internal/regularizer"
	"github.com/decay-ml/decay/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W.T + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with shape [out_features]
//
// Weights are initialized with Xavier/Glorot initialization, biases
// with zeros.
//
// A weight regularizer and an activity regularizer can be attached at
// construction; they are bound during construction the same way a
// layer build binds them in a training framework. The layer records
// the output of every Forward call so the activity regularizer can
// iterate all call sites.
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B] // [out_features, in_features]
	bias        *Parameter[B] // [out_features]
	weightReg   regularizer.ParamRegularizer[B]
	activityReg regularizer.LayerRegularizer[B]
	outputs     []*tensor.Tensor[float32, B]
	backend     B
}

// NewLinear creates a new Linear layer without regularization.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	l, err := NewRegularizedLinear(inFeatures, outFeatures, backend, nil, nil)
	if err != nil {
		// Binding fresh regularizer instances cannot fail.
		panic(err)
	}
	return l
}

// NewRegularizedLinear creates a Linear layer and binds the given
// regularizers: weightReg to the weight parameter, activityReg to the
// layer itself. Either may be nil.
//
// Fails if a regularizer is already bound to another target
// (regularizer.ErrAlreadyBound) - regularizer instances are single-use.
func NewRegularizedLinear[B tensor.Backend](
	inFeatures, outFeatures int,
	backend B,
	weightReg regularizer.ParamRegularizer[B],
	activityReg regularizer.LayerRegularizer[B],
) (*Linear[B], error) {
	// Weight: [out_features, in_features]
	weightShape := tensor.Shape{outFeatures, inFeatures}
	weight := NewParameter("weight", Xavier(inFeatures, outFeatures, weightShape, backend))

	// Bias: [out_features]
	bias := NewParameter("bias", tensor.Zeros[float32](tensor.Shape{outFeatures}, backend))

	l := &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
		weightReg:   weightReg,
		activityReg: activityReg,
		backend:     backend,
	}

	if weightReg != nil {
		if err := weightReg.BindParam(weight.Tensor()); err != nil {
			return nil, fmt.Errorf("linear: %w", err)
		}
	}
	if activityReg != nil {
		if err := activityReg.BindLayer(l); err != nil {
			return nil, fmt.Errorf("linear: %w", err)
		}
	}

	return l, nil
}

// Forward computes the output of the linear layer and records it for
// activity regularization.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		panic(fmt.Sprintf("Linear.Forward: expected 2D input [batch, features], got shape %v", inputShape))
	}
	if inputShape[1] != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, inputShape[1]))
	}

	w := l.weight.Tensor() // [out_features, in_features]
	wT := w.T()            // [in_features, out_features]

	// [batch_size, in_features] @ [in_features, out_features] = [batch_size, out_features]
	output := input.MatMul(wT)

	// Broadcast bias over the batch dimension.
	b := l.bias.Tensor().Reshape(1, l.outFeatures)
	output = output.Add(b)

	l.outputs = append(l.outputs, output)
	return output
}

// OutputCount returns the number of recorded Forward outputs.
// Part of the regularizer.Layer contract.
func (l *Linear[B]) OutputCount() int {
	return len(l.outputs)
}

// OutputAt returns the recorded output at index i.
// Part of the regularizer.Layer contract.
func (l *Linear[B]) OutputAt(i int) *tensor.Tensor[float32, B] {
	return l.outputs[i]
}

// ResetOutputs discards the recorded outputs. Call between training
// steps so activity penalties see only the current step's activations.
func (l *Linear[B]) ResetOutputs() {
	l.outputs = l.outputs[:0]
}

// Parameters returns the trainable parameters of this layer.
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Regularizers returns the bound regularizers attached to this layer.
func (l *Linear[B]) Regularizers() []regularizer.Regularizer[B] {
	var regs []regularizer.Regularizer[B]
	if l.weightReg != nil {
		regs = append(regs, l.weightReg)
	}
	if l.activityReg != nil {
		regs = append(regs, l.activityReg)
	}
	return regs
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}
