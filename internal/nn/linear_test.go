package nn_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decay-ml/decay/internal/backend/cpu"
	"github.com/decay-ml/decay/internal/nn"
	"github.com/decay-ml/decay/internal/regularizer"
	"github.com/decay-ml/decay/internal/tensor"
)

type Backend = *cpu.CPUBackend

// TestLinear_Creation tests Linear layer initialization.
func TestLinear_Creation(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinear(10, 5, backend)

	assert.Equal(t, 10, layer.InFeatures())
	assert.Equal(t, 5, layer.OutFeatures())
	assert.True(t, layer.Weight().Tensor().Shape().Equal(tensor.Shape{5, 10}))
	assert.True(t, layer.Bias().Tensor().Shape().Equal(tensor.Shape{5}))

	// Bias starts at zero.
	for i, v := range layer.Bias().Tensor().Data() {
		assert.Equal(t, float32(0), v, "bias[%d]", i)
	}

	assert.Len(t, layer.Parameters(), 2)
	assert.Empty(t, layer.Regularizers())
}

// TestLinear_Forward tests the forward pass with known weights.
func TestLinear_Forward(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinear(2, 2, backend)

	// Weight: [[1, 2], [3, 4]] (out=2, in=2), bias: [0.5, 1.0]
	copy(layer.Weight().Tensor().Data(), []float32{1, 2, 3, 4})
	copy(layer.Bias().Tensor().Data(), []float32{0.5, 1.0})

	input, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)

	output := layer.Forward(input)
	require.True(t, output.Shape().Equal(tensor.Shape{1, 2}))

	// y = x @ W.T + b = [1+2+0.5, 3+4+1.0]
	assert.InDelta(t, 3.5, output.Data()[0], 1e-5)
	assert.InDelta(t, 8.0, output.Data()[1], 1e-5)
}

// TestLinear_RecordsOutputs checks the call-site recording used by
// activity regularization.
func TestLinear_RecordsOutputs(t *testing.T) {
	backend := cpu.New()

	layer := nn.NewLinear(2, 2, backend)
	input := tensor.Ones[float32](tensor.Shape{1, 2}, backend)

	assert.Equal(t, 0, layer.OutputCount())

	out1 := layer.Forward(input)
	out2 := layer.Forward(input)
	require.Equal(t, 2, layer.OutputCount())
	assert.Same(t, out1, layer.OutputAt(0))
	assert.Same(t, out2, layer.OutputAt(1))

	layer.ResetOutputs()
	assert.Equal(t, 0, layer.OutputCount())
}

// TestRegularizedLinear_Binding checks that construction binds both
// regularizers and exposes them via Regularizers().
func TestRegularizedLinear_Binding(t *testing.T) {
	backend := cpu.New()

	wreg := regularizer.L2[Backend](0.01)
	areg := regularizer.ActivityL1[Backend](0.01)

	layer, err := nn.NewRegularizedLinear(4, 3, backend, wreg, areg)
	require.NoError(t, err)
	assert.Len(t, layer.Regularizers(), 2)

	// Bound during construction: a second bind must fail.
	err = wreg.BindParam(layer.Weight().Tensor())
	assert.True(t, errors.Is(err, regularizer.ErrAlreadyBound))
	err = areg.BindLayer(layer)
	assert.True(t, errors.Is(err, regularizer.ErrAlreadyBound))
}

// TestRegularizedLinear_ReusedRegularizer rejects a regularizer that is
// already bound to another layer.
func TestRegularizedLinear_ReusedRegularizer(t *testing.T) {
	backend := cpu.New()

	wreg := regularizer.L2[Backend](0.01)
	_, err := nn.NewRegularizedLinear(4, 3, backend, wreg, nil)
	require.NoError(t, err)

	_, err = nn.NewRegularizedLinear(4, 3, backend, wreg, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, regularizer.ErrAlreadyBound))
}

// TestRegularizedLinear_Loss folds weight and activity penalties into
// a training loss and leaves an evaluation loss untouched.
func TestRegularizedLinear_Loss(t *testing.T) {
	backend := cpu.New()

	wreg := regularizer.L2[Backend](0.1)
	areg := regularizer.ActivityL1[Backend](0.5)

	layer, err := nn.NewRegularizedLinear(2, 1, backend, wreg, areg)
	require.NoError(t, err)

	// Fixed weights for a deterministic penalty: W = [[1, 2]], b = [0].
	copy(layer.Weight().Tensor().Data(), []float32{1, 2})

	input, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)
	_ = layer.Forward(input) // output: [3]

	loss := tensor.Scalar[float32](1.0, backend)

	trainLoss, err := regularizer.Fold(loss, regularizer.Training, layer.Regularizers()...)
	require.NoError(t, err)
	// 1.0 + 0.1*(1+4) + 0.5*3 = 3.0
	assert.InDelta(t, 3.0, trainLoss.Item(), 1e-5)

	evalLoss, err := regularizer.Fold(loss, regularizer.Evaluation, layer.Regularizers()...)
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), evalLoss.Item())
}
