package regularizer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decay-ml/decay/internal/backend/cpu"
	"github.com/decay-ml/decay/internal/regularizer"
	"github.com/decay-ml/decay/internal/tensor"
)

type Backend = *cpu.CPUBackend

// TestWeight_ZeroCoefficients checks that a no-op weight regularizer
// returns exactly the input loss in the training phase.
func TestWeight_ZeroCoefficients(t *testing.T) {
	backend := cpu.New()

	w, err := tensor.FromSlice([]float32{1, -2, 3, -4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	reg := regularizer.NewWeight[Backend](0, 0)
	require.NoError(t, reg.BindParam(w))

	loss := tensor.Scalar[float32](0.5, backend)
	out, err := reg.Apply(loss, regularizer.Training)
	require.NoError(t, err)

	assert.Equal(t, float32(0.5), out.Item())
}

// TestWeight_Penalty checks penalty = l1*sum(|W|) + l2*sum(W²).
func TestWeight_Penalty(t *testing.T) {
	backend := cpu.New()

	// sum(|W|) = 10, sum(W²) = 30
	w, err := tensor.FromSlice([]float32{1, -2, 3, -4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	reg := regularizer.NewWeight[Backend](0.01, 0.003)
	require.NoError(t, reg.BindParam(w))

	loss := tensor.Scalar[float32](0.5, backend)
	out, err := reg.Apply(loss, regularizer.Training)
	require.NoError(t, err)

	// 0.5 + 0.01*10 + 0.003*30 = 0.69
	assert.InDelta(t, 0.69, out.Item(), 1e-5)
}

// TestWeight_L1Only checks that the L2 term is skipped entirely.
func TestWeight_L1Only(t *testing.T) {
	backend := cpu.New()

	w, err := tensor.FromSlice([]float32{-1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	reg := regularizer.L1[Backend](0.1)
	require.NoError(t, reg.BindParam(w))

	loss := tensor.Scalar[float32](1.0, backend)
	out, err := reg.Apply(loss, regularizer.Training)
	require.NoError(t, err)

	assert.InDelta(t, 1.3, out.Item(), 1e-5)
}

// TestWeight_EvaluationPhase checks that evaluation-phase calls return
// the loss unmodified regardless of coefficients.
func TestWeight_EvaluationPhase(t *testing.T) {
	backend := cpu.New()

	w, err := tensor.FromSlice([]float32{5, 5, 5, 5}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	reg := regularizer.NewWeight[Backend](1.0, 1.0)
	require.NoError(t, reg.BindParam(w))

	loss := tensor.Scalar[float32](2.0, backend)
	out, err := reg.Apply(loss, regularizer.Evaluation)
	require.NoError(t, err)

	assert.Equal(t, float32(2.0), out.Item())
}

// TestWeight_BindTwice checks single-use bind enforcement.
func TestWeight_BindTwice(t *testing.T) {
	backend := cpu.New()

	w := tensor.Ones[float32](tensor.Shape{2, 2}, backend)
	reg := regularizer.NewWeight[Backend](0.01, 0)

	require.NoError(t, reg.BindParam(w))

	err := reg.BindParam(w)
	require.Error(t, err)
	assert.True(t, errors.Is(err, regularizer.ErrAlreadyBound))
}

// TestWeight_ApplyBeforeBind checks the unbound error.
func TestWeight_ApplyBeforeBind(t *testing.T) {
	backend := cpu.New()

	reg := regularizer.NewWeight[Backend](0.01, 0)
	loss := tensor.Scalar[float32](1.0, backend)

	_, err := reg.Apply(loss, regularizer.Training)
	require.Error(t, err)
	assert.True(t, errors.Is(err, regularizer.ErrUnbound))
}

// TestFold threads the loss through multiple regularizers.
func TestFold(t *testing.T) {
	backend := cpu.New()

	w1, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	w2, err := tensor.FromSlice([]float32{2, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	r1 := regularizer.L1[Backend](0.5)
	require.NoError(t, r1.BindParam(w1))
	r2 := regularizer.L2[Backend](0.25)
	require.NoError(t, r2.BindParam(w2))

	loss := tensor.Scalar[float32](1.0, backend)
	out, err := regularizer.Fold(loss, regularizer.Training, r1, r2)
	require.NoError(t, err)

	// 1.0 + 0.5*2 + 0.25*8 = 4.0
	assert.InDelta(t, 4.0, out.Item(), 1e-5)
}

// TestNone checks the null regularizer passes the loss through.
func TestNone(t *testing.T) {
	backend := cpu.New()

	reg := regularizer.NewNone[Backend]()
	loss := tensor.Scalar[float32](3.0, backend)

	out, err := reg.Apply(loss, regularizer.Training)
	require.NoError(t, err)
	assert.Equal(t, float32(3.0), out.Item())

	cfg := reg.Describe()
	assert.Equal(t, "None", cfg.Name)
}
