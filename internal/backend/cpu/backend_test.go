package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decay-ml/decay/internal/backend/cpu"
	"github.com/decay-ml/decay/internal/tensor"
)

type Backend = *cpu.CPUBackend

// TestMatMul checks (M,K) @ (K,N) -> (M,N).
func TestMatMul(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2}, backend)
	require.NoError(t, err)

	c := a.MatMul(b)
	assert.True(t, c.Shape().Equal(tensor.Shape{2, 2}))

	expected := []float32{58, 64, 139, 154}
	for i, exp := range expected {
		assert.InDelta(t, exp, c.Data()[i], 1e-5, "mismatch at index %d", i)
	}
}

// TestMatMul_Large exercises the unrolled kernel past the 4-way unroll
// boundary and the parallel row dispatch.
func TestMatMul_Large(t *testing.T) {
	backend := cpu.New()

	const m, k, n = 33, 17, 9
	a := tensor.Full[float32](tensor.Shape{m, k}, 2, backend)
	b := tensor.Full[float32](tensor.Shape{k, n}, 3, backend)

	c := a.MatMul(b)
	require.True(t, c.Shape().Equal(tensor.Shape{m, n}))
	for i, v := range c.Data() {
		assert.InDelta(t, float32(k*6), v, 1e-4, "mismatch at index %d", i)
	}
}

// TestMatMul_ShapeMismatch panics on incompatible shapes.
func TestMatMul_ShapeMismatch(t *testing.T) {
	backend := cpu.New()

	a := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
	b := tensor.Ones[float32](tensor.Shape{2, 3}, backend)

	assert.Panics(t, func() { a.MatMul(b) })
}

// TestTranspose checks 2D transpose.
func TestTranspose(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	at := a.T()
	assert.True(t, at.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, at.Data())
}

// TestAdd_Broadcast checks bias-style broadcasting [1,N] + [M,N].
func TestAdd_Broadcast(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	bias, err := tensor.FromSlice([]float32{10, 20}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)

	c := a.Add(bias)
	assert.Equal(t, []float32{11, 22, 13, 24}, c.Data())
}

// TestElementwiseMath checks Abs, Square, Sqrt.
func TestElementwiseMath(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{-2, 3, -4}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float32{2, 3, 4}, x.Abs().Data())
	assert.Equal(t, []float32{4, 9, 16}, x.Square().Data())
	assert.Equal(t, []float32{2, 3, 4}, x.Square().Sqrt().Data())
}

// TestSum checks the full reduction.
func TestSum(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1.5, 2.5, 3, -1}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	total := x.Sum()
	assert.Equal(t, 0, total.NDim())
	assert.InDelta(t, 6.0, total.Item(), 1e-6)
}

// TestScalarOps checks MulScalar and AddScalar.
func TestScalarOps(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float32{2, 4}, x.MulScalar(2).Data())
	assert.Equal(t, []float32{1.5, 2.5}, x.AddScalar(0.5).Data())
}

// TestSub and Mul elementwise.
func TestSubMul(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float32{5, 7}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float32{2, 3}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float32{3, 4}, a.Sub(b).Data())
	assert.Equal(t, []float32{10, 21}, a.Mul(b).Data())
}

// TestFloat64 checks that ops dispatch on float64 tensors too.
func TestFloat64(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	c := a.MatMul(a)
	assert.Equal(t, []float64{7, 10, 15, 22}, c.Data())
	assert.InDelta(t, 10.0, a.Sum().Item(), 1e-12)
}
