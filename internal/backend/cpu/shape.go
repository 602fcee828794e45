package cpu

import (
	"fmt"

	"github.com/decay-ml/decay/internal/tensor"
)

// Reshape returns a tensor with the same data but a different shape.
// This is a view operation (zero-copy).
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	reshaped, err := t.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return reshaped
}

// Transpose permutes the dimensions of a tensor.
//
// If axes is empty, all dimensions are reversed (standard transpose for 2D).
// Otherwise axes must be a permutation of [0, ndim).
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: expected %d axes, got %d", ndim, len(axes)))
	}

	seen := make([]bool, ndim)
	outShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim || seen[ax] {
			panic(fmt.Sprintf("transpose: invalid axes permutation %v for %dD tensor", axes, ndim))
		}
		seen[ax] = true
		outShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(outShape, t.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		transposeCopy(result.AsFloat32(), t.AsFloat32(), outShape, shape.ComputeStrides(), axes)
	case tensor.Float64:
		transposeCopy(result.AsFloat64(), t.AsFloat64(), outShape, shape.ComputeStrides(), axes)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", t.DType()))
	}

	return result
}

// transposeCopy materializes the permuted tensor into dst.
func transposeCopy[T float32 | float64](dst, src []T, outShape tensor.Shape, srcStrides []int, axes []int) {
	outStrides := outShape.ComputeStrides()
	for i := range dst {
		srcOff := 0
		rem := i
		for d := 0; d < len(outShape); d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			srcOff += coord * srcStrides[axes[d]]
		}
		dst[i] = src[srcOff]
	}
}
