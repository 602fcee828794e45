// Package cpu implements the pure-Go CPU backend for the Decay toolkit.
package cpu

import (
	"fmt"

	"github.com/decay-ml/decay/internal/parallel"
	"github.com/decay-ml/decay/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
// Matrix multiplication parallelizes over rows and selects its inner
// kernel based on detected CPU features.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// binaryOp applies an element-wise binary operation with broadcasting.
func (cpu *CPUBackend) binaryOp(name string, a, b *tensor.RawTensor,
	f32 func(x, y float32) float32, f64 func(x, y float64) float64) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch a.DType() {
	case tensor.Float32:
		if needsBroadcast {
			broadcastApply(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), outShape, a.Shape(), b.Shape(), f32)
		} else {
			av, bv, dst := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
			for i := range dst {
				dst[i] = f32(av[i], bv[i])
			}
		}
	case tensor.Float64:
		if needsBroadcast {
			broadcastApply(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), outShape, a.Shape(), b.Shape(), f64)
		} else {
			av, bv, dst := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
			for i := range dst {
				dst[i] = f64(av[i], bv[i])
			}
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// broadcastApply evaluates f over the broadcasted output shape.
// Source offsets are computed by clamping broadcast dimensions (size 1)
// to index 0, aligning shapes from the right.
func broadcastApply[T float32 | float64](dst, a, b []T, outShape, aShape, bShape tensor.Shape, f func(x, y T) T) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(outShape, aShape)
	bStrides := broadcastStrides(outShape, bShape)

	for i := range dst {
		aOff, bOff := 0, 0
		rem := i
		for d := 0; d < len(outShape); d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			aOff += coord * aStrides[d]
			bOff += coord * bStrides[d]
		}
		dst[i] = f(a[aOff], b[bOff])
	}
}

// broadcastStrides returns per-output-dimension strides into a source
// shape, with 0 for dimensions the source broadcasts over.
func broadcastStrides(outShape, srcShape tensor.Shape) []int {
	srcStrides := srcShape.ComputeStrides()
	strides := make([]int, len(outShape))
	offset := len(outShape) - len(srcShape)
	for d := range outShape {
		if d < offset {
			continue // Missing leading dimension, broadcast.
		}
		if srcShape[d-offset] == 1 && outShape[d] != 1 {
			continue // Size-1 dimension, broadcast.
		}
		strides[d] = srcStrides[d-offset]
	}
	return strides
}
