package cpu

import (
	"fmt"
	"math"

	"github.com/decay-ml/decay/internal/tensor"
)

// Abs computes element-wise absolute value: |x|.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("abs", x,
		func(v float32) float32 {
			if v < 0 {
				return -v
			}
			return v
		},
		math.Abs)
}

// Square computes element-wise square: x * x.
func (cpu *CPUBackend) Square(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("square", x,
		func(v float32) float32 { return v * v },
		func(v float64) float64 { return v * v })
}

// Sqrt computes element-wise square root: sqrt(x).
// Panics on negative input.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("sqrt", x,
		func(v float32) float32 {
			if v < 0 {
				panic(fmt.Sprintf("sqrt: negative value: %f", v))
			}
			return float32(math.Sqrt(float64(v)))
		},
		func(v float64) float64 {
			if v < 0 {
				panic(fmt.Sprintf("sqrt: negative value: %f", v))
			}
			return math.Sqrt(v)
		})
}

// unaryOp applies an element-wise unary operation.
func (cpu *CPUBackend) unaryOp(name string, x *tensor.RawTensor,
	f32 func(v float32) float32, f64 func(v float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = f32(v)
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = f64(v)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}
