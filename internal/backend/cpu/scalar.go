package cpu

import (
	"fmt"

	"github.com/decay-ml/decay/internal/tensor"
)

// MulScalar multiplies each element by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	s := scalarToFloat64("mulscalar", scalar)
	return cpu.unaryOp("mulscalar", x,
		func(v float32) float32 { return v * float32(s) },
		func(v float64) float64 { return v * s })
}

// AddScalar adds a scalar value to each element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	s := scalarToFloat64("addscalar", scalar)
	return cpu.unaryOp("addscalar", x,
		func(v float32) float32 { return v + float32(s) },
		func(v float64) float64 { return v + s })
}

// scalarToFloat64 coerces a scalar argument to float64.
func scalarToFloat64(name string, scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int:
		return float64(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", name, scalar))
	}
}
