package cpu

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"

	"github.com/decay-ml/decay/internal/parallel"
	"github.com/decay-ml/decay/internal/tensor"
)

// unrollKernels is true when the CPU has FMA support, in which case the
// 4-way unrolled inner loops pay off (the compiler fuses the multiply-adds).
var unrollKernels = cpuid.CPU.Supports(cpuid.FMA3)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N).
// Rows of the output are computed in parallel.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		matmulRows(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, cpu.par)
	case tensor.Float64:
		matmulRows(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, cpu.par)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulRows computes C[i,j] = sum_k A[i,k] * B[k,j], one output row per task.
func matmulRows[T float32 | float64](c, a, b []T, m, k, n int, cfg parallel.Config) {
	// One row of C is cheap; raise the chunk floor so small matrices
	// stay on the calling goroutine.
	cfg.MinChunkSize = max(cfg.MinChunkSize/8, 8)

	parallel.For(m, func(i int) {
		row := c[i*n : (i+1)*n]
		for j := range row {
			row[j] = 0
		}
		if unrollKernels {
			matmulRowUnrolled(row, a[i*k:(i+1)*k], b, k, n)
			return
		}
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			bRow := b[p*n : (p+1)*n]
			for j, bv := range bRow {
				row[j] += aip * bv
			}
		}
	}, cfg)
}

// matmulRowUnrolled accumulates one output row with a 4-way unrolled
// inner loop over the shared dimension.
func matmulRowUnrolled[T float32 | float64](row, aRow, b []T, k, n int) {
	p := 0
	for ; p+4 <= k; p += 4 {
		a0, a1, a2, a3 := aRow[p], aRow[p+1], aRow[p+2], aRow[p+3]
		b0 := b[p*n : p*n+n]
		b1 := b[(p+1)*n : (p+1)*n+n]
		b2 := b[(p+2)*n : (p+2)*n+n]
		b3 := b[(p+3)*n : (p+3)*n+n]
		for j := range row {
			row[j] += a0*b0[j] + a1*b1[j] + a2*b2[j] + a3*b3[j]
		}
	}
	for ; p < k; p++ {
		ap := aRow[p]
		bRow := b[p*n : p*n+n]
		for j := range row {
			row[j] += ap * bRow[j]
		}
	}
}
