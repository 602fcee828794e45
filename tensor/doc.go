// Copyright 2026 Decay ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations in the
// Decay toolkit.
//
// # Overview
//
// The package defines the types regularization penalties are computed
// over:
//   - Tensor[T, B]: generic type-safe tensor
//   - RawTensor: low-level tensor representation
//   - Backend: interface for device-specific compute implementations
//   - Shape, DataType, Device: core type definitions
//
// # Basic Usage
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
package tensor
