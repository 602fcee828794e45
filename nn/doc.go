// Copyright 2026 Decay ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for the Decay
// toolkit.
//
// # Overview
//
// This package contains the layer-side consumers of regularizers:
//   - Module interface and Parameter
//   - Linear: fully connected layer with optional weight/activity
//     regularization bound at construction
//   - Initialization: Xavier
//
// # Basic Usage
//
//	import (
//	    "github.com/decay-ml/decay/backend/cpu"
//	    "github.com/decay-ml/decay/nn"
//	    "github.com/decay-ml/decay/regularizer"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    layer, err := nn.NewRegularizedLinear(784, 128, backend,
//	        regularizer.L2[*cpu.Backend](0.01), nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    output := layer.Forward(input)
//
//	    loss, err = regularizer.Fold(loss, regularizer.Training,
//	        layer.Regularizers()...)
//	}
package nn
