// Copyright 2026 Decay ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package regularizer provides loss regularization penalties for
// neural-network training.
//
// # Overview
//
// A regularizer is bound to exactly one target - a parameter tensor or
// a layer - and transforms a scalar loss into a penalized scalar loss:
//   - Weight: l1*sum(|W|) + l2*sum(W²) over a parameter tensor
//   - Activity: the same penalty over a layer's recorded outputs
//   - Eigenvalue: Eigenvalue Decay, k * sqrt(dominant eigenvalue of WᵗW),
//     estimated by power iteration
//
// Penalties apply only in the training phase; evaluation-phase calls
// return the loss unchanged.
//
// # Basic Usage
//
//	import (
//	    "github.com/decay-ml/decay/backend/cpu"
//	    "github.com/decay-ml/decay/regularizer"
//	)
//
//	func main() {
//	    reg := regularizer.L2[*cpu.Backend](0.01)
//	    if err := reg.BindParam(weight); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    loss, err := reg.Apply(loss, regularizer.Training)
//	}
//
// # Resolution by Name
//
// Layer construction code that accepts shorthand string specs resolves
// them through a registry:
//
//	registry := regularizer.NewRegistry[*cpu.Backend]()
//	reg, err := registry.Resolve("l2", nil) // WeightRegularizer(l2=0.01)
//
// # Persistence
//
// Describe returns a serializable Config; the registry reconstructs an
// equivalent regularizer from it:
//
//	cfg := reg.Describe()
//	data, _ := cfg.ToJSON()
//	...
//	cfg, _ = regularizer.ConfigFromJSON(data)
//	reg, _ = registry.FromConfig(cfg)
package regularizer
