// Copyright 2026 Decay ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package regularizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decay-ml/decay/backend/cpu"
	"github.com/decay-ml/decay/nn"
	"github.com/decay-ml/decay/regularizer"
	"github.com/decay-ml/decay/tensor"
)

type Backend = *cpu.Backend

// TestPublicAPI_TrainingStep walks a miniature training-step flow
// through the public packages: build a regularized layer, run a
// forward pass, fold penalties into the loss.
func TestPublicAPI_TrainingStep(t *testing.T) {
	backend := cpu.New()

	registry := regularizer.NewRegistry[Backend]()
	resolved, err := registry.Resolve("l2", nil)
	require.NoError(t, err)
	wreg, ok := resolved.(*regularizer.Weight[Backend])
	require.True(t, ok)

	layer, err := nn.NewRegularizedLinear(2, 2, backend, wreg, regularizer.ActivityL1[Backend](0.1))
	require.NoError(t, err)

	input := tensor.Ones[float32](tensor.Shape{1, 2}, backend)
	_ = layer.Forward(input)

	loss := tensor.Scalar[float32](1.0, backend)
	trainLoss, err := regularizer.Fold(loss, regularizer.Training, layer.Regularizers()...)
	require.NoError(t, err)
	assert.Greater(t, trainLoss.Item(), float32(0.99))

	evalLoss, err := regularizer.Fold(loss, regularizer.Evaluation, layer.Regularizers()...)
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), evalLoss.Item())
}

// TestPublicAPI_ConfigRoundTrip persists a regularizer config and
// reconstructs an equivalent instance.
func TestPublicAPI_ConfigRoundTrip(t *testing.T) {
	registry := regularizer.NewRegistry[Backend]()

	orig := regularizer.L1L2[Backend](0.1, 0.2)
	data, err := orig.Describe().ToJSON()
	require.NoError(t, err)

	cfg, err := regularizer.ConfigFromJSON(data)
	require.NoError(t, err)

	rebuilt, err := registry.FromConfig(cfg)
	require.NoError(t, err)

	w, ok := rebuilt.(*regularizer.Weight[Backend])
	require.True(t, ok)
	assert.InDelta(t, 0.1, w.L1(), 1e-6)
	assert.InDelta(t, 0.2, w.L2(), 1e-6)
}

// TestPublicAPI_EigenvalueDecay checks the eigenvalue regularizer
// through the public API.
func TestPublicAPI_EigenvalueDecay(t *testing.T) {
	backend := cpu.New()

	w := tensor.Eye[float32](4, backend)
	reg := regularizer.NewEigenvalue[Backend](0.25)
	require.NoError(t, reg.BindParam(w))

	loss := tensor.Scalar[float32](2.0, backend)
	out, err := reg.Apply(loss, regularizer.Training)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, out.Item(), 1e-5)
}
