// SPDX-License-Identifier: MIT
package entangle_test

import (
	"testing"

	"github.com/katalvlaran/qnetsim/entangle"
	"github.com/stretchr/testify/assert"
)

func draws(s entangle.Source, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Float64()
	}
	return out
}

func TestNewSource_Reproducible(t *testing.T) {
	assert.Equal(t, draws(entangle.NewSource(42), 8), draws(entangle.NewSource(42), 8))
	assert.Equal(t, draws(entangle.NewSource(0), 8), draws(entangle.NewSource(entangle.DefaultSeed), 8))
	assert.NotEqual(t, draws(entangle.NewSource(1), 8), draws(entangle.NewSource(2), 8))
}

func TestTrialSource_IndependentOfOrder(t *testing.T) {
	third := draws(entangle.TrialSource(7, 3), 8)
	_ = draws(entangle.TrialSource(7, 0), 100)
	assert.Equal(t, third, draws(entangle.TrialSource(7, 3), 8))
	assert.NotEqual(t, third, draws(entangle.TrialSource(7, 4), 8))
	assert.NotEqual(t, third, draws(entangle.TrialSource(8, 3), 8))
}

func TestSource_Range(t *testing.T) {
	for _, v := range draws(entangle.TrialSource(99, 1), 1000) {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
