// Copyright 2025 RevGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/revgrad-ml/revgrad/internal/autodiff"
	"github.com/revgrad-ml/revgrad/internal/optim"
)

// Optimizer defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD

// SGD is the gradient-descent optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam

// Adam is the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// Minimize runs steps iterations of opt against a compiled tape starting
// from x0 and returns the final parameters and objective value.
func Minimize(t *autodiff.Tape, opt Optimizer, x0 []float64, steps int) ([]float64, float64) {
	return optim.Minimize(t, opt, x0, steps)
}
