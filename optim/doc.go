// Copyright 2025 RevGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers driven by a compiled
// autodiff tape.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Minimize: the compile-once, rebind-every-step descent loop
//
// # Basic Usage
//
//	tape := autodiff.NewTape()
//	tape.DeclareVars(2)
//	tape.Compile(objective(tape.Symbols()))
//
//	optimizer := optim.NewAdam(optim.AdamConfig{LR: 0.01})
//	x, value := optim.Minimize(tape, optimizer, []float64{0, 0}, 1000)
package optim
