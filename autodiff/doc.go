// Copyright 2025 RevGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// # Overview
//
// A function is described as a symbolic expression tree (Expr) over
// variable references, compiled onto a computation Tape, and evaluated
// with a memoized forward pass and a reverse-mode backward pass that
// accumulates exact partial derivatives into every variable.
//
// # One-shot gradients
//
//	grad := autodiff.Gradient(func(s []*autodiff.Expr) *autodiff.Expr {
//	    return s[0].Sin().Mul(s[1]) // f(x, y) = sin(x) * y
//	}, []float64{0, 5})
//	// grad = [5, 0]
//
// # Reusing a compiled tape
//
// For iterative callers (optimization loops), compile once and rebind:
//
//	tape := autodiff.NewTape()
//	tape.DeclareVars(2)
//	tape.Compile(objective(tape.Symbols()))
//
//	for i := 0; i < steps; i++ {
//	    value, grads := autodiff.GradientCached(tape, x)
//	    // ... update x ...
//	}
//
// The tape is structurally immutable after compilation: Reset clears the
// cached values and gradients, never the nodes.
package autodiff
