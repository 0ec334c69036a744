// Copyright 2025 RevGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import "github.com/revgrad-ml/revgrad/internal/autodiff"

// Tape is the computation graph: an append-only sequence of operation
// nodes with parallel cached-value and accumulated-gradient buffers.
type Tape = autodiff.Tape

// Node is one operation record on the tape.
type Node = autodiff.Node

// Expr is an immutable symbolic expression tree, lowered onto a Tape by
// Compile.
type Expr = autodiff.Expr

// NewTape creates an empty tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// Symbol returns a leaf expression referencing the variable at the given
// tape index.
func Symbol(index int) *Expr {
	return autodiff.Symbol(index)
}

// ConstAdd returns c + e.
func ConstAdd(c float64, e *Expr) *Expr {
	return autodiff.ConstAdd(c, e)
}

// ConstSub returns c - e.
func ConstSub(c float64, e *Expr) *Expr {
	return autodiff.ConstSub(c, e)
}

// ConstMul returns c * e.
func ConstMul(c float64, e *Expr) *Expr {
	return autodiff.ConstMul(c, e)
}

// ConstDiv returns the reciprocal of e; see the internal package for the
// composition table.
func ConstDiv(c float64, e *Expr) *Expr {
	return autodiff.ConstDiv(c, e)
}

// Gradient evaluates the gradient of f at x in one shot, building and
// discarding a fresh tape.
//
// Example:
//
//	grad := autodiff.Gradient(func(s []*autodiff.Expr) *autodiff.Expr {
//	    return s[0].Mul(s[0]) // f(x) = x²
//	}, []float64{3})
//	// grad = [6]
func Gradient(f func([]*Expr) *Expr, x []float64) []float64 {
	return autodiff.Gradient(f, x)
}

// GradientCached evaluates an already compiled tape at x, returning the
// scalar result and the gradient vector in declaration order.
func GradientCached(t *Tape, x []float64) (float64, []float64) {
	return autodiff.GradientCached(t, x)
}
