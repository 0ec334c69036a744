// Package optim implements gradient-descent optimization over a compiled
// autodiff tape.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//   - Minimize: the reset → bind → forward → backward → step loop
//
// Example usage:
//
//	tape := autodiff.NewTape()
//	tape.DeclareVars(2)
//	tape.Compile(objective(tape.Symbols()))
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//	x, loss := optim.Minimize(tape, optimizer, []float64{0, 0}, 1000)
package optim

import "github.com/revgrad-ml/revgrad/internal/autodiff"

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update a parameter vector in place based on the gradient
// vector produced by the tape's backward pass.
type Optimizer interface {
	// Step applies one gradient update to params in place. params and
	// grads must have the same length.
	Step(params, grads []float64)

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate. Useful for scheduling.
	SetLR(lr float64)
}

// Minimize runs steps iterations of opt against a compiled tape, starting
// from x0, and returns the final parameter vector and objective value.
//
// Each iteration reuses the tape through the cached-gradient path, so the
// tape is compiled once and never grows. The tape must have a compiled
// root and exactly len(x0) declared variables.
func Minimize(t *autodiff.Tape, opt Optimizer, x0 []float64, steps int) ([]float64, float64) {
	x := make([]float64, len(x0))
	copy(x, x0)

	value, grads := autodiff.GradientCached(t, x)
	for i := 0; i < steps; i++ {
		opt.Step(x, grads)
		value, grads = autodiff.GradientCached(t, x)
	}
	return x, value
}
