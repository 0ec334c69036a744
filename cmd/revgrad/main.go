// Package main provides the RevGrad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/revgrad-ml/revgrad/autodiff"
	"github.com/revgrad-ml/revgrad/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("RevGrad %s\n", version)
			return
		case "demo":
			runDemo()
			return
		}
	}

	fmt.Println("RevGrad - Scalar Reverse-Mode Automatic Differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate and minimize a sample function")
}

// colorize wraps s in an ANSI color when stdout is a terminal.
func colorize(s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return "\x1b[36m" + s + "\x1b[0m"
}

func runDemo() {
	fmt.Println(colorize("gradient of f(x, y) = sin(x)*y at (0, 5)"))
	grad := autodiff.Gradient(func(s []*autodiff.Expr) *autodiff.Expr {
		return s[0].Sin().Mul(s[1])
	}, []float64{0, 5})
	fmt.Printf("  df/dx = %g, df/dy = %g\n\n", grad[0], grad[1])

	fmt.Println(colorize("minimizing the Rosenbrock function with Adam"))
	tape := autodiff.NewTape()
	tape.DeclareVars(2)
	s := tape.Symbols()
	a := s[0].SubConst(1).Powi(2)
	b := s[1].Sub(s[0].Mul(s[0]))
	tape.Compile(a.Add(autodiff.ConstMul(100, b.Powi(2))))

	x, value := optim.Minimize(tape, optim.NewAdam(optim.AdamConfig{LR: 0.02}), []float64{-0.5, 0.5}, 10000)
	fmt.Printf("  minimum near (%.4f, %.4f), f = %.6g\n", x[0], x[1], value)
}
