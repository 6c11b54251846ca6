// Package problems is a small catalog of integrands with closed-form
// antiderivatives, used as reference cases by the CLI and the tests.
//
// Every Problem carries its own default interval and computes its exact
// integral as Antiderivative(B) − Antiderivative(A):
//
//	p, _ := problems.Lookup("poly-trig")
//	res, err := converge.Run(ctx, p.F, p.Interval(), p.Reference())
//
// Built-ins, in listing order:
//
//	poly-trig  x⁶ − x²·sin(2x)   on [1, 3]
//	exp        eˣ                on [0, 1]
//	cos        cos x             on [0, π/2]
//	runge      1 / (1 + 25x²)    on [-1, 1]
//	sqrt       √x                on [1, 4]
package problems
