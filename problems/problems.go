package problems

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvquad/quad"
)

// ErrUnknownProblem is returned by Lookup for names not in the catalog.
var ErrUnknownProblem = errors.New("problems: unknown problem")

// Problem is an integrand with its antiderivative and default bounds.
type Problem struct {
	Name           string
	Description    string
	F              quad.Func // integrand
	Antiderivative quad.Func // any primitive of F
	A, B           float64   // default interval
}

// Interval returns the default interval [A, B].
func (p Problem) Interval() quad.Interval { return quad.Interval{A: p.A, B: p.B} }

// Reference returns the exact integral over the default interval.
func (p Problem) Reference() float64 { return p.ReferenceOn(p.Interval()) }

// ReferenceOn returns the exact integral over iv.
func (p Problem) ReferenceOn(iv quad.Interval) float64 {
	return p.Antiderivative(iv.B) - p.Antiderivative(iv.A)
}

// catalog keeps the listing order of Names and All.
var catalog = []Problem{
	{
		Name:        "poly-trig",
		Description: "x^6 - x^2*sin(2x)",
		F: func(x float64) float64 {
			return math.Pow(x, 6) - x*x*math.Sin(2*x)
		},
		Antiderivative: func(x float64) float64 {
			s, c := math.Sincos(2 * x)

			return math.Pow(x, 7)/7 + x*x/2*c - x/2*s - c/4
		},
		A: 1, B: 3,
	},
	{
		Name:           "exp",
		Description:    "e^x",
		F:              math.Exp,
		Antiderivative: math.Exp,
		A:              0, B: 1,
	},
	{
		Name:           "cos",
		Description:    "cos(x)",
		F:              math.Cos,
		Antiderivative: math.Sin,
		A:              0, B: math.Pi / 2,
	},
	{
		Name:        "runge",
		Description: "1/(1+25x^2)",
		F: func(x float64) float64 {
			return 1 / (1 + 25*x*x)
		},
		Antiderivative: func(x float64) float64 {
			return math.Atan(5*x) / 5
		},
		A: -1, B: 1,
	},
	{
		Name:        "sqrt",
		Description: "sqrt(x)",
		F:           math.Sqrt,
		Antiderivative: func(x float64) float64 {
			return 2.0 / 3.0 * x * math.Sqrt(x)
		},
		A: 1, B: 4,
	},
}

// Lookup returns the named problem.
func Lookup(name string) (Problem, error) {
	for _, p := range catalog {
		if p.Name == name {
			return p, nil
		}
	}

	return Problem{}, fmt.Errorf("%q: %w", name, ErrUnknownProblem)
}

// Names returns the catalog names in listing order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, p := range catalog {
		out[i] = p.Name
	}

	return out
}

// All returns a copy of the catalog.
func All() []Problem {
	out := make([]Problem, len(catalog))
	copy(out, catalog)

	return out
}
