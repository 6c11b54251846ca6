package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvquad/converge"
	"github.com/katalvlaran/lvquad/gauss"
	"github.com/katalvlaran/lvquad/problems"
	"github.com/katalvlaran/lvquad/quad"
)

// runConfig holds every knob of "lvquad run". YAML keys mirror the flag names.
type runConfig struct {
	Problem       string        `yaml:"problem"`
	A             *float64      `yaml:"a,omitempty"` // nil: problem default
	B             *float64      `yaml:"b,omitempty"` // nil: problem default
	Tol           float64       `yaml:"tol"`
	StartOrder    int           `yaml:"start-order"`
	MaxOrder      int           `yaml:"max-order"`
	NewtonTol     float64       `yaml:"newton-tol"`
	NewtonMaxIter int           `yaml:"newton-max-iter"`
	Method        string        `yaml:"method"`
	Cache         bool          `yaml:"cache"`
	Timeout       time.Duration `yaml:"timeout"`
	CSV           string        `yaml:"csv"`
	PlotDir       string        `yaml:"plot-dir"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Problem:       "poly-trig",
		Tol:           converge.DefaultTolerance,
		StartOrder:    converge.DefaultStartOrder,
		MaxOrder:      converge.DefaultMaxOrder,
		NewtonTol:     gauss.DefaultNewtonTol,
		NewtonMaxIter: gauss.DefaultNewtonMaxIter,
		Method:        gauss.MethodNewton.String(),
	}
}

// loadRunConfig decodes the YAML file at path over base. Unknown keys are
// rejected; an empty file leaves base unchanged.
func loadRunConfig(path string, base runConfig) (runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}

	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// bindFlags registers the run flags on fs, writing into v.
func bindFlags(fs *pflag.FlagSet, v *runConfig, a, b *float64, configPath *string) {
	d := defaultRunConfig()
	fs.StringVar(configPath, "config", "", "YAML file with run settings (flags override it)")
	fs.StringVar(&v.Problem, "problem", d.Problem, "catalog problem to integrate")
	fs.Float64Var(a, "a", 0, "lower bound (default: problem interval)")
	fs.Float64Var(b, "b", 0, "upper bound (default: problem interval)")
	fs.Float64Var(&v.Tol, "tol", d.Tol, "stop when the relative error is below this")
	fs.IntVar(&v.StartOrder, "start-order", d.StartOrder, "first number of points")
	fs.IntVar(&v.MaxOrder, "max-order", d.MaxOrder, "last number of points tried")
	fs.Float64Var(&v.NewtonTol, "newton-tol", d.NewtonTol, "Newton step tolerance")
	fs.IntVar(&v.NewtonMaxIter, "newton-max-iter", d.NewtonMaxIter, "Newton iteration cap per root")
	fs.StringVar(&v.Method, "method", d.Method, "node solver: newton or golub-welsch")
	fs.BoolVar(&v.Cache, "cache", d.Cache, "reuse rules across orders")
	fs.DurationVar(&v.Timeout, "timeout", d.Timeout, "overall deadline, 0 for none")
	fs.StringVar(&v.CSV, "csv", d.CSV, "write the trace as CSV to this file")
	fs.StringVar(&v.PlotDir, "plot-dir", d.PlotDir, "write convergence.png and error.png here")
}

// overrideFromFlags copies every explicitly set flag from src into dst.
func overrideFromFlags(fs *pflag.FlagSet, dst *runConfig, src runConfig, a, b float64) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "problem":
			dst.Problem = src.Problem
		case "a":
			dst.A = &a
		case "b":
			dst.B = &b
		case "tol":
			dst.Tol = src.Tol
		case "start-order":
			dst.StartOrder = src.StartOrder
		case "max-order":
			dst.MaxOrder = src.MaxOrder
		case "newton-tol":
			dst.NewtonTol = src.NewtonTol
		case "newton-max-iter":
			dst.NewtonMaxIter = src.NewtonMaxIter
		case "method":
			dst.Method = src.Method
		case "cache":
			dst.Cache = src.Cache
		case "timeout":
			dst.Timeout = src.Timeout
		case "csv":
			dst.CSV = src.CSV
		case "plot-dir":
			dst.PlotDir = src.PlotDir
		}
	})
}

// problem resolves the catalog entry and the interval to integrate over.
func (c runConfig) problem() (problems.Problem, quad.Interval, error) {
	p, err := problems.Lookup(c.Problem)
	if err != nil {
		return problems.Problem{}, quad.Interval{}, err
	}
	iv := p.Interval()
	if c.A != nil {
		iv.A = *c.A
	}
	if c.B != nil {
		iv.B = *c.B
	}
	if err = iv.Validate(); err != nil {
		return problems.Problem{}, quad.Interval{}, err
	}

	return p, iv, nil
}

// driverOptions converts the config into validated converge.Options.
func (c runConfig) driverOptions() (converge.Options, error) {
	m, err := gauss.ParseMethod(c.Method)
	if err != nil {
		return converge.Options{}, err
	}
	if c.Timeout < 0 {
		return converge.Options{}, fmt.Errorf("timeout %v: must not be negative", c.Timeout)
	}

	o := converge.DefaultOptions()
	o.StartOrder = c.StartOrder
	o.MaxOrder = c.MaxOrder
	o.Tolerance = c.Tol
	o.Solver.Method = m
	o.Solver.NewtonTol = c.NewtonTol
	o.Solver.NewtonMaxIter = c.NewtonMaxIter
	if c.Cache {
		o.Cache = gauss.NewCache()
	}

	return o, o.Validate()
}
