package converge

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvquad/gauss"
)

// Sentinel errors.
var (
	// ErrReferenceUndefined indicates a NaN or ±Inf reference value.
	ErrReferenceUndefined = errors.New("converge: reference value is not finite")

	// ErrBadOptions indicates inconsistent driver options.
	ErrBadOptions = errors.New("converge: invalid options")

	// ErrExhausted is the warning attached to a run that stopped before
	// reaching Tolerance (MaxOrder reached or the context ended).
	ErrExhausted = errors.New("converge: tolerance not reached")
)

// Status is the driver state; Result.Status is always one of the terminal
// states Converged, Exhausted or Failed.
type Status int

const (
	// StatusInitializing: options, interval and reference are being validated.
	StatusInitializing Status = iota
	// StatusIterating: computing records for increasing n.
	StatusIterating
	// StatusConverged: the last record met Tolerance.
	StatusConverged
	// StatusExhausted: MaxOrder reached (or ctx done) without meeting Tolerance.
	StatusExhausted
	// StatusFailed: the node/weight solver reported a convergence failure.
	StatusFailed
)

// String returns the lower-case state name.
func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusIterating:
		return "iterating"
	case StatusConverged:
		return "converged"
	case StatusExhausted:
		return "exhausted"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether s ends a run.
func (s Status) Terminal() bool {
	return s == StatusConverged || s == StatusExhausted || s == StatusFailed
}

// Record is one iteration of the driver.
type Record struct {
	Order    int     // number of quadrature points n
	Estimate float64 // Σ w_i·f(x_i) on [a, b]
	Error    float64 // relative error (absolute when the reference is 0), ≥ 0
}

// Trace is the ordered list of records of one run, by increasing Order.
type Trace []Record

// Len returns the number of records.
func (t Trace) Len() int { return len(t) }

// Last returns the final record and false if the trace is empty.
func (t Trace) Last() (Record, bool) {
	if len(t) == 0 {
		return Record{}, false
	}

	return t[len(t)-1], true
}

// Best returns the record with the smallest error, preferring the lowest
// order on ties; NaN errors are skipped. false if no record qualifies.
func (t Trace) Best() (Record, bool) {
	var (
		best  Record
		found bool
	)
	for _, r := range t {
		if math.IsNaN(r.Error) {
			continue
		}
		if !found || r.Error < best.Error {
			best, found = r, true
		}
	}

	return best, found
}

// Orders returns the n column.
func (t Trace) Orders() []int {
	out := make([]int, len(t))
	for i, r := range t {
		out[i] = r.Order
	}

	return out
}

// Estimates returns the estimate column.
func (t Trace) Estimates() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.Estimate
	}

	return out
}

// Errors returns the error column.
func (t Trace) Errors() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.Error
	}

	return out
}

// Result is the outcome of Run.
type Result struct {
	Status    Status
	Trace     Trace   // snapshot; owned by the caller
	Best      Record  // smallest-error record (zero value if Trace is empty)
	Reference float64 // the reference value the errors were measured against
	Warning   error   // nil when Converged; ErrExhausted or a gauss error otherwise
}

// Converged reports whether the run met its tolerance.
func (r Result) Converged() bool { return r.Status == StatusConverged }

// Defaults for Options.
const (
	DefaultStartOrder = 1
	DefaultMaxOrder   = 200
	DefaultTolerance  = 1e-10
)

// Options configures Run.
//
//   - StartOrder: first n (≥ 1).
//   - MaxOrder:   last n tried (≥ StartOrder).
//   - Tolerance:  stop when the error drops strictly below it (finite, > 0).
//   - Solver:     node/weight method and Newton settings (gauss.Options).
//   - Cache:      optional rule memo shared across runs; nil recomputes every n.
//   - Logger:     structured logger; nil discards.
//   - OnRecord:   optional hook called after each record is appended.
type Options struct {
	StartOrder int
	MaxOrder   int
	Tolerance  float64
	Solver     gauss.Options
	Cache      *gauss.Cache
	Logger     *slog.Logger
	OnRecord   func(Record)
}

// Option is a functional setter for Options.
type Option func(*Options)

// DefaultOptions returns StartOrder 1, MaxOrder 200, Tolerance 1e-10 and the
// gauss defaults (Newton, 1e-14, 100 steps).
func DefaultOptions() Options {
	return Options{
		StartOrder: DefaultStartOrder,
		MaxOrder:   DefaultMaxOrder,
		Tolerance:  DefaultTolerance,
		Solver:     gauss.DefaultOptions(),
	}
}

// WithStartOrder sets the first order. Panics if n < 1.
func WithStartOrder(n int) Option {
	if n < 1 {
		panic("converge: WithStartOrder: order must be >= 1")
	}

	return func(o *Options) { o.StartOrder = n }
}

// WithMaxOrder sets the order cap. Panics if n < 1.
func WithMaxOrder(n int) Option {
	if n < 1 {
		panic("converge: WithMaxOrder: order must be >= 1")
	}

	return func(o *Options) { o.MaxOrder = n }
}

// WithTolerance sets the target error. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("converge: WithTolerance: tolerance must be finite and > 0")
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithNewtonTol sets the Newton step tolerance of the solver.
func WithNewtonTol(tol float64) Option {
	set := gauss.WithNewtonTol(tol)

	return func(o *Options) { set(&o.Solver) }
}

// WithNewtonMaxIter sets the Newton iteration cap of the solver.
func WithNewtonMaxIter(n int) Option {
	set := gauss.WithNewtonMaxIter(n)

	return func(o *Options) { set(&o.Solver) }
}

// WithMethod selects the node/weight algorithm.
func WithMethod(m gauss.Method) Option {
	return func(o *Options) { o.Solver.Method = m }
}

// WithCache memoizes rules across iterations and runs.
func WithCache(c *gauss.Cache) Option {
	return func(o *Options) { o.Cache = c }
}

// WithLogger routes driver logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnRecord installs a hook called with every appended record.
func WithOnRecord(fn func(Record)) Option {
	return func(o *Options) { o.OnRecord = fn }
}

// WithOptions replaces the whole configuration.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// gatherOptions applies opts over the defaults, fills the logger and validates.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o, o.Validate()
}

// Validate checks the option invariants.
func (o Options) Validate() error {
	if o.StartOrder < 1 {
		return fmt.Errorf("start order %d: %w", o.StartOrder, ErrBadOptions)
	}
	if o.MaxOrder < o.StartOrder {
		return fmt.Errorf("max order %d below start order %d: %w", o.MaxOrder, o.StartOrder, ErrBadOptions)
	}
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance <= 0 {
		return fmt.Errorf("tolerance %g: %w", o.Tolerance, ErrBadOptions)
	}
	if err := o.Solver.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadOptions, err)
	}

	return nil
}
