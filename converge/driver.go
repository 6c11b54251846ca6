package converge

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvquad/gauss"
	"github.com/katalvlaran/lvquad/quad"
)

// Run integrates f over iv with increasing Gauss–Legendre order until the
// error against reference drops below Tolerance.
//
// Contracts:
//   - iv must satisfy quad.Interval.Validate; reference must be finite.
//   - ctx is checked once per order; a done ctx ends the run as Exhausted.
//   - The returned Trace is owned by the caller.
//
// Errors (run never started, Result is empty):
//   - ErrBadOptions, quad.ErrInvalidInterval, ErrReferenceUndefined.
//
// Exhausted and Failed runs return err == nil with Result.Warning set.
//
// Complexity: O(Σ cost(Solve(n)) + Σ n) over the orders visited.
func Run(ctx context.Context, f quad.Func, iv quad.Interval, reference float64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = iv.Validate(); err != nil {
		return Result{}, err
	}
	if math.IsNaN(reference) || math.IsInf(reference, 0) {
		return Result{}, fmt.Errorf("reference %g: %w", reference, ErrReferenceUndefined)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d := &driver{
		opts:      o,
		f:         f,
		iv:        iv,
		reference: reference,
		state:     StatusInitializing,
		log:       o.Logger.With(slog.String("interval", iv.String()), slog.Float64("reference", reference)),
	}

	return d.run(ctx), nil
}

// traceCapHint bounds the initial trace allocation for very large MaxOrder.
const traceCapHint = 64

// driver holds the mutable state of one run.
type driver struct {
	opts      Options
	f         quad.Func
	iv        quad.Interval
	reference float64

	state   Status
	n       int
	trace   Trace
	warning error
	log     *slog.Logger
}

// run executes the state machine until a terminal state.
func (d *driver) run(ctx context.Context) Result {
	d.n = d.opts.StartOrder
	d.trace = make(Trace, 0, min(d.opts.MaxOrder-d.opts.StartOrder+1, traceCapHint))
	d.state = StatusIterating
	d.log.Debug("run started",
		slog.Int("start_order", d.opts.StartOrder),
		slog.Int("max_order", d.opts.MaxOrder),
		slog.Float64("tolerance", d.opts.Tolerance),
		slog.String("method", d.opts.Solver.Method.String()))

	for d.state == StatusIterating {
		d.step(ctx)
	}

	return d.result()
}

// step performs one order n and decides the next state.
func (d *driver) step(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		d.state = StatusExhausted
		d.warning = fmt.Errorf("stopped before order %d: %w (%w)", d.n, ErrExhausted, err)
		d.log.Warn("run interrupted", slog.Int("n", d.n), slog.Any("err", err))
		return
	}

	ref, err := d.solve(d.n)
	if err != nil {
		// Options were validated up front, so only numerical failures remain.
		d.state = StatusFailed
		d.warning = err
		d.log.Warn("solver failed", slog.Int("n", d.n), slog.Any("err", err))
		return
	}
	mapped, err := quad.Map(ref, d.iv)
	if err != nil {
		d.state = StatusFailed
		d.warning = err
		return
	}

	est := quad.Integrate(mapped, d.f)
	rec := Record{Order: d.n, Estimate: est, Error: d.errorOf(est)}
	d.trace = append(d.trace, rec)
	if d.opts.OnRecord != nil {
		d.opts.OnRecord(rec)
	}
	d.log.Debug("iteration", slog.Int("n", rec.Order), slog.Float64("estimate", rec.Estimate), slog.Float64("error", rec.Error))

	switch {
	case rec.Error < d.opts.Tolerance:
		d.state = StatusConverged
		d.log.Info("converged", slog.Int("n", rec.Order), slog.Float64("estimate", rec.Estimate), slog.Float64("error", rec.Error))
	case d.n >= d.opts.MaxOrder:
		d.state = StatusExhausted
		best, _ := d.trace.Best()
		d.warning = fmt.Errorf("max order %d reached, best error %.3g at n=%d: %w",
			d.opts.MaxOrder, best.Error, best.Order, ErrExhausted)
		d.log.Warn("max order reached", slog.Int("n", d.n), slog.Float64("best_error", best.Error))
	default:
		d.n++
	}
}

// solve returns the reference rule for n, through the cache when configured.
func (d *driver) solve(n int) (gauss.Rule, error) {
	if d.opts.Cache != nil {
		return d.opts.Cache.Solve(n, gauss.WithOptions(d.opts.Solver))
	}

	return gauss.Solve(n, gauss.WithOptions(d.opts.Solver))
}

// errorOf returns the relative error, or the absolute one when the reference is 0.
func (d *driver) errorOf(est float64) float64 {
	diff := math.Abs(est - d.reference)
	if d.reference == 0 {
		return diff
	}

	return diff / math.Abs(d.reference)
}

// result freezes the run into a caller-owned Result.
func (d *driver) result() Result {
	snapshot := make(Trace, len(d.trace))
	copy(snapshot, d.trace)
	best, _ := snapshot.Best()

	return Result{
		Status:    d.state,
		Trace:     snapshot,
		Best:      best,
		Reference: d.reference,
		Warning:   d.warning,
	}
}
