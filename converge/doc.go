// Package converge drives Gauss–Legendre quadrature to a target accuracy.
//
// Starting from StartOrder (default 1) the driver repeatedly
//
//	solves the n-point reference rule (package gauss),
//	maps it onto [a, b] and integrates f (package quad),
//	compares the estimate with a caller-supplied reference value,
//	appends (n, estimate, relative error) to the trace,
//
// and stops as soon as one of the terminal states is reached:
//
//	Initializing ──► Iterating ──► Converged   error < Tolerance
//	                    │  ▲   ├──► Exhausted   n ≥ MaxOrder, or ctx done
//	                    └──┘   └──► Failed      solver did not converge
//	                   n = n+1
//
// Converged, Exhausted and Failed all return the full trace. Exhausted and
// Failed are partial results, not errors: Run returns err == nil and puts the
// reason in Result.Warning, together with the best estimate found so far.
// Run returns an error only when the run cannot start: an invalid interval
// (quad.ErrInvalidInterval), a non-finite reference (ErrReferenceUndefined) or
// invalid options (ErrBadOptions).
//
// The relative error is |estimate − reference| / |reference|; a zero reference
// falls back to the absolute error |estimate|.
//
// The driver never logs unless given a *slog.Logger via WithLogger.
package converge
