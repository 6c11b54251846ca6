// Command lvquad integrates catalog problems with adaptive Gauss–Legendre
// quadrature and reports how the estimate converges.
//
// Usage:
//
//	lvquad run --problem poly-trig --tol 1e-10 --csv trace.csv --plot-dir out/
//	lvquad nodes 5 --method golub-welsch --a 1 --b 3
//	lvquad problems
//
// Exit status: 0 when the run converged, 2 when it stopped without reaching
// the tolerance (exhausted or failed), 1 on any other error.
package main

import (
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
