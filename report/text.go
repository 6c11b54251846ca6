package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvquad/converge"
)

// ErrEmptyTrace indicates a trace with no records.
var ErrEmptyTrace = errors.New("report: empty trace")

// Table writes one line per record.
func Table(w io.Writer, trace converge.Trace) error {
	if trace.Len() == 0 {
		return ErrEmptyTrace
	}
	for _, r := range trace {
		if _, err := fmt.Fprintf(w, "N = %d, integral ≈ %.12f, error = %.3e\n", r.Order, r.Estimate, r.Error); err != nil {
			return fmt.Errorf("report: table: %w", err)
		}
	}

	return nil
}

// Summary writes the final outcome of a run.
func Summary(w io.Writer, res converge.Result) error {
	last, ok := res.Trace.Last()
	if !ok {
		return ErrEmptyTrace
	}

	lines := []string{
		fmt.Sprintf("status:    %s", res.Status),
		fmt.Sprintf("points:    %d", last.Order),
		fmt.Sprintf("integral:  %.15g", last.Estimate),
		fmt.Sprintf("exact:     %.15g", res.Reference),
		fmt.Sprintf("error:     %.3e", last.Error),
	}
	if res.Best.Order != last.Order {
		lines = append(lines, fmt.Sprintf("best:      N = %d, error = %.3e", res.Best.Order, res.Best.Error))
	}
	if res.Warning != nil {
		lines = append(lines, fmt.Sprintf("warning:   %v", res.Warning))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("report: summary: %w", err)
		}
	}

	return nil
}
