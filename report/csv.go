package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvquad/converge"
)

// csvHeader is the first row written by WriteCSV.
var csvHeader = []string{"n", "estimate", "relative_error"}

// WriteCSV writes the trace as CSV with a header row. Floats use the shortest
// representation that round-trips.
func WriteCSV(w io.Writer, trace converge.Trace) error {
	if trace.Len() == 0 {
		return ErrEmptyTrace
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: csv: %w", err)
	}
	for _, r := range trace {
		row := []string{
			strconv.Itoa(r.Order),
			strconv.FormatFloat(r.Estimate, 'g', -1, 64),
			strconv.FormatFloat(r.Error, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: csv: %w", err)
	}

	return nil
}
