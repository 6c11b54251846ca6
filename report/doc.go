// Package report renders a converge.Result for people and other tools.
//
// 🚀 What it writes
//
//   - Table: one line per iteration, "N = 5, integral ≈ ..., error = ...".
//   - Summary: final order, estimate, exact value, error and status.
//   - WriteCSV: n,estimate,relative_error rows for spreadsheets.
//   - PlotConvergence / PlotError: PNG charts via gonum/plot.
//
// ⚙️ Errors
//
// Every writer returns ErrEmptyTrace for a trace with no records, and passes
// I/O errors through wrapped with %w.
package report
