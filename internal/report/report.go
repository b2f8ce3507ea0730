// Package report persists per-line scan results as a human-readable run
// log. The core never writes anything itself; the command hands each Result
// to a Writer and the Writer owns all formatting.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkarlsen/plifront"
)

// Writer formats scan results into a run log. Lines must be reported in
// source order; the trailing summary counts whatever was reported.
type Writer struct {
	w      io.Writer
	runID  uuid.UUID
	now    func() time.Time
	counts map[plifront.Verdict]int
	total  int
}

// NewWriter creates a Writer emitting to w. Each Writer gets a fresh run ID
// so separate runs can be told apart in appended logs.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:      w,
		runID:  uuid.New(),
		now:    time.Now,
		counts: make(map[plifront.Verdict]int),
	}
}

// RunID returns the identifier stamped on this run's header.
func (w *Writer) RunID() uuid.UUID {
	return w.runID
}

// Begin writes the run header for the given input path.
func (w *Writer) Begin(input string) error {
	_, err := fmt.Fprintf(w.w, "plifront run %s\ninput: %s\nstarted: %s\n\n",
		w.runID, input, w.now().Format(time.RFC3339))
	return err
}

// Line writes one row for a scanned source line and counts it toward the
// summary.
func (w *Writer) Line(res plifront.Result) error {
	w.counts[res.Verdict]++
	w.total++

	row := fmt.Sprintf("line %4d  %-19s", res.LineNumber, res.Verdict)
	if len(res.Tokens) > 0 {
		parts := make([]string, len(res.Tokens))
		for i, tok := range res.Tokens {
			parts[i] = fmt.Sprintf("%s(%s)", tok.Text, tok.Category)
		}
		row += "  " + strings.Join(parts, " ")
	}
	if res.Fault != nil {
		row += "  fault: " + res.Fault.Error()
	}

	_, err := fmt.Fprintln(w.w, row)
	return err
}

// Finish writes the per-verdict summary block. The Writer can be reused for
// another run after Begin is called again.
func (w *Writer) Finish() error {
	_, err := fmt.Fprintf(w.w, "\n%d lines: %d blank, %d plain, %d valid directives, %d malformed\n",
		w.total,
		w.counts[plifront.Blank],
		w.counts[plifront.PlainLine],
		w.counts[plifront.ValidDirectiveLine],
		w.counts[plifront.MalformedDirectiveLine])
	if err != nil {
		return err
	}
	w.counts = make(map[plifront.Verdict]int)
	w.total = 0
	return nil
}
