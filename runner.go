package csvschema

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reoring/csvschema/i18n"
)

// RowSource abstracts a lazy, forward-only sequence of raw CSV rows. Next
// returns io.EOF when the source is exhausted; any other error is local to
// that row and reading may continue.
type RowSource interface {
	Next() ([]string, error)
}

// Summary aggregates the outcome of one validation pass. Counters live in
// this returned value, never in package state, so runs stay independently
// testable and idempotent.
type Summary struct {
	Success int // records accepted by the schema
	Errors  int // records rejected by the schema
	Skipped int // rows that could not be read at all
}

// RunOpt bundles runner options.
type RunOpt struct {
	Out        io.Writer // column-type summary and final counts; defaults to os.Stdout
	ErrOut     io.Writer // per-row and per-field diagnostics; defaults to os.Stderr
	NumberMode NumberMode
}

// InvalidRecordsError is the run-level outcome when one or more records
// failed validation. Setup problems surface as ordinary errors; callers can
// tell the two apart with errors.As.
type InvalidRecordsError struct {
	Count int
}

func (e *InvalidRecordsError) Error() string {
	return fmt.Sprintf("%d record(s) failed validation", e.Count)
}

// Runner drives assembly and validation over a row source.
type Runner struct {
	schema   *Schema
	compiled CompiledSchema
	opt      RunOpt
}

// NewRunner compiles the schema with the given validator backend, or with
// the registered default when v is nil. Compilation failure is a setup
// error: no record is processed.
func NewRunner(s *Schema, v Validator, opts ...RunOpt) (*Runner, error) {
	if v == nil {
		v = DefaultValidator()
	}
	if v == nil {
		return nil, errors.New("csvschema: no validator backend registered")
	}
	cs, err := v.Compile(s)
	if err != nil {
		return nil, fmt.Errorf("compile schema with %s: %w", v.Name(), err)
	}
	var opt RunOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.ErrOut == nil {
		opt.ErrOut = os.Stderr
	}
	return &Runner{schema: s, compiled: cs, opt: opt}, nil
}

// Run consumes the source to exhaustion in a single sequential pass. The
// first row is the header. Malformed rows are logged and skipped; field
// coercion failures and constraint violations are printed per record,
// tagged with the 1-based record index. The returned error is nil when
// every readable record was accepted, and an InvalidRecordsError otherwise;
// a failure to read the header surfaces as a plain setup error.
func (r *Runner) Run(ctx context.Context, src RowSource) (Summary, error) {
	var sum Summary

	header, err := src.Next()
	if err != nil {
		return sum, fmt.Errorf("failed to read header row: %w", err)
	}
	if len(header) != len(r.schema.Properties) {
		fmt.Fprintf(r.opt.ErrOut, "warning: there are %d columns but %d properties in the schema\n",
			len(header), len(r.schema.Properties))
	}
	fmt.Fprintln(r.opt.Out, columnTypeSummary(header, r.schema))

	co := CoerceOpt{NumberMode: r.opt.NumberMode}
	for i := 1; ; i++ {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			sum.Skipped++
			fmt.Fprintf(r.opt.ErrOut, "record %d: %s: %v\n", i, i18n.T(CodeMalformedRow, nil), err)
			continue
		}

		rec, iss := AssembleRecord(header, row, r.schema, co)
		for _, it := range iss {
			fmt.Fprintf(r.opt.ErrOut, "record %d: %s: %s\n", i, it.Path, it.Message)
		}

		viol := r.compiled.Validate(ctx, rec)
		if len(viol) == 0 {
			sum.Success++
			continue
		}
		sum.Errors++
		for _, it := range viol {
			fmt.Fprintf(r.opt.ErrOut, "record %d: %s: %s\n", i, it.Path, it.Message)
		}
	}

	fmt.Fprintf(r.opt.Out, "%d records valid, %d invalid, %d skipped\n", sum.Success, sum.Errors, sum.Skipped)
	if sum.Errors > 0 {
		return sum, &InvalidRecordsError{Count: sum.Errors}
	}
	return sum, nil
}

// columnTypeSummary renders the declared type of each column in header
// order.
func columnTypeSummary(header []string, s *Schema) string {
	b := &strings.Builder{}
	b.WriteString("column types:")
	for _, name := range header {
		ft := s.FieldTypeOf(name)
		if ft == FieldNone {
			fmt.Fprintf(b, " %s=<none>", name)
			continue
		}
		fmt.Fprintf(b, " %s=%s", name, ft)
	}
	return b.String()
}
