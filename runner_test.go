package csvschema_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	csvschema "github.com/reoring/csvschema"
	"github.com/reoring/csvschema/source/csvrow"
	"github.com/reoring/csvschema/validator/jsonschemav5"
)

func newTestRunner(t *testing.T, doc string) (*csvschema.Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	s := mustSchema(t, doc)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r, err := csvschema.NewRunner(s, jsonschemav5.New(), csvschema.RunOpt{Out: out, ErrOut: errOut})
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return r, out, errOut
}

func TestRun_AllRecordsValid(t *testing.T) {
	r, out, _ := newTestRunner(t, userSchemaJSON)
	data := "id,name\n1,Alice\n2,007\n"
	sum, err := r.Run(context.Background(), csvrow.NewBytes([]byte(data)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != (csvschema.Summary{Success: 2}) {
		t.Fatalf("summary = %+v", sum)
	}
	if !strings.Contains(out.String(), "column types: id=integer name=string") {
		t.Fatalf("missing column-type summary: %q", out.String())
	}
	if !strings.Contains(out.String(), "2 records valid, 0 invalid, 0 skipped") {
		t.Fatalf("missing final counts: %q", out.String())
	}
}

func TestRun_InvalidRecordCountedAndReported(t *testing.T) {
	r, _, errOut := newTestRunner(t, userSchemaJSON)
	data := "id,name\nabc,Bob\n2,Carol\n"
	sum, err := r.Run(context.Background(), csvrow.NewBytes([]byte(data)))
	if sum.Success != 1 || sum.Errors != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	var ire *csvschema.InvalidRecordsError
	if !errors.As(err, &ire) || ire.Count != 1 {
		t.Fatalf("expected InvalidRecordsError{1}, got %v", err)
	}
	// violations are tagged with the 1-based record index
	if !strings.Contains(errOut.String(), "record 1: /id") {
		t.Fatalf("diagnostics = %q", errOut.String())
	}
	if strings.Contains(errOut.String(), "record 2:") {
		t.Fatalf("valid record must not be reported: %q", errOut.String())
	}
}

func TestRun_MissingRequiredField(t *testing.T) {
	r, _, errOut := newTestRunner(t, userSchemaJSON)
	// the short row never assembles a name field; the validator then flags
	// the record for the missing required property
	data := "id,name\n1\n"
	sum, err := r.Run(context.Background(), csvrow.NewBytes([]byte(data)))
	if sum.Success != 0 || sum.Errors != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	var ire *csvschema.InvalidRecordsError
	if !errors.As(err, &ire) {
		t.Fatalf("expected InvalidRecordsError, got %v", err)
	}
	if !strings.Contains(errOut.String(), "record 1") {
		t.Fatalf("diagnostics = %q", errOut.String())
	}
}

func TestRun_MalformedRowSkippedNotFatal(t *testing.T) {
	r, _, errOut := newTestRunner(t, userSchemaJSON)
	data := "id,name\n1,Alice\n2,\"Bo\"b\n3,Carol\n"
	sum, err := r.Run(context.Background(), csvrow.NewBytes([]byte(data)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Success != 2 || sum.Skipped != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if !strings.Contains(errOut.String(), "record 2") {
		t.Fatalf("skipped row must be logged with its index: %q", errOut.String())
	}
}

func TestRun_HeaderPropertyCountMismatchWarns(t *testing.T) {
	r, _, errOut := newTestRunner(t, userSchemaJSON)
	data := "id,name,extra\n1,Alice,x\n"
	sum, err := r.Run(context.Background(), csvrow.NewBytes([]byte(data)))
	if err != nil {
		t.Fatalf("a mismatch is a warning, not an abort: %v", err)
	}
	if sum.Success != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if !strings.Contains(errOut.String(), "warning: there are 3 columns but 2 properties") {
		t.Fatalf("missing warning: %q", errOut.String())
	}
}

func TestRun_HeaderReadFailureIsSetupError(t *testing.T) {
	r, _, _ := newTestRunner(t, userSchemaJSON)
	_, err := r.Run(context.Background(), csvrow.NewBytes(nil))
	if err == nil {
		t.Fatalf("expected error for empty input")
	}
	var ire *csvschema.InvalidRecordsError
	if errors.As(err, &ire) {
		t.Fatalf("header failure must not be a validation outcome: %v", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	data := "id,name\nabc,Bob\n2,Carol\n"

	run := func() (csvschema.Summary, string, string) {
		r, out, errOut := newTestRunner(t, userSchemaJSON)
		sum, _ := r.Run(context.Background(), csvrow.NewBytes([]byte(data)))
		return sum, out.String(), errOut.String()
	}

	sum1, out1, err1 := run()
	sum2, out2, err2 := run()
	if sum1 != sum2 || out1 != out2 || err1 != err2 {
		t.Fatalf("runs differ:\n%+v %q %q\n%+v %q %q", sum1, out1, err1, sum2, out2, err2)
	}
}

func TestNewRunner_UsesRegisteredDefault(t *testing.T) {
	csvschema.SetValidator(jsonschemav5.New())
	s := mustSchema(t, userSchemaJSON)
	if _, err := csvschema.NewRunner(s, nil); err != nil {
		t.Fatalf("expected registered default to be used: %v", err)
	}
}
