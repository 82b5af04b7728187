// Package jsonschemav5 backs the csvschema validator SPI with
// github.com/santhosh-tekuri/jsonschema/v5.
package jsonschemav5

import (
	"context"
	"errors"
	"strings"

	jschema "github.com/santhosh-tekuri/jsonschema/v5"

	csvschema "github.com/reoring/csvschema"
)

// New returns a Validator backed by jsonschema/v5. The schema document is
// compiled once; compiled schemas are safe for reuse across records.
func New() csvschema.Validator { return backend{} }

type backend struct{}

func (backend) Name() string { return "jsonschema/v5" }

func (backend) Compile(s *csvschema.Schema) (csvschema.CompiledSchema, error) {
	doc, err := s.ConstraintsDocument()
	if err != nil {
		return nil, err
	}
	sch, err := jschema.CompileString("schema.json", string(doc))
	if err != nil {
		return nil, err
	}
	return &compiled{sch: sch}, nil
}

type compiled struct{ sch *jschema.Schema }

func (c *compiled) Validate(ctx context.Context, rec csvschema.TypedRecord) csvschema.Issues {
	err := c.sch.Validate(map[string]any(rec))
	if err == nil {
		return nil
	}
	var ve *jschema.ValidationError
	if !errors.As(err, &ve) {
		return csvschema.Issues{{Path: "/", Code: csvschema.CodeViolation, Message: err.Error(), Cause: err}}
	}
	var iss csvschema.Issues
	collectLeaves(ve, &iss)
	return iss
}

// collectLeaves flattens the cause tree; interior nodes only restate that
// children failed.
func collectLeaves(ve *jschema.ValidationError, iss *csvschema.Issues) {
	if len(ve.Causes) == 0 {
		*iss = csvschema.AppendIssues(*iss, csvschema.Issue{
			Path:    instancePath(ve.InstanceLocation),
			Code:    codeForKeyword(ve.KeywordLocation),
			Message: ve.Message,
		})
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, iss)
	}
}

func instancePath(loc string) string {
	if loc == "" {
		return "/"
	}
	return loc
}

func codeForKeyword(loc string) string {
	seg := loc
	if i := strings.LastIndexByte(loc, '/'); i >= 0 {
		seg = loc[i+1:]
	}
	switch seg {
	case "type":
		return csvschema.CodeInvalidType
	case "required":
		return csvschema.CodeRequired
	}
	return csvschema.CodeViolation
}
