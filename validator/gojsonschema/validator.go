// Package gojsonschema backs the csvschema validator SPI with
// github.com/xeipuuv/gojsonschema.
package gojsonschema

import (
	"context"
	"strings"

	gjs "github.com/xeipuuv/gojsonschema"

	csvschema "github.com/reoring/csvschema"
)

// New returns a Validator backed by xeipuuv/gojsonschema.
func New() csvschema.Validator { return backend{} }

type backend struct{}

func (backend) Name() string { return "gojsonschema" }

func (backend) Compile(s *csvschema.Schema) (csvschema.CompiledSchema, error) {
	doc, err := s.ConstraintsDocument()
	if err != nil {
		return nil, err
	}
	sch, err := gjs.NewSchema(gjs.NewBytesLoader(doc))
	if err != nil {
		return nil, err
	}
	return &compiled{sch: sch}, nil
}

type compiled struct{ sch *gjs.Schema }

func (c *compiled) Validate(ctx context.Context, rec csvschema.TypedRecord) csvschema.Issues {
	res, err := c.sch.Validate(gjs.NewGoLoader(map[string]any(rec)))
	if err != nil {
		return csvschema.Issues{{Path: "/", Code: csvschema.CodeViolation, Message: err.Error(), Cause: err}}
	}
	if res.Valid() {
		return nil
	}
	var iss csvschema.Issues
	for _, re := range res.Errors() {
		iss = csvschema.AppendIssues(iss, csvschema.Issue{
			Path:    fieldPath(re.Field()),
			Code:    codeForType(re.Type()),
			Message: re.Description(),
		})
	}
	return iss
}

func fieldPath(field string) string {
	if field == "" || field == "(root)" {
		return "/"
	}
	return "/" + strings.ReplaceAll(field, ".", "/")
}

func codeForType(typ string) string {
	switch typ {
	case "required":
		return csvschema.CodeRequired
	case "invalid_type":
		return csvschema.CodeInvalidType
	}
	return csvschema.CodeViolation
}
