package csvschema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/csvschema/i18n"
)

// FieldType enumerates the primitive kinds a column may declare. The set is
// closed: composite kinds (object, arrays, nested schemas) are rejected when
// the schema is loaded, not when records are validated.
type FieldType string

const (
	FieldNone    FieldType = ""
	FieldString  FieldType = "string"
	FieldInteger FieldType = "integer"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldNull    FieldType = "null"
)

// Supported reports whether t is one of the primitive kinds a column may
// declare. FieldNone is not a declarable kind; it only marks the absence of a
// schema entry for a column.
func (t FieldType) Supported() bool {
	switch t {
	case FieldString, FieldInteger, FieldNumber, FieldBoolean, FieldNull:
		return true
	}
	return false
}

// FieldSpec describes one column of the schema document.
type FieldSpec struct {
	ID          string    `json:"$id"`
	Type        FieldType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// Schema is the parsed, immutable representation of the object schema.
// Lookups are exact-match only; keys are case-sensitive.
type Schema struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Examples    []any                `json:"examples"`
	Required    []string             `json:"required"`
	Properties  map[string]FieldSpec `json:"properties"`

	raw []byte
}

// ParseSchema decodes a JSON schema document. Properties declaring a type
// outside the supported set are reported in one aggregated error naming every
// offending field, so a schema author can fix all of them in one pass.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, Issues{{Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	if s.Properties == nil {
		return nil, Issues{{Code: CodeParseError, Message: "schema document has no properties"}}
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var iss Issues
	for _, name := range names {
		spec := s.Properties[name]
		if spec.Type.Supported() {
			continue
		}
		iss = AppendIssues(iss, Issue{
			Path: "/" + name,
			Code: CodeUnsupportedType,
			Message: fmt.Sprintf("field definition for %q has illegal type %q; supported types are integer, string, number, boolean and null",
				name, string(spec.Type)),
			Params: map[string]any{"field": name, "type": string(spec.Type)},
		})
	}
	if len(iss) > 0 {
		return nil, iss
	}

	s.raw = append([]byte(nil), data...)
	return &s, nil
}

// LoadSchemaFile reads and parses a schema document from disk. Files ending
// in .yaml/.yml take the YAML path; everything else is treated as JSON.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Issues{{
			Code:    CodeParseError,
			Message: fmt.Sprintf("failed to open schema file (%s)", path),
			Cause:   err,
		}}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseSchemaYAML(data)
	default:
		return ParseSchema(data)
	}
}

// FieldTypeOf returns the declared type for a column, or FieldNone when the
// schema has no entry for it.
func (s *Schema) FieldTypeOf(name string) FieldType {
	if spec, ok := s.Properties[name]; ok {
		return spec.Type
	}
	return FieldNone
}

// Document returns the JSON document the schema was parsed from.
func (s *Schema) Document() []byte { return s.raw }

// ConstraintsDocument projects the schema into the JSON document constraint
// backends compile: the declared column types plus the required set.
// Annotation keywords ($id, titles, descriptions, examples) are stripped so
// any draft-conformant backend can compile the result.
func (s *Schema) ConstraintsDocument() ([]byte, error) {
	type prop struct {
		Type FieldType `json:"type"`
	}
	doc := struct {
		Type       string          `json:"type"`
		Required   []string        `json:"required,omitempty"`
		Properties map[string]prop `json:"properties"`
	}{
		Type:       "object",
		Required:   s.Required,
		Properties: make(map[string]prop, len(s.Properties)),
	}
	for name, spec := range s.Properties {
		doc.Properties[name] = prop{Type: spec.Type}
	}
	return json.Marshal(doc)
}
