package csvschema

import (
	"errors"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/csvschema/i18n"
)

// TypedRecord maps field names to coerced values. Values are one of string,
// bool, nil, json.Number (or float64 under NumberFloat64).
type TypedRecord map[string]any

var (
	errTrailingData     = errors.New("trailing data after value")
	errCompositeLiteral = errors.New("composite literal in cell")
)

// CoerceField converts one raw CSV cell into a typed value.
//
// A column declared string is wrapped in quotes and parsed as exactly one
// JSON string; it never goes through literal interpretation, so
// numeric-looking text such as "0042" stays textual. Any other column (a
// non-string declared type, or no schema entry at all) is parsed as one bare
// JSON literal first, falling back to the quoted-string path when that
// fails. When both parses fail the returned error carries a coercion issue
// and the caller omits the field.
func CoerceField(raw string, ft FieldType, opts ...CoerceOpt) (any, error) {
	var opt CoerceOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, _, err := coerceCell(raw, ft, opt)
	return v, err
}

// coerceCell additionally reports whether the quoted-string fallback was
// taken, for presence metadata.
func coerceCell(raw string, ft FieldType, opt CoerceOpt) (any, bool, error) {
	if ft == FieldString {
		s, err := parseQuoted(raw)
		if err != nil {
			return nil, false, coercionIssue(raw, err)
		}
		return s, false, nil
	}
	if v, err := parseLiteral(raw, opt.NumberMode); err == nil {
		return v, false, nil
	}
	s, err := parseQuoted(raw)
	if err != nil {
		return nil, true, coercionIssue(raw, err)
	}
	return s, true, nil
}

// parseQuoted wraps raw in double quotes and parses it as exactly one JSON
// string. Text containing unescaped quotes or backslashes fails here.
func parseQuoted(raw string) (string, error) {
	var s string
	if err := json.Unmarshal([]byte(`"`+raw+`"`), &s); err != nil {
		return "", err
	}
	return s, nil
}

// parseLiteral parses raw as exactly one bare JSON literal. Anything after
// the first value is an error, never silently ignored.
func parseLiteral(raw string, mode NumberMode) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	if mode == NumberJSONNumber {
		dec.UseNumber()
	}
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errTrailingData
	}
	// Typed records hold scalars only. A cell spelling out an array or object
	// falls back to the quoted-string path like any other unparsable literal.
	switch v.(type) {
	case map[string]any, []any:
		return nil, errCompositeLiteral
	}
	return v, nil
}

func coercionIssue(raw string, cause error) Issues {
	return Issues{{
		Code:    CodeCoercion,
		Message: i18n.T(CodeCoercion, map[string]string{"value": raw}),
		Hint:    raw,
		Cause:   cause,
	}}
}
