package csvschema

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/csvschema/i18n"
)

// ParseSchemaYAML accepts the same document shape as ParseSchema, written in
// YAML. The node tree is normalized to a JSON document first so constraint
// backends always compile JSON.
func ParseSchemaYAML(data []byte) (*Schema, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, Issues{{Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	doc, err := json.Marshal(yamlStringKeys(node))
	if err != nil {
		return nil, Issues{{Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return ParseSchema(doc)
}

// yamlStringKeys rewrites map keys to strings so the tree marshals as a JSON
// object. Non-string keys are dropped.
func yamlStringKeys(v any) any {
	switch m := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(m))
		for k, vv := range m {
			out[k] = yamlStringKeys(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, vv := range m {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlStringKeys(vv)
		}
		return out
	case []any:
		for i := range m {
			m[i] = yamlStringKeys(m[i])
		}
		return m
	}
	return v
}
