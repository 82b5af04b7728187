package csvschema

// NumberMode dictates how numeric literals are represented in typed records.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default).
	NumberFloat64                      // Convert to float64 (with potential precision loss).
)

// CoerceOpt bundles coercion options.
type CoerceOpt struct {
	NumberMode NumberMode
}
