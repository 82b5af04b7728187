package csvschema

// Presence is a bit flag describing how a column fared during assembly.
type Presence uint8

const (
	PresenceSeen     Presence = 1 << iota // Cell appeared in the row.
	PresenceDeclared                      // Column has a schema entry.
	PresenceFallback                      // Literal parse failed; quoted-string fallback used.
	PresenceOmitted                       // Coercion failed; field left out of the record.
)

// PresenceMap maps column names to Presence flags.
type PresenceMap map[string]Presence

// AssembledRecord carries a typed record along with its assembly metadata.
type AssembledRecord struct {
	Fields   TypedRecord
	Presence PresenceMap
}
