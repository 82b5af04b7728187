package csvschema_test

import (
	"encoding/json"
	"testing"

	csvschema "github.com/reoring/csvschema"
)

func mustSchema(t *testing.T, doc string) *csvschema.Schema {
	t.Helper()
	s, err := csvschema.ParseSchema([]byte(doc))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return s
}

func TestAssembleRecord_TypedByColumn(t *testing.T) {
	s := mustSchema(t, userSchemaJSON)
	rec, iss := csvschema.AssembleRecord([]string{"id", "name"}, []string{"2", "007"}, s)
	if len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if rec["id"] != json.Number("2") {
		t.Fatalf("id = %#v", rec["id"])
	}
	// "007" sits in a string column; it must survive as text
	if rec["name"] != "007" {
		t.Fatalf("name = %#v", rec["name"])
	}
}

func TestAssembleRecord_RaggedRowsZipToShorterLength(t *testing.T) {
	s := mustSchema(t, userSchemaJSON)

	rec, iss := csvschema.AssembleRecord([]string{"id", "name"}, []string{"1"}, s)
	if len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if len(rec) != 1 || rec["id"] != json.Number("1") {
		t.Fatalf("short row: %#v", rec)
	}

	rec, _ = csvschema.AssembleRecord([]string{"id"}, []string{"1", "overflow"}, s)
	if len(rec) != 1 {
		t.Fatalf("long row must be truncated to the header: %#v", rec)
	}
}

func TestAssembleRecord_UnknownColumnStillCoerced(t *testing.T) {
	s := mustSchema(t, userSchemaJSON)
	rec, iss := csvschema.AssembleRecord([]string{"id", "nick"}, []string{"1", "Bobby"}, s)
	if len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if rec["nick"] != "Bobby" {
		t.Fatalf("nick = %#v", rec["nick"])
	}
}

func TestAssembleRecord_FailedCellOmitted(t *testing.T) {
	s := mustSchema(t, userSchemaJSON)
	rec, iss := csvschema.AssembleRecord([]string{"id", "name"}, []string{"1", `he said "hi"`}, s)
	if _, ok := rec["name"]; ok {
		t.Fatalf("failed field must be omitted, not substituted: %#v", rec["name"])
	}
	if rec["id"] != json.Number("1") {
		t.Fatalf("other fields must be unaffected: %#v", rec)
	}
	if len(iss) != 1 || iss[0].Path != "/name" || iss[0].Code != csvschema.CodeCoercion {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestAssembleRecordWithMeta_Presence(t *testing.T) {
	s := mustSchema(t, userSchemaJSON)
	header := []string{"id", "name", "nick"}
	row := []string{"abc", `he said "hi"`, "Bobby"}
	ar, _ := csvschema.AssembleRecordWithMeta(header, row, s)

	// "abc" in the integer column fell back to the quoted-string path
	if p := ar.Presence["id"]; p&csvschema.PresenceDeclared == 0 || p&csvschema.PresenceFallback == 0 {
		t.Fatalf("id presence = %b", p)
	}
	if p := ar.Presence["name"]; p&csvschema.PresenceOmitted == 0 {
		t.Fatalf("name presence = %b", p)
	}
	// unknown column: seen, not declared
	if p := ar.Presence["nick"]; p&csvschema.PresenceSeen == 0 || p&csvschema.PresenceDeclared != 0 {
		t.Fatalf("nick presence = %b", p)
	}
}
