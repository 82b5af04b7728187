package csvschema

// Package csvschema validates tabular (CSV) records against a declarative
// JSON object schema. It provides:
//
// - A Schema model with a closed set of primitive column types
// - Field coercion from untyped CSV cells into typed values (string-declared
//   columns never go through numeric interpretation)
// - Record assembly from a header row plus one data row into a TypedRecord
// - A pluggable constraint-evaluation SPI (Validator/CompiledSchema) with
//   backends under validator/
// - A Runner that streams rows, aggregates pass/fail counts, and emits
//   human-readable diagnostics
//
// Design policy:
// - Keep only public APIs in the root package; put backends under validator/
//   and row sources under source/.
// - Place the CLI under cmd/jsv.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  s, err := csvschema.LoadSchemaFile("./schema.json")
//  r, err := csvschema.NewRunner(s, jsonschemav5.New())
//  sum, err := r.Run(ctx, csvrow.NewReader(f))
//
