// Package csvrow adapts encoding/csv readers to the csvschema.RowSource
// interface.
package csvrow

import (
	"bytes"
	"encoding/csv"
	"io"
)

// Reader streams rows from CSV input one at a time; the whole file is never
// materialized. Ragged rows are allowed so assembly can zip against the
// shorter side; a quoting error is returned for that row only and the
// stream continues with the next line.
type Reader struct {
	cr *csv.Reader
}

// NewReader wraps an io.Reader producing comma-separated text.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return &Reader{cr: cr}
}

// NewBytes wraps a byte slice of comma-separated text.
func NewBytes(b []byte) *Reader { return NewReader(bytes.NewReader(b)) }

// Next returns the next row, or io.EOF when the input is exhausted.
func (r *Reader) Next() ([]string, error) {
	return r.cr.Read()
}
