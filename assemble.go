package csvschema

// AssembleRecord zips a header row with one data row and coerces each cell
// according to the schema's declared column types. Columns absent from the
// schema are still coerced, with no type hint, so unschema'd data passes
// through as useful values. Cells whose coercion fails are reported in the
// returned issues and omitted from the record; they are never replaced with
// a default or null placeholder. Zipping stops at the shorter of the two
// rows.
func AssembleRecord(header, row []string, s *Schema, opts ...CoerceOpt) (TypedRecord, Issues) {
	ar, iss := AssembleRecordWithMeta(header, row, s, opts...)
	return ar.Fields, iss
}

// AssembleRecordWithMeta additionally reports per-column presence metadata.
func AssembleRecordWithMeta(header, row []string, s *Schema, opts ...CoerceOpt) (AssembledRecord, Issues) {
	var opt CoerceOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	n := len(header)
	if len(row) < n {
		n = len(row)
	}
	ar := AssembledRecord{
		Fields:   make(TypedRecord, n),
		Presence: make(PresenceMap, n),
	}
	var iss Issues
	for i := 0; i < n; i++ {
		name := header[i]
		ft := s.FieldTypeOf(name)
		p := PresenceSeen
		if ft != FieldNone {
			p |= PresenceDeclared
		}
		v, fellBack, err := coerceCell(row[i], ft, opt)
		if fellBack {
			p |= PresenceFallback
		}
		if err != nil {
			p |= PresenceOmitted
			if ii, ok := AsIssues(err); ok {
				for _, it := range ii {
					it.Path = "/" + name
					iss = AppendIssues(iss, it)
				}
			}
			ar.Presence[name] = p
			continue
		}
		ar.Fields[name] = v
		ar.Presence[name] = p
	}
	return ar, iss
}
