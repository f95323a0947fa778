package entity

// FieldSet maps a field name to its typed value (ISO date string, float
// amount, int odometer, string identifiers, or []string work descriptions).
// A field is present only if some normalizer produced a value; absence is a
// missing key, never a nil or zero value.
type FieldSet map[string]any

// Clone returns a shallow copy. Value types are immutable except the
// work_description slice, which is copied as well.
func (fs FieldSet) Clone() FieldSet {
	out := make(FieldSet, len(fs))
	for k, v := range fs {
		if ss, ok := v.([]string); ok {
			cp := make([]string, len(ss))
			copy(cp, ss)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}

// Has reports whether the field is present.
func (fs FieldSet) Has(field string) bool {
	_, ok := fs[field]
	return ok
}

// Missing returns the subset of fields not present, preserving order.
func (fs FieldSet) Missing(fields []string) []string {
	missing := make([]string, 0, len(fields))
	for _, f := range fields {
		if !fs.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// String returns the field as a string, or "" if absent or mistyped.
func (fs FieldSet) String(field string) string {
	s, _ := fs[field].(string)
	return s
}

// Float returns the field as a float64. JSON round-trips decode all numbers
// as float64, so int values are widened too.
func (fs FieldSet) Float(field string) (float64, bool) {
	switch v := fs[field].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Int returns the field as an int, truncating float64 values from JSON.
func (fs FieldSet) Int(field string) (int, bool) {
	switch v := fs[field].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Strings returns the field as a string list. A JSON round-trip yields
// []any, which is converted element-wise.
func (fs FieldSet) Strings(field string) []string {
	switch v := fs[field].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
