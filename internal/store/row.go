package store

// Row is a single record as held by the store. Values round-trip through
// JSON, so numbers read back as float64 and nested sequences as []any;
// the typed getters absorb that.
type Row map[string]any

// String returns the named column as a string, or "" if absent
func (r Row) String(col string) string {
	if v, ok := r[col].(string); ok {
		return v
	}
	return ""
}

// Int returns the named column as an int64, or 0 if absent
func (r Row) Int(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// Float returns the named column as a float64, or 0 if absent
func (r Row) Float(col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

// Bool returns the named column as a bool, or false if absent
func (r Row) Bool(col string) bool {
	if v, ok := r[col].(bool); ok {
		return v
	}
	return false
}

// StringSlice returns the named column as a slice of strings. Elements
// that are not strings are skipped.
func (r Row) StringSlice(col string) []string {
	switch v := r[col].(type) {
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

// Map returns the named column as a nested object, or nil if absent
func (r Row) Map(col string) map[string]any {
	switch v := r[col].(type) {
	case map[string]any:
		return v
	case Row:
		return v
	}
	return nil
}

func (r Row) clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
