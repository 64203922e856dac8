package database

import "fmt"

// Row is a single result row keyed by column name.
//
// SQLite hands values back loosely typed: INTEGER columns scan as int64,
// REAL as float64, TEXT as string or []byte depending on the driver path,
// and NULL as nil. The accessors below centralize that coercion so entity
// factories can stay declarative.
type Row map[string]any

// Int64 returns the named column as an int64.
func (r Row) Int64(column string) (int64, error) {
	value, ok := r[column]
	if !ok {
		return 0, fmt.Errorf("row has no column %q", column)
	}
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("column %q is %T, not an integer", column, value)
	}
}

// NullInt64 returns the named column as an int64 pointer, nil when the
// stored value is NULL.
func (r Row) NullInt64(column string) (*int64, error) {
	value, ok := r[column]
	if !ok {
		return nil, fmt.Errorf("row has no column %q", column)
	}
	if value == nil {
		return nil, nil
	}
	parsed, err := r.Int64(column)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// String returns the named column as a string.
func (r Row) String(column string) (string, error) {
	value, ok := r[column]
	if !ok {
		return "", fmt.Errorf("row has no column %q", column)
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("column %q is %T, not text", column, value)
	}
}

// Float64 returns the named column as a float64. Integer values are
// widened, matching SQLite's numeric affinity.
func (r Row) Float64(column string) (float64, error) {
	value, ok := r[column]
	if !ok {
		return 0, fmt.Errorf("row has no column %q", column)
	}
	switch v := value.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("column %q is %T, not numeric", column, value)
	}
}
