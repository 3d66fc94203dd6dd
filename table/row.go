package table

import (
	"fmt"
	"strings"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
)

// row is a read-only view of a single row of a table
type row struct {
	table *table
	idx   int
}

// Schema returns a read-only copy of the schema for this row
func (r *row) Schema() squish.Schema {
	return r.table.schema.Clone()
}

// Label returns the index label of this row
func (r *row) Label() string {
	return r.table.Label(r.idx)
}

// IsNil returns true iff the given column value is nil in this row.
// If an error occurs, this function will return false.
func (r *row) IsNil(colName string) bool {
	v, err := r.Get(colName)
	if err != nil {
		return false
	}
	return v == nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r *row) Get(colName string) (interface{}, error) {
	idx, err := r.table.schema.ColumnIndex(colName)
	if err != nil {
		return nil, err
	}
	return r.table.cols[idx][r.idx], nil
}

// GetString retrieves a string from the column with the given name
func (r *row) GetString(colName string) (string, error) {
	v, err := r.Get(colName)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.ConfigurationError{Message: fmt.Sprintf("Column %s was not a string. Was: %#v", colName, v)}
	}
	return s, nil
}

// GetInt64 retrieves a single int64 from the column with the given name
func (r *row) GetInt64(colName string) (int64, error) {
	v, err := r.Get(colName)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, errors.ConfigurationError{Message: fmt.Sprintf("Column %s was not an integer. Was: %#v", colName, v)}
	}
}

// GetFloat64 retrieves a single float64 from the column with the given name
func (r *row) GetFloat64(colName string) (float64, error) {
	v, err := r.Get(colName)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, errors.ConfigurationError{Message: fmt.Sprintf("Column %s was not a number. Was: %#v", colName, v)}
	}
}

// GetBool retrieves a single bool from the column with the given name
func (r *row) GetBool(colName string) (bool, error) {
	v, err := r.Get(colName)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.ConfigurationError{Message: fmt.Sprintf("Column %s was not a boolean. Was: %#v", colName, v)}
	}
	return b, nil
}

// Values returns a copy of all values in this row, in column order
func (r *row) Values() []interface{} {
	values := make([]interface{}, len(r.table.cols))
	for i, col := range r.table.cols {
		values[i] = col[r.idx]
	}
	return values
}

// ToString returns a string representation of this row
func (r *row) ToString() string {
	cells := make([]string, len(r.table.cols))
	for i, col := range r.table.cols {
		cells[i] = fmt.Sprintf("%v", col[r.idx])
	}
	return fmt.Sprintf("{%s: %s}", r.Label(), strings.Join(cells, ", "))
}
