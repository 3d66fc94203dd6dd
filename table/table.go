package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/schema"
)

// table stores data column-major: one value slice per Schema column, all
// of equal length. labels is nil until the caller assigns an explicit row
// index, in which case it is always the same length as the columns.
type table struct {
	schema squish.Schema
	cols   [][]interface{}
	labels []string
	rows   int
}

// CreateTable is a factory for Tables, returning an empty Table with the given Schema
func CreateTable(s squish.Schema) squish.Table {
	cols := make([][]interface{}, s.NumColumns())
	return &table{schema: s.Clone(), cols: cols}
}

// FromColumns builds a Table from column names and matching value slices,
// which must all share the same length
func FromColumns(colNames []string, columns ...[]interface{}) (squish.Table, error) {
	if len(colNames) != len(columns) {
		return nil, errors.ConfigurationError{Message: fmt.Sprintf("%d column names given for %d columns", len(colNames), len(columns))}
	}
	s, err := schema.CreateSchema(colNames...)
	if err != nil {
		return nil, err
	}
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0])
	}
	cols := make([][]interface{}, len(columns))
	for i, col := range columns {
		if len(col) != rows {
			return nil, errors.ConfigurationError{Message: fmt.Sprintf("Column %s has length %d, expected %d", colNames[i], len(col), rows)}
		}
		cols[i] = make([]interface{}, rows)
		copy(cols[i], col)
	}
	return &table{schema: s, cols: cols, rows: rows}, nil
}

// Schema returns a read-only view of the Schema of this Table
func (t *table) Schema() squish.Schema {
	return t.schema.Clone()
}

// NumRows returns the number of rows in this Table
func (t *table) NumRows() int {
	return t.rows
}

// Labels returns the row labels of this Table, in row order
func (t *table) Labels() []string {
	labels := make([]string, t.rows)
	for i := 0; i < t.rows; i++ {
		labels[i] = t.Label(i)
	}
	return labels
}

// Label returns the label of the ith row
func (t *table) Label(i int) string {
	if t.labels == nil {
		return strconv.Itoa(i)
	}
	return t.labels[i]
}

// Column returns a copy of the values of the named column, in row order
func (t *table) Column(colName string) ([]interface{}, error) {
	idx, err := t.schema.ColumnIndex(colName)
	if err != nil {
		return nil, err
	}
	col := make([]interface{}, t.rows)
	copy(col, t.cols[idx])
	return col, nil
}

// Row returns a read-only view of the ith row
func (t *table) Row(i int) squish.Row {
	return &row{table: t, idx: i}
}

// AppendRow appends one row of values, which must match the Schema width
func (t *table) AppendRow(values ...interface{}) error {
	if len(values) != t.schema.NumColumns() {
		return errors.IncompatibleRowError{Expected: t.schema.NumColumns(), Actual: len(values)}
	}
	for i, v := range values {
		t.cols[i] = append(t.cols[i], v)
	}
	if t.labels != nil {
		t.labels = append(t.labels, strconv.Itoa(t.rows))
	}
	t.rows++
	return nil
}

// WithLabels returns a copy of this Table with the given row labels
func (t *table) WithLabels(labels []string) (squish.Table, error) {
	if len(labels) != t.rows {
		return nil, errors.ConfigurationError{Message: fmt.Sprintf("%d labels given for %d rows", len(labels), t.rows)}
	}
	next := t.Clone().(*table)
	next.labels = make([]string, len(labels))
	copy(next.labels, labels)
	return next, nil
}

// Clone returns a deep copy of this Table. Cell values themselves are not
// copied, since operations treat them as immutable.
func (t *table) Clone() squish.Table {
	cols := make([][]interface{}, len(t.cols))
	for i, col := range t.cols {
		cols[i] = make([]interface{}, len(col))
		copy(cols[i], col)
	}
	var labels []string
	if t.labels != nil {
		labels = make([]string, len(t.labels))
		copy(labels, t.labels)
	}
	return &table{schema: t.schema.Clone(), cols: cols, labels: labels, rows: t.rows}
}

// ToString returns a string representation of this Table
func (t *table) ToString() string {
	var res strings.Builder
	fmt.Fprintf(&res, "| index | %s |\n", strings.Join(t.schema.ColumnNames(), " | "))
	for i := 0; i < t.rows; i++ {
		cells := make([]string, len(t.cols))
		for j, col := range t.cols {
			cells[j] = fmt.Sprintf("%v", col[i])
		}
		fmt.Fprintf(&res, "| %s | %s |\n", t.Label(i), strings.Join(cells, " | "))
	}
	return res.String()
}
