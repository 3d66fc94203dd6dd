package squish

// A Table is an ordered set of named columns of equal length, plus an
// ordered index of row labels (defaulting to the decimal row position).
// Tables are caller-owned: every operation in this library treats its
// input Tables as read-only and returns a fresh Table.
type Table interface {
	Schema() Schema                             // Schema returns a read-only view of the Schema of this Table
	NumRows() int                               // NumRows returns the number of rows in this Table
	Labels() []string                           // Labels returns the row labels of this Table, in row order
	Label(i int) string                         // Label returns the label of the ith row
	Column(colName string) ([]interface{}, error) // Column returns a copy of the values of the named column, in row order
	Row(i int) Row                              // Row returns a read-only view of the ith row
	AppendRow(values ...interface{}) error      // AppendRow appends one row of values, which must match the Schema width
	WithLabels(labels []string) (Table, error)  // WithLabels returns a copy of this Table with the given row labels
	Clone() Table                               // Clone returns a deep copy of this Table
	ToString() string                           // ToString returns a string representation of this Table
}
