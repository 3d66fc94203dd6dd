package squish

// Row is a read-only view of a single row of a Table, along with a
// reference to the Schema for that row. In practice, users of Row will
// call its getter methods to retrieve data by column name.
type Row interface {
	Schema() Schema                                  // Schema returns a read-only copy of the schema for this row
	Label() string                                   // Label returns the index label of this row
	IsNil(colName string) bool                       // IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
	Get(colName string) (col interface{}, err error) // Get returns the value of any column as an interface{}, if it exists
	GetString(colName string) (col string, err error)   // GetString retrieves a string from the column with the given name
	GetInt64(colName string) (col int64, err error)     // GetInt64 retrieves a single int64 from the column with the given name
	GetFloat64(colName string) (col float64, err error) // GetFloat64 retrieves a single float64 from the column with the given name
	GetBool(colName string) (col bool, err error)       // GetBool retrieves a single bool from the column with the given name
	Values() []interface{}                           // Values returns a copy of all values in this row, in column order
	ToString() string                                // ToString returns a string representation of this row
}
