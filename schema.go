package squish

// Schema is an ordered mapping from unique column names to column
// positions within a Table. It allows one to look up columns by name,
// define new columns, remove columns, etc.
type Schema interface {
	Clone() Schema                                        // Clone returns a copy of this Schema
	NumColumns() int                                      // NumColumns returns the number of columns in this Schema
	HasColumn(colName string) bool                        // HasColumn returns true iff this Schema contains a column with the given name
	ColumnIndex(colName string) (int, error)              // ColumnIndex returns the position of the column with the given name, if it exists
	ColumnNames() []string                                // ColumnNames returns the names in this Schema, in column order
	CreateColumn(colName string) (Schema, error)          // CreateColumn appends a new column to this Schema, rejecting duplicate names
	RenameColumn(oldName string, newName string) (Schema, error) // RenameColumn renames a column within this Schema
	RemoveColumn(colName string) (Schema, bool)           // RemoveColumn removes a column from this Schema, returning true iff the column existed
	Equals(other Schema) error                            // Equals returns nil iff this and another Schema have identical names in identical order
	EqualNames(other Schema) error                        // EqualNames returns nil iff this and another Schema have identical name sets, in any order
	ForEachColumn(fn func(name string, idx int) error) error // ForEachColumn iterates over the columns in this Schema, in column order
}
