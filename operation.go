package squish

// AggregateOperation - A generic function for combining all the values
// gathered for one group into a single value. Always receives at least one
// value, but singletons are not unwrapped: a group contributing one value
// still arrives as a one-element slice.
type AggregateOperation func(values []interface{}) (interface{}, error)

// DeriveOperation - A generic function for computing a new column value
// from the values of one row's source columns, passed positionally.
type DeriveOperation func(values ...interface{}) (interface{}, error)

// FilterOperation - A generic function for determining whether or not a Row should be retained
type FilterOperation func(row Row) (bool, error)

// TableOperation - A generic whole-Table transform, suitable for chaining via To
type TableOperation func(t Table) (Table, error)
