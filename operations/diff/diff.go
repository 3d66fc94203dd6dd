package diff

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
)

// RowEntry records one row which appears in only one of the two compared
// Tables, keyed by column name
type RowEntry struct {
	Label  string
	Values map[string]interface{}
}

// CellChange records one differing cell of a row present in both Tables
type CellChange struct {
	Column string
	Before interface{}
	After  interface{}
}

// RowChange records a row present in both Tables with at least one
// differing cell. Cells are listed in the before-Table's column order.
type RowChange struct {
	Label string
	Cells []CellChange
}

// Result is a structured report of the differences between two Tables.
// Rows identical in both Tables are omitted.
type Result struct {
	Removed []RowEntry
	Added   []RowEntry
	Changed []RowChange
}

// Empty returns true iff this Result contains no additions, removals or changes
func (r *Result) Empty() bool {
	return len(r.Removed) == 0 && len(r.Added) == 0 && len(r.Changed) == 0
}

// CreateDiff compares two Tables which share an identical set of column
// names, matching rows by index label. Rows present in only one Table are
// reported as removals or additions; rows present in both are compared
// cell-by-cell. Cell equality is exact value equality, so floating-point
// values which differ only by rounding error are reported as changed.
// Every column-set mismatch between the two Tables is reported at once.
func CreateDiff(before squish.Table, after squish.Table) (*Result, error) {
	if err := matchColumnSets(before.Schema(), after.Schema()); err != nil {
		return nil, err
	}
	beforeRows, err := rowsByLabel(before)
	if err != nil {
		return nil, err
	}
	afterRows, err := rowsByLabel(after)
	if err != nil {
		return nil, err
	}
	colNames := before.Schema().ColumnNames()
	result := &Result{}
	for i := 0; i < before.NumRows(); i++ {
		row := before.Row(i)
		j, inAfter := afterRows[row.Label()]
		if !inAfter {
			result.Removed = append(result.Removed, rowEntry(row, colNames))
			continue
		}
		change := RowChange{Label: row.Label()}
		otherRow := after.Row(j)
		for _, name := range colNames {
			b, err := row.Get(name)
			if err != nil {
				return nil, err
			}
			a, err := otherRow.Get(name)
			if err != nil {
				return nil, err
			}
			if !reflect.DeepEqual(b, a) {
				change.Cells = append(change.Cells, CellChange{Column: name, Before: b, After: a})
			}
		}
		if len(change.Cells) > 0 {
			result.Changed = append(result.Changed, change)
		}
	}
	for i := 0; i < after.NumRows(); i++ {
		row := after.Row(i)
		if _, inBefore := beforeRows[row.Label()]; !inBefore {
			result.Added = append(result.Added, rowEntry(row, colNames))
		}
	}
	return result, nil
}

// matchColumnSets verifies that two Schemas contain the same column names
// (in any order), aggregating every mismatch into a single error
func matchColumnSets(before squish.Schema, after squish.Schema) error {
	var merr *multierror.Error
	for _, name := range before.ColumnNames() {
		if !after.HasColumn(name) {
			merr = multierror.Append(merr, errors.SchemaError{Message: fmt.Sprintf("column %s is missing from the after table", name)})
		}
	}
	for _, name := range after.ColumnNames() {
		if !before.HasColumn(name) {
			merr = multierror.Append(merr, errors.SchemaError{Message: fmt.Sprintf("column %s is missing from the before table", name)})
		}
	}
	return merr.ErrorOrNil()
}

// rowsByLabel indexes a Table's row positions by label, rejecting
// duplicate labels since they make row matching ambiguous
func rowsByLabel(t squish.Table) (map[string]int, error) {
	rows := make(map[string]int, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		label := t.Label(i)
		if _, seen := rows[label]; seen {
			return nil, errors.ConfigurationError{Message: fmt.Sprintf("duplicate row label %s", label)}
		}
		rows[label] = i
	}
	return rows, nil
}

func rowEntry(row squish.Row, colNames []string) RowEntry {
	entry := RowEntry{Label: row.Label(), Values: make(map[string]interface{}, len(colNames))}
	for _, name := range colNames {
		v, _ := row.Get(name)
		entry.Values[name] = v
	}
	return entry
}
