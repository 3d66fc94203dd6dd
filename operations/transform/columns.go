package transform

import (
	"fmt"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/table"
)

// RenameColumn renames an existing column, creating a new Table
func RenameColumn(t squish.Table, oldName string, newName string) (squish.Table, error) {
	outSchema, err := t.Schema().RenameColumn(oldName, newName)
	if err != nil {
		return nil, err
	}
	out := table.CreateTable(outSchema)
	for i := 0; i < t.NumRows(); i++ {
		if err := out.AppendRow(t.Row(i).Values()...); err != nil {
			return nil, err
		}
	}
	return out.WithLabels(t.Labels())
}

// RemoveColumn removes existing columns, creating a new Table
func RemoveColumn(t squish.Table, colNames ...string) (squish.Table, error) {
	s := t.Schema()
	removed := make(map[int]bool, len(colNames))
	for _, name := range colNames {
		idx, err := s.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		if removed[idx] {
			return nil, errors.ConfigurationError{Message: fmt.Sprintf("column %s named for removal more than once", name)}
		}
		removed[idx] = true
	}
	outSchema := t.Schema()
	for _, name := range colNames {
		outSchema.RemoveColumn(name)
	}
	out := table.CreateTable(outSchema)
	for i := 0; i < t.NumRows(); i++ {
		values := t.Row(i).Values()
		kept := make([]interface{}, 0, len(values)-len(colNames))
		for j, v := range values {
			if !removed[j] {
				kept = append(kept, v)
			}
		}
		if err := out.AppendRow(kept...); err != nil {
			return nil, err
		}
	}
	return out.WithLabels(t.Labels())
}
