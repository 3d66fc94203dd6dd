package transform

import (
	"fmt"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/table"
)

// WithColumn derives a new column from existing ones. For every row, the
// values of the named source columns are passed positionally to derive,
// and the result is stored under newColumn in the output Table. A
// newColumn name which already exists in the Table is rejected with a
// SchemaError rather than overwritten.
func WithColumn(t squish.Table, newColumn string, derive squish.DeriveOperation, sourceColumns ...string) (squish.Table, error) {
	s := t.Schema()
	if s.HasColumn(newColumn) {
		return nil, errors.SchemaError{Message: fmt.Sprintf("Schema already contains column with name %s", newColumn)}
	}
	for _, name := range sourceColumns {
		if _, err := s.ColumnIndex(name); err != nil {
			return nil, err
		}
	}
	outSchema, err := t.Schema().CreateColumn(newColumn)
	if err != nil {
		return nil, err
	}
	out := table.CreateTable(outSchema)
	args := make([]interface{}, len(sourceColumns))
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		for j, name := range sourceColumns {
			v, err := row.Get(name)
			if err != nil {
				return nil, err
			}
			args[j] = v
		}
		derived, err := derive(args...)
		if err != nil {
			return nil, err
		}
		if err := out.AppendRow(append(row.Values(), derived)...); err != nil {
			return nil, err
		}
	}
	return out.WithLabels(t.Labels())
}
