package transform

import (
	"fmt"
	"strings"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/table"
)

// Squish groups the rows of a Table by the value in indexColumn and
// collapses the remaining columns into one combined column per suffix. A
// column's suffix is the part of its name after the last occurrence of
// separator; a column name which does not contain the separator is its own
// suffix. All values collected for one (group, suffix) pair are passed to
// agg (in column order, then row order) to produce that cell of the
// output. Output groups appear in first-appearance order of the index
// value, and output columns in first-appearance order of the suffix.
func Squish(t squish.Table, indexColumn string, separator string, agg squish.AggregateOperation) (squish.Table, error) {
	s := t.Schema()
	indexIdx, err := s.ColumnIndex(indexColumn)
	if err != nil {
		return nil, err
	}
	// partition non-index columns by suffix
	colNames := s.ColumnNames()
	suffixes := make([]string, 0, len(colNames))
	suffixCols := make(map[string][]int)
	sawSeparator := false
	for i, name := range colNames {
		if i == indexIdx {
			continue
		}
		suffix := name
		if cut := strings.LastIndex(name, separator); cut >= 0 {
			suffix = name[cut+len(separator):]
			sawSeparator = true
		}
		if _, seen := suffixCols[suffix]; !seen {
			suffixes = append(suffixes, suffix)
		}
		suffixCols[suffix] = append(suffixCols[suffix], i)
	}
	if !sawSeparator {
		return nil, errors.ConfigurationError{Message: fmt.Sprintf("no column name contains separator %q", separator)}
	}
	// group row positions by index value, preserving first-appearance order
	groupKeys := make([]string, 0)
	groupVals := make(map[string]interface{})
	groupRows := make(map[string][]int)
	for i := 0; i < t.NumRows(); i++ {
		v, err := t.Row(i).Get(indexColumn)
		if err != nil {
			return nil, err
		}
		key := fmt.Sprintf("%#v", v)
		if _, seen := groupRows[key]; !seen {
			groupKeys = append(groupKeys, key)
			groupVals[key] = v
		}
		groupRows[key] = append(groupRows[key], i)
	}
	outSchema := t.Schema()
	for _, name := range colNames {
		if name != indexColumn {
			outSchema.RemoveColumn(name)
		}
	}
	for _, suffix := range suffixes {
		if _, err := outSchema.CreateColumn(suffix); err != nil {
			return nil, err
		}
	}
	out := table.CreateTable(outSchema)
	for _, key := range groupKeys {
		cells := make([]interface{}, 0, 1+len(suffixes))
		cells = append(cells, groupVals[key])
		for _, suffix := range suffixes {
			values := make([]interface{}, 0, len(suffixCols[suffix])*len(groupRows[key]))
			for _, colIdx := range suffixCols[suffix] {
				for _, rowIdx := range groupRows[key] {
					v, err := t.Row(rowIdx).Get(colNames[colIdx])
					if err != nil {
						return nil, err
					}
					values = append(values, v)
				}
			}
			combined, err := agg(values)
			if err != nil {
				return nil, err
			}
			cells = append(cells, combined)
		}
		if err := out.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Collect is an AggregateOperation which gathers group values into a
// slice, in the order they were collected
func Collect(values []interface{}) (interface{}, error) {
	combined := make([]interface{}, len(values))
	copy(combined, values)
	return combined, nil
}

// Sum is an AggregateOperation which adds group values together as
// float64s, failing on non-numeric values
func Sum(values []interface{}) (interface{}, error) {
	var total float64
	for _, v := range values {
		switch n := v.(type) {
		case int:
			total += float64(n)
		case int32:
			total += float64(n)
		case int64:
			total += float64(n)
		case float32:
			total += float64(n)
		case float64:
			total += n
		default:
			return nil, errors.ConfigurationError{Message: fmt.Sprintf("cannot sum non-numeric value %#v", v)}
		}
	}
	return total, nil
}

// Count is an AggregateOperation which counts group values
func Count(values []interface{}) (interface{}, error) {
	return len(values), nil
}
