package transform

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/table"
)

// Filter retains the rows of a Table for which fn returns true, creating
// a new Table. Row labels are preserved.
func Filter(t squish.Table, fn squish.FilterOperation) (squish.Table, error) {
	out := table.CreateTable(t.Schema())
	labels := make([]string, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		keep, err := fn(row)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		if err := out.AppendRow(row.Values()...); err != nil {
			return nil, err
		}
		labels = append(labels, row.Label())
	}
	return out.WithLabels(labels)
}

// FilterRandom filters a Table to all rows whose colName value equals a
// value chosen at random from that column. The caller supplies the random
// source, keeping the operation free of hidden global state.
func FilterRandom(t squish.Table, colName string, rng *rand.Rand) (squish.Table, error) {
	col, err := t.Column(colName)
	if err != nil {
		return nil, err
	}
	if len(col) == 0 {
		return nil, errors.ConfigurationError{Message: fmt.Sprintf("cannot pick a random value of %s from an empty table", colName)}
	}
	chosen := col[rng.Intn(len(col))]
	return Filter(t, func(row squish.Row) (bool, error) {
		v, err := row.Get(colName)
		if err != nil {
			return false, err
		}
		return reflect.DeepEqual(v, chosen), nil
	})
}
