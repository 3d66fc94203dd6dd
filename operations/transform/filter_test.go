package transform

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/table"
)

func TestFilterBasic(t *testing.T) {
	tbl, err := table.FromColumns(
		[]string{"a"},
		[]interface{}{10, 15, 20},
	)
	require.Nil(t, err)

	out, err := Filter(tbl, func(row squish.Row) (bool, error) {
		v, err := row.Get("a")
		if err != nil {
			return false, err
		}
		return v.(int) >= 15, nil
	})
	require.Nil(t, err)
	require.Equal(t, 2, out.NumRows())
	// retained rows keep their original labels
	require.Equal(t, []string{"1", "2"}, out.Labels())
	require.Equal(t, 3, tbl.NumRows())
}

func TestFilterRandom(t *testing.T) {
	tbl, err := table.FromColumns(
		[]string{"grp", "val"},
		[]interface{}{"a", "a", "b"},
		[]interface{}{15, 20, 100},
	)
	require.Nil(t, err)

	rng := rand.New(rand.NewSource(1234))
	out, err := FilterRandom(tbl, "grp", rng)
	require.Nil(t, err)
	require.True(t, out.NumRows() == 1 || out.NumRows() == 2)

	// every retained row shares the same grp value
	grp, err := out.Column("grp")
	require.Nil(t, err)
	for _, v := range grp {
		require.Equal(t, grp[0], v)
	}
}

func TestFilterRandomEmptyTable(t *testing.T) {
	tbl, err := table.FromColumns([]string{"grp"}, []interface{}{})
	require.Nil(t, err)

	rng := rand.New(rand.NewSource(1))
	_, err = FilterRandom(tbl, "grp", rng)
	require.IsType(t, errors.ConfigurationError{}, err)
}

func TestRenameColumn(t *testing.T) {
	tbl, err := table.FromColumns(
		[]string{"a", "b"},
		[]interface{}{1},
		[]interface{}{2},
	)
	require.Nil(t, err)

	out, err := RenameColumn(tbl, "a", "renamed")
	require.Nil(t, err)
	require.Equal(t, []string{"renamed", "b"}, out.Schema().ColumnNames())
	require.Equal(t, []string{"a", "b"}, tbl.Schema().ColumnNames())

	_, err = RenameColumn(tbl, "missing", "anything")
	require.IsType(t, errors.SchemaError{}, err)
}

func TestRemoveColumn(t *testing.T) {
	tbl, err := table.FromColumns(
		[]string{"a", "b", "c"},
		[]interface{}{1, 2},
		[]interface{}{3, 4},
		[]interface{}{5, 6},
	)
	require.Nil(t, err)

	out, err := RemoveColumn(tbl, "b")
	require.Nil(t, err)
	require.Equal(t, []string{"a", "c"}, out.Schema().ColumnNames())
	ccol, err := out.Column("c")
	require.Nil(t, err)
	require.Equal(t, []interface{}{5, 6}, ccol)

	_, err = RemoveColumn(tbl, "missing")
	require.IsType(t, errors.SchemaError{}, err)
}
