package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/schema"
)

func TestTableAppendRow(t *testing.T) {
	s, err := schema.CreateSchema("a", "b")
	require.Nil(t, err)
	tbl := CreateTable(s)
	require.Equal(t, 0, tbl.NumRows())

	require.Nil(t, tbl.AppendRow(1, "x"))
	require.Nil(t, tbl.AppendRow(2, "y"))
	require.Equal(t, 2, tbl.NumRows())

	err = tbl.AppendRow(3)
	require.IsType(t, errors.IncompatibleRowError{}, err)
	require.Equal(t, 2, tbl.NumRows())
}

func TestTableFromColumns(t *testing.T) {
	tbl, err := FromColumns(
		[]string{"a", "b"},
		[]interface{}{1, 2, 3},
		[]interface{}{4, 5, 6},
	)
	require.Nil(t, err)
	require.Equal(t, 3, tbl.NumRows())

	col, err := tbl.Column("b")
	require.Nil(t, err)
	require.Equal(t, []interface{}{4, 5, 6}, col)

	_, err = tbl.Column("missing")
	require.IsType(t, errors.SchemaError{}, err)

	_, err = FromColumns(
		[]string{"a", "b"},
		[]interface{}{1, 2, 3},
		[]interface{}{4, 5},
	)
	require.IsType(t, errors.ConfigurationError{}, err)
}

func TestTableColumnReturnsCopy(t *testing.T) {
	tbl, err := FromColumns([]string{"a"}, []interface{}{1, 2})
	require.Nil(t, err)
	col, err := tbl.Column("a")
	require.Nil(t, err)
	col[0] = 100

	again, err := tbl.Column("a")
	require.Nil(t, err)
	require.Equal(t, 1, again[0])
}

func TestTableLabels(t *testing.T) {
	tbl, err := FromColumns([]string{"a"}, []interface{}{1, 2, 3})
	require.Nil(t, err)
	require.Equal(t, []string{"0", "1", "2"}, tbl.Labels())

	labeled, err := tbl.WithLabels([]string{"x", "y", "z"})
	require.Nil(t, err)
	require.Equal(t, "y", labeled.Label(1))
	// the original table's index is untouched
	require.Equal(t, "1", tbl.Label(1))

	_, err = tbl.WithLabels([]string{"too", "few"})
	require.IsType(t, errors.ConfigurationError{}, err)
}

func TestTableCloneIsIndependent(t *testing.T) {
	tbl, err := FromColumns([]string{"a"}, []interface{}{1})
	require.Nil(t, err)
	clone := tbl.Clone()
	require.Nil(t, clone.AppendRow(2))

	require.Equal(t, 1, tbl.NumRows())
	require.Equal(t, 2, clone.NumRows())
}

func TestRowGetters(t *testing.T) {
	tbl, err := FromColumns(
		[]string{"s", "i", "f", "b", "n"},
		[]interface{}{"hello"},
		[]interface{}{int64(42)},
		[]interface{}{3.5},
		[]interface{}{true},
		[]interface{}{nil},
	)
	require.Nil(t, err)
	row := tbl.Row(0)

	sval, err := row.GetString("s")
	require.Nil(t, err)
	require.Equal(t, "hello", sval)

	ival, err := row.GetInt64("i")
	require.Nil(t, err)
	require.Equal(t, int64(42), ival)

	fval, err := row.GetFloat64("f")
	require.Nil(t, err)
	require.Equal(t, 3.5, fval)

	bval, err := row.GetBool("b")
	require.Nil(t, err)
	require.True(t, bval)

	require.True(t, row.IsNil("n"))
	require.False(t, row.IsNil("s"))

	_, err = row.GetString("i")
	require.IsType(t, errors.ConfigurationError{}, err)
	_, err = row.Get("missing")
	require.IsType(t, errors.SchemaError{}, err)

	require.Equal(t, []interface{}{"hello", int64(42), 3.5, true, nil}, row.Values())
}
