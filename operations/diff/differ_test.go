package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/table"
)

func TestDifferColumnPartitioning(t *testing.T) {
	left, err := table.FromColumns(
		[]string{"a", "b"},
		[]interface{}{1, 2, 3},
		[]interface{}{4, 5, 6},
	)
	require.Nil(t, err)
	right, err := table.FromColumns(
		[]string{"a", "B", "c"},
		[]interface{}{1, 2, 4},
		[]interface{}{4, 5, 1},
		[]interface{}{5, 6, 1},
	)
	require.Nil(t, err)

	d, err := CreateDiffer(left, right, &DifferConf{JoinOn: []string{"a"}})
	require.Nil(t, err)

	// the default cleaner lowercases, so B matches b
	require.Equal(t, []string{"a", "b"}, d.MatchingColumns())
	require.Empty(t, d.MissingColumns())
	require.Equal(t, []string{"c"}, d.NewColumns())
}

func TestDifferRowStatuses(t *testing.T) {
	left, err := table.FromColumns(
		[]string{"id", "v"},
		[]interface{}{1, 2, 3},
		[]interface{}{"a", "b", "c"},
	)
	require.Nil(t, err)
	right, err := table.FromColumns(
		[]string{"id", "v"},
		[]interface{}{1, 2, 4},
		[]interface{}{"a", "CHANGED", "d"},
	)
	require.Nil(t, err)

	d, err := CreateDiffer(left, right, &DifferConf{JoinOn: []string{"id"}})
	require.Nil(t, err)

	result := d.Report()
	require.Len(t, result.Removed, 1)
	require.Equal(t, "3", result.Removed[0].Label)
	require.Len(t, result.Added, 1)
	require.Equal(t, "4", result.Added[0].Label)
	require.Len(t, result.Changed, 1)
	require.Equal(t, "2", result.Changed[0].Label)
	require.Equal(t, []CellChange{{Column: "v", Before: "b", After: "CHANGED"}}, result.Changed[0].Cells)
	require.Equal(t, 1, d.Untouched())
}

func TestDifferCompositeJoinKey(t *testing.T) {
	left, err := table.FromColumns(
		[]string{"k1", "k2", "v"},
		[]interface{}{"a", "a"},
		[]interface{}{1, 2},
		[]interface{}{"x", "y"},
	)
	require.Nil(t, err)
	right, err := table.FromColumns(
		[]string{"k1", "k2", "v"},
		[]interface{}{"a", "a"},
		[]interface{}{2, 1},
		[]interface{}{"y", "x"},
	)
	require.Nil(t, err)

	d, err := CreateDiffer(left, right, &DifferConf{JoinOn: []string{"k1", "k2"}})
	require.Nil(t, err)
	require.True(t, d.Report().Empty())
	require.Equal(t, 2, d.Untouched())
}

func TestDifferMissingJoinColumn(t *testing.T) {
	left, err := table.FromColumns([]string{"a"}, []interface{}{1})
	require.Nil(t, err)
	right, err := table.FromColumns([]string{"b"}, []interface{}{1})
	require.Nil(t, err)

	_, err = CreateDiffer(left, right, &DifferConf{JoinOn: []string{"a"}})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "missing from the right table")
}

func TestDifferDuplicateJoinKey(t *testing.T) {
	left, err := table.FromColumns([]string{"a"}, []interface{}{1, 1})
	require.Nil(t, err)
	right, err := table.FromColumns([]string{"a"}, []interface{}{1})
	require.Nil(t, err)

	_, err = CreateDiffer(left, right, &DifferConf{JoinOn: []string{"a"}})
	require.IsType(t, errors.ConfigurationError{}, err)
}

func TestDifferNoJoinColumns(t *testing.T) {
	left, err := table.FromColumns([]string{"a"}, []interface{}{1})
	require.Nil(t, err)

	_, err = CreateDiffer(left, left, &DifferConf{})
	require.IsType(t, errors.ConfigurationError{}, err)
}

func TestDifferWriteReport(t *testing.T) {
	left, err := table.FromColumns(
		[]string{"id", "v"},
		[]interface{}{1, 2},
		[]interface{}{"a", "b"},
	)
	require.Nil(t, err)
	right, err := table.FromColumns(
		[]string{"id", "v"},
		[]interface{}{1},
		[]interface{}{"a"},
	)
	require.Nil(t, err)

	d, err := CreateDiffer(left, right, &DifferConf{JoinOn: []string{"id"}})
	require.Nil(t, err)

	var report strings.Builder
	require.Nil(t, d.WriteReport(&report))
	require.Contains(t, report.String(), "Difference report")
	require.Contains(t, report.String(), "[-] Dropped: 1")
	require.Contains(t, report.String(), "[ ] Untouched: 1")
}
