package diff

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/table"
)

// DifferConf configures a Differ
type DifferConf struct {
	JoinOn        []string            // The columns which uniquely identify a row in both Tables
	ColumnCleaner func(string) string // Normalizes column names before matching them up. Defaults to trimming whitespace and lowercasing.
}

// A Differ compares two Tables whose column sets may only partially
// overlap, matching rows on a set of join columns rather than by index
// label. Column names on both sides are normalized with the configured
// cleaner before any matching happens.
type Differ struct {
	conf      *DifferConf
	left      squish.Table
	right     squish.Table
	matching  []string
	missing   []string
	added     []string
	compared  []string
	result    *Result
	untouched int
}

// CreateDiffer returns a new Differ comparing left against right. Join
// column values must uniquely identify a row within each Table.
func CreateDiffer(left squish.Table, right squish.Table, conf *DifferConf) (*Differ, error) {
	if len(conf.JoinOn) == 0 {
		return nil, errors.ConfigurationError{Message: "at least one join column is required"}
	}
	if conf.ColumnCleaner == nil {
		conf.ColumnCleaner = func(name string) string {
			return strings.ToLower(strings.TrimSpace(name))
		}
	}
	cleanLeft, err := cleanColumns(left, conf.ColumnCleaner)
	if err != nil {
		return nil, err
	}
	cleanRight, err := cleanColumns(right, conf.ColumnCleaner)
	if err != nil {
		return nil, err
	}
	joinOn := make([]string, len(conf.JoinOn))
	var merr *multierror.Error
	for i, name := range conf.JoinOn {
		joinOn[i] = conf.ColumnCleaner(name)
		if !cleanLeft.Schema().HasColumn(joinOn[i]) {
			merr = multierror.Append(merr, errors.SchemaError{Message: fmt.Sprintf("join column %s is missing from the left table", joinOn[i])})
		}
		if !cleanRight.Schema().HasColumn(joinOn[i]) {
			merr = multierror.Append(merr, errors.SchemaError{Message: fmt.Sprintf("join column %s is missing from the right table", joinOn[i])})
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	conf.JoinOn = joinOn
	d := &Differ{conf: conf, left: cleanLeft, right: cleanRight}
	d.partitionColumns()
	if err := d.compare(); err != nil {
		return nil, err
	}
	return d, nil
}

// MatchingColumns returns the cleaned column names present in both Tables, sorted
func (d *Differ) MatchingColumns() []string {
	return append([]string(nil), d.matching...)
}

// MissingColumns returns the cleaned column names present only in the left Table, sorted
func (d *Differ) MissingColumns() []string {
	return append([]string(nil), d.missing...)
}

// NewColumns returns the cleaned column names present only in the right Table, sorted
func (d *Differ) NewColumns() []string {
	return append([]string(nil), d.added...)
}

// Report returns the row-level differences between the two Tables. Only
// columns present in both Tables are compared; entry labels are the join
// column values, joined with "|".
func (d *Differ) Report() *Result {
	return d.result
}

// Untouched returns the number of rows present in both Tables with no differing cells
func (d *Differ) Untouched() int {
	return d.untouched
}

// WriteReport writes a human-readable summary of the differences to w
func (d *Differ) WriteReport(w io.Writer) error {
	rule := strings.Repeat("-", 15)
	_, err := fmt.Fprintf(
		w,
		"%s\nDifference report\n%s\nColumns:\nRemoved: %s\nAdded: %s\nMatching: %s\n%s\nRows:\n[-] Dropped: %d\n[+] Added: %d\n[~] Changed: %d\n[ ] Untouched: %d\n",
		rule, rule,
		formatNames(d.missing), formatNames(d.added), formatNames(d.matching),
		rule,
		len(d.result.Removed), len(d.result.Added), len(d.result.Changed), d.untouched,
	)
	return err
}

// partitionColumns splits the cleaned column names into matching, missing
// and added sets, and decides which columns are compared cell-by-cell
func (d *Differ) partitionColumns() {
	leftSchema := d.left.Schema()
	rightSchema := d.right.Schema()
	joined := make(map[string]bool, len(d.conf.JoinOn))
	for _, name := range d.conf.JoinOn {
		joined[name] = true
	}
	for _, name := range leftSchema.ColumnNames() {
		if rightSchema.HasColumn(name) {
			d.matching = append(d.matching, name)
			if !joined[name] {
				d.compared = append(d.compared, name)
			}
		} else {
			d.missing = append(d.missing, name)
		}
	}
	for _, name := range rightSchema.ColumnNames() {
		if !leftSchema.HasColumn(name) {
			d.added = append(d.added, name)
		}
	}
	sort.Strings(d.matching)
	sort.Strings(d.missing)
	sort.Strings(d.added)
}

// compare buckets right-side rows by a hash of their join key, then walks
// the left side matching rows up and recording their status
func (d *Differ) compare() error {
	if _, err := keyRows(d.left, d.conf.JoinOn); err != nil {
		return err
	}
	rightKeys, err := keyRows(d.right, d.conf.JoinOn)
	if err != nil {
		return err
	}
	d.result = &Result{}
	matched := make(map[int]bool, d.right.NumRows())
	for i := 0; i < d.left.NumRows(); i++ {
		row := d.left.Row(i)
		key, err := joinKey(row, d.conf.JoinOn)
		if err != nil {
			return err
		}
		j, ok, err := rightKeys.lookup(d.right, d.conf.JoinOn, key)
		if err != nil {
			return err
		}
		if !ok {
			d.result.Removed = append(d.result.Removed, rowEntry(keyedRow{row, key}, d.matching))
			continue
		}
		matched[j] = true
		change := RowChange{Label: formatKey(key)}
		otherRow := d.right.Row(j)
		for _, name := range d.compared {
			b, err := row.Get(name)
			if err != nil {
				return err
			}
			a, err := otherRow.Get(name)
			if err != nil {
				return err
			}
			if !reflect.DeepEqual(b, a) {
				change.Cells = append(change.Cells, CellChange{Column: name, Before: b, After: a})
			}
		}
		if len(change.Cells) > 0 {
			d.result.Changed = append(d.result.Changed, change)
		} else {
			d.untouched++
		}
	}
	for j := 0; j < d.right.NumRows(); j++ {
		if matched[j] {
			continue
		}
		row := d.right.Row(j)
		key, err := joinKey(row, d.conf.JoinOn)
		if err != nil {
			return err
		}
		d.result.Added = append(d.result.Added, rowEntry(keyedRow{row, key}, d.matching))
	}
	return nil
}

// keyIndex buckets row positions by a 64-bit hash of their join key.
// Hash collisions are resolved by comparing the key values themselves.
type keyIndex map[uint64][]int

// keyRows builds a keyIndex over a Table, rejecting duplicate join keys
func keyRows(t squish.Table, joinOn []string) (keyIndex, error) {
	index := make(keyIndex, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		key, err := joinKey(t.Row(i), joinOn)
		if err != nil {
			return nil, err
		}
		sum := hashKey(key)
		for _, j := range index[sum] {
			other, err := joinKey(t.Row(j), joinOn)
			if err != nil {
				return nil, err
			}
			if reflect.DeepEqual(key, other) {
				return nil, errors.ConfigurationError{Message: fmt.Sprintf("join key %s is not unique", formatKey(key))}
			}
		}
		index[sum] = append(index[sum], i)
	}
	return index, nil
}

// lookup finds the row position matching the given join key, if any
func (x keyIndex) lookup(t squish.Table, joinOn []string, key []interface{}) (int, bool, error) {
	for _, j := range x[hashKey(key)] {
		other, err := joinKey(t.Row(j), joinOn)
		if err != nil {
			return -1, false, err
		}
		if reflect.DeepEqual(key, other) {
			return j, true, nil
		}
	}
	return -1, false, nil
}

func joinKey(row squish.Row, joinOn []string) ([]interface{}, error) {
	key := make([]interface{}, len(joinOn))
	for i, name := range joinOn {
		v, err := row.Get(name)
		if err != nil {
			return nil, err
		}
		key[i] = v
	}
	return key, nil
}

func hashKey(key []interface{}) uint64 {
	digest := xxhash.New()
	for _, v := range key {
		fmt.Fprintf(digest, "%#v|", v)
	}
	return digest.Sum64()
}

func formatKey(key []interface{}) string {
	parts := make([]string, len(key))
	for i, v := range key {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, "|")
}

func formatNames(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}

// keyedRow relabels a row with its join key for reporting purposes
type keyedRow struct {
	squish.Row
	key []interface{}
}

func (r keyedRow) Label() string {
	return formatKey(r.key)
}

// cleanColumns returns a copy of a Table with its column names normalized
func cleanColumns(t squish.Table, cleaner func(string) string) (squish.Table, error) {
	names := t.Schema().ColumnNames()
	cleaned := make([]string, len(names))
	columns := make([][]interface{}, len(names))
	for i, name := range names {
		cleaned[i] = cleaner(name)
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}
	out, err := table.FromColumns(cleaned, columns...)
	if err != nil {
		return nil, err
	}
	return out.WithLabels(t.Labels())
}
