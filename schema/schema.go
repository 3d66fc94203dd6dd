package schema

import (
	"fmt"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
)

// Schema is an ordered mapping from column names to column positions
// within a Table. It allows one to look up columns by name, define new
// columns, remove columns, etc.
type schema struct {
	names []string
	index map[string]int
}

// CreateSchema is a factory for Schemas
func CreateSchema(colNames ...string) (squish.Schema, error) {
	s := &schema{
		names: make([]string, 0, len(colNames)),
		index: make(map[string]int),
	}
	for _, name := range colNames {
		if _, err := s.CreateColumn(name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Clone returns a copy of this Schema
func (s *schema) Clone() squish.Schema {
	names := make([]string, len(s.names))
	copy(names, s.names)
	index := make(map[string]int, len(s.index))
	for k, v := range s.index {
		index[k] = v
	}
	return &schema{names: names, index: index}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.index[colName]
	return ok
}

// ColumnIndex returns the position of a particular column within a row.
func (s *schema) ColumnIndex(colName string) (int, error) {
	idx, ok := s.index[colName]
	if !ok {
		return -1, errors.SchemaError{Message: fmt.Sprintf("Schema does not contain column with name %s", colName)}
	}
	return idx, nil
}

// ColumnNames returns the names in the schema, in column order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// CreateColumn defines a new column within the Schema
func (s *schema) CreateColumn(colName string) (squish.Schema, error) {
	if _, containsCol := s.index[colName]; containsCol {
		return nil, errors.SchemaError{Message: fmt.Sprintf("Schema already contains column with name %s", colName)}
	}
	s.index[colName] = len(s.names)
	s.names = append(s.names, colName)
	return s, nil
}

// RenameColumn renames a column within the Schema
func (s *schema) RenameColumn(oldName string, newName string) (squish.Schema, error) {
	idx, err := s.ColumnIndex(oldName)
	if err != nil {
		return nil, err
	}
	if _, containsCol := s.index[newName]; containsCol && newName != oldName {
		return nil, errors.SchemaError{Message: fmt.Sprintf("Schema already contains column with name %s", newName)}
	}
	delete(s.index, oldName)
	s.index[newName] = idx
	s.names[idx] = newName
	return s, nil
}

// RemoveColumn removes a column from the Schema, returning true iff the column existed
func (s *schema) RemoveColumn(colName string) (squish.Schema, bool) {
	idx, ok := s.index[colName]
	if !ok {
		return s, false
	}
	s.names = append(s.names[:idx], s.names[idx+1:]...)
	delete(s.index, colName)
	for i := idx; i < len(s.names); i++ {
		s.index[s.names[i]] = i
	}
	return s, true
}

// Equals returns nil iff this and another Schema have identical names in identical order
func (s *schema) Equals(other squish.Schema) error {
	if s.NumColumns() != other.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	otherNames := other.ColumnNames()
	for i, name := range s.names {
		if otherNames[i] != name {
			return fmt.Errorf("Column %d names do not match: %s != %s", i, name, otherNames[i])
		}
	}
	return nil
}

// EqualNames returns nil iff this and another Schema have identical name sets, in any order
func (s *schema) EqualNames(other squish.Schema) error {
	if s.NumColumns() != other.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	for _, name := range s.names {
		if !other.HasColumn(name) {
			return fmt.Errorf("Column %s is missing from other schema", name)
		}
	}
	return nil
}

// ForEachColumn iterates over the columns in this Schema, in column order
func (s *schema) ForEachColumn(fn func(name string, idx int) error) error {
	for i, name := range s.names {
		if err := fn(name, i); err != nil {
			return err
		}
	}
	return nil
}
