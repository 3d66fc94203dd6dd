package util

import (
	"fmt"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateExcelColumns returns the Excel column letters "A" through "ZZ",
// in spreadsheet order
func GenerateExcelColumns() []string {
	rv := make([]string, 0, len(alphabet)*(len(alphabet)+1))
	for _, c := range alphabet {
		rv = append(rv, string(c))
	}
	for _, first := range alphabet {
		for _, second := range alphabet {
			rv = append(rv, string(first)+string(second))
		}
	}
	return rv
}

// ExcelColumn returns the name of the Table column at the position an
// Excel column letter refers to
func ExcelColumn(t squish.Table, excelName string) (string, error) {
	pos := -1
	for i, name := range GenerateExcelColumns() {
		if name == excelName {
			pos = i
			break
		}
	}
	if pos < 0 {
		return "", errors.ConfigurationError{Message: fmt.Sprintf("%s is not an Excel column name", excelName)}
	}
	colNames := t.Schema().ColumnNames()
	if pos >= len(colNames) {
		return "", errors.SchemaError{Message: fmt.Sprintf("Excel column %s is beyond the table's %d columns", excelName, len(colNames))}
	}
	return colNames[pos], nil
}
