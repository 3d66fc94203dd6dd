// Package dsv parses delimiter-separated values into Tables.
package dsv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/table"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines int    // The number of lines to ignore from the beginning of the data. Defaults to 0.
	Delimiter   rune   // The delimiter separating columns. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
	InferTypes  bool   // When true, cell strings are parsed as int64, float64 or bool where possible. Defaults to false (all cells are strings).
}

// Parser produces Tables from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data to produce a Table matching the given Schema.
// Each record must have exactly as many fields as the Schema has columns.
func (p *Parser) Parse(r io.Reader, s squish.Schema) (squish.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = s.NumColumns()
	reader.ReuseRecord = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	t := table.CreateTable(s)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(record))
		for i, cell := range record {
			values[i] = p.scanCell(cell)
		}
		if err := t.AppendRow(values...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// scanCell converts one field string into a cell value
func (p *Parser) scanCell(cell string) interface{} {
	if len(cell) == 0 || cell == p.conf.NilValue {
		return nil
	}
	if !p.conf.InferTypes {
		return cell
	}
	if ival, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return ival
	}
	if fval, err := strconv.ParseFloat(cell, 64); err == nil {
		return fval
	}
	if bval, err := strconv.ParseBool(cell); err == nil {
		return bval
	}
	return cell
}
