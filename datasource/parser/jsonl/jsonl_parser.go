// Package jsonl parses JSON Lines data into Tables. This parser uses
// https://github.com/tidwall/gjson to process data, and supports Schema
// column names formatted as gjson paths.
package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/table"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	HeaderLines   int    // The number of lines to ignore from the beginning of the data. Defaults to 0.
	Comment       string // Lines beginning with the comment string are ignored. Defaults to no comment string.
	MaxBufferSize int    // Maximum size in bytes of the buffer used to read lines
}

// Parser produces Tables from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are parsed lazily from
// each line of JSON using their column name, which should be a gjson path.
// Values within the JSON which do not correspond to a Schema column are
// ignored; Schema columns missing from a line become nil cells.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a Table matching the given Schema
func (p *Parser) Parse(r io.Reader, s squish.Schema) (squish.Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	colNames := s.ColumnNames()
	t := table.CreateTable(s)
	line := p.conf.HeaderLines
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}
		if len(p.conf.Comment) > 0 && strings.HasPrefix(text, p.conf.Comment) {
			continue
		}
		if !gjson.Valid(text) {
			return nil, errors.ConfigurationError{Message: fmt.Sprintf("line %d is not valid JSON", line)}
		}
		doc := gjson.Parse(text)
		values := make([]interface{}, len(colNames))
		for i, path := range colNames {
			res := doc.Get(path)
			if !res.Exists() {
				continue
			}
			values[i] = res.Value()
		}
		if err := t.AppendRow(values...); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
