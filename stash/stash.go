// Package stash saves timestamped snapshots of Tables to disk and loads
// them back, for stashing intermediate data between pipeline runs.
package stash

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pierrec/lz4"

	"github.com/go-squish/squish"
	"github.com/go-squish/squish/errors"
	"github.com/go-squish/squish/schema"
	"github.com/go-squish/squish/table"
)

const snapshotExt = ".jsonl.lz4"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PathSafeNow converts the current datetime into a string safe for use in
// file and directory names
func PathSafeNow() string {
	return time.Now().Format("2006-01-02_15-04-05")
}

// header describes the shape of a stashed Table, stored as the first line
// of each snapshot
type header struct {
	Columns []string `json:"columns"`
	Labels  []string `json:"labels"`
}

// A Stash is a directory of lz4-compressed Table snapshots. Snapshot ids
// combine a path-safe timestamp with a random UUID.
type Stash struct {
	dir string
}

// CreateStash returns a Stash rooted at the given directory, which is
// created if it does not exist
func CreateStash(dir string) *Stash {
	return &Stash{dir: dir}
}

// Save writes a snapshot of a Table to the Stash, returning its id.
// Numeric cell values are stored as JSON numbers, so a loaded snapshot
// yields float64 cells regardless of the original numeric type.
func (s *Stash) Save(t squish.Table) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	id := fmt.Sprintf("%s_%s", PathSafeNow(), uid)
	f, err := os.Create(s.path(id))
	if err != nil {
		return "", err
	}
	defer f.Close()
	compressor := lz4.NewWriter(f)
	if err := s.encode(compressor, t); err != nil {
		return "", err
	}
	if err := compressor.Close(); err != nil {
		return "", err
	}
	return id, nil
}

// Load reads the snapshot with the given id back into a Table
func (s *Stash) Load(id string) (squish.Table, error) {
	f, err := os.Open(s.path(id))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return s.decode(lz4.NewReader(f))
}

// List returns the ids of all snapshots in the Stash, in name order
// (which is chronological, since ids begin with a timestamp)
func (s *Stash) List() ([]string, error) {
	infos, err := ioutil.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		if strings.HasSuffix(info.Name(), snapshotExt) {
			ids = append(ids, strings.TrimSuffix(info.Name(), snapshotExt))
		}
	}
	return ids, nil
}

func (s *Stash) path(id string) string {
	return filepath.Join(s.dir, id+snapshotExt)
}

// encode writes a header line followed by one JSON array per row
func (s *Stash) encode(w *lz4.Writer, t squish.Table) error {
	head, err := json.Marshal(header{Columns: t.Schema().ColumnNames(), Labels: t.Labels()})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", head); err != nil {
		return err
	}
	for i := 0; i < t.NumRows(); i++ {
		row, err := json.Marshal(t.Row(i).Values())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", row); err != nil {
			return err
		}
	}
	return nil
}

// decode reads a snapshot back into a Table
func (s *Stash) decode(r *lz4.Reader) (squish.Table, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, errors.ConfigurationError{Message: "snapshot is missing its header line"}
	}
	var head header
	if err := json.Unmarshal(scanner.Bytes(), &head); err != nil {
		return nil, err
	}
	sch, err := schema.CreateSchema(head.Columns...)
	if err != nil {
		return nil, err
	}
	t := table.CreateTable(sch)
	for scanner.Scan() {
		var values []interface{}
		if err := json.Unmarshal(scanner.Bytes(), &values); err != nil {
			return nil, err
		}
		if err := t.AppendRow(values...); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t.WithLabels(head.Labels)
}
