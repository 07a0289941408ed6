// Package tabular provides the small in-memory table the standardization and
// alignment steps operate on, plus CSV loading and saving.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dataset is an ordered table with named columns. Cells are nullable: a nil
// cell means the value was missing in the source data.
type Dataset struct {
	Name    string
	Columns []string
	Rows    [][]*string
}

// ColumnIndex returns the position of a named column.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	for i, c := range d.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Column returns a copy of the named column's cells in row order.
func (d *Dataset) Column(name string) ([]*string, bool) {
	idx, ok := d.ColumnIndex(name)
	if !ok {
		return nil, false
	}
	out := make([]*string, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row[idx]
	}
	return out, true
}

// Clone returns a copy whose column and row slices are independent of the
// original, so cells can be replaced without touching the source dataset.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Name:    d.Name,
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([][]*string, len(d.Rows)),
	}
	for i, row := range d.Rows {
		out.Rows[i] = append([]*string(nil), row...)
	}
	return out
}

// ReadCSV loads a dataset from a CSV file. The first record is the header and
// the dataset takes its name from the file base name. Empty fields load as
// empty strings, not nulls; CSV cannot distinguish the two.
func ReadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	base := filepath.Base(path)
	d := &Dataset{
		Name:    strings.TrimSuffix(base, filepath.Ext(base)),
		Columns: records[0],
		Rows:    make([][]*string, 0, len(records)-1),
	}
	for _, rec := range records[1:] {
		row := make([]*string, len(rec))
		for i := range rec {
			v := rec[i]
			row[i] = &v
		}
		d.Rows = append(d.Rows, row)
	}
	return d, nil
}

// WriteCSV saves a dataset to a CSV file. Nil cells are written as empty
// fields.
func WriteCSV(d *Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(d.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	record := make([]string, len(d.Columns))
	for _, row := range d.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) && row[i] != nil {
				record[i] = *row[i]
			}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
