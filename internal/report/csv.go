package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadRows decodes a benchmark results table. The first line names the
// columns and the first column of every line is a positional row index,
// which is dropped.
func ReadRows(rd io.Reader) ([]*Record, error) {
	header, rows, err := readTable(rd)
	if err != nil {
		return nil, err
	}
	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		rec := NewRecord()
		for i := 1; i < len(header); i++ {
			rec.Set(header[i], ParseCell(row[i]))
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadCSV decodes a report written by WriteCSV. The first column is the
// index; its header names the index column.
func ReadCSV(rd io.Reader) (*Report, error) {
	header, rows, err := readTable(rd)
	if err != nil {
		return nil, err
	}
	index := header[0]
	if index == "" {
		index = IndexColumn
	}
	rep := New(index)
	for _, row := range rows {
		rec := NewRecord()
		rec.Key = row[0]
		for i := 1; i < len(header); i++ {
			rec.Set(header[i], ParseCell(row[i]))
		}
		if err := rep.Append(rec); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

// WriteCSV encodes rep with the index as the first column followed by every
// report column. Floats are written in round-trip form, booleans as
// True/False and missing values as empty cells.
func WriteCSV(w io.Writer, rep *Report) error {
	cw := csv.NewWriter(w)
	columns := rep.Columns()

	header := append([]string{rep.Index()}, columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, rec := range rep.records {
		row[0] = rec.Key
		for i, c := range columns {
			row[i+1] = rec.Value(c).String()
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func readTable(rd io.Reader) (header []string, rows [][]string, err error) {
	cr := csv.NewReader(rd)
	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, errors.New("empty table: no header line")
	}
	header = all[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	if len(header) < 2 {
		return nil, nil, fmt.Errorf("table has %d column(s), want an index column and at least one value column", len(header))
	}
	return header, all[1:], nil
}
