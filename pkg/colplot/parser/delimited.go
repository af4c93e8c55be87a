package parser

import (
	"encoding/csv"
	"errors"
	"io"
)

// ErrEmpty indicates the source has no header record.
var ErrEmpty = errors.New("no header record")

func newReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

// ReadHeader parses only the first record of r.
func ReadHeader(r io.Reader, delimiter rune) ([]string, error) {
	reader := newReader(r, delimiter)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}
	return header, nil
}

// ReadColumns skips the header record and returns the requested columns of
// every following record. Blank lines are skipped by the csv reader.
func ReadColumns(r io.Reader, delimiter rune, columns []int) (header []string, rows [][]float64, err error) {
	reader := newReader(r, delimiter)

	header, err = reader.Read()
	if err == io.EOF {
		return nil, nil, ErrEmpty
	}
	if err != nil {
		return nil, nil, err
	}

	rows = [][]float64{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		line, _ := reader.FieldPos(0)
		row, err := SelectRow(record, columns, line)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}

	return SelectHeader(header, columns), rows, nil
}
