package xlsx

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/officemd/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV parses comma-separated values into a single sheet. Fields are
// typed as integers, floats or booleans when they parse as one and kept as
// strings otherwise. Records may have different lengths.
// Input that is not UTF-8 text is rejected.
func ReadCSV(data []byte, name string) (*model.Sheet, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return nil, errors.New("content is not UTF-8 text")
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]model.Cell, len(records))
	for i, record := range records {
		row := make([]model.Cell, len(record))
		for j, field := range record {
			row[j] = csvCell(field)
		}
		rows[i] = row
	}
	return &model.Sheet{Name: name, Rows: trimGrid(rows)}, nil
}

func csvCell(field string) model.Cell {
	s := strings.TrimSpace(field)
	if s == "" {
		return model.EmptyCell()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return model.IntCell(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return model.FloatCell(f)
	}
	switch strings.ToLower(s) {
	case "true":
		return model.BoolCell(true)
	case "false":
		return model.BoolCell(false)
	}
	return model.StringCell(field)
}
