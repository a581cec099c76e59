package model

import (
	"math"
	"strconv"
	"time"
)

// CellKind represents the type of value held by a spreadsheet cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellInteger
	CellFloat
	CellBool
	CellError
	CellDateTime
	CellDateTimeIso
	CellDurationIso
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellString:
		return "string"
	case CellInteger:
		return "integer"
	case CellFloat:
		return "float"
	case CellBool:
		return "bool"
	case CellError:
		return "error"
	case CellDateTime:
		return "datetime"
	case CellDateTimeIso:
		return "datetime-iso"
	case CellDurationIso:
		return "duration-iso"
	default:
		return "unknown"
	}
}

// Cell is one typed spreadsheet value. Only the field matching Kind is
// meaningful: Text for String, Error, DateTimeIso and DurationIso; Int, Float,
// Bool and Time for their namesakes.
type Cell struct {
	Kind  CellKind
	Text  string
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
}

func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

func StringCell(s string) Cell {
	return Cell{Kind: CellString, Text: s}
}

func IntCell(i int64) Cell {
	return Cell{Kind: CellInteger, Int: i}
}

func FloatCell(f float64) Cell {
	return Cell{Kind: CellFloat, Float: f}
}

func BoolCell(b bool) Cell {
	return Cell{Kind: CellBool, Bool: b}
}

func ErrorCell(code string) Cell {
	return Cell{Kind: CellError, Text: code}
}

func DateTimeCell(t time.Time) Cell {
	return Cell{Kind: CellDateTime, Time: t}
}

func DateTimeIsoCell(s string) Cell {
	return Cell{Kind: CellDateTimeIso, Text: s}
}

func DurationIsoCell(s string) Cell {
	return Cell{Kind: CellDurationIso, Text: s}
}

// IsEmpty reports whether the cell renders as an empty string.
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellString, CellError, CellDateTimeIso, CellDurationIso:
		return c.Text == ""
	default:
		return false
	}
}

// String renders the cell the way it appears in a Markdown table.
//
// Floats with no fractional part print without a decimal point, booleans
// print TRUE/FALSE, and date-times print as an ISO date, a time of day, or
// both depending on which parts are set.
func (c Cell) String() string {
	switch c.Kind {
	case CellString, CellError, CellDateTimeIso, CellDurationIso:
		return c.Text
	case CellInteger:
		return strconv.FormatInt(c.Int, 10)
	case CellFloat:
		return FormatFloat(c.Float)
	case CellBool:
		if c.Bool {
			return "TRUE"
		}
		return "FALSE"
	case CellDateTime:
		return formatDateTime(c.Time)
	default:
		return ""
	}
}

// FormatFloat prints integral values below 1e15 without a fractional part and
// everything else in the shortest exact decimal form.
func FormatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatDateTime(t time.Time) string {
	hasClock := t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0
	switch {
	case t.Year() < 1900:
		// A serial below 1 carries no date, only a time of day.
		return t.Format("15:04:05")
	case hasClock:
		return t.Format("2006-01-02 15:04:05")
	default:
		return t.Format("2006-01-02")
	}
}

// Sheet is a named grid of typed cells. Rows may be ragged.
type Sheet struct {
	Name string
	Rows [][]Cell
}

// RowCount returns the number of rows.
func (s *Sheet) RowCount() int {
	return len(s.Rows)
}

// ColCount returns the length of the widest row.
func (s *Sheet) ColCount() int {
	count := 0
	for _, row := range s.Rows {
		if len(row) > count {
			count = len(row)
		}
	}
	return count
}
