package xlsx

import (
	"fmt"
	"strings"

	"github.com/tsawler/officemd/markdown"
	"github.com/tsawler/officemd/model"
)

// DefaultMaxRows is the number of data rows rendered per sheet.
const DefaultMaxRows = 500

// RenderSheets renders sheets as Markdown: a "## name" heading per sheet
// followed by a pipe table whose first row is the header. Sheets without
// columns are skipped. At most maxRows data rows are written per sheet and
// a note reports how many were left out; maxRows <= 0 means DefaultMaxRows.
func RenderSheets(sheets []*model.Sheet, maxRows int) string {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	var sb strings.Builder
	for _, sheet := range sheets {
		cols := sheet.ColCount()
		if cols == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(markdown.HeadingPrefix(2))
		sb.WriteString(sheet.Name)
		sb.WriteString("\n\n")

		if sheet.RowCount() == 0 {
			sb.WriteString("*(empty sheet)*\n")
			continue
		}
		writeSheetTable(&sb, sheet.Rows, cols, maxRows)
	}
	return sb.String()
}

func writeSheetTable(sb *strings.Builder, rows [][]model.Cell, cols, maxRows int) {
	markdown.WriteTableRow(sb, cellStrings(rows[0]), cols)
	markdown.WriteSeparator(sb, cols)

	data := rows[1:]
	omitted := 0
	if len(data) > maxRows {
		omitted = len(data) - maxRows
		data = data[:maxRows]
	}
	for _, row := range data {
		markdown.WriteTableRow(sb, cellStrings(row), cols)
	}

	if omitted > 0 {
		fmt.Fprintf(sb, "\n> **Note**: %d rows were omitted (showing first %d data rows).\n", omitted, maxRows)
	}
}

func cellStrings(row []model.Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.String()
	}
	return out
}
