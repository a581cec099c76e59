package xlsx

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/tsawler/officemd/model"
	"github.com/tsawler/officemd/opc"
)

const odsContentPart = "content.xml"

var (
	odsTableExpr = xpath.MustCompile("//*[local-name()='spreadsheet']/*[local-name()='table']")
	odsRowExpr   = xpath.MustCompile(".//*[local-name()='table-row']")
)

// ReadODS parses an OpenDocument spreadsheet held in memory. Tables become
// sheets in document order, cropped to their used range.
func ReadODS(data []byte) ([]*model.Sheet, error) {
	pkg, err := opc.OpenBytes(data)
	if err != nil {
		return nil, err
	}
	content, err := pkg.Read(odsContentPart)
	if err != nil {
		return nil, err
	}

	doc, err := xmlquery.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", odsContentPart, err)
	}

	var sheets []*model.Sheet
	for _, table := range xmlquery.QuerySelectorAll(doc, odsTableExpr) {
		rows, err := odsRows(table)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", attr(table, "name"), err)
		}
		sheets = append(sheets, &model.Sheet{
			Name: attr(table, "name"),
			Rows: trimGrid(rows),
		})
	}
	return sheets, nil
}

// odsRows expands a table's rows. Repeated empty rows and cells, which
// office suites emit to pad a sheet to its maximum size, are only
// materialized when non-empty content follows them.
func odsRows(table *xmlquery.Node) ([][]model.Cell, error) {
	var rows [][]model.Cell
	pendingRows := 0

	for _, rowNode := range xmlquery.QuerySelectorAll(table, odsRowExpr) {
		repeat, err := repeatCount(rowNode, "number-rows-repeated")
		if err != nil {
			return nil, err
		}
		row, err := odsRow(rowNode)
		if err != nil {
			return nil, err
		}

		if len(row) == 0 {
			pendingRows = min(pendingRows+min(repeat, maxRows), maxRows)
			continue
		}
		for ; pendingRows > 0 && len(rows) < maxRows; pendingRows-- {
			rows = append(rows, nil)
		}
		pendingRows = 0
		for i := 0; i < repeat && len(rows) < maxRows; i++ {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func odsRow(rowNode *xmlquery.Node) ([]model.Cell, error) {
	var cells []model.Cell
	pending := 0

	for n := rowNode.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		if n.Data != "table-cell" && n.Data != "covered-table-cell" {
			continue
		}

		repeat, err := repeatCount(n, "number-columns-repeated")
		if err != nil {
			return nil, err
		}
		cell, err := odsCell(n)
		if err != nil {
			return nil, err
		}

		if cell.IsEmpty() {
			pending = min(pending+min(repeat, maxColumns), maxColumns)
			continue
		}
		for ; pending > 0 && len(cells) < maxColumns; pending-- {
			cells = append(cells, model.EmptyCell())
		}
		pending = 0
		for i := 0; i < repeat && len(cells) < maxColumns; i++ {
			cells = append(cells, cell)
		}
	}
	return cells, nil
}

func repeatCount(n *xmlquery.Node, name string) (int, error) {
	v := attr(n, name)
	if v == "" {
		return 1, nil
	}
	count, err := strconv.Atoi(v)
	if err != nil || count < 1 {
		return 0, fmt.Errorf("invalid %s: %q", name, v)
	}
	return count, nil
}

// odsCell types a cell by its value-type attribute.
func odsCell(n *xmlquery.Node) (model.Cell, error) {
	valueType := ""
	for _, a := range n.Attr {
		if a.Name.Local != "value-type" {
			continue
		}
		if a.Value == "error" {
			return model.ErrorCell(odsText(n)), nil
		}
		if valueType == "" {
			valueType = a.Value
		}
	}

	switch valueType {
	case "float", "percentage", "currency":
		v := attr(n, "value")
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return model.Cell{}, fmt.Errorf("invalid %s value %q", valueType, v)
		}
		return model.FloatCell(f), nil
	case "boolean":
		return model.BoolCell(attr(n, "boolean-value") == "true"), nil
	case "date":
		return model.DateTimeIsoCell(attr(n, "date-value")), nil
	case "time":
		return model.DurationIsoCell(attr(n, "time-value")), nil
	case "string":
		if v := attr(n, "string-value"); v != "" {
			return model.StringCell(v), nil
		}
		return model.StringCell(odsText(n)), nil
	case "":
		if text := odsText(n); text != "" {
			return model.StringCell(text), nil
		}
		return model.EmptyCell(), nil
	}
	return model.StringCell(odsText(n)), nil
}

// odsText joins the text:p paragraphs of a cell with newlines.
func odsText(cell *xmlquery.Node) string {
	var paras []string
	for n := cell.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode && n.Data == "p" {
			var sb strings.Builder
			writeODSText(&sb, n)
			paras = append(paras, sb.String())
		}
	}
	return strings.Join(paras, "\n")
}

// writeODSText expands the whitespace elements of ODF paragraph text.
func writeODSText(sb *strings.Builder, n *xmlquery.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			sb.WriteString(c.Data)
		case xmlquery.ElementNode:
			switch c.Data {
			case "s":
				count := 1
				if v, err := strconv.Atoi(attr(c, "c")); err == nil && v > 0 {
					count = v
				}
				count = min(count, maxCellChars-sb.Len())
				if count > 0 {
					sb.WriteString(strings.Repeat(" ", count))
				}
			case "tab":
				sb.WriteByte('\t')
			case "line-break":
				sb.WriteByte('\n')
			case "annotation":
				// Comments are not cell content.
			default:
				writeODSText(sb, c)
			}
		}
	}
}

// attr returns the value of the attribute with the given local name.
func attr(n *xmlquery.Node, local string) string {
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
