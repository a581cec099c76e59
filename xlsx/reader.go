package xlsx

import (
	"encoding/xml"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/tsawler/officemd/model"
	"github.com/tsawler/officemd/opc"
)

const (
	workbookPart      = "xl/workbook.xml"
	workbookRelsPart  = "xl/_rels/workbook.xml.rels"
	sharedStringsPart = "xl/sharedStrings.xml"
	stylesPart        = "xl/styles.xml"
)

// Reader provides access to the sheets of an XLSX workbook.
type Reader struct {
	pkg           *opc.Package
	workbook      *workbookXML
	sharedStrings []string
	cellFormats   []int          // style index -> numFmtId
	customFormats map[int]string // numFmtId -> format code
	sheetRels     map[string]string
	sheets        []*model.Sheet
}

// Open reads an XLSX file from disk.
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return OpenBytes(data)
}

// OpenBytes parses an XLSX package held in memory. Every worksheet is read
// eagerly; a sheet that cannot be parsed fails the whole workbook.
func OpenBytes(data []byte) (*Reader, error) {
	pkg, err := opc.OpenBytes(data)
	if err != nil {
		return nil, err
	}
	if err := pkg.Validate(opc.ContentTypesPart, workbookPart); err != nil {
		return nil, err
	}

	r := &Reader{
		pkg:           pkg,
		sheetRels:     make(map[string]string),
		customFormats: make(map[int]string),
	}

	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}
	if err := r.parseWorkbook(); err != nil {
		return nil, fmt.Errorf("parsing workbook: %w", err)
	}
	if err := r.parseSharedStrings(); err != nil {
		return nil, fmt.Errorf("parsing shared strings: %w", err)
	}
	if err := r.parseStyles(); err != nil {
		return nil, fmt.Errorf("parsing styles: %w", err)
	}
	if err := r.parseWorksheets(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseRelationships maps workbook relationship ids to part names.
func (r *Reader) parseRelationships() error {
	if !r.pkg.Has(workbookRelsPart) {
		return nil
	}
	data, err := r.pkg.Read(workbookRelsPart)
	if err != nil {
		return err
	}

	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return err
	}
	for _, rel := range rels.Relationship {
		r.sheetRels[rel.ID] = resolveTarget(rel.Target)
	}
	return nil
}

// resolveTarget turns a relationship target of the workbook part into a
// package part name.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join("xl", target)
}

func (r *Reader) parseWorkbook() error {
	data, err := r.pkg.Read(workbookPart)
	if err != nil {
		return err
	}
	r.workbook = &workbookXML{}
	return xml.Unmarshal(data, r.workbook)
}

func (r *Reader) date1904() bool {
	v := r.workbook.Properties.Date1904
	return v == "1" || v == "true"
}

// parseSharedStrings reads the shared string table. Workbooks without
// strings omit the part.
func (r *Reader) parseSharedStrings() error {
	if !r.pkg.Has(sharedStringsPart) {
		return nil
	}
	data, err := r.pkg.Read(sharedStringsPart)
	if err != nil {
		return err
	}

	var sst sharedStringsXML
	if err := xml.Unmarshal(data, &sst); err != nil {
		return err
	}
	r.sharedStrings = make([]string, len(sst.SI))
	for i := range sst.SI {
		r.sharedStrings[i] = sst.SI[i].text()
	}
	return nil
}

func (r *Reader) parseStyles() error {
	if !r.pkg.Has(stylesPart) {
		return nil
	}
	data, err := r.pkg.Read(stylesPart)
	if err != nil {
		return err
	}

	var styles stylesXML
	if err := xml.Unmarshal(data, &styles); err != nil {
		return err
	}
	for _, nf := range styles.NumFmts {
		r.customFormats[nf.NumFmtID] = nf.FormatCode
	}
	r.cellFormats = make([]int, len(styles.CellXfs))
	for i, xf := range styles.CellXfs {
		r.cellFormats[i] = xf.NumFmtID
	}
	return nil
}

// isDateStyle reports whether cells with the given style index display as
// dates or times.
func (r *Reader) isDateStyle(style int) bool {
	if style < 0 || style >= len(r.cellFormats) {
		return false
	}
	id := r.cellFormats[style]
	if code, ok := r.customFormats[id]; ok {
		return isDateFormatCode(code)
	}
	return isBuiltinDateFormat(id)
}

func (r *Reader) parseWorksheets() error {
	r.sheets = make([]*model.Sheet, 0, len(r.workbook.Sheets))

	for i, ref := range r.workbook.Sheets {
		target := r.sheetRels[ref.RID]
		if target == "" {
			target = fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1)
		}

		data, err := r.pkg.Read(target)
		if err != nil {
			return fmt.Errorf("reading sheet %q: %w", ref.Name, err)
		}
		sheet, err := r.parseWorksheet(data, ref.Name)
		if err != nil {
			return fmt.Errorf("reading sheet %q: %w", ref.Name, err)
		}
		r.sheets = append(r.sheets, sheet)
	}
	return nil
}

type placedCell struct {
	row, col int
	cell     model.Cell
}

// parseWorksheet reads one worksheet and crops it to its used range: the
// bounding box of the non-empty cells.
func (r *Reader) parseWorksheet(data []byte, name string) (*model.Sheet, error) {
	var ws worksheetXML
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, err
	}

	var placed []placedCell
	minRow, minCol := -1, -1
	maxRow, maxCol := -1, -1

	rowIdx := -1
	for _, row := range ws.Rows {
		if row.R > 0 {
			rowIdx = row.R - 1
		} else {
			rowIdx++
		}

		colIdx := -1
		for _, c := range row.Cells {
			if c.R != "" {
				col, _, err := ParseCellRef(c.R)
				if err != nil {
					return nil, err
				}
				colIdx = col
			} else {
				colIdx++
			}

			cell := r.cellValue(c)
			if cell.IsEmpty() {
				continue
			}
			placed = append(placed, placedCell{row: rowIdx, col: colIdx, cell: cell})

			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	sheet := &model.Sheet{Name: name}
	if len(placed) == 0 {
		return sheet, nil
	}

	sheet.Rows = make([][]model.Cell, maxRow-minRow+1)
	width := maxCol - minCol + 1
	for i := range sheet.Rows {
		sheet.Rows[i] = make([]model.Cell, width)
	}
	for _, p := range placed {
		sheet.Rows[p.row-minRow][p.col-minCol] = p.cell
	}
	return sheet, nil
}

// cellValue types a cell by its t attribute and, for numbers, its style.
func (r *Reader) cellValue(c cellXML) model.Cell {
	if c.T == "inlineStr" {
		return model.StringCell(c.Is.text())
	}
	if c.V == nil {
		// A formula without a cached value, or a styled blank.
		return model.EmptyCell()
	}

	v := *c.V
	switch c.T {
	case "s":
		idx, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || idx < 0 || idx >= len(r.sharedStrings) {
			return model.EmptyCell()
		}
		return model.StringCell(r.sharedStrings[idx])
	case "str":
		return model.StringCell(v)
	case "b":
		return model.BoolCell(v == "1" || strings.EqualFold(v, "true"))
	case "e":
		return model.ErrorCell(v)
	case "d":
		return model.DateTimeIsoCell(v)
	}

	if strings.TrimSpace(v) == "" {
		return model.EmptyCell()
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return model.StringCell(v)
	}
	if r.isDateStyle(c.S) {
		return model.DateTimeCell(serialToTime(f, r.date1904()))
	}
	return model.FloatCell(f)
}

// Sheets returns the worksheets in workbook order.
func (r *Reader) Sheets() []*model.Sheet {
	return r.sheets
}

// SheetCount returns the number of sheets in the workbook.
func (r *Reader) SheetCount() int {
	return len(r.sheets)
}

// SheetNames returns the names of all sheets.
func (r *Reader) SheetNames() []string {
	names := make([]string, len(r.sheets))
	for i, s := range r.sheets {
		names[i] = s.Name
	}
	return names
}

// Sheet returns the sheet at the given index (0-indexed).
func (r *Reader) Sheet(index int) (*model.Sheet, error) {
	if index < 0 || index >= len(r.sheets) {
		return nil, fmt.Errorf("sheet index %d out of range (0-%d)", index, len(r.sheets)-1)
	}
	return r.sheets[index], nil
}

// SheetByName returns the sheet with the given name.
func (r *Reader) SheetByName(name string) (*model.Sheet, error) {
	for _, s := range r.sheets {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("sheet not found: %s", name)
}
