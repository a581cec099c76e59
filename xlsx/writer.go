package xlsx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/markdown"
	"github.com/tsawler/officemd/model"
)

// DefaultFallbackSheet names the sheet written for Markdown without tables.
const DefaultFallbackSheet = "Sheet1"

// Exporter converts Markdown to XLSX workbooks.
type Exporter struct {
	// FallbackSheet names the single sheet written when the Markdown holds
	// no tables; empty means DefaultFallbackSheet.
	FallbackSheet string
}

// NewExporter returns an Exporter with default settings.
func NewExporter() *Exporter {
	return &Exporter{FallbackSheet: DefaultFallbackSheet}
}

// Export converts Markdown to an XLSX workbook written to w.
func (e *Exporter) Export(md string, w io.Writer) error {
	f, err := e.Workbook(md)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return convert.Wrap(err, "failed to save workbook")
	}
	return nil
}

// ExportFile converts Markdown to an XLSX file. The file is only created
// once the workbook has been built.
func (e *Exporter) ExportFile(md, path string) error {
	wb, err := e.Workbook(md)
	if err != nil {
		return err
	}
	defer wb.Close()

	f, err := os.Create(path)
	if err != nil {
		return convert.Wrap(err, "failed to create file")
	}

	bw := bufio.NewWriter(f)
	if err := wb.Write(bw); err != nil {
		f.Close()
		return convert.Wrap(err, "failed to save workbook")
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return convert.Wrap(err, "failed to save workbook")
	}
	if err := f.Close(); err != nil {
		return convert.Wrap(err, "failed to save workbook")
	}
	return nil
}

// Export converts Markdown to an XLSX workbook with default settings.
func Export(md string, w io.Writer) error {
	return NewExporter().Export(md, w)
}

// ExportFile converts Markdown to an XLSX file with default settings.
func ExportFile(md, path string) error {
	return NewExporter().ExportFile(md, path)
}

// Workbook builds the workbook for a Markdown document. Every pipe table
// becomes a sheet named Table{n} with the header in the first row. Without
// tables each line of the document goes into column A of one sheet. All
// cells are written as text. The caller closes the returned file.
func (e *Exporter) Workbook(md string) (*excelize.File, error) {
	f := excelize.NewFile()

	tables := markdown.Tables(md)
	if len(tables) == 0 {
		if err := e.writeLines(f, markdown.Lines(md)); err != nil {
			f.Close()
			return nil, err
		}
		return f, nil
	}

	for n, t := range tables {
		name := fmt.Sprintf("Table%d", n+1)
		if err := addSheet(f, n, name); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeTable(f, name, t); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// addSheet renames the default sheet for the first table and appends new
// sheets for the rest.
func addSheet(f *excelize.File, index int, name string) error {
	if index == 0 {
		return convert.Wrap(f.SetSheetName(f.GetSheetName(0), name), "failed to create sheet")
	}
	if _, err := f.NewSheet(name); err != nil {
		return convert.Wrap(err, "failed to create sheet")
	}
	return nil
}

func (e *Exporter) writeLines(f *excelize.File, lines []string) error {
	name := e.FallbackSheet
	if name == "" {
		name = DefaultFallbackSheet
	}
	if err := addSheet(f, 0, name); err != nil {
		return err
	}

	for i, line := range lines {
		if err := setCell(f, name, 0, i, line); err != nil {
			return convert.Wrap(err, "failed to write cell")
		}
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, t *model.Table) error {
	for col, text := range t.Header {
		if err := setCell(f, sheet, col, 0, text); err != nil {
			return convert.Wrap(err, "failed to write header")
		}
	}
	for r, row := range t.Rows {
		for col, text := range row {
			if err := setCell(f, sheet, col, r+1, text); err != nil {
				return convert.Wrap(err, "failed to write data")
			}
		}
	}
	return nil
}

// setCell writes text at 0-indexed coordinates. Text longer than a cell
// can hold is an error rather than being cut short.
func setCell(f *excelize.File, sheet string, col, row int, text string) error {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if n := utf8.RuneCountInString(text); n > maxCellChars {
		return fmt.Errorf("cell %s holds %d characters, limit is %d", ref, n, maxCellChars)
	}
	return f.SetCellStr(sheet, ref, text)
}
