package xlsx

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/format"
	"github.com/tsawler/officemd/model"
)

// DefaultCSVSheet names the sheet of CSV data read from memory.
const DefaultCSVSheet = "Sheet1"

// Importer converts spreadsheets to Markdown. The zero value renders
// DefaultMaxRows data rows per sheet.
type Importer struct {
	// MaxRows caps the data rows rendered per sheet; <= 0 means DefaultMaxRows.
	MaxRows int
	// CSVSheet names the sheet produced from CSV input; empty means
	// DefaultCSVSheet.
	CSVSheet string
	// Format is the format the caller expects. When it is XLSX or ODS the
	// content must be a workbook package; when it is CSV or Unknown,
	// content that is not a ZIP package is read as CSV.
	Format format.Format
}

// Import converts a spreadsheet held in memory to Markdown. XLSX and ODS
// packages are told apart by their content.
func (i Importer) Import(data []byte) (string, error) {
	sheets, err := i.ReadSheets(data)
	if err != nil {
		return "", err
	}
	return RenderSheets(sheets, i.MaxRows), nil
}

// ReadSheets parses a spreadsheet held in memory into sheets in file order.
func (i Importer) ReadSheets(data []byte) ([]*model.Sheet, error) {
	f, err := format.DetectBytes(data)
	if err != nil {
		return nil, convert.Wrap(err, "failed to open spreadsheet")
	}

	switch f {
	case format.XLSX:
		r, err := OpenBytes(data)
		if err != nil {
			return nil, convert.Wrap(err, "failed to open spreadsheet")
		}
		return r.Sheets(), nil
	case format.ODS:
		sheets, err := ReadODS(data)
		if err != nil {
			return nil, convert.Wrap(err, "failed to open spreadsheet")
		}
		return sheets, nil
	case format.Unknown:
		if isZIP(data) {
			break
		}
		if i.Format == format.XLSX || i.Format == format.ODS {
			return nil, convert.Errorf("failed to open spreadsheet: content is not an %s workbook", i.Format)
		}
		name := i.CSVSheet
		if name == "" {
			name = DefaultCSVSheet
		}
		sheet, err := ReadCSV(data, name)
		if err != nil {
			return nil, convert.Wrap(err, "failed to open spreadsheet")
		}
		return []*model.Sheet{sheet}, nil
	}
	return nil, convert.Errorf("failed to open spreadsheet: %s is not a spreadsheet format", f)
}

func isZIP(data []byte) bool {
	return len(data) >= 4 && data[0] == 'P' && data[1] == 'K' && data[2] == 3 && data[3] == 4
}

// ImportFile reads a spreadsheet file and converts it to Markdown. A CSV
// file's sheet is named after the file.
func (i Importer) ImportFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", convert.Wrap(err, "failed to read file")
	}
	ext := format.Detect(path)
	if i.Format == format.Unknown && ext.IsSpreadsheet() {
		i.Format = ext
	}
	if i.CSVSheet == "" && ext == format.CSV {
		base := filepath.Base(path)
		i.CSVSheet = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return i.Import(data)
}

// Import converts a spreadsheet held in memory to Markdown with default
// settings.
func Import(data []byte) (string, error) {
	return Importer{}.Import(data)
}

// ImportFile reads a spreadsheet file and converts it to Markdown with
// default settings.
func ImportFile(path string) (string, error) {
	return Importer{}.ImportFile(path)
}
