package officemd

import (
	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/docx"
	"github.com/tsawler/officemd/format"
	"github.com/tsawler/officemd/pdfdoc"
	"github.com/tsawler/officemd/pptx"
	"github.com/tsawler/officemd/xlsx"
)

// fileExporter is an exporter that can also write straight to a path.
type fileExporter interface {
	convert.Exporter
	ExportFile(md, path string) error
}

var importers = map[format.Format]func(importOptions) convert.Importer{
	format.DOCX: func(importOptions) convert.Importer { return docx.Importer{} },
	format.XLSX: spreadsheetImporter(format.XLSX),
	format.ODS:  spreadsheetImporter(format.ODS),
	format.CSV:  spreadsheetImporter(format.CSV),
	format.PPTX: func(importOptions) convert.Importer { return pptx.Importer{} },
	format.PDF:  func(importOptions) convert.Importer { return pdfdoc.Importer{} },
}

var exporters = map[format.Format]func(exportOptions) fileExporter{
	format.DOCX: func(o exportOptions) fileExporter {
		return &docx.Exporter{CompressionLevel: o.compressionLevel, Now: o.now}
	},
	format.XLSX: func(o exportOptions) fileExporter {
		return &xlsx.Exporter{FallbackSheet: o.fallbackSheet}
	},
	format.PPTX: func(o exportOptions) fileExporter {
		return &pptx.Exporter{CompressionLevel: o.compressionLevel, DefaultTitle: o.slideTitle, Now: o.now}
	},
}

// The spreadsheet importer tells XLSX, ODS and CSV apart by content.
func spreadsheetImporter(f format.Format) func(importOptions) convert.Importer {
	return func(o importOptions) convert.Importer {
		return xlsx.Importer{MaxRows: o.maxSheetRows, CSVSheet: o.csvSheet, Format: f}
	}
}

// ImporterFor returns the default converter from f to Markdown. The second
// result is false when f cannot be imported.
func ImporterFor(f format.Format) (convert.Importer, bool) {
	return importerFor(f, defaultImportOptions())
}

// ExporterFor returns the default converter from Markdown to f. The second
// result is false when f cannot be exported.
func ExporterFor(f format.Format) (convert.Exporter, bool) {
	exp, ok := exporterFor(f, defaultExportOptions())
	if !ok {
		return nil, false
	}
	return exp, true
}

func importerFor(f format.Format, o importOptions) (convert.Importer, bool) {
	newImporter, ok := importers[f]
	if !ok {
		return nil, false
	}
	return newImporter(o), true
}

func exporterFor(f format.Format, o exportOptions) (fileExporter, bool) {
	newExporter, ok := exporters[f]
	if !ok {
		return nil, false
	}
	return newExporter(o), true
}
