// Package officemd provides a fluent API for converting office documents to
// Markdown and Markdown back to office documents.
//
// Basic usage:
//
//	md, err := officemd.Open("report.docx").Markdown()
//	if err != nil {
//	    // handle error
//	}
//
// Writing a document, with the format taken from the destination extension:
//
//	err := officemd.FromMarkdown(md).
//	    SlideTitle("Quarterly Review").
//	    WriteFile("deck.pptx")
//
// Word-processing (DOCX), spreadsheet (XLSX, ODS, CSV), presentation (PPTX)
// and PDF documents import; DOCX, XLSX and PPTX export. The format packages
// (docx, xlsx, pptx, pdfdoc) can also be used directly.
package officemd

import (
	"github.com/tsawler/officemd/internal/logger"
)

// Open returns an Extractor for the document at path. Nothing is read until
// a terminal operation such as Markdown is called.
//
// Example:
//
//	md, err := officemd.Open("budget.xlsx").MaxSheetRows(100).Markdown()
func Open(path string) *Extractor {
	return &Extractor{
		path:    path,
		options: defaultImportOptions(),
		log:     logger.Discard(),
	}
}

// FromBytes returns an Extractor for a document held in memory. The format
// is detected from the content unless set with As.
//
// Example:
//
//	md, err := officemd.FromBytes(data).As(format.PPTX).Markdown()
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		hasData: true,
		options: defaultImportOptions(),
		log:     logger.Discard(),
	}
}

// FromMarkdown returns a Writer that serializes md into a native document.
//
// Example:
//
//	err := officemd.FromMarkdown("# Title\n\nBody\n").WriteFile("notes.docx")
func FromMarkdown(md string) *Writer {
	return &Writer{
		markdown: md,
		options:  defaultExportOptions(),
		log:      logger.Discard(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	md := officemd.Must(officemd.Open("notes.docx").Markdown())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
