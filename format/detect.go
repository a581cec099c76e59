// Package format detects the document formats officemd converts.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Markdown indicates Markdown text, the canonical representation.
	Markdown
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// ODS indicates an OpenDocument spreadsheet (.ods).
	ODS
	// CSV indicates comma-separated values.
	CSV
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
	// PDF indicates a PDF document.
	PDF
)

// All lists every known format except Unknown, in display order.
var All = []Format{Markdown, DOCX, XLSX, ODS, CSV, PPTX, PDF}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "Markdown"
	case DOCX:
		return "DOCX"
	case XLSX:
		return "XLSX"
	case ODS:
		return "ODS"
	case CSV:
		return "CSV"
	case PPTX:
		return "PPTX"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Markdown:
		return ".md"
	case DOCX:
		return ".docx"
	case XLSX:
		return ".xlsx"
	case ODS:
		return ".ods"
	case CSV:
		return ".csv"
	case PPTX:
		return ".pptx"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// IsSpreadsheet reports whether the format is read by the spreadsheet
// converter.
func (f Format) IsSpreadsheet() bool {
	return f == XLSX || f == ODS || f == CSV
}

// CanImport reports whether documents of this format convert to Markdown.
func (f Format) CanImport() bool {
	switch f {
	case DOCX, XLSX, ODS, CSV, PPTX, PDF:
		return true
	default:
		return false
	}
}

// CanExport reports whether Markdown converts to this format. The page-layout
// and the secondary spreadsheet formats are import-only.
func (f Format) CanExport() bool {
	switch f {
	case DOCX, XLSX, PPTX:
		return true
	default:
		return false
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return Markdown
	case ".docx":
		return DOCX
	case ".xlsx", ".xlsm":
		return XLSX
	case ".ods":
		return ODS
	case ".csv":
		return CSV
	case ".pptx":
		return PPTX
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// Parse resolves a user-supplied format name such as "docx" or ".xlsx".
func Parse(name string) Format {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if name == "" {
		return Unknown
	}
	return Detect("x." + name)
}

var (
	magicPDF = []byte("%PDF")
	magicZIP = []byte{0x50, 0x4B, 0x03, 0x04}
)

// DetectFromMagic checks file magic bytes to determine format.
// ZIP containers need DetectFromReader to tell DOCX, XLSX, PPTX and ODS apart;
// they return Unknown here.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, magicPDF) {
		return PDF
	}
	return Unknown
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection and can
// distinguish between different ZIP-based formats.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 8)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, magicPDF) {
		return PDF, nil
	}
	if bytes.HasPrefix(magic, magicZIP) {
		return detectZIPFormat(r, size)
	}
	return Unknown, nil
}

// DetectBytes is DetectFromReader over an in-memory document.
func DetectBytes(data []byte) (Format, error) {
	return DetectFromReader(bytes.NewReader(data), int64(len(data)))
}

// detectZIPFormat inspects a ZIP archive to determine if it's DOCX, XLSX, PPTX or ODS.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	// OpenDocument packages carry a mimetype entry.
	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			break
		}
		data := make([]byte, 256)
		n, _ := io.ReadFull(rc, data)
		rc.Close()
		if strings.Contains(string(data[:n]), "application/vnd.oasis.opendocument.spreadsheet") {
			return ODS, nil
		}
	}

	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX, nil
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX, nil
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX, nil
		}
	}

	return Unknown, nil
}
