package officemd

import (
	"time"

	"github.com/tsawler/officemd/format"
	"github.com/tsawler/officemd/opc"
	"github.com/tsawler/officemd/pptx"
	"github.com/tsawler/officemd/xlsx"
)

// importOptions holds configuration for a conversion to Markdown.
type importOptions struct {
	// Forced source format; Unknown means detect.
	format format.Format

	maxSheetRows int
	csvSheet     string
}

// defaultImportOptions returns the default import options.
func defaultImportOptions() importOptions {
	return importOptions{
		format:       format.Unknown,
		maxSheetRows: xlsx.DefaultMaxRows,
		csvSheet:     "",
	}
}

// exportOptions holds configuration for a conversion from Markdown.
type exportOptions struct {
	// Forced destination format; Unknown means use the destination extension.
	format format.Format

	compressionLevel int
	slideTitle       string
	fallbackSheet    string
	now              func() time.Time
}

// defaultExportOptions returns the default export options.
func defaultExportOptions() exportOptions {
	return exportOptions{
		format:           format.Unknown,
		compressionLevel: opc.DefaultCompression,
		slideTitle:       pptx.DefaultTitle,
		fallbackSheet:    xlsx.DefaultFallbackSheet,
		now:              nil, // nil means time.Now
	}
}
