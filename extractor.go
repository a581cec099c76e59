package officemd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/format"
	"github.com/tsawler/officemd/internal/logger"
)

// Extractor provides a fluent interface for converting a document to
// Markdown. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	path    string
	data    []byte
	hasData bool

	// Configuration
	options importOptions
	log     *logger.Logger

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor. Options are plain values
// and the source bytes are never modified, so nothing needs a deep copy.
func (e *Extractor) clone() *Extractor {
	newExt := *e
	return &newExt
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// As forces the source format instead of detecting it.
//
// Example:
//
//	md, err := officemd.Open("export.dat").As(format.CSV).Markdown()
func (e *Extractor) As(f format.Format) *Extractor {
	newExt := e.clone()
	if !f.CanImport() {
		newExt.err = convert.Errorf("unsupported file format: %s", f)
	}
	newExt.options.format = f
	return newExt
}

// MaxSheetRows caps the data rows rendered per spreadsheet sheet. Rows past
// the cap are dropped and counted in a note below the table.
//
// Example:
//
//	md, err := officemd.Open("log.xlsx").MaxSheetRows(50).Markdown()
func (e *Extractor) MaxSheetRows(n int) *Extractor {
	newExt := e.clone()
	if n <= 0 {
		newExt.err = convert.Errorf("invalid sheet row limit %d", n)
	}
	newExt.options.maxSheetRows = n
	return newExt
}

// CSVSheet names the sheet produced from CSV input. By default a CSV file's
// sheet is named after the file.
func (e *Extractor) CSVSheet(name string) *Extractor {
	newExt := e.clone()
	newExt.options.csvSheet = name
	return newExt
}

// Logger reports conversion progress to l.
func (e *Extractor) Logger(l *log.Logger) *Extractor {
	newExt := e.clone()
	newExt.log = logger.Wrap(l)
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Format returns the source format. A forced format wins; otherwise the
// file extension decides, falling back to the document content when the
// extension is unknown.
func (e *Extractor) Format() (format.Format, error) {
	if e.err != nil {
		return format.Unknown, e.err
	}
	if f, ok := e.declaredFormat(); ok {
		return f, nil
	}

	data, err := e.source()
	if err != nil {
		return format.Unknown, err
	}
	return detect(data)
}

// Markdown converts the document and returns its Markdown text.
//
// Example:
//
//	md, err := officemd.Open("deck.pptx").Markdown()
func (e *Extractor) Markdown() (string, error) {
	if e.err != nil {
		return "", e.err
	}

	start := time.Now()
	data, err := e.source()
	if err != nil {
		e.log.ConversionFailed(e.name(), "import", format.Unknown.String(), err)
		return "", err
	}

	f, ok := e.declaredFormat()
	if !ok {
		if f, err = detect(data); err != nil {
			e.log.ConversionFailed(e.name(), "import", f.String(), err)
			return "", err
		}
	}
	e.log.ConversionStarted(e.name(), "import", f.String())

	md, err := e.importData(f, data)
	if err != nil {
		e.log.ConversionFailed(e.name(), "import", f.String(), err)
		return "", err
	}

	e.log.ConversionCompleted(e.name(), "import", f.String(), len(md), time.Since(start))
	return md, nil
}

func (e *Extractor) importData(f format.Format, data []byte) (string, error) {
	opts := e.options
	if opts.csvSheet == "" && e.path != "" {
		base := filepath.Base(e.path)
		opts.csvSheet = strings.TrimSuffix(base, filepath.Ext(base))
	}

	imp, ok := importerFor(f, opts)
	if !ok {
		return "", convert.Errorf("unsupported file format: %s", f)
	}
	return imp.Import(data)
}

func (e *Extractor) declaredFormat() (format.Format, bool) {
	if e.options.format != format.Unknown {
		return e.options.format, true
	}
	if f := format.Detect(e.path); f != format.Unknown {
		return f, true
	}
	return format.Unknown, false
}

// source returns the document bytes, reading the file if needed.
func (e *Extractor) source() ([]byte, error) {
	if e.hasData {
		return e.data, nil
	}
	if e.path == "" {
		return nil, convert.Errorf("no filename specified")
	}

	data, err := os.ReadFile(e.path)
	if err != nil {
		return nil, convert.Wrap(err, "failed to read file")
	}
	return data, nil
}

func (e *Extractor) name() string {
	if e.path == "" {
		return "<memory>"
	}
	return e.path
}

// detect determines the format of an in-memory document. Content that is
// neither a PDF nor a ZIP package is unknown.
func detect(data []byte) (format.Format, error) {
	f, err := format.DetectBytes(data)
	if err != nil {
		return format.Unknown, convert.Wrap(err, "failed to detect format")
	}
	if f == format.Unknown {
		return f, convert.Errorf("unsupported file format: %s", f)
	}
	return f, nil
}
