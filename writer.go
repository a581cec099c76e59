package officemd

import (
	"bytes"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/format"
	"github.com/tsawler/officemd/internal/logger"
)

// Writer provides a fluent interface for converting Markdown to a native
// document. Like Extractor, every configuration method returns a new
// instance.
type Writer struct {
	markdown string

	// Configuration
	options exportOptions
	log     *logger.Logger

	// Accumulated error (fail-fast)
	err error
}

func (w *Writer) clone() *Writer {
	newW := *w
	return &newW
}

// As forces the destination format instead of taking it from the
// destination extension. It is required by Export and Bytes.
//
// Example:
//
//	data, err := officemd.FromMarkdown(md).As(format.DOCX).Bytes()
func (w *Writer) As(f format.Format) *Writer {
	newW := w.clone()
	if !f.CanExport() {
		newW.err = convert.Errorf("unsupported file format: %s", f)
	}
	newW.options.format = f
	return newW
}

// CompressionLevel sets the deflate level of DOCX and PPTX packages
// (flate.HuffmanOnly through flate.BestCompression).
func (w *Writer) CompressionLevel(level int) *Writer {
	newW := w.clone()
	newW.options.compressionLevel = level
	return newW
}

// SlideTitle titles the single slide produced from Markdown that has no
// top-level heading.
func (w *Writer) SlideTitle(title string) *Writer {
	newW := w.clone()
	newW.options.slideTitle = title
	return newW
}

// FallbackSheet names the sheet written for Markdown without tables.
func (w *Writer) FallbackSheet(name string) *Writer {
	newW := w.clone()
	newW.options.fallbackSheet = name
	return newW
}

// Timestamp fixes the creation time recorded in the document properties.
func (w *Writer) Timestamp(t time.Time) *Writer {
	newW := w.clone()
	newW.options.now = func() time.Time { return t }
	return newW
}

// Logger reports conversion progress to l.
func (w *Writer) Logger(l *log.Logger) *Writer {
	newW := w.clone()
	newW.log = logger.Wrap(l)
	return newW
}

// WriteFile converts the Markdown and writes it to path. The format comes
// from As or, failing that, from the extension of path. The destination is
// created before the document is serialized, so a failure can leave a
// partial file.
//
// Example:
//
//	err := officemd.FromMarkdown(md).WriteFile("out/report.docx")
func (w *Writer) WriteFile(path string) error {
	if w.err != nil {
		return w.err
	}

	f := w.options.format
	if f == format.Unknown {
		f = format.Detect(path)
	}

	start := time.Now()
	exp, err := w.exporter(f)
	if err != nil {
		w.log.ConversionFailed(path, "export", f.String(), err)
		return err
	}
	w.log.ConversionStarted(path, "export", f.String())

	if err := exp.ExportFile(w.markdown, path); err != nil {
		w.log.ConversionFailed(path, "export", f.String(), err)
		return err
	}

	w.log.ConversionCompleted(path, "export", f.String(), len(w.markdown), time.Since(start))
	return nil
}

// Export converts the Markdown and writes the document to dst. The format
// must be set with As.
func (w *Writer) Export(dst io.Writer) error {
	if w.err != nil {
		return w.err
	}

	start := time.Now()
	f := w.options.format
	exp, err := w.exporter(f)
	if err != nil {
		w.log.ConversionFailed("<stream>", "export", f.String(), err)
		return err
	}
	w.log.ConversionStarted("<stream>", "export", f.String())

	if err := exp.Export(w.markdown, dst); err != nil {
		w.log.ConversionFailed("<stream>", "export", f.String(), err)
		return err
	}

	w.log.ConversionCompleted("<stream>", "export", f.String(), len(w.markdown), time.Since(start))
	return nil
}

// Bytes converts the Markdown and returns the document. The format must be
// set with As.
func (w *Writer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Export(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *Writer) exporter(f format.Format) (fileExporter, error) {
	if f == format.Unknown {
		return nil, convert.Errorf("no output format specified")
	}
	exp, ok := exporterFor(f, w.options)
	if !ok {
		return nil, convert.Errorf("unsupported file format: %s", f)
	}
	return exp, nil
}
