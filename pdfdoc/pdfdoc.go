// Package pdfdoc extracts the text of PDF documents as Markdown.
//
// Extraction is plain text only: no layout, column or table reconstruction
// is attempted. The result starts with a notice saying so.
package pdfdoc

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/officemd/convert"
)

// Notice is prepended to every imported PDF.
const Notice = "> **Import Notice**: This PDF was imported as plain text.\n" +
	"> Images, tables, and complex formatting have been removed.\n\n"

// Importer converts PDF documents to Markdown.
type Importer struct{}

// Import converts a PDF held in memory to Markdown.
func (Importer) Import(data []byte) (string, error) {
	text, err := ExtractText(data)
	if err != nil {
		return "", err
	}
	return Notice + text, nil
}

// Import converts a PDF held in memory to Markdown.
func Import(data []byte) (string, error) {
	return Importer{}.Import(data)
}

// ImportFile reads a PDF file and converts it to Markdown.
func ImportFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", convert.Wrap(err, "failed to read file")
	}
	return Import(data)
}

// ExtractText returns the text of every page in order, pages separated by a
// blank line. Pages without text are skipped. Malformed documents that make
// the parser panic are reported as errors.
func ExtractText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = convert.Wrap(fmt.Errorf("%v", r), "failed to extract PDF text")
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", convert.Wrap(err, "failed to extract PDF text")
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		s, err := page.GetPlainText(nil)
		if err != nil {
			return "", convert.Wrap(fmt.Errorf("page %d: %w", i, err), "failed to extract PDF text")
		}
		if s = normalizeText(s); s != "" {
			pages = append(pages, s)
		}
	}

	if len(pages) == 0 {
		return "", nil
	}
	return strings.Join(pages, "\n\n") + "\n", nil
}

// normalizeText folds compatibility characters such as ligatures (NFKC),
// unifies line endings and trims surrounding whitespace.
func normalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}
