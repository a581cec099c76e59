package officemd

import (
	"github.com/tsawler/officemd/format"
)

// The host operations below convert one file per call. Each is a
// stateless function: concurrent calls, even on the same file, need no
// coordination.

// DOCXToMarkdown converts the word-processing document at path to Markdown.
func DOCXToMarkdown(path string) (string, error) {
	return Open(path).As(format.DOCX).Markdown()
}

// MarkdownToDOCX writes md as a word-processing document to path.
func MarkdownToDOCX(md, path string) error {
	return FromMarkdown(md).As(format.DOCX).WriteFile(path)
}

// XLSXToMarkdown converts the spreadsheet at path to Markdown. XLSX, ODS and
// CSV content are told apart automatically.
func XLSXToMarkdown(path string) (string, error) {
	return Open(path).As(format.XLSX).Markdown()
}

// MarkdownToXLSX writes the tables of md as a workbook to path.
func MarkdownToXLSX(md, path string) error {
	return FromMarkdown(md).As(format.XLSX).WriteFile(path)
}

// PPTXToMarkdown converts the presentation at path to Markdown.
func PPTXToMarkdown(path string) (string, error) {
	return Open(path).As(format.PPTX).Markdown()
}

// MarkdownToPPTX writes md as a presentation to path, one slide per
// top-level heading.
func MarkdownToPPTX(md, path string) error {
	return FromMarkdown(md).As(format.PPTX).WriteFile(path)
}

// PDFToMarkdown extracts the text of the PDF at path as Markdown.
func PDFToMarkdown(path string) (string, error) {
	return Open(path).As(format.PDF).Markdown()
}

// ToMarkdown converts the document at path to Markdown, detecting its
// format.
func ToMarkdown(path string) (string, error) {
	return Open(path).Markdown()
}
