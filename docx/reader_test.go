package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/model"
)

// createTestDOCX creates a minimal DOCX package for testing. styles is the
// inner content of word/styles.xml and is omitted when empty.
func createTestDOCX(t *testing.T, content, styles string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	add := func(name, data string) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	add("[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`)

	add("_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`)

	add("word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>`+content+`</w:body>
</w:document>`)

	if styles != "" {
		add("word/styles.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+styles+`</w:styles>`)
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func importString(t *testing.T, content, styles string) string {
	t.Helper()
	md, err := Import(createTestDOCX(t, content, styles))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	return md
}

func TestImport_HeadingWithBoldRun(t *testing.T) {
	content := `<w:p><w:pPr><w:pStyle w:val="Heading2"/></w:pPr><w:r><w:rPr><w:b/></w:rPr><w:t>Result</w:t></w:r></w:p>`

	if got := importString(t, content, ""); got != "## **Result**\n" {
		t.Errorf("Import() = %q, want %q", got, "## **Result**\n")
	}
}

func TestImport_HeadingStyleSpellings(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"Heading1", "# T\n"},
		{"heading3", "### T\n"},
		{"HEADING6", "###### T\n"},
		{"Heading 4", "#### T\n"},
		{"heading 5", "##### T\n"},
		{"Heading7", "T\n"},
		{"Title", "T\n"},
		{"Normal", "T\n"},
	}

	for _, tt := range tests {
		content := `<w:p><w:pPr><w:pStyle w:val="` + tt.style + `"/></w:pPr><w:r><w:t>T</w:t></w:r></w:p>`
		if got := importString(t, content, ""); got != tt.want {
			t.Errorf("style %q: Import() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestImport_HeadingFromStyleName(t *testing.T) {
	styles := `<w:style w:type="paragraph" w:styleId="berschrift2"><w:name w:val="heading 2"/></w:style>
<w:style w:type="paragraph" w:styleId="Custom"><w:name w:val="My Custom"/></w:style>`
	content := `<w:p><w:pPr><w:pStyle w:val="berschrift2"/></w:pPr><w:r><w:t>Kapitel</w:t></w:r></w:p>` +
		`<w:p><w:pPr><w:pStyle w:val="Custom"/></w:pPr><w:r><w:t>Body</w:t></w:r></w:p>`

	want := "## Kapitel\n\nBody\n"
	if got := importString(t, content, styles); got != want {
		t.Errorf("Import() = %q, want %q", got, want)
	}
}

func TestImport_RunFormatting(t *testing.T) {
	content := `<w:p>
<w:r><w:t xml:space="preserve">plain </w:t></w:r>
<w:r><w:rPr><w:b/></w:rPr><w:t>bold</w:t></w:r>
<w:r><w:rPr><w:i/></w:rPr><w:t>italic</w:t></w:r>
<w:r><w:rPr><w:b/><w:i/></w:rPr><w:t>both</w:t></w:r>
<w:r><w:rPr><w:b w:val="0"/><w:i w:val="false"/></w:rPr><w:t>off</w:t></w:r>
</w:p>`

	want := "plain **bold***italic****both***off\n"
	if got := importString(t, content, ""); got != want {
		t.Errorf("Import() = %q, want %q", got, want)
	}
}

func TestImport_RunsNotMerged(t *testing.T) {
	content := `<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>a</w:t></w:r><w:r><w:rPr><w:b/></w:rPr><w:t>b</w:t></w:r></w:p>`

	if got := importString(t, content, ""); got != "**a****b**\n" {
		t.Errorf("Import() = %q", got)
	}
}

func TestImport_TabsAndSkippedContent(t *testing.T) {
	content := `<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:drawing><wp:inline xmlns:wp="x"/></w:drawing></w:r></w:p>`

	if got := importString(t, content, ""); got != "a\tb\n" {
		t.Errorf("Import() = %q, want %q", got, "a\tb\n")
	}
}

func TestImport_Hyperlink(t *testing.T) {
	content := `<w:p><w:r><w:t xml:space="preserve">See </w:t></w:r><w:hyperlink w:id="rId5"><w:r><w:t>the docs</w:t></w:r></w:hyperlink><w:r><w:t>.</w:t></w:r></w:p>`

	if got := importString(t, content, ""); got != "See the docs.\n" {
		t.Errorf("Import() = %q", got)
	}
}

func TestImport_EmptyParagraphSpacing(t *testing.T) {
	content := `<w:p><w:r><w:t>One</w:t></w:r></w:p>
<w:p/>
<w:p><w:r><w:t>Two</w:t></w:r></w:p>`

	want := "One\n\n\nTwo\n"
	if got := importString(t, content, ""); got != want {
		t.Errorf("Import() = %q, want %q", got, want)
	}
}

func TestImport_LeadingEmptyParagraph(t *testing.T) {
	content := `<w:p/><w:p><w:r><w:t>First</w:t></w:r></w:p>`

	if got := importString(t, content, ""); got != "First\n" {
		t.Errorf("Import() = %q", got)
	}
}

func TestImport_Table(t *testing.T) {
	content := `<w:p><w:r><w:t>Before</w:t></w:r></w:p>
<w:tbl>
  <w:tblPr><w:tblStyle w:val="TableGrid"/></w:tblPr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>Name</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>Notes</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Alice</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t> line one </w:t></w:r></w:p><w:p/><w:p><w:r><w:t>line two</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>extra</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>Bob</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>
<w:p><w:r><w:t>After</w:t></w:r></w:p>`

	want := "Before\n\n" +
		"| Name | Notes |  |\n" +
		"| --- | --- | --- |\n" +
		"| **Alice** | line one line two | extra |\n" +
		"| Bob |  |  |\n" +
		"\nAfter\n"
	if got := importString(t, content, ""); got != want {
		t.Errorf("Import() =\n%q\nwant\n%q", got, want)
	}
}

func TestImport_SkipsOtherBodyChildren(t *testing.T) {
	content := `<w:bookmarkStart w:id="0" w:name="x"/>
<w:p><w:r><w:t>Kept</w:t></w:r></w:p>
<w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr>`

	if got := importString(t, content, ""); got != "Kept\n" {
		t.Errorf("Import() = %q", got)
	}
}

func TestReadBlocks(t *testing.T) {
	content := `<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Title</w:t></w:r></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>A</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`

	blocks, err := ReadBlocks(createTestDOCX(t, content, ""))
	if err != nil {
		t.Fatalf("ReadBlocks() error = %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if h, ok := blocks[0].(*model.Heading); !ok || h.Level != 1 {
		t.Errorf("block 0 = %#v", blocks[0])
	}
	if tbl, ok := blocks[1].(*model.Table); !ok || tbl.Header[0] != "A" || len(tbl.Rows) != 0 {
		t.Errorf("block 1 = %#v", blocks[1])
	}
}

func TestImport_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"not a zip", []byte("definitely not a zip"), "failed to parse DOCX"},
		{"empty", nil, "failed to parse DOCX"},
		{"invalid xml", createTestDOCX(t, `<w:p><w:r>`, ""), "failed to parse DOCX"},
	}

	for _, tt := range tests {
		_, err := Import(tt.data)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		var convErr *convert.Error
		if !errors.As(err, &convErr) {
			t.Errorf("%s: error %T is not *convert.Error", tt.name, err)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %q, want it to contain %q", tt.name, err, tt.want)
		}
	}
}

func TestImport_MissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte("<Types/>"))
	zw.Close()

	_, err := Import(buf.Bytes())
	if err == nil || !strings.Contains(err.Error(), "word/document.xml") {
		t.Errorf("Import() error = %v", err)
	}
}

func TestImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.docx")
	content := `<w:p><w:r><w:t>From disk</w:t></w:r></w:p>`
	if err := os.WriteFile(path, createTestDOCX(t, content, ""), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	md, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}
	if md != "From disk\n" {
		t.Errorf("ImportFile() = %q", md)
	}

	_, err = ImportFile(filepath.Join(t.TempDir(), "missing.docx"))
	if err == nil || !strings.HasPrefix(err.Error(), "failed to read file") {
		t.Errorf("ImportFile(missing) error = %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("missing file error should unwrap to os.ErrNotExist")
	}
}
