package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Markdown, "Markdown"},
		{DOCX, "DOCX"},
		{XLSX, "XLSX"},
		{ODS, "ODS"},
		{CSV, "CSV"},
		{PPTX, "PPTX"},
		{PDF, "PDF"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	for _, f := range All {
		if got := Detect("file" + f.Extension()); got != f {
			t.Errorf("Detect(file%s) = %v, want %v", f.Extension(), got, f)
		}
	}
	if Unknown.Extension() != "" {
		t.Errorf("Unknown.Extension() = %q", Unknown.Extension())
	}
}

func TestFormat_Capabilities(t *testing.T) {
	tests := []struct {
		format               Format
		canImport, canExport bool
	}{
		{Markdown, false, false},
		{DOCX, true, true},
		{XLSX, true, true},
		{ODS, true, false},
		{CSV, true, false},
		{PPTX, true, true},
		{PDF, true, false},
		{Unknown, false, false},
	}

	for _, tt := range tests {
		if got := tt.format.CanImport(); got != tt.canImport {
			t.Errorf("%v.CanImport() = %v, want %v", tt.format, got, tt.canImport)
		}
		if got := tt.format.CanExport(); got != tt.canExport {
			t.Errorf("%v.CanExport() = %v, want %v", tt.format, got, tt.canExport)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.pdf", PDF},
		{"document.PDF", PDF},
		{"document.docx", DOCX},
		{"document.Docx", DOCX},
		{"book.xlsx", XLSX},
		{"book.XLSM", XLSX},
		{"book.ods", ODS},
		{"data.csv", CSV},
		{"deck.pptx", PPTX},
		{"notes.md", Markdown},
		{"notes.markdown", Markdown},
		{"document.txt", Unknown},
		{"document.doc", Unknown},
		{"document", Unknown},
		{"", Unknown},
		{"/path/to/file.pptx", PPTX},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"docx", DOCX},
		{".XLSX", XLSX},
		{" pptx ", PPTX},
		{"md", Markdown},
		{"", Unknown},
		{"rtf", Unknown},
	}

	for _, tt := range tests {
		if got := Parse(tt.name); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"PDF magic bytes", []byte("%PDF-1.4"), PDF},
		{"ZIP needs inspection", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}, Unknown},
		{"empty data", []byte{}, Unknown},
		{"short data", []byte{0x50, 0x4B}, Unknown},
		{"text file", []byte("Hello, World!"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

// createZIP builds an in-memory archive with the given entries in order.
func createZIP(t *testing.T, files [][2]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f[0])
		if err != nil {
			t.Fatalf("creating %s: %v", f[0], err)
		}
		if _, err := w.Write([]byte(f[1])); err != nil {
			t.Fatalf("writing %s: %v", f[0], err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.4\n%%EOF"), PDF},
		{"plain text", []byte("Hello, World! This is plain text."), Unknown},
		{"docx", createZIP(t, [][2]string{{"[Content_Types].xml", "<Types/>"}, {"word/document.xml", "<w/>"}}), DOCX},
		{"xlsx", createZIP(t, [][2]string{{"[Content_Types].xml", "<Types/>"}, {"xl/workbook.xml", "<w/>"}}), XLSX},
		{"pptx", createZIP(t, [][2]string{{"[Content_Types].xml", "<Types/>"}, {"ppt/presentation.xml", "<p/>"}}), PPTX},
		{"ods", createZIP(t, [][2]string{{"mimetype", "application/vnd.oasis.opendocument.spreadsheet"}, {"content.xml", "<c/>"}}), ODS},
		{"odt is unknown", createZIP(t, [][2]string{{"mimetype", "application/vnd.oasis.opendocument.text"}}), Unknown},
		{"plain zip", createZIP(t, [][2]string{{"readme.txt", "hi"}}), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectBytes(tt.data)
			if err != nil {
				t.Fatalf("DetectBytes() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}
