package pptx

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/opc"
)

func exportParts(t *testing.T, e *Exporter, md string) (*opc.Package, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if err := e.Export(md, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	pkg, err := opc.OpenBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("OpenBytes() error = %v", err)
	}
	return pkg, buf.Bytes()
}

func readPart(t *testing.T, pkg *opc.Package, name string) string {
	t.Helper()
	data, err := pkg.Read(name)
	if err != nil {
		t.Fatalf("Read(%s) error = %v", name, err)
	}
	return string(data)
}

func TestExport_TwoSlides(t *testing.T) {
	pkg, data := exportParts(t, NewExporter(), "# Slide One\nBody text\n\n# Slide Two\nMore text\n")

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide2.xml.rels",
	}
	if err := pkg.Validate(required...); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if pkg.Has("ppt/slides/slide3.xml") {
		t.Error("unexpected third slide")
	}

	slide1 := readPart(t, pkg, "ppt/slides/slide1.xml")
	slide2 := readPart(t, pkg, "ppt/slides/slide2.xml")
	for _, want := range []string{"<a:t>Slide One</a:t>", "<a:t>Body text</a:t>", `<p:ph type="title">`} {
		if !strings.Contains(slide1, want) {
			t.Errorf("slide1.xml missing %s", want)
		}
	}
	for _, want := range []string{"<a:t>Slide Two</a:t>", "<a:t>More text</a:t>"} {
		if !strings.Contains(slide2, want) {
			t.Errorf("slide2.xml missing %s", want)
		}
	}

	got, err := Import(data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if want := "# Slide One\n\nBody text\n\n# Slide Two\n\nMore text\n"; got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestExport_PresentationPart(t *testing.T) {
	pkg, _ := exportParts(t, NewExporter(), "# A\n# B\n# C\n")

	pres := readPart(t, pkg, "ppt/presentation.xml")
	for _, want := range []string{
		`<p:sldMasterId id="2147483648" r:id="rId1">`,
		`<p:sldId id="256" r:id="rId2">`,
		`<p:sldId id="257" r:id="rId3">`,
		`<p:sldId id="258" r:id="rId4">`,
		`<p:sldSz cx="9144000" cy="6858000">`,
	} {
		if !strings.Contains(pres, want) {
			t.Errorf("presentation.xml missing %s", want)
		}
	}

	rels := readPart(t, pkg, "ppt/_rels/presentation.xml.rels")
	if !strings.Contains(rels, `Id="rId4" Type="`+opc.RelSlide+`" Target="slides/slide3.xml"`) {
		t.Errorf("presentation rels missing slide3:\n%s", rels)
	}

	ct := readPart(t, pkg, "[Content_Types].xml")
	if !strings.Contains(ct, `PartName="/ppt/slides/slide3.xml" ContentType="`+typeSlide+`"`) {
		t.Errorf("content types missing slide3 override")
	}

	master := readPart(t, pkg, "ppt/slideMasters/slideMaster1.xml")
	if !strings.Contains(master, `<p:sldLayoutId id="2147483649" r:id="rId1">`) {
		t.Errorf("slide master missing layout id:\n%s", master)
	}
}

func TestExport_NoHeading(t *testing.T) {
	pkg, data := exportParts(t, NewExporter(), "first\n\nsecond\n")

	if pkg.Has("ppt/slides/slide2.xml") {
		t.Error("expected a single slide")
	}
	got, err := Import(data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if want := "# Presentation\n\nfirst\n\nsecond\n"; got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestExport_BodyLinesAreParagraphs(t *testing.T) {
	pkg, _ := exportParts(t, NewExporter(), "# T\none\ntwo\nthree\n")

	slide := readPart(t, pkg, "ppt/slides/slide1.xml")
	if n := strings.Count(slide, "<a:p>"); n != 4 {
		t.Errorf("got %d paragraphs, want 4 (title + 3 body lines)", n)
	}
}

func TestExport_EscapesText(t *testing.T) {
	_, data := exportParts(t, NewExporter(), "# Q&A <1>\nSay \"hi\" & 'bye'\n")

	got, err := Import(data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if want := "# Q&A <1>\n\nSay \"hi\" & 'bye'\n"; got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestExport_CoreProperties(t *testing.T) {
	fixed := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	e := NewExporter()
	e.Now = func() time.Time { return fixed }

	pkg, _ := exportParts(t, e, "# Deck Title\n")
	core := readPart(t, pkg, "docProps/core.xml")

	for _, want := range []string{"<dc:title>Deck Title</dc:title>", "urn:uuid:", "2024-05-06T07:08:09Z"} {
		if !strings.Contains(core, want) {
			t.Errorf("core.xml missing %s:\n%s", want, core)
		}
	}
}

func TestExport_InvalidCompressionLevel(t *testing.T) {
	e := &Exporter{CompressionLevel: 42}
	err := e.Export("# T", &bytes.Buffer{})
	var ce *convert.Error
	if !errors.As(err, &ce) {
		t.Errorf("Export() error = %v, want *convert.Error", err)
	}
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")

	if err := ExportFile("# Hello\nWorld\n", path); err != nil {
		t.Fatalf("ExportFile() error = %v", err)
	}
	got, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}
	if want := "# Hello\n\nWorld\n"; got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}

	err = ExportFile("# X", filepath.Join(dir, "no", "such", "deck.pptx"))
	var ce *convert.Error
	if !errors.As(err, &ce) || ce.Msg != "failed to create file" || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ExportFile(bad path) error = %v", err)
	}
}
