package docx

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/markdown"
	"github.com/tsawler/officemd/model"
	"github.com/tsawler/officemd/opc"
)

const (
	typeDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	typeStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"

	documentRelsPart = "word/_rels/document.xml.rels"

	// Text width of a US Letter page with one-inch margins, in twips.
	textWidth = 9360
)

// Exporter converts Markdown to DOCX packages.
type Exporter struct {
	// CompressionLevel is the deflate level of the package parts.
	CompressionLevel int
	// Now stamps docProps/core.xml; nil means time.Now.
	Now func() time.Time
}

// NewExporter returns an Exporter with default settings.
func NewExporter() *Exporter {
	return &Exporter{CompressionLevel: opc.DefaultCompression}
}

// Export converts Markdown to a DOCX package written to w.
func (e *Exporter) Export(md string, w io.Writer) error {
	return e.WriteBlocks(markdown.Blocks(md), w)
}

// ExportFile converts Markdown to a DOCX file. The destination is created
// before the package is serialized, so a failure can leave a partial file.
func (e *Exporter) ExportFile(md, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return convert.Wrap(err, "failed to create file")
	}

	bw := bufio.NewWriter(f)
	if err := e.Export(md, bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return convert.Wrap(err, "failed to write DOCX")
	}
	if err := f.Close(); err != nil {
		return convert.Wrap(err, "failed to write DOCX")
	}
	return nil
}

// Export converts Markdown to a DOCX package with default settings.
func Export(md string, w io.Writer) error {
	return NewExporter().Export(md, w)
}

// ExportFile converts Markdown to a DOCX file with default settings.
func ExportFile(md, path string) error {
	return NewExporter().ExportFile(md, path)
}

// WriteBlocks writes blocks as a DOCX package.
func (e *Exporter) WriteBlocks(blocks []model.Block, w io.Writer) error {
	pw, err := opc.NewWriter(w, e.CompressionLevel)
	if err != nil {
		return convert.Wrap(err, "failed to write DOCX")
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	ct := opc.NewContentTypes()
	ct.AddOverride(documentPart, typeDocument)
	ct.AddOverride(stylesPart, typeStyles)

	docRels := &opc.Relationships{}
	docRels.Add(opc.RelStyles, "styles.xml")

	parts := []struct {
		name string
		v    any
	}{
		{opc.ContentTypesPart, ct},
		{opc.RootRelsPart, opc.RootRelationships(documentPart)},
		{documentRelsPart, docRels},
		{documentPart, newDocument(blocks)},
		{stylesPart, newStyles()},
		{opc.CorePropertiesPart, opc.NewCoreProperties(documentTitle(blocks), now())},
	}
	for _, part := range parts {
		if err := pw.WriteXML(part.name, part.v); err != nil {
			return convert.Wrap(err, "failed to write DOCX")
		}
	}

	if err := pw.Close(); err != nil {
		return convert.Wrap(err, "failed to write DOCX")
	}
	return nil
}

// documentTitle is the text of the first heading, if any.
func documentTitle(blocks []model.Block) string {
	for _, b := range blocks {
		if h, ok := b.(*model.Heading); ok {
			return h.Text()
		}
	}
	return ""
}

// wDocument is the marshaled form of word/document.xml.
type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    wBody    `xml:"w:body"`
}

// wBody writes its blocks in order followed by the section properties.
type wBody struct {
	Blocks []any
	SectPr wSectPr
}

func (b wBody) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, block := range b.Blocks {
		if err := e.Encode(block); err != nil {
			return err
		}
	}
	if err := e.Encode(b.SectPr); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

type wParagraph struct {
	XMLName xml.Name    `xml:"w:p"`
	Props   *wParaProps `xml:"w:pPr,omitempty"`
	Runs    []wRun      `xml:"w:r"`
}

type wParaProps struct {
	Style wVal `xml:"w:pStyle"`
}

type wVal struct {
	Val string `xml:"w:val,attr"`
}

type wOn struct{}

type wRunProps struct {
	Bold   *wOn `xml:"w:b,omitempty"`
	Italic *wOn `xml:"w:i,omitempty"`
}

type wRun struct {
	Props *wRunProps
	Text  string
}

// MarshalXML writes the run text, turning tab characters into <w:tab/>.
func (r wRun) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if r.Props != nil {
		if err := e.EncodeElement(r.Props, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}
	for i, part := range strings.Split(r.Text, "\t") {
		if i > 0 {
			if err := e.EncodeElement(wOn{}, xml.StartElement{Name: xml.Name{Local: "w:tab"}}); err != nil {
				return err
			}
		}
		if part == "" {
			continue
		}
		t := wText{Space: "preserve", Value: part}
		if err := e.EncodeElement(t, xml.StartElement{Name: xml.Name{Local: "w:t"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

type wText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type wTable struct {
	XMLName xml.Name    `xml:"w:tbl"`
	Props   wTableProps `xml:"w:tblPr"`
	Grid    wGrid       `xml:"w:tblGrid"`
	Rows    []wRow      `xml:"w:tr"`
}

type wTableProps struct {
	Style wVal   `xml:"w:tblStyle"`
	Width wWidth `xml:"w:tblW"`
}

type wWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type wGrid struct {
	Cols []wGridCol `xml:"w:gridCol"`
}

type wGridCol struct {
	W int `xml:"w:w,attr"`
}

type wRow struct {
	Cells []wCell `xml:"w:tc"`
}

type wCell struct {
	Props      wCellProps   `xml:"w:tcPr"`
	Paragraphs []wParagraph `xml:"w:p"`
}

type wCellProps struct {
	Width wWidth `xml:"w:tcW"`
}

type wSectPr struct {
	XMLName xml.Name `xml:"w:sectPr"`
	Size    wPgSz    `xml:"w:pgSz"`
	Margin  wPgMar   `xml:"w:pgMar"`
}

type wPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type wPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

func newDocument(blocks []model.Block) *wDocument {
	body := wBody{
		Blocks: make([]any, 0, len(blocks)),
		SectPr: wSectPr{
			Size:   wPgSz{W: 12240, H: 15840},
			Margin: wPgMar{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720},
		},
	}

	for _, block := range blocks {
		switch b := block.(type) {
		case *model.Heading:
			p := newParagraph(b.Runs)
			p.Props = &wParaProps{Style: wVal{Val: headingStyleID(b.Level)}}
			body.Blocks = append(body.Blocks, p)
		case *model.Paragraph:
			body.Blocks = append(body.Blocks, newParagraph(b.Runs))
		case *model.Table:
			if t := newTable(b); t != nil {
				body.Blocks = append(body.Blocks, t)
			}
		}
	}

	return &wDocument{XmlnsW: nsW, XmlnsR: nsR, Body: body}
}

func headingStyleID(level int) string {
	return "Heading" + strconv.Itoa(model.ClampHeadingLevel(level))
}

func newParagraph(runs []model.Run) wParagraph {
	p := wParagraph{Runs: make([]wRun, 0, len(runs))}
	for _, r := range runs {
		run := wRun{Text: r.Text}
		if r.Bold || r.Italic {
			run.Props = &wRunProps{}
			if r.Bold {
				run.Props.Bold = &wOn{}
			}
			if r.Italic {
				run.Props.Italic = &wOn{}
			}
		}
		p.Runs = append(p.Runs, run)
	}
	return p
}

// newTable builds a grid table in which every row has the table's column
// count and every cell holds one unstyled run.
func newTable(t *model.Table) *wTable {
	norm := t.Normalized()
	cols := len(norm.Header)
	if cols == 0 {
		return nil
	}
	colWidth := textWidth / cols

	tbl := &wTable{
		Props: wTableProps{
			Style: wVal{Val: "TableGrid"},
			Width: wWidth{W: 0, Type: "auto"},
		},
	}
	for i := 0; i < cols; i++ {
		tbl.Grid.Cols = append(tbl.Grid.Cols, wGridCol{W: colWidth})
	}

	rows := append([][]string{norm.Header}, norm.Rows...)
	for _, row := range rows {
		tr := wRow{Cells: make([]wCell, 0, cols)}
		for _, text := range row {
			tr.Cells = append(tr.Cells, wCell{
				Props:      wCellProps{Width: wWidth{W: colWidth, Type: "dxa"}},
				Paragraphs: []wParagraph{newParagraph([]model.Run{{Text: text}})},
			})
		}
		tbl.Rows = append(tbl.Rows, tr)
	}
	return tbl
}
