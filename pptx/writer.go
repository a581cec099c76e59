package pptx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/model"
	"github.com/tsawler/officemd/opc"
)

const (
	presentationPart     = "ppt/presentation.xml"
	presentationRelsPart = "ppt/_rels/presentation.xml.rels"
	masterPart           = "ppt/slideMasters/slideMaster1.xml"
	masterRelsPart       = "ppt/slideMasters/_rels/slideMaster1.xml.rels"
	layoutPart           = "ppt/slideLayouts/slideLayout1.xml"
	layoutRelsPart       = "ppt/slideLayouts/_rels/slideLayout1.xml.rels"

	typePresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	typeSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	typeSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	typeSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
)

// Ids and geometry in EMU (914400 per inch) of the generated deck.
const (
	firstSlideID  = 256
	masterID      = 2147483648
	layoutID      = 2147483649
	slideWidth    = 9144000
	slideHeight   = 6858000
	shapeLeft     = 457200
	shapeWidth    = 8229600
	titleTop      = 274638
	titleHeight   = 1143000
	bodyTop       = 1600200
	bodyHeight    = 4525963
	textLanguage  = "en-US"
	layoutBlank   = "blank"
	layoutNameStr = "Blank"
)

func slidePart(n int) string {
	return fmt.Sprintf("ppt/slides/slide%d.xml", n)
}

func slideRelsPart(n int) string {
	return fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n)
}

// Exporter converts Markdown to PPTX packages.
type Exporter struct {
	// CompressionLevel is the deflate level of the package parts.
	CompressionLevel int
	// DefaultTitle titles the slide of a document without top-level
	// headings; empty means DefaultTitle.
	DefaultTitle string
	// Now stamps docProps/core.xml; nil means time.Now.
	Now func() time.Time
}

// NewExporter returns an Exporter with default settings.
func NewExporter() *Exporter {
	return &Exporter{CompressionLevel: opc.DefaultCompression, DefaultTitle: DefaultTitle}
}

// Export converts Markdown to a PPTX package written to w.
func (e *Exporter) Export(md string, w io.Writer) error {
	return e.WriteSlides(SplitSlides(md, e.DefaultTitle), w)
}

// ExportFile converts Markdown to a PPTX file. The destination is created
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
		return convert.Wrap(err, "failed to write PPTX")
	}
	if err := f.Close(); err != nil {
		return convert.Wrap(err, "failed to write PPTX")
	}
	return nil
}

// Export converts Markdown to a PPTX package with default settings.
func Export(md string, w io.Writer) error {
	return NewExporter().Export(md, w)
}

// ExportFile converts Markdown to a PPTX file with default settings.
func ExportFile(md, path string) error {
	return NewExporter().ExportFile(md, path)
}

type part struct {
	name string
	v    any
}

// WriteSlides writes slides as a PPTX package: the presentation part, one
// slide master, one blank layout and a part per slide.
func (e *Exporter) WriteSlides(slides []*model.Slide, w io.Writer) error {
	pw, err := opc.NewWriter(w, e.CompressionLevel)
	if err != nil {
		return convert.Wrap(err, "failed to write PPTX")
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	title := ""
	if len(slides) > 0 {
		title = slides[0].Title
	}

	ct := opc.NewContentTypes()
	ct.AddOverride(presentationPart, typePresentation)
	ct.AddOverride(layoutPart, typeSlideLayout)
	ct.AddOverride(masterPart, typeSlideMaster)

	presRels := &opc.Relationships{}
	masterRID := presRels.Add(opc.RelSlideMaster, "slideMasters/slideMaster1.xml")

	pres := &pPresentation{
		namespaces: newNamespaces(),
		MasterIDs:  []pListID{{ID: masterID, RID: masterRID}},
		SlideSize:  aSize{Cx: slideWidth, Cy: slideHeight},
		NotesSize:  aSize{Cx: slideHeight, Cy: slideWidth},
	}

	slideParts := make([]part, 0, 2*len(slides))
	for i, s := range slides {
		n := i + 1
		ct.AddOverride(slidePart(n), typeSlide)
		rid := presRels.Add(opc.RelSlide, fmt.Sprintf("slides/slide%d.xml", n))
		pres.SlideIDs = append(pres.SlideIDs, pListID{ID: uint32(firstSlideID + i), RID: rid})

		rels := &opc.Relationships{}
		rels.Add(opc.RelSlideLayout, "../slideLayouts/slideLayout1.xml")
		slideParts = append(slideParts,
			part{slideRelsPart(n), rels},
			part{slidePart(n), newSlide(s)},
		)
	}

	masterRels := &opc.Relationships{}
	layoutRID := masterRels.Add(opc.RelSlideLayout, "../slideLayouts/slideLayout1.xml")
	layoutRels := &opc.Relationships{}
	layoutRels.Add(opc.RelSlideMaster, "../slideMasters/slideMaster1.xml")

	parts := []part{
		{opc.ContentTypesPart, ct},
		{opc.RootRelsPart, opc.RootRelationships(presentationPart)},
		{opc.CorePropertiesPart, opc.NewCoreProperties(title, now())},
		{presentationRelsPart, presRels},
		{presentationPart, pres},
		{masterPart, newSlideMaster(layoutRID)},
		{masterRelsPart, masterRels},
		{layoutPart, newSlideLayout()},
		{layoutRelsPart, layoutRels},
	}
	for _, p := range append(parts, slideParts...) {
		if err := pw.WriteXML(p.name, p.v); err != nil {
			return convert.Wrap(err, "failed to write PPTX")
		}
	}

	if err := pw.Close(); err != nil {
		return convert.Wrap(err, "failed to write PPTX")
	}
	return nil
}

func emptyShapeTree() pShapeTree {
	return pShapeTree{NvGrpSpPr: pNvGrpSpPr{CNvPr: pCNvPr{ID: 1}}}
}

func newSlideMaster(layoutRID string) *pSlideMaster {
	return &pSlideMaster{
		namespaces: newNamespaces(),
		CSld:       pCommonSlide{SpTree: emptyShapeTree()},
		LayoutIDs:  []pListID{{ID: layoutID, RID: layoutRID}},
	}
}

func newSlideLayout() *pSlideLayout {
	return &pSlideLayout{
		namespaces: newNamespaces(),
		Type:       layoutBlank,
		CSld:       pCommonSlide{Name: layoutNameStr, SpTree: emptyShapeTree()},
	}
}

// newSlide builds a slide with a title shape and a body shape holding one
// paragraph per body line.
func newSlide(s *model.Slide) *pSlide {
	tree := emptyShapeTree()

	title := newShape(2, "Title", pPlaceholder{Type: "title"}, titleTop, titleHeight)
	title.TxBody.Paragraphs = []aParagraph{newParagraph(s.Title)}

	body := newShape(3, "Body", pPlaceholder{Idx: "1"}, bodyTop, bodyHeight)
	for _, line := range s.Body {
		body.TxBody.Paragraphs = append(body.TxBody.Paragraphs, newParagraph(line))
	}
	if len(body.TxBody.Paragraphs) == 0 {
		// A text body needs at least one paragraph.
		body.TxBody.Paragraphs = []aParagraph{{}}
	}

	tree.Shapes = []pShape{title, body}
	return &pSlide{namespaces: newNamespaces(), CSld: pCommonSlide{SpTree: tree}}
}

func newShape(id int, name string, ph pPlaceholder, top, height int64) pShape {
	return pShape{
		NvSpPr: pNvSpPr{
			CNvPr:   pCNvPr{ID: id, Name: name},
			CNvSpPr: pCNvSpPr{SpLocks: aSpLocks{NoGrp: 1}},
			NvPr:    pNvPr{Placeholder: ph},
		},
		SpPr: pSpPr{Xfrm: aTransform{
			Off: aPoint{X: shapeLeft, Y: top},
			Ext: aSize{Cx: shapeWidth, Cy: height},
		}},
	}
}

func newParagraph(text string) aParagraph {
	return aParagraph{Runs: []aRun{{
		Props: aRunProps{Lang: textLanguage, Dirty: "0"},
		Text:  text,
	}}}
}
