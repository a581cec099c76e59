package pptx

import "encoding/xml"

// XML namespaces of PresentationML parts.
const (
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// namespaces is embedded by every root element.
type namespaces struct {
	XmlnsP string `xml:"xmlns:p,attr"`
	XmlnsA string `xml:"xmlns:a,attr"`
	XmlnsR string `xml:"xmlns:r,attr"`
}

func newNamespaces() namespaces {
	return namespaces{XmlnsP: nsP, XmlnsA: nsA, XmlnsR: nsR}
}

// pPresentation is ppt/presentation.xml.
type pPresentation struct {
	XMLName xml.Name `xml:"p:presentation"`
	namespaces
	MasterIDs []pListID `xml:"p:sldMasterIdLst>p:sldMasterId"`
	SlideIDs  []pListID `xml:"p:sldIdLst>p:sldId"`
	SlideSize aSize     `xml:"p:sldSz"`
	NotesSize aSize     `xml:"p:notesSz"`
}

// pListID is an entry of a slide, master or layout id list.
type pListID struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

// pSlideMaster is ppt/slideMasters/slideMaster1.xml.
type pSlideMaster struct {
	XMLName xml.Name `xml:"p:sldMaster"`
	namespaces
	CSld      pCommonSlide `xml:"p:cSld"`
	TxStyles  pTextStyles  `xml:"p:txStyles"`
	LayoutIDs []pListID    `xml:"p:sldLayoutIdLst>p:sldLayoutId"`
}

type pTextStyles struct {
	Title empty `xml:"p:titleStyle"`
	Body  empty `xml:"p:bodyStyle"`
	Other empty `xml:"p:otherStyle"`
}

// pSlideLayout is ppt/slideLayouts/slideLayout1.xml.
type pSlideLayout struct {
	XMLName xml.Name `xml:"p:sldLayout"`
	namespaces
	Type string       `xml:"type,attr"`
	CSld pCommonSlide `xml:"p:cSld"`
}

// pSlide is ppt/slides/slideN.xml.
type pSlide struct {
	XMLName xml.Name `xml:"p:sld"`
	namespaces
	CSld pCommonSlide `xml:"p:cSld"`
}

type pCommonSlide struct {
	Name   string     `xml:"name,attr,omitempty"`
	SpTree pShapeTree `xml:"p:spTree"`
}

type pShapeTree struct {
	NvGrpSpPr pNvGrpSpPr `xml:"p:nvGrpSpPr"`
	GrpSpPr   empty      `xml:"p:grpSpPr"`
	Shapes    []pShape   `xml:"p:sp"`
}

type pNvGrpSpPr struct {
	CNvPr      pCNvPr `xml:"p:cNvPr"`
	CNvGrpSpPr empty  `xml:"p:cNvGrpSpPr"`
	NvPr       empty  `xml:"p:nvPr"`
}

type pCNvPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type pShape struct {
	NvSpPr pNvSpPr   `xml:"p:nvSpPr"`
	SpPr   pSpPr     `xml:"p:spPr"`
	TxBody pTextBody `xml:"p:txBody"`
}

type pNvSpPr struct {
	CNvPr   pCNvPr   `xml:"p:cNvPr"`
	CNvSpPr pCNvSpPr `xml:"p:cNvSpPr"`
	NvPr    pNvPr    `xml:"p:nvPr"`
}

type pCNvSpPr struct {
	SpLocks aSpLocks `xml:"a:spLocks"`
}

type aSpLocks struct {
	NoGrp int `xml:"noGrp,attr"`
}

type pNvPr struct {
	Placeholder pPlaceholder `xml:"p:ph"`
}

type pPlaceholder struct {
	Type string `xml:"type,attr,omitempty"`
	Idx  string `xml:"idx,attr,omitempty"`
}

type pSpPr struct {
	Xfrm aTransform `xml:"a:xfrm"`
}

type aTransform struct {
	Off aPoint `xml:"a:off"`
	Ext aSize  `xml:"a:ext"`
}

type aPoint struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

// aSize is an extent in EMU.
type aSize struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type pTextBody struct {
	BodyPr     empty        `xml:"a:bodyPr"`
	LstStyle   empty        `xml:"a:lstStyle"`
	Paragraphs []aParagraph `xml:"a:p"`
}

type aParagraph struct {
	Runs []aRun `xml:"a:r"`
}

type aRun struct {
	Props aRunProps `xml:"a:rPr"`
	Text  string    `xml:"a:t"`
}

type aRunProps struct {
	Lang  string `xml:"lang,attr"`
	Dirty string `xml:"dirty,attr"`
}

// empty marshals as an element without content.
type empty struct{}
