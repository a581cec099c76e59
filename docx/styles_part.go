package docx

import (
	"encoding/xml"
	"strconv"
)

// Body text size in half-points, and heading sizes by level.
var (
	bodySize     = 22
	headingSizes = [...]int{1: 32, 2: 28, 3: 26, 4: 24, 5: 22, 6: 22}
)

type wStyles struct {
	XMLName     xml.Name     `xml:"w:styles"`
	XmlnsW      string       `xml:"xmlns:w,attr"`
	DocDefaults wDocDefaults `xml:"w:docDefaults"`
	Styles      []wStyle     `xml:"w:style"`
}

type wDocDefaults struct {
	RPr wRPrDefault `xml:"w:rPrDefault"`
}

type wRPrDefault struct {
	RPr wStyleRPr `xml:"w:rPr"`
}

type wStyle struct {
	Type       string       `xml:"w:type,attr"`
	Default    string       `xml:"w:default,attr,omitempty"`
	StyleID    string       `xml:"w:styleId,attr"`
	Name       wVal         `xml:"w:name"`
	BasedOn    *wVal        `xml:"w:basedOn,omitempty"`
	Next       *wVal        `xml:"w:next,omitempty"`
	UIPriority *wVal        `xml:"w:uiPriority,omitempty"`
	QFormat    *wOn         `xml:"w:qFormat,omitempty"`
	PPr        *wStylePPr   `xml:"w:pPr,omitempty"`
	RPr        *wStyleRPr   `xml:"w:rPr,omitempty"`
	TblPr      *wStyleTblPr `xml:"w:tblPr,omitempty"`
}

type wStylePPr struct {
	KeepNext   *wOn      `xml:"w:keepNext,omitempty"`
	Spacing    *wSpacing `xml:"w:spacing,omitempty"`
	OutlineLvl *wVal     `xml:"w:outlineLvl,omitempty"`
}

type wSpacing struct {
	Before int `xml:"w:before,attr"`
	After  int `xml:"w:after,attr"`
}

type wStyleRPr struct {
	Bold *wOn  `xml:"w:b,omitempty"`
	Size *wVal `xml:"w:sz,omitempty"`
}

type wStyleTblPr struct {
	Borders wBorders `xml:"w:tblBorders"`
}

type wBorders struct {
	Top     wBorder `xml:"w:top"`
	Left    wBorder `xml:"w:left"`
	Bottom  wBorder `xml:"w:bottom"`
	Right   wBorder `xml:"w:right"`
	InsideH wBorder `xml:"w:insideH"`
	InsideV wBorder `xml:"w:insideV"`
}

type wBorder struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

func val(s string) *wVal {
	return &wVal{Val: s}
}

// newStyles returns word/styles.xml with the Normal paragraph style, the six
// heading styles and a bordered TableGrid table style.
func newStyles() *wStyles {
	s := &wStyles{
		XmlnsW: nsW,
		DocDefaults: wDocDefaults{
			RPr: wRPrDefault{RPr: wStyleRPr{Size: val(strconv.Itoa(bodySize))}},
		},
	}

	s.Styles = append(s.Styles, wStyle{
		Type:    "paragraph",
		Default: "1",
		StyleID: "Normal",
		Name:    wVal{Val: "Normal"},
		QFormat: &wOn{},
		PPr:     &wStylePPr{Spacing: &wSpacing{After: 160}},
	})

	for level := 1; level <= 6; level++ {
		n := strconv.Itoa(level)
		s.Styles = append(s.Styles, wStyle{
			Type:       "paragraph",
			StyleID:    "Heading" + n,
			Name:       wVal{Val: "heading " + n},
			BasedOn:    val("Normal"),
			Next:       val("Normal"),
			UIPriority: val("9"),
			QFormat:    &wOn{},
			PPr: &wStylePPr{
				KeepNext:   &wOn{},
				Spacing:    &wSpacing{Before: 240, After: 80},
				OutlineLvl: val(strconv.Itoa(level - 1)),
			},
			RPr: &wStyleRPr{Bold: &wOn{}, Size: val(strconv.Itoa(headingSizes[level]))},
		})
	}

	line := wBorder{Val: "single", Sz: 4, Space: 0, Color: "auto"}
	s.Styles = append(s.Styles, wStyle{
		Type:       "table",
		StyleID:    "TableGrid",
		Name:       wVal{Val: "Table Grid"},
		UIPriority: val("39"),
		TblPr: &wStyleTblPr{Borders: wBorders{
			Top: line, Left: line, Bottom: line, Right: line, InsideH: line, InsideV: line,
		}},
	})

	return s
}
