package xlsx

import "encoding/xml"

// workbookXML represents the xl/workbook.xml file structure.
type workbookXML struct {
	XMLName    xml.Name      `xml:"workbook"`
	Properties workbookPrXML `xml:"workbookPr"`
	Sheets     []sheetRefXML `xml:"sheets>sheet"`
}

type workbookPrXML struct {
	Date1904 string `xml:"date1904,attr"`
}

type sheetRefXML struct {
	Name string `xml:"name,attr"`
	RID  string `xml:"id,attr"` // r:id
}

// worksheetXML represents a xl/worksheets/sheet*.xml file structure.
type worksheetXML struct {
	XMLName xml.Name `xml:"worksheet"`
	Rows    []rowXML `xml:"sheetData>row"`
}

type rowXML struct {
	R     int       `xml:"r,attr"` // 1-indexed, 0 when omitted
	Cells []cellXML `xml:"c"`
}

type cellXML struct {
	R  string       `xml:"r,attr"`
	T  string       `xml:"t,attr"` // s, n, b, e, str, inlineStr, d
	S  int          `xml:"s,attr"`
	V  *string      `xml:"v"`
	F  *string      `xml:"f"`
	Is *richTextXML `xml:"is"`
}

// richTextXML is a shared-string item or inline string: plain text, rich
// text runs, or both. Phonetic runs (rPh) are not part of the value.
type richTextXML struct {
	T *string   `xml:"t"`
	R []textRun `xml:"r"`
}

type textRun struct {
	T string `xml:"t"`
}

func (rt *richTextXML) text() string {
	if rt == nil {
		return ""
	}
	s := ""
	if rt.T != nil {
		s = *rt.T
	}
	for _, run := range rt.R {
		s += run.T
	}
	return s
}

// sharedStringsXML represents the xl/sharedStrings.xml file structure.
type sharedStringsXML struct {
	XMLName xml.Name      `xml:"sst"`
	SI      []richTextXML `xml:"si"`
}

// stylesXML represents the parts of xl/styles.xml needed to tell dates from
// plain numbers.
type stylesXML struct {
	XMLName xml.Name    `xml:"styleSheet"`
	NumFmts []numFmtXML `xml:"numFmts>numFmt"`
	CellXfs []xfXML     `xml:"cellXfs>xf"`
}

type numFmtXML struct {
	NumFmtID   int    `xml:"numFmtId,attr"`
	FormatCode string `xml:"formatCode,attr"`
}

type xfXML struct {
	NumFmtID int `xml:"numFmtId,attr"`
}

// relationshipsXML represents .rels files.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}
